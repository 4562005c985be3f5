package commands

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/config"
	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/logger"
	"github.com/developer-hhiotsystems/terminology-extraction/nlp"
	"github.com/developer-hhiotsystems/terminology-extraction/relation"
	"github.com/developer-hhiotsystems/terminology-extraction/store"
)

// openDatabase opens and migrates the glossary database. If dbPath is
// empty, the configured path is used.
func openDatabase(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load configuration")
		}
		dbPath = cfg.Database.Path
	}

	database, err := store.Open(dbPath, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", dbPath)
	}

	if err := store.Migrate(database, logger.Logger); err != nil {
		database.Close()
		return nil, errors.Wrapf(err, "failed to run migrations on %s", dbPath)
	}

	return database, nil
}

// newExtractor builds the extraction core with the analyzer selected by
// configuration; the --degraded flag forces the null analyzer.
func newExtractor(degraded bool) (*relation.Extractor, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	var analyzer nlp.Analyzer
	if degraded || cfg.Extraction.AnalyzerMode == config.AnalyzerModeDegraded {
		analyzer = nlp.NewNullAnalyzer()
	} else {
		analyzer, err = nlp.NewProseAnalyzer(logger.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create analyzer")
		}
	}

	return relation.NewExtractor(analyzer, logger.Logger)
}

// loadTermsFile reads a vocabulary file: one term per line, blank lines
// and #-comments skipped.
func loadTermsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open terms file %s", path)
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read terms file %s", path)
	}
	return terms, nil
}

// shouldOutputJSON reports whether the (persistent) --json flag is set.
func shouldOutputJSON(cmd *cobra.Command) bool {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return jsonOutput
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	fmt.Println(string(data))
	return nil
}
