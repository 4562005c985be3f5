package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/config"
	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/glossary"
	"github.com/developer-hhiotsystems/terminology-extraction/logger"
	"github.com/developer-hhiotsystems/terminology-extraction/store"
)

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch <glossary.json>",
	Short: "Process a glossary file and persist relationships",
	Long: `Process a glossary file: run relation extraction over every entry's
definitions against the term vocabulary (minus the entry's own term),
create the terms in the glossary database, and persist the extracted
relationships.

The glossary file is a JSON array of entries:
  [{"term": "pump", "definitions": [{"text": "...", "context": "..."}]}]

Duplicate relationships and relationships landing on vocabulary that is
not stored are counted as skips; individual failures never abort the run.

Examples:
  termex batch glossary.json                          # Process a glossary
  termex batch glossary.json --terms-file vocab.txt   # Extra vocabulary
  termex batch glossary.json --max-definitions 100    # Bounded run
  termex batch glossary.json --json                   # Machine-readable stats`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().String("terms-file", "", "File with auxiliary vocabulary, one term per line")
	BatchCmd.Flags().Float64("min-confidence", -1, "Confidence threshold in [0,1] (default from config)")
	BatchCmd.Flags().Int("max-definitions", -1, "Cap on definitions processed this run (default from config, 0 = no cap)")
	BatchCmd.Flags().Bool("degraded", false, "Run without a parsing engine")
}

func runBatch(cmd *cobra.Command, args []string) error {
	glossaryPath := args[0]
	termsFile, _ := cmd.Flags().GetString("terms-file")
	minConfidence, _ := cmd.Flags().GetFloat64("min-confidence")
	maxDefinitions, _ := cmd.Flags().GetInt("max-definitions")
	degraded, _ := cmd.Flags().GetBool("degraded")
	useJSON := shouldOutputJSON(cmd)

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if minConfidence < 0 {
		minConfidence = cfg.Extraction.MinConfidence
	}
	if maxDefinitions < 0 {
		maxDefinitions = cfg.Batch.MaxDefinitions
	}

	if !useJSON {
		pterm.DefaultHeader.WithFullWidth().Printf("Glossary Batch - Relation Extraction")
		pterm.Println()
		pterm.Info.Printf("Glossary: %s", glossaryPath)
		pterm.Info.Printf("Database: %s", cfg.Database.Path)
		pterm.Println()
	}

	entries, err := glossary.LoadEntries(glossaryPath)
	if err != nil {
		return err
	}

	var auxTerms []string
	if termsFile != "" {
		auxTerms, err = loadTermsFile(termsFile)
		if err != nil {
			return err
		}
	}

	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	extractor, err := newExtractor(degraded)
	if err != nil {
		return err
	}

	processor, err := glossary.NewProcessor(
		extractor,
		store.NewTermStore(database, logger.Logger),
		store.NewRelationshipStore(database, logger.Logger),
		glossary.Options{
			MinConfidence:  minConfidence,
			MaxDefinitions: maxDefinitions,
		},
		logger.Logger,
	)
	if err != nil {
		return err
	}

	var spinner *pterm.SpinnerPrinter
	if !useJSON {
		spinner, _ = pterm.DefaultSpinner.Start("Extracting relationships from glossary definitions...")
	}

	result, err := processor.Run(entries, auxTerms)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if !useJSON {
			pterm.Error.Printf("Batch run failed: %v", err)
		}
		return err
	}

	if useJSON {
		return outputJSON(result)
	}

	pterm.Println()
	pterm.Success.Printf("Glossary processing completed!")
	pterm.Println()

	pterm.Info.Printf("Statistics:")
	pterm.Printf("  Entries processed:      %d", result.Entries)
	pterm.Printf("  Definitions processed:  %d", result.Definitions)
	pterm.Printf("  Relationships found:    %d", result.Extracted)
	pterm.Printf("  Relationships created:  %d", result.Created)
	pterm.Printf("  Skipped (unknown term): %d", result.SkippedUnknownTarget)
	pterm.Printf("  Skipped (duplicate):    %d", result.SkippedDuplicate)
	pterm.Printf("  Failures:               %d", result.Failures)
	pterm.Printf("  Processing time:        %s", result.Elapsed().Round(time.Millisecond))
	pterm.Println()

	pterm.Info.Println("Next steps:")
	pterm.Printf("  Inspect the database: termex db stats")
	pterm.Printf("  Export the graph:     termex graph --out graph.json")

	return nil
}
