package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/config"
	"github.com/developer-hhiotsystems/terminology-extraction/errors"
)

// ExtractCmd represents the extract command
var ExtractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract relationships from raw text",
	Long: `Extract typed relationships between known terms from raw text.

The vocabulary comes from --terms and/or --terms-file; extraction only
relates terms it already knows about. Results below the confidence
threshold are dropped.

Examples:
  termex extract doc.txt --terms "pump,oil,valve"
  termex extract doc.txt --terms-file vocab.txt --min-confidence 0.7
  cat doc.txt | termex extract - --terms-file vocab.txt --json
  termex extract doc.txt --terms "pump,oil" --degraded   # no parsing engine`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	ExtractCmd.Flags().StringSlice("terms", nil, "Known terms (comma-separated)")
	ExtractCmd.Flags().String("terms-file", "", "File with one known term per line")
	ExtractCmd.Flags().Float64("min-confidence", -1, "Confidence threshold in [0,1] (default from config)")
	ExtractCmd.Flags().Bool("degraded", false, "Run without a parsing engine (extraction returns nothing)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	terms, _ := cmd.Flags().GetStringSlice("terms")
	termsFile, _ := cmd.Flags().GetString("terms-file")
	minConfidence, _ := cmd.Flags().GetFloat64("min-confidence")
	degraded, _ := cmd.Flags().GetBool("degraded")

	if termsFile != "" {
		fromFile, err := loadTermsFile(termsFile)
		if err != nil {
			return err
		}
		terms = append(terms, fromFile...)
	}
	if len(terms) == 0 {
		return errors.New("no known terms: pass --terms or --terms-file")
	}

	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	if minConfidence < 0 {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		minConfidence = cfg.Extraction.MinConfidence
	}

	extractor, err := newExtractor(degraded)
	if err != nil {
		return err
	}

	rels, err := extractor.Extract(text, terms, minConfidence)
	if err != nil {
		return errors.Wrap(err, "extraction failed")
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(rels)
	}

	if len(rels) == 0 {
		pterm.Info.Println("No relationships found")
		return nil
	}

	data := pterm.TableData{{"Source", "Kind", "Target", "Confidence", "Method"}}
	for _, r := range rels {
		data = append(data, []string{
			r.SourceTerm,
			string(r.Kind),
			r.TargetTerm,
			fmt.Sprintf("%.2f", r.Confidence),
			string(r.Method),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Printf("%d relationship(s)\n", len(rels))
	return nil
}

// readInput reads the text to process from a file, or stdin when the
// argument is "-".
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", errors.Wrapf(err, "read input file %s", arg)
	}
	return string(data), nil
}
