package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/cmd/termex/commands"
	"github.com/developer-hhiotsystems/terminology-extraction/logger"
)

var rootCmd = &cobra.Command{
	Use:   "termex",
	Short: "termex - Terminology relation extraction",
	Long: `termex - Relation extraction over a known term vocabulary.

termex reads free text or glossary definitions, finds mentions of known
terms, and extracts directed, typed, confidence-scored relationships
between them for building a terminology knowledge graph.

Available commands:
  extract - Extract relationships from raw text
  batch   - Process a glossary file and persist relationships
  graph   - Export stored relationships as a visualization graph
  db      - Manage the glossary database

Examples:
  termex extract doc.txt --terms pump,oil      # Extract from a file
  termex batch glossary.json                   # Batch-process a glossary
  termex graph --out graph.json                # Export the graph
  termex db stats                              # Show database statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		// JSON log output goes to stderr, so --json command output on
		// stdout stays machine-parseable.
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results in JSON format")

	rootCmd.AddCommand(commands.ExtractCmd)
	rootCmd.AddCommand(commands.BatchCmd)
	rootCmd.AddCommand(commands.GraphCmd)
	rootCmd.AddCommand(commands.DbCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
