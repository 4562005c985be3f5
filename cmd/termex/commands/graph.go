package commands

import (
	"encoding/json"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/graph"
	"github.com/developer-hhiotsystems/terminology-extraction/logger"
	"github.com/developer-hhiotsystems/terminology-extraction/store"
)

// GraphCmd represents the graph command
var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export stored relationships as a visualization graph",
	Long: `Export the stored term relationships as a graph JSON document:
one node per term, one directed link per relationship with the extraction
confidence as link weight. The format is ready for D3-style force layouts.

Examples:
  termex graph                      # Print graph JSON to stdout
  termex graph --out graph.json     # Write graph JSON to a file
  termex graph --min-confidence 0.7 # Only high-confidence links`,
	RunE: runGraph,
}

func init() {
	GraphCmd.Flags().String("out", "", "Write graph JSON to this file instead of stdout")
	GraphCmd.Flags().Float64("min-confidence", 0, "Only include relationships at or above this confidence")
}

func runGraph(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	minConfidence, _ := cmd.Flags().GetFloat64("min-confidence")

	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	rels, err := store.NewRelationshipStore(database, logger.Logger).ListResolved()
	if err != nil {
		return err
	}

	if minConfidence > 0 {
		filtered := rels[:0]
		for _, r := range rels {
			if r.Confidence >= minConfidence {
				filtered = append(filtered, r)
			}
		}
		rels = filtered
	}

	g := graph.NewBuilder(logger.Logger).Build(rels)

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal graph")
	}

	if outPath == "" {
		os.Stdout.Write(data)
		os.Stdout.Write([]byte("\n"))
		return nil
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "write graph to %s", outPath)
	}
	pterm.Success.Printf("Graph written to %s (%d nodes, %d links)", outPath,
		g.Meta.Stats.TotalNodes, g.Meta.Stats.TotalEdges)
	return nil
}
