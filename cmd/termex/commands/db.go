package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/developer-hhiotsystems/terminology-extraction/config"
	"github.com/developer-hhiotsystems/terminology-extraction/errors"
	"github.com/developer-hhiotsystems/terminology-extraction/logger"
	"github.com/developer-hhiotsystems/terminology-extraction/relation"
	"github.com/developer-hhiotsystems/terminology-extraction/store"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the glossary database",
	Long: `Manage glossary database operations.

Examples:
  termex db migrate   # Apply pending schema migrations
  termex db stats     # Show term and relationship statistics`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE:  runDbMigrate,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long:  "Display term counts and relationship counts grouped by relation kind",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbMigrateCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbMigrate(cmd *cobra.Command, args []string) error {
	// openDatabase migrates as a side effect; this command exists so the
	// schema can be prepared explicitly, e.g. before a first batch run.
	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Println("Database schema is up to date")
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	database, err := openDatabase("")
	if err != nil {
		return err
	}
	defer database.Close()

	terms := store.NewTermStore(database, logger.Logger)
	rels := store.NewRelationshipStore(database, logger.Logger)

	termCount, err := terms.Count()
	if err != nil {
		return err
	}
	counts, err := rels.CountByKind()
	if err != nil {
		return err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	if shouldOutputJSON(cmd) {
		return outputJSON(map[string]interface{}{
			"database_path":         cfg.Database.Path,
			"terms":                 termCount,
			"relationships":         total,
			"relationships_by_kind": counts,
		})
	}

	fmt.Println("Database Statistics")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Database Path:       %s\n", cfg.Database.Path)
	fmt.Printf("Terms:               %d\n", termCount)
	fmt.Printf("Total Relationships: %d\n", total)
	fmt.Println()

	if total > 0 {
		fmt.Println("Relationships by kind:")
		for _, kind := range relation.Kinds() {
			if n := counts[kind]; n > 0 {
				fmt.Printf("  %-12s %d\n", string(kind), n)
			}
		}
	}
	return nil
}
