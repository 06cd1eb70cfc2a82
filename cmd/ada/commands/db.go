package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SatisfactoryWiki/ada/config"
	"github.com/SatisfactoryWiki/ada/errors"
	"github.com/SatisfactoryWiki/ada/gamedata"
	"github.com/SatisfactoryWiki/ada/storage"
)

var dbImportDataset string

// DbCmd represents the db command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the SQLite entity database",
}

var dbImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a YAML dataset into the SQLite database",
	Long: `Read a YAML dataset, validate it, and write it into the configured
SQLite database. The dataset is validated by building the in-memory
database first, so a dataset that imports cleanly always loads.`,
	RunE: runDbImportCommand,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entity counts in the configured database",
	RunE:  runDbStatsCommand,
}

func init() {
	dbImportCmd.Flags().StringVarP(&dbImportDataset, "dataset", "d", "", "Dataset file to import (defaults to the configured dataset)")
	DbCmd.AddCommand(dbImportCmd)
	DbCmd.AddCommand(dbStatsCmd)
}

func runDbImportCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Path == "" {
		return errors.New("no database path configured")
	}

	path := dbImportDataset
	if path == "" {
		path = cfg.Dataset.Path
	}
	if path == "" {
		return errors.New("no dataset to import")
	}

	ds, err := gamedata.LoadDataset(path)
	if err != nil {
		return err
	}
	if _, err := gamedata.NewStatic(ds); err != nil {
		return errors.Wrapf(err, "invalid dataset %s", path)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ds); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s\n", path, cfg.Database.Path)
	return nil
}

func runDbStatsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "items:         %d\n", len(db.Items()))
	fmt.Fprintf(out, "recipes:       %d\n", len(db.Recipes()))
	fmt.Fprintf(out, "power recipes: %d\n", len(db.PowerRecipes()))
	fmt.Fprintf(out, "crafters:      %d\n", len(db.Crafters()))
	fmt.Fprintf(out, "generators:    %d\n", len(db.Generators()))
	return nil
}
