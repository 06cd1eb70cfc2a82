package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SatisfactoryWiki/ada/cmd/ada/commands"
	"github.com/SatisfactoryWiki/ada/config"
	"github.com/SatisfactoryWiki/ada/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ada",
	Short: "ada - Natural language factory query compiler",
	Long: `ada - Compile natural language factory commands into structured queries.

Production-planning commands become optimization queries with an
objective and constraint maps; lookup commands list entities and
recipes from the game database.

Examples:
  ada query produce 60 iron plates           # Fixed production target
  ada query produce ? iron rods from iron ore
  ada query recipes for screws               # Recipe lookup
  ada entities --kind crafter                # List known entities
  ada db import --dataset ada.yaml           # Import a dataset into SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose || cfg.Log.Verbose {
			return logger.SetVerbose()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")

	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.EntitiesCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
