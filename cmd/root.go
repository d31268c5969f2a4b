package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swatter555/leadercorps/internal/config"
	"github.com/swatter555/leadercorps/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "leadercorps",
	Short: "Leader skill tree engine for the hex wargame",
	Long: "Leadercorps — the leader progression engine: reputation awards, " +
		"skill unlocking, branch exclusivity, and command-grade promotion.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEADERCORPS_DB env var)")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(leaderCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore resolves configuration and opens the database, using the --db
// flag (highest priority), then LEADERCORPS_DB, then the default XDG path.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, config.Config{}, err
		}
		cfg.DBPath = p
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	return s, cfg, nil
}
