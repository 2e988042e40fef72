// Package cli implements the memkeep CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/memkeep/internal/config"
	"github.com/rcliao/memkeep/internal/store"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "memkeep",
	Short: "Personal knowledge-memory store",
	Long: "Store short notes tagged by project, category, and importance.\n" +
		"SQLite-backed, single binary. Run `memkeep serve` to expose the\n" +
		"tool-call interface over stdio.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MEMKEEP_DB or ~/.memkeep/memkeep.db)")
}

// loadConfig builds the process configuration, letting the --db flag
// win over file and environment.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

func openStore(cfg config.Config) *store.SQLiteStore {
	s, err := store.NewSQLiteStore(cfg.DBPath, store.Options{
		DefaultProject: cfg.DefaultProject,
		SearchLimit:    cfg.SearchLimit,
	})
	if err != nil {
		exitErr("open store", err)
	}
	return s
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
