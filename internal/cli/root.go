// Package cli defines the cobra command tree for propertyhub.
package cli

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evcraddock/propertyhub/internal/client"
	"github.com/evcraddock/propertyhub/internal/config"
	"github.com/evcraddock/propertyhub/internal/db"
)

var (
	flagFormat string
	flagDB     string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "phub",
		Short:         "Browse property listings",
		Long:          "Search, filter and browse property listings from the command line, or serve them over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.propertyhub/listings.db)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "API server URL (default: http://localhost:8080)")

	root.AddCommand(
		newSearchCmd(),
		newShowCmd(),
		newRecentCmd(),
		newFeaturedCmd(),
		newTypesCmd(),
		newServeCmd(),
		newSeedCmd(),
		newConfigCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig resolves settings and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openDB opens the SQLite database at path, or at the default path if empty.
func openDB(path string) (*sql.DB, error) {
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates an HTTP client for the propertyhub API.
func newAPIClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg.ServerURL), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}

// writef writes formatted text, ignoring errors like fmt.Printf does.
func writef(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
