package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/propertyhub/internal/config"
	"github.com/evcraddock/propertyhub/internal/listing"
	"github.com/evcraddock/propertyhub/internal/logging"
	"github.com/evcraddock/propertyhub/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start an HTTP server for the listing API.

Listings are read from the database once at startup. An empty database is
first filled from the seed fixture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "port to listen on")

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logging.Setup(cfg.DevMode)

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	store, err := buildStore(database, cfg.SeedFile)
	if err != nil {
		return err
	}
	slog.Info("listings loaded", "count", store.Len())

	srv := web.NewServer(store, web.Options{CORSOrigins: cfg.CORSOrigins})
	return srv.Run(ctx, fmt.Sprintf(":%d", cfg.Port))
}

// buildStore seeds an empty database and loads its listings into memory.
func buildStore(database *sql.DB, seedFile string) (*listing.MemoryStore, error) {
	repo := listing.NewRepository(database)

	n, err := repo.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		inserted, err := importSeed(repo, seedFile)
		if err != nil {
			return nil, err
		}
		slog.Info("seeded empty database", "inserted", inserted)
	}

	return listing.LoadStore(repo)
}
