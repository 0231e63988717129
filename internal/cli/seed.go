package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/propertyhub/internal/listing"
	"github.com/evcraddock/propertyhub/internal/listing/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import listings into the database",
		Long: `Import listings from a YAML fixture into the database. Without --file
the built-in fixture is used. Listings whose ID is already stored are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("file") {
				file = cfg.SeedFile
			}

			database, err := openDB(cfg.DBPath)
			if err != nil {
				return err
			}
			defer closeDB(database)

			repo := listing.NewRepository(database)
			inserted, err := importSeed(repo, file)
			if err != nil {
				return err
			}
			total, err := repo.Count()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if isJSON() {
				return printJSON(out, map[string]int{"inserted": inserted, "total": total})
			}
			writef(out, "Imported %d listings (%d total).\n", inserted, total)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML fixture to import (default: built-in listings)")

	return cmd
}

// importSeed imports the fixture at path, or the built-in one if path is empty.
func importSeed(repo *listing.Repository, path string) (int, error) {
	var (
		listings []listing.Listing
		err      error
	)
	if path == "" {
		listings, err = seed.Load()
	} else {
		listings, err = seed.LoadFile(path)
	}
	if err != nil {
		return 0, err
	}
	return repo.Import(listings)
}
