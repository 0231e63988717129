package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/propertyhub/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the resolved settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				if isJSON() {
					return printJSON(cmd.OutOrStdout(), cfg)
				}
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshaling config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Save a setting to the config file",
			Long:  "Save a setting to the config file. Keys: db, port, server_url, seed_file, dev_mode.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConfigSet(cmd, args[0], args[1])
			},
		},
	)

	return cmd
}

// runConfigSet updates one key in the config file. Only the file is
// changed; environment overrides are not written back.
func runConfigSet(cmd *cobra.Command, key, value string) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	switch key {
	case "db":
		cfg.DBPath = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("port must be a number: %s", value)
		}
		cfg.Port = port
	case "server_url":
		cfg.ServerURL = value
	case "seed_file":
		cfg.SeedFile = value
	case "dev_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("dev_mode must be true or false: %s", value)
		}
		cfg.DevMode = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	writef(cmd.OutOrStdout(), "Saved %s.\n", key)
	return nil
}
