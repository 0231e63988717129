// Package config resolves propertyhub settings from the environment, an
// optional .env file and ~/.config/phub/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort      = 8080
	DefaultServerURL = "http://localhost:8080"
)

// Config holds settings shared by the CLI and the server.
type Config struct {
	DBPath      string   `json:"db" yaml:"db,omitempty"`
	Port        int      `json:"port" yaml:"port,omitempty" validate:"gte=1,lte=65535"`
	DevMode     bool     `json:"dev_mode" yaml:"dev_mode,omitempty"`
	ServerURL   string   `json:"server_url" yaml:"server_url,omitempty" validate:"required,url"`
	SeedFile    string   `json:"seed_file" yaml:"seed_file,omitempty"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins,omitempty" validate:"dive,required"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:        DefaultPort,
		ServerURL:   DefaultServerURL,
		CORSOrigins: []string{"*"},
	}
}

var validate = validator.New()

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "phub", "config.yaml"), nil
}

// Load resolves settings: environment variables win over the config file,
// which wins over defaults. A .env file in the working directory is loaded
// into the environment first, without overriding variables already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if err := mergeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile returns the defaults overlaid with the config file only,
// ignoring the environment. It is the starting point for editing the file.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	if err := mergeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path onto cfg. A missing file is not
// an error.
func mergeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// applyEnv overlays PHUB_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("PHUB_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PHUB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PHUB_PORT must be a number, got %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("PHUB_DEV_MODE"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PHUB_DEV_MODE must be true or false, got %q", v)
		}
		cfg.DevMode = dev
	}
	if v := os.Getenv("PHUB_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PHUB_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("PHUB_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}
	return nil
}

// Save writes cfg to the config file.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
