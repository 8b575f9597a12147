package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pcarver/galleria/internal/artic"
)

// configDirName is the directory under $HOME holding galleria state.
const configDirName = ".galleria"

// configFileName is the YAML configuration file name.
const configFileName = "config.yaml"

// APIConfig configures the remote collections API.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"  env:"GALLERIA_API_URL"`
	PageSize int    `yaml:"page_size" env:"GALLERIA_PAGE_SIZE"`
}

// LoggingConfig configures the diagnostic channel.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"GALLERIA_LOG_LEVEL"`
	Format string `yaml:"format" env:"GALLERIA_LOG_FORMAT"`
	File   string `yaml:"file"   env:"GALLERIA_LOG_FILE"`
}

// Config is the application configuration. Values are resolved in
// order: built-in defaults, then the YAML config file, then environment
// variables (a .env file is honored when present).
type Config struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  artic.DefaultBaseURL,
			PageSize: artic.DefaultPageSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the location of the YAML config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load resolves the effective configuration. A missing config file is
// not an error; defaults apply. Environment variables override file
// values.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom resolves configuration using the given file path instead of
// the default location.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, unmarshalErr)
		}
	case os.IsNotExist(err):
		// Missing config file is fine, defaults apply.
	default:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// A .env in the working directory feeds the environment before the
	// env override pass. Absence is not an error.
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	if cfg.API.PageSize <= 0 {
		cfg.API.PageSize = artic.DefaultPageSize
	}

	return cfg, nil
}

// WriteDefault writes the default configuration to the standard path,
// creating the directory as needed. Returns the written path. Refuses to
// overwrite an existing file.
func WriteDefault() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), 0o700); mkErr != nil {
		return "", fmt.Errorf("creating config directory: %w", mkErr)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return "", fmt.Errorf("writing config file: %w", writeErr)
	}

	return path, nil
}
