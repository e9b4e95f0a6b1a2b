package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads the file named by CONFIG_PATH (or ./config.yaml) and the
// environment. ENV beats YAML, YAML beats env-default tags.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(pathEnv))
}

// LoadFrom is Load with an explicit file. An empty path falls back to
// ./config.yaml when it exists and to ENV plus defaults otherwise; a named
// file that does not exist is an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
