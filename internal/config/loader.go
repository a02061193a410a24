package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigFile names an explicit config file
const EnvConfigFile = "ECOLOG_CONFIG_FILE"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path is $ECOLOG_CONFIG_FILE, falling back to <configDir>/config.yaml.
// A missing default file is fine; a missing explicit file is an error.
func Load(configDir string) (*Config, error) {
	cfg := defaults()

	path := os.Getenv(EnvConfigFile)
	explicitPath := path != ""
	if !explicitPath {
		path = filepath.Join(configDir, "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
