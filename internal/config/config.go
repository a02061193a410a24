package config

import "time"

// Config is the root application configuration.
type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	Catalog  CatalogConfig `yaml:"catalog"`
	Backup   BackupConfig  `yaml:"backup"`
	Timezone string        `yaml:"timezone" env:"ECOLOG_TIMEZONE" env-default:"Local"`
}

// StorageConfig selects the backing store. A path ending in .json uses the
// JSON file store; a postgres:// URL uses PostgreSQL; anything else is SQLite.
type StorageConfig struct {
	Path string `yaml:"path" env:"ECOLOG_STORAGE_PATH" env-default:"~/.config/ecolog/ecolog.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Debug bool `yaml:"debug" env:"ECOLOG_DEBUG" env-default:"false"`
}

// CatalogConfig points at an optional action catalog override.
type CatalogConfig struct {
	Path string `yaml:"path" env:"ECOLOG_CATALOG_PATH"`
}

// BackupConfig holds automatic backup settings (SQLite only).
// Auto takes its default from defaults(); an env-default tag would
// override an explicit `auto: false` in the file.
type BackupConfig struct {
	Auto bool `yaml:"auto" env:"ECOLOG_BACKUP_AUTO"`
	Max  int  `yaml:"max"  env:"ECOLOG_BACKUP_MAX"  env-default:"14"`
}

func defaults() Config {
	return Config{Backup: BackupConfig{Auto: true}}
}

// Location resolves the configured timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
