package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Path != "~/.config/ecolog/ecolog.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Log.Debug {
		t.Error("expected debug off by default")
	}
	if !cfg.Backup.Auto || cfg.Backup.Max != 14 {
		t.Errorf("Backup = %+v, want auto with max 14", cfg.Backup)
	}
	if cfg.Location() != time.Local {
		t.Errorf("Location() = %v, want Local", cfg.Location())
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv("ECOLOG_STORAGE_PATH", "/tmp/eco.json")
	t.Setenv("ECOLOG_DEBUG", "true")
	t.Setenv("ECOLOG_TIMEZONE", "UTC")
	t.Setenv("ECOLOG_BACKUP_MAX", "3")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Path != "/tmp/eco.json" || !cfg.Log.Debug || cfg.Backup.Max != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", cfg.Location())
	}
}

func TestLoad_YAMLInConfigDir(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	dir := t.TempDir()
	writeYAML(t, dir, `
storage:
  path: "/data/eco.db"
catalog:
  path: "/data/actions.json"
backup:
  auto: false
  max: 5
timezone: "UTC"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.Path != "/data/eco.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Catalog.Path != "/data/actions.json" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Backup.Auto || cfg.Backup.Max != 5 {
		t.Errorf("Backup = %+v", cfg.Backup)
	}
}

func TestLoad_BackupAuto(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  string
		want bool
	}{
		{"default without file", "", "", true},
		{"file omits auto", "backup:\n  max: 3\n", "", true},
		{"file disables", "backup:\n  auto: false\n", "", false},
		{"file enables", "backup:\n  auto: true\n", "", true},
		{"env disables", "", "false", false},
		{"env overrides file", "backup:\n  auto: true\n", "false", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigFile, "")
			t.Setenv("ECOLOG_BACKUP_AUTO", tt.env)
			if tt.env == "" {
				os.Unsetenv("ECOLOG_BACKUP_AUTO")
			}
			dir := t.TempDir()
			if tt.yaml != "" {
				writeYAML(t, dir, tt.yaml)
			}

			cfg, err := Load(dir)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Backup.Auto != tt.want {
				t.Errorf("Backup.Auto = %v, want %v", cfg.Backup.Auto, tt.want)
			}
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "timezone: \"UTC\"\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage:  StorageConfig{Path: "/tmp/eco.db"},
			Backup:   BackupConfig{Auto: true, Max: 14},
			Timezone: "Local",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty storage", func(c *Config) { c.Storage.Path = " " }, "storage.path"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "timezone"},
		{"zero backups", func(c *Config) { c.Backup.Max = 0 }, "backup.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
