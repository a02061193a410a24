package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/ecolog/internal/catalog"
	"github.com/julianstephens/ecolog/internal/cli"
	"github.com/julianstephens/ecolog/internal/config"
	"github.com/julianstephens/ecolog/internal/constants"
	apperrors "github.com/julianstephens/ecolog/internal/errors"
	"github.com/julianstephens/ecolog/internal/keyring"
	"github.com/julianstephens/ecolog/internal/logger"
	"github.com/julianstephens/ecolog/internal/storage"
	"github.com/julianstephens/ecolog/internal/storage/postgres"
	"github.com/julianstephens/ecolog/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. Use a bare postgres:// to read the connection string from $ECOLOG_DB_CONNECTION or the OS keyring." type:"string"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize ecolog storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Log     cli.LogCmd     `cmd:"" help:"Log today's eco actions."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's EcoScore, streak, and highlights."`
	Impact  cli.ImpactCmd  `cmd:"" help:"Show the weekly impact summary."`
	Badges  cli.BadgesCmd  `cmd:"" help:"Show earned and locked badges."`
	Actions cli.ActionsCmd `cmd:"" help:"List the available actions."`
	History cli.HistoryCmd `cmd:"" help:"Show recent saves."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Inspect cli.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	DB struct {
		SetConnection   cli.DBSetConnectionCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		ShowConnection  cli.DBShowConnectionCmd  `cmd:"" help:"Show the configured connection string (password masked)."`
		ClearConnection cli.DBClearConnectionCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" name:"db" help:"Manage the PostgreSQL connection."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track daily eco-friendly habits and your EcoScore"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(expandHome(constants.DefaultConfigPath))

	cfg, err := config.Load(configDir)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Config != "" {
		cfg.Storage.Path = CLI.Config
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Log.Debug,
		ConfigDir: configDir,
		Backend:   backendName(cfg.Storage.Path),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(expandHome(cfg.Catalog.Path))
		if err != nil {
			apperrors.Fatal(err)
		}
	}

	tr := tracker.New(store, cat)
	tr.Location = cfg.Location()

	appCtx := &cli.Context{
		Store:     store,
		Tracker:   tr,
		Config:    cfg,
		ConfigDir: configDir,
	}

	if needsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command(), "storage", store.GetConfigPath())

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// needsLoad reports whether the command expects initialized storage before
// it runs. init creates it, doctor reports on it, and db only touches the
// keyring.
func needsLoad(command string) bool {
	switch {
	case strings.HasPrefix(command, "init"),
		strings.HasPrefix(command, "doctor"),
		strings.HasPrefix(command, "db "):
		return false
	}
	return true
}

// openStore picks a backend from the storage path: a postgres:// URL,
// a .json file, or SQLite.
func openStore(path string) (storage.Provider, error) {
	if postgres.IsConnString(path) {
		connStr := path
		if isBareScheme(path) {
			resolved, source, err := keyring.Resolve()
			if err != nil {
				if errors.Is(err, keyring.ErrNotFound) {
					return nil, errors.New("no PostgreSQL connection string configured; run 'ecolog db set-connection' or set " + constants.EnvDBConnection)
				}
				return nil, err
			}
			logger.Debug("Resolved connection string", "source", source)
			return postgres.New(resolved), nil
		}

		if _, err := postgres.ValidateConnString(connStr); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w; store it with 'ecolog db set-connection', set %s, or use .pgpass", err, constants.EnvDBConnection)
			}
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	path = expandHome(path)
	if strings.HasSuffix(path, ".json") {
		return storage.NewJSONStore(path), nil
	}
	return storage.NewSQLiteStore(path), nil
}

// backendName classifies a storage path the same way openStore does
func backendName(path string) string {
	switch {
	case postgres.IsConnString(path):
		return "postgres"
	case strings.HasSuffix(path, ".json"):
		return "json"
	default:
		return "sqlite"
	}
}

func isBareScheme(s string) bool {
	return s == "postgres://" || s == "postgresql://"
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
