package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/keyring"
	"github.com/julianstephens/ecolog/internal/models"
	"github.com/julianstephens/ecolog/internal/storage"
	"github.com/julianstephens/ecolog/internal/storage/postgres"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*Context) error
	needsDB bool
	warning bool
}

var doctorChecks = []check{
	{name: "Storage reachable", run: checkStoreReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Daily logs", run: checkLogsEntry, needsDB: true},
	{name: "Streak metadata", run: checkMetaEntry, needsDB: true},
	{name: "Action catalog", run: checkCatalog},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Keyring", run: checkKeyring, warning: true},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	dbReachable := true

	for _, c := range doctorChecks {
		if c.needsDB && !dbReachable {
			ctx.printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Storage reachable" {
				dbReachable = false
			}
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("database schema version (%d) is behind latest (%d)", current, latest)
	}
	return nil
}

// readEntry decodes a stored value strictly. A missing key is fine.
func readEntry(ctx *Context, key string, v interface{}) (bool, error) {
	raw, err := ctx.Store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("stored %q is not valid: %w (it will be treated as empty)", key, err)
	}
	return true, nil
}

func checkLogsEntry(ctx *Context) error {
	var logs models.Logs
	if _, err := readEntry(ctx, constants.LogKey, &logs); err != nil {
		return err
	}

	bad := 0
	for _, key := range logs.Dates() {
		if _, ok := ecoscore.ParseKey(key); !ok {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("found %d daily logs with invalid date keys", bad)
	}
	return nil
}

func checkMetaEntry(ctx *Context) error {
	var meta models.StreakMeta
	found, err := readEntry(ctx, constants.MetaKey, &meta)
	if err != nil || !found {
		return err
	}

	if meta.Streak < 0 {
		return fmt.Errorf("streak is negative (%d)", meta.Streak)
	}
	if meta.LastLoggedDate != nil {
		if _, ok := ecoscore.ParseKey(*meta.LastLoggedDate); !ok {
			return fmt.Errorf("last logged date %q is not a valid date; the next save restarts the streak", *meta.LastLoggedDate)
		}
	}
	return nil
}

func checkCatalog(ctx *Context) error {
	if ctx.Tracker == nil || ctx.Tracker.Catalog == nil {
		return fmt.Errorf("no action catalog loaded")
	}
	return ctx.Tracker.Catalog.Validate()
}

func checkBackupsPresent(ctx *Context) error {
	mgr := ctx.backupManager()
	if mgr == nil {
		return nil
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'ecolog backup create'")
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if ctx.Config != nil {
		if err := ctx.Config.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func checkKeyring(ctx *Context) error {
	if _, ok := ctx.Store.(*postgres.Store); !ok {
		return nil
	}
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}
