package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/storage"
)

type DebugCmd struct {
	DBPath  *DebugDBPathCmd  `cmd:"" help:"Show database path."`
	DumpKey *DebugDumpKeyCmd `cmd:"" help:"Dump a raw stored value as JSON."`
	DumpDay *DebugDumpDayCmd `cmd:"" help:"Dump one day's log as JSON."`
	Keys    *DebugKeysCmd    `cmd:"" help:"List stored keys."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpKeyCmd struct {
	Key string `arg:"" help:"Storage key (ecolog or ecometa)." enum:"ecolog,ecometa"`
}

func (cmd *DebugDumpKeyCmd) Run(ctx *Context) error {
	raw, err := ctx.Store.Get(cmd.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("nothing stored under key: %s", cmd.Key)
		}
		return fmt.Errorf("failed to read key: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("stored value is not valid JSON: %w", err)
	}
	return printJSON(ctx, v)
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date of the log to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	day, err := ctx.parseDay(cmd.Date)
	if err != nil {
		return err
	}

	key := ecoscore.Key(day)
	log, ok := ctx.Tracker.State().Logs.Get(key)
	if !ok {
		return fmt.Errorf("no log found for date: %s", key)
	}
	return printJSON(ctx, log)
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *Context) error {
	lister, ok := ctx.Store.(storage.KeyLister)
	if !ok {
		return fmt.Errorf("listing keys is not supported for this storage backend")
	}
	keys, err := lister.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return printJSON(ctx, map[string][]string{"keys": keys})
}

func printJSON(ctx *Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}

