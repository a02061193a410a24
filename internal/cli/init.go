package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/ecolog/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized ecolog storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// reset deletes file-backed storage so Init can recreate it
func (c *InitCmd) reset(ctx *Context) error {
	switch ctx.Store.(type) {
	case *storage.SQLiteStore, *storage.JSONStore:
	default:
		return fmt.Errorf("--force is only supported for file-based storage")
	}

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing storage: %w", err)
		}
		ctx.printf("Deleted existing storage at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	return nil
}
