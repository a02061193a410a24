package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ecolog/internal/lock"
	"github.com/julianstephens/ecolog/internal/logger"
	"github.com/julianstephens/ecolog/internal/storage/postgres"
	"github.com/julianstephens/ecolog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	warning := ""
	l, err := lock.Acquire(c.lockDir(ctx))
	var held *lock.HeldError
	switch {
	case errors.As(err, &held):
		warning = held.Error()
	case err != nil:
		logger.Warn("Failed to acquire session lock", "error", err)
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release session lock", "error", err)
		}
	}()

	p := tea.NewProgram(tui.NewModel(ctx.Tracker, warning), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

// lockDir sits next to file-based storage, or in the config directory for
// PostgreSQL
func (c *TuiCmd) lockDir(ctx *Context) string {
	if _, ok := ctx.Store.(*postgres.Store); ok {
		return ctx.ConfigDir
	}
	return filepath.Dir(ctx.Store.GetConfigPath())
}
