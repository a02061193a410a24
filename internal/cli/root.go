package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/julianstephens/ecolog/internal/backup"
	"github.com/julianstephens/ecolog/internal/config"
	"github.com/julianstephens/ecolog/internal/ecoscore"
	"github.com/julianstephens/ecolog/internal/logger"
	"github.com/julianstephens/ecolog/internal/storage"
	"github.com/julianstephens/ecolog/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Config  *config.Config

	// ConfigDir holds config.yaml, logs, and the PostgreSQL session lock
	ConfigDir string

	// Out and In default to the process stdio
	Out io.Writer
	In  io.Reader
}

func (c *Context) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.stdout(), format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.stdout(), args...)
}

// confirm asks a y/N question on stdin
func (c *Context) confirm(prompt string) (bool, error) {
	c.printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.stdin())
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// backupManager returns a manager for the SQLite database, or nil for other
// backends.
func (c *Context) backupManager() *backup.Manager {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return nil
	}
	var opts []backup.Option
	if c.Config != nil {
		opts = append(opts, backup.WithMaxBackups(c.Config.Backup.Max))
	}
	return backup.NewManager(c.Store.GetConfigPath(), opts...)
}

// PerformAutomaticBackup creates the day's automatic backup and silently
// handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Config != nil && !c.Config.Backup.Auto {
		return
	}
	mgr := c.backupManager()
	if mgr == nil {
		logger.Debug("Skipping automatic backup for non-SQLite store")
		return
	}
	mgr.AutoBackup()
}

// parseDay parses YYYY-MM-DD, or returns today when empty or "today"
func (c *Context) parseDay(s string) (civil.Date, error) {
	if s == "" || s == "today" {
		return c.Tracker.Today(), nil
	}
	d, ok := ecoscore.ParseKey(s)
	if !ok {
		return civil.Date{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", s)
	}
	return d, nil
}
