// Package lock provides an advisory lockfile for interactive sessions.
// Holding it does not stop other processes from writing; it only lets a
// second session notice the first.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/ecolog/internal/constants"
	"github.com/julianstephens/ecolog/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrHeld is wrapped by HeldError
var ErrHeld = errors.New("another ecolog session is running")

// HeldError describes the live process holding the lock
type HeldError struct {
	PID   int
	Since time.Time
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("%v (pid %d, since %s)", ErrHeld, e.PID, e.Since.Local().Format(time.Kitchen))
}

func (e *HeldError) Unwrap() error { return ErrHeld }

// Lock is a held lockfile
type Lock struct {
	path string
	pid  int
}

// Path returns the lockfile location inside dir
func Path(dir string) string {
	return filepath.Join(dir, constants.LockfileName)
}

// Acquire takes the lockfile in dir. A lockfile left by a process that is no
// longer running is replaced. If a live ecolog process holds it, Acquire
// returns a *HeldError and no lock.
func Acquire(dir string) (*Lock, error) {
	path := Path(dir)

	if holder, err := readHolder(path); err == nil {
		if holder.PID != getpidFunc() && isEcologProcess(holder.PID) {
			return nil, holder
		}
		logger.Debug("Replacing stale lockfile", "path", path, "pid", holder.PID)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	pid := getpidFunc()
	content := fmt.Sprintf("%d|%s", pid, time.Now().UTC().Format(time.RFC3339))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path, pid: pid}, nil
}

// Release removes the lockfile if it still belongs to this lock
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := readHolder(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		// unreadable; it is still ours to clean up
		return os.Remove(l.path)
	}
	if holder.PID != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func readHolder(path string) (*HeldError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return nil, errors.New("lockfile is malformed")
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return nil, errors.New("invalid process ID in lockfile")
	}

	since, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return nil, errors.New("invalid timestamp in lockfile")
	}

	return &HeldError{PID: pid, Since: since}, nil
}

func isEcologProcess(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}
