package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/ecolog/internal/constants"
)

// Logger is the process-wide logger. Nil until Init runs; the helpers below
// are no-ops in that case so library code can log unconditionally.
var Logger *log.Logger

// Config controls where log lines go and what every line carries.
type Config struct {
	Debug     bool
	ConfigDir string
	// Backend names the storage backend (sqlite, json, postgres) and is
	// attached to every line.
	Backend string
}

// FilePath is where Init writes the rotating log for configDir
func FilePath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init builds the global logger. Warnings and errors always reach the log
// file; stderr only gets output in debug mode.
func Init(cfg Config) error {
	path := FilePath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          constants.AppName,
		Level:           log.WarnLevel,
	}
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, out)
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}

	l := log.NewWithOptions(out, opts)
	if cfg.Backend != "" {
		l = l.With("backend", cfg.Backend)
	}
	Logger = l
	return nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
