// Package logger holds the process logger used for tree diagnostics and
// the treectl command.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LevelNotice sits between info and warn. Undefined-offset diagnostics are
// logged at this level.
const LevelNotice = slog.Level(2)

// L is the global logger instance. It writes notices and above to stderr
// until Init is called.
var L = newLogger(os.Stderr, FormatText, LevelNotice)

// logFile is the file opened by the last Init with LogDir set.
var logFile *os.File

const (
	logPrefix     = "pathtree-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool         // If false, all logging is discarded
	Output  io.Writer    // Destination when LogDir is empty. Default: stderr
	LogDir  string       // When set, logs go to a dated file in this directory
	Level   slog.Leveler // Minimum log level. Default: LevelNotice
	Format  Format       // Handler format. Default: FormatText
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded. A log file opened
// by an earlier Init is closed.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return closeLogFile()
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var f *os.File
	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return err
		}

		// Clean up old logs (best-effort, ignore errors)
		cleanOldLogs(opts.LogDir)

		filename := filepath.Join(opts.LogDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
		var err error
		f, err = os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		out = f
	}

	L = newLogger(out, opts.Format, opts.Level)
	err := closeLogFile()
	logFile = f
	return err
}

// Close closes the log file opened by Init, if any, and sends later log
// calls to stderr.
func Close() error {
	if logFile == nil {
		return nil
	}
	L = newLogger(os.Stderr, FormatText, LevelNotice)
	return closeLogFile()
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	return f.Close()
}

func newLogger(out io.Writer, format Format, level slog.Leveler) *slog.Logger {
	if level == nil {
		level = LevelNotice
	}
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: levelNames}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// Notice logs msg at LevelNotice on l, or on L when l is nil.
func Notice(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		l = L
	}
	l.Log(context.Background(), LevelNotice, msg, args...)
}

// levelNames renders LevelNotice as NOTICE instead of INFO+2.
func levelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelNotice {
		a.Value = slog.StringValue("NOTICE")
	}
	return a
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: pathtree-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
