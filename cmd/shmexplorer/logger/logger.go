// Package logger provides the TUI's file-backed debug log.
//
// The TUI owns the terminal while it runs, so diagnostics can never go to
// stdout or stderr. When debug mode is on, each run writes a JSON-lines file
// under the log directory; with debug off every record is discarded.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// base is the active logger. It discards everything until Init enables the
// file sink.
var base = slog.New(slog.DiscardHandler)

// maxRuns bounds how many per-run log files are kept in the log directory.
const maxRuns = 20

// Options configures Init.
type Options struct {
	Enabled bool       // when false, all records are discarded
	LogDir  string     // default: ~/.shmexplorer/logs
	Level   slog.Level // minimum record level
}

// Init configures logging for this run. Call from main() before the program
// starts; records emitted earlier go to the discard sink.
func Init(opts Options) error {
	if !opts.Enabled {
		base = slog.New(slog.DiscardHandler)
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".shmexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	pruneRuns(dir)

	name := filepath.Join(dir, time.Now().Format("run-20060102-150405")+".jsonl")
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})
	base = slog.New(h).With("pid", os.Getpid())
	return nil
}

// pruneRuns drops the oldest per-run files so at most maxRuns-1 remain
// before the new one is created. Best effort; a failed sweep never blocks
// startup.
func pruneRuns(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "run-*.jsonl"))
	if err != nil || len(matches) < maxRuns {
		return
	}
	// Timestamped names sort chronologically.
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-maxRuns+1] {
		os.Remove(old)
	}
}

// Segment returns a logger carrying the segment name, for call sites that
// emit several records about one segment.
func Segment(name string) *slog.Logger {
	return base.With("segment", name)
}

// Debug emits a debug record with alternating key-value pairs.
func Debug(msg string, args ...any) { base.Debug(msg, args...) }

// Info emits an info record with alternating key-value pairs.
func Info(msg string, args ...any) { base.Info(msg, args...) }

// Warn emits a warning record with alternating key-value pairs.
func Warn(msg string, args ...any) { base.Warn(msg, args...) }

// Error emits an error record with alternating key-value pairs.
func Error(msg string, args ...any) { base.Error(msg, args...) }
