// Package debug provides optional file-based debug tracing.
//
// Tracing is off until Init is called or the CENTERSTACK_DEBUG_LOG
// environment variable names a log file. Records are written with log/slog
// to a size-rotated file.
package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// EnvLogPath names the log file tracing is written to.
	EnvLogPath = "CENTERSTACK_DEBUG_LOG"
	// EnvLogMaxSize overrides the rotation size in megabytes.
	EnvLogMaxSize = "CENTERSTACK_LOG_MAX_SIZE"
	// EnvLogMaxBackups overrides how many rotated files are kept.
	EnvLogMaxBackups = "CENTERSTACK_LOG_MAX_BACKUPS"
)

var (
	mu      sync.Mutex
	logger  = slog.New(slog.DiscardHandler)
	writer  io.WriteCloser
	envOnce sync.Once
)

// Init starts tracing to the file at path, replacing any earlier log file.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if writer != nil {
		_ = writer.Close()
	}
	lj := newRotatingWriter(path)
	writer = lj
	logger = slog.New(slog.NewTextHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// newRotatingWriter creates a lumberjack logger, taking limits from the
// environment when set.
func newRotatingWriter(path string) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	if n, err := strconv.Atoi(os.Getenv(EnvLogMaxSize)); err == nil && n > 0 {
		lj.MaxSize = n
	}
	if n, err := strconv.Atoi(os.Getenv(EnvLogMaxBackups)); err == nil && n >= 0 {
		lj.MaxBackups = n
	}
	return lj
}

// Close stops tracing and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.DiscardHandler)
	if writer == nil {
		return nil
	}
	err := writer.Close()
	writer = nil
	return err
}

// Enabled reports whether tracing is on.
func Enabled() bool {
	return current().Enabled(context.Background(), slog.LevelDebug)
}

// Log writes a debug record with slog-style key/value args.
func Log(msg string, args ...any) {
	current().Debug(msg, args...)
}

// current returns the active logger, initializing from the environment on
// first use.
func current() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvLogPath); path != "" {
			mu.Lock()
			defer mu.Unlock()
			if writer == nil {
				_ = initLocked(path)
			}
		}
	})
	mu.Lock()
	defer mu.Unlock()
	return logger
}
