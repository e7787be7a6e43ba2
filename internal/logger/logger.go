package logger

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sleuth-io/fmcat/internal/cache"
	"github.com/sleuth-io/fmcat/internal/constants"
	"github.com/sleuth-io/fmcat/internal/utils"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Get returns the global logger instance, initializing it once
func Get() *slog.Logger {
	once.Do(func() {
		defaultLogger = initLogger()
	})
	return defaultLogger
}

// initLogger creates the global logger that writes to fmcat.log in the cache directory.
// If the log file cannot be created, returns a no-op logger that discards all output
func initLogger() *slog.Logger {
	cacheDir, err := cache.GetCacheDir()
	if err != nil {
		return Discard()
	}
	if err := utils.EnsureDir(cacheDir); err != nil {
		return Discard()
	}

	logWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cacheDir, constants.LogFile),
		MaxSize:    1, // MB
		MaxBackups: 1,
		MaxAge:     0,
		Compress:   false,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
