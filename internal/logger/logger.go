// Package logger holds the process-wide structured logger.
//
// Logging is discarded unless Setup is called with Debug set, so a normal
// run writes nothing but the greeting.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

type Config struct {
	Out   io.Writer
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.DiscardHandler)
)

// Setup installs the global logger and returns a func restoring the
// discard logger.
func Setup(cfg Config) func() {
	if !cfg.Debug || cfg.Out == nil {
		set(slog.New(slog.DiscardHandler))
		return func() {}
	}

	h := slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	set(slog.New(h))
	L().Debug("logger.initialized", "debug", cfg.Debug)

	return func() { set(slog.New(slog.DiscardHandler)) }
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func set(l *slog.Logger) {
	mu.Lock()
	global = l
	mu.Unlock()
}
