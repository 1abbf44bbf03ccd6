package preview

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/vango-dev/styled/internal/config"
	"github.com/vango-dev/styled/pkg/showcase"
)

// WatcherConfig configures the config file watcher.
type WatcherConfig struct {
	// Path is the config file to watch.
	Path string

	// Interval is the polling period (default 250ms).
	Interval time.Duration

	// Logger defaults to slog.Default().With("component", "watcher").
	Logger *slog.Logger
}

// Watcher reloads the served registry when the config file changes.
type Watcher struct {
	config  WatcherConfig
	server  *Server
	logger  *slog.Logger
	modTime time.Time
	size    int64
}

// NewWatcher creates a watcher that feeds s.
func NewWatcher(s *Server, config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 250 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default().With("component", "watcher")
	}
	return &Watcher{config: config, server: s, logger: config.Logger}
}

// Run polls until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.changed()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if w.changed() {
				w.Reload()
			}
		}
	}
}

// changed records the file's current stat and reports whether it differs
// from the last one seen.
func (w *Watcher) changed() bool {
	info, err := os.Stat(w.config.Path)
	if err != nil {
		return false
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return false
	}
	w.modTime = info.ModTime()
	w.size = info.Size()
	return true
}

// Reload loads the config and swaps the registry. A broken config keeps
// the current registry and is reported to live clients.
func (w *Watcher) Reload() {
	cfg, err := config.LoadFile(w.config.Path)
	if err == nil {
		var reg *showcase.Registry
		reg, err = showcase.FromConfig(cfg)
		if err == nil {
			w.logger.Info("config reloaded", "path", w.config.Path, "components", len(reg.Names()))
			w.server.SetRegistry(reg)
			return
		}
	}
	w.logger.Warn("config reload failed", "path", w.config.Path, "error", err)
	w.server.NotifyError(err)
}
