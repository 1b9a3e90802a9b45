package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events editors emit per save.
const DefaultDebounce = 150 * time.Millisecond

// ChangeFunc receives the reloaded document, or the error loading it.
type ChangeFunc func(Document, error)

// WatchOption configures Watch.
type WatchOption func(*watchConfig)

type watchConfig struct {
	debounce time.Duration
	logger   *zap.Logger
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(cfg *watchConfig) {
		if d > 0 {
			cfg.debounce = d
		}
	}
}

// WithWatchLogger logs watcher activity.
func WithWatchLogger(logger *zap.Logger) WatchOption {
	return func(cfg *watchConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Watch calls fn each time the document at path is written, created or
// replaced, and blocks until ctx is cancelled. The parent directory is
// watched so atomic saves (write temp file, rename) are seen.
func Watch(ctx context.Context, path string, fn ChangeFunc, options ...WatchOption) error {
	if fn == nil {
		return fmt.Errorf("config: watch %s: nil change func", path)
	}
	cfg := watchConfig{debounce: DefaultDebounce, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	cfg.logger.Debug("watching config", zap.String("path", abs))

	timer := time.NewTimer(cfg.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg.logger.Debug("config event", zap.String("op", event.Op.String()))
			timer.Reset(cfg.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.logger.Warn("config watcher error", zap.Error(err))

		case <-timer.C:
			doc, err := Load(abs)
			fn(doc, err)
		}
	}
}
