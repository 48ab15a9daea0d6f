package photomode

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig loads the configuration at path, passes it to fn, and calls
// fn again every time the file is written or replaced, until ctx is done.
// A reload that fails to parse is passed to fn with its error; fn decides
// whether to keep the previous configuration.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are picked up.
func WatchConfig(ctx context.Context, path string, fn func(Config, error)) error {
	path = filepath.Clean(path)
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("photomode: watch config: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("photomode: watch config: %w", err)
	}

	fn(cfg, nil)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(path)
			if err == nil {
				logger.Load().Info("photomode: config reloaded", "path", path)
			}
			fn(cfg, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Load().Warn("photomode: config watcher error", "err", err)
		}
	}
}
