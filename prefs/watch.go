package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// LoadFile applies the preferences document at path. A missing file is not an error.
func (p *Preferences) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not read preferences: %w", err)
	}

	return p.Load(data)
}

// Watch loads the preferences file at path, then reloads it whenever it is
// written until ctx is done. onChange runs after every successful reload.
func Watch(ctx context.Context, path string, p *Preferences, onChange func()) error {
	if err := p.LoadFile(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}

	// Editors replace files, so the directory is watched rather than the file.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()

		return fmt.Errorf("could not watch %s: %w", filepath.Dir(path), err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer

		reload := func() {
			if err := p.LoadFile(path); err != nil {
				slog.ErrorContext(logCtx, "Could not reload preferences", "path", path, "error", err)

				return
			}

			slog.InfoContext(logCtx, "Reloaded preferences", "path", path)

			if onChange != nil {
				onChange()
			}
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}

				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) != filepath.Base(path) || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if timer != nil {
					timer.Stop()
				}

				timer = time.AfterFunc(reloadDelay, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.ErrorContext(logCtx, "Preferences watcher failed", "error", err)
			}
		}
	}()

	return nil
}
