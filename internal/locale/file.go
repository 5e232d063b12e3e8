// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE OVERRIDES
// =============================================================================

// Load returns the builtin tables overlaid with the TOML file at path.
// A missing file is not an error: the builtin tables are returned as-is.
// A malformed file is an error; the caller decides whether to fail or to
// fall back to the builtins.
func Load(path string) (*Table, error) {
	builtin := Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return builtin, nil
		}
		return builtin, err
	}

	var override Table
	if err := toml.Unmarshal(data, &override); err != nil {
		return builtin, err
	}

	return builtin.merge(&override), nil
}

// =============================================================================
// TABLE WATCHER
// =============================================================================

// Watcher reloads the lookup tables when the override file changes,
// delivering each freshly merged Table to a callback.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(*Table)

	watcher *fsnotify.Watcher
	done    chan struct{}

	mu      sync.Mutex
	pending time.Time
}

// NewWatcher creates a watcher for the override file at path.
// onReload is invoked with the merged tables after each settled change.
func NewWatcher(path string, onReload func(*Table)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		debounce: 200 * time.Millisecond,
		onReload: onReload,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	return w, nil
}

// Watch starts watching. Editors replace files rather than rewriting them,
// so the parent directory is watched and events are filtered by name.
func (w *Watcher) Watch() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the builtin tables stay active.
		}
	}
}

func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := !w.pending.IsZero() && time.Since(w.pending) >= w.debounce
			if ready {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if !ready {
				continue
			}

			tbl, err := Load(w.path)
			if err != nil {
				continue // Keep the previous tables on a bad edit.
			}
			if w.onReload != nil {
				w.onReload(tbl)
			}
		}
	}
}

