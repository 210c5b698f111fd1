package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reloads the settings file when it changes on disk.
type fileWatcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the loaded settings file for changes. Each write
// reloads the document and notifies observers with a reload change.
// Watch is a no-op if already watching.
func (c *Config) Watch() error {
	c.mu.Lock()
	path := c.path
	if c.watcher != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if path == "" {
		return fmt.Errorf("watch config: no path loaded")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	// Watch the directory rather than the file: editors that save via
	// rename would otherwise drop the watch after the first write.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	w := &fileWatcher{fsw: fsw, done: make(chan struct{})}
	c.mu.Lock()
	c.watcher = w
	c.mu.Unlock()

	go c.watchLoop(w, path)
	return nil
}

// Unwatch stops watching the settings file.
func (c *Config) Unwatch() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		close(w.done)
		w.fsw.Close()
	}
}

func (c *Config) watchLoop(w *fileWatcher, path string) {
	target := filepath.Clean(path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Reload errors (partial writes, transient removal) are
			// swallowed; the next event retries.
			_ = c.Load(path)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
