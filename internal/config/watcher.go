package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/safego"
)

const watchDebounce = 150 * time.Millisecond

// Watcher calls onChange after the config file is written, created or
// replaced. Bursts of events within the debounce window collapse into one
// call.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	closed  bool
	wg      sync.WaitGroup
}

// NewWatcher returns a watcher for the config file at path.
func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: watchDebounce,
		onChange: onChange,
	}
}

// Start begins watching. The file's directory must exist; the file itself
// may not exist yet.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Editors often save by rename, so watch the directory.
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return err
	}
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fw.Close()
	}
	w.watcher = fw
	w.mu.Unlock()
	safego.GoWait(&w.wg, "config-watcher", func() { w.run(fw) })
	return nil
}

func (w *Watcher) run(fw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.schedule()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logging.Warn("config watcher: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			safego.Run("config-reload", w.onChange)
		}
	})
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fw := w.watcher
	w.mu.Unlock()

	var err error
	if fw != nil {
		err = fw.Close()
	}
	w.wg.Wait()
	return err
}
