package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/safego"
)

const fileDebounce = 100 * time.Millisecond

// File reads a file and, when watching, re-reads it whenever it changes.
type File struct {
	path      string
	watch     bool
	highlight *Highlighter
	debounce  time.Duration

	mu      sync.Mutex
	send    Sender
	watcher *fsnotify.Watcher
	timer   *time.Timer
	closed  bool
	wg      sync.WaitGroup
}

// FileOption configures a File source.
type FileOption func(*File)

// WithWatch re-reads the file when it changes on disk.
func WithWatch(watch bool) FileOption {
	return func(f *File) { f.watch = watch }
}

// WithHighlighter syntax-highlights the file contents.
func WithHighlighter(h *Highlighter) FileOption {
	return func(f *File) { f.highlight = h }
}

// NewFile returns a source backed by the file at path.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{path: filepath.Clean(path), debounce: fileDebounce}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *File) Name() string { return filepath.Base(f.path) }

// Start reads the file and starts the watcher if enabled.
func (f *File) Start(send Sender) error {
	f.mu.Lock()
	f.send = send
	f.mu.Unlock()

	if _, err := os.Stat(f.path); err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}
	if f.watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		// Watch the directory so editors that replace the file are seen.
		if err := watcher.Add(filepath.Dir(f.path)); err != nil {
			_ = watcher.Close()
			return err
		}
		f.mu.Lock()
		f.watcher = watcher
		f.mu.Unlock()
		safego.GoWait(&f.wg, "file-watcher", f.run)
	}
	return f.Reload()
}

// Reload reads the file now and delivers its contents.
func (f *File) Reload() error {
	text, err := f.read()
	f.mu.Lock()
	send := f.send
	closed := f.closed
	f.mu.Unlock()
	if send == nil || closed {
		return err
	}
	if err != nil {
		send(messages.SourceExited{Source: f.Name(), Err: err})
		return err
	}
	send(messages.ContentLoaded{Source: f.Name(), Text: text})
	return nil
}

func (f *File) read() (string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := make([]byte, maxBytes)
	n, err := readFull(file, buf)
	if err != nil {
		return "", err
	}
	text := Normalize(string(buf[:n]))
	if f.highlight != nil {
		text = f.highlight.Highlight(f.path, text)
	}
	return text, nil
}

func (f *File) run() {
	f.mu.Lock()
	watcher := f.watcher
	f.mu.Unlock()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				f.scheduleReload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("file watcher %s: %v", f.path, err)
		}
	}
}

func (f *File) scheduleReload() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, func() {
		safego.Run("file-reload", func() {
			if err := f.Reload(); err != nil {
				logging.Debug("reload %s: %v", f.path, err)
			}
		})
	})
}

// Close stops watching.
func (f *File) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	watcher := f.watcher
	f.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Close()
	}
	f.wg.Wait()
	return err
}
