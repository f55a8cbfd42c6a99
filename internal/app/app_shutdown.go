package app

import (
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/perf"
)

// Shutdown stops the config watcher, the content source and the loop. Safe
// to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(a.shutdown)
}

func (a *App) shutdown() {
	// Unblocks sources waiting on a full message queue.
	close(a.done)

	a.watcherMu.Lock()
	a.stopped = true
	watcher := a.watcher
	a.watcher = nil
	a.watcherMu.Unlock()

	if watcher != nil {
		if err := watcher.Close(); err != nil {
			logging.Warn("close config watcher: %v", err)
		}
	}
	if a.source != nil {
		if err := a.source.Close(); err != nil {
			logging.Warn("close source %s: %v", a.source.Name(), err)
		}
	}
	if a.scroller != nil {
		a.scroller.Close()
	}
	perf.Flush("shutdown")
}
