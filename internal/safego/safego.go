// Package safego runs background work for content sources and watchers. A
// panic is logged and reported to an optional handler instead of tearing
// down the terminal.
package safego

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/andyrewlee/marquee/internal/logging"
)

// PanicHandler receives a recovered panic. The app uses it to show a toast.
type PanicHandler func(name string, recovered any, stack []byte)

var handler atomic.Pointer[PanicHandler]

// SetPanicHandler installs h for all goroutines. A nil h removes it.
func SetPanicHandler(h PanicHandler) {
	if h == nil {
		handler.Store(nil)
		return
	}
	handler.Store(&h)
}

// Run calls fn and recovers a panic. Fatal runtime errors such as
// concurrent map writes cannot be recovered.
func Run(name string, fn func()) {
	defer recoverAs(name)
	fn()
}

// Go runs fn on a new goroutine.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// GoWait runs fn on a new goroutine tracked by wg, so a source's Close can
// wait for it.
func GoWait(wg *sync.WaitGroup, name string, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		Run(name, fn)
	}()
}

func recoverAs(name string) {
	r := recover()
	if r == nil {
		return
	}
	if name == "" {
		name = "goroutine"
	}
	stack := debug.Stack()
	logging.Error("%s panicked: %v\n%s", name, r, stack)
	report(name, r, stack)
}

func report(name string, r any, stack []byte) {
	h := handler.Load()
	if h == nil {
		return
	}
	defer func() {
		if hr := recover(); hr != nil {
			logging.Error("panic handler for %s panicked: %v", name, hr)
		}
	}()
	(*h)(name, r, stack)
}
