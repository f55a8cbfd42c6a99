package common

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
)

// guard runs fn and turns a panic into an error message for the app, so a
// failing copy, reload or save shows a toast instead of killing the UI.
func guard(kind string, fn func() tea.Msg) (msg tea.Msg) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logging.Error("%s panicked: %v\n%s", kind, r, debug.Stack())
		msg = messages.Error{Err: fmt.Errorf("%s panic: %v", kind, r), Context: kind, Logged: true}
	}()
	return fn()
}

// SafeCmd wraps cmd with panic recovery. A nil cmd stays nil.
func SafeCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg { return guard("command", cmd) }
}

// SafeBatch guards and batches the non-nil cmds.
func SafeBatch(cmds ...tea.Cmd) tea.Cmd {
	var guarded []tea.Cmd
	for _, cmd := range cmds {
		if cmd = SafeCmd(cmd); cmd != nil {
			guarded = append(guarded, cmd)
		}
	}
	if len(guarded) < 2 {
		if len(guarded) == 0 {
			return nil
		}
		return guarded[0]
	}
	return tea.Batch(guarded...)
}

// SafeTick is tea.Tick with a guarded callback.
func SafeTick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	if fn == nil {
		return nil
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return guard("tick", func() tea.Msg { return fn(t) })
	})
}
