package common

import (
	"errors"
	"strings"
	"testing"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/messages"
)

func TestGetThemeFallsBackToDefault(t *testing.T) {
	if got := GetTheme("does-not-exist"); got.ID != ThemeGruvbox {
		t.Fatalf("expected gruvbox fallback, got %s", got.ID)
	}
	if got := GetTheme(ThemeNord); got.ID != ThemeNord {
		t.Fatalf("expected nord, got %s", got.ID)
	}
}

func TestNextThemeCycles(t *testing.T) {
	themes := AvailableThemes()
	id := themes[0].ID
	seen := map[ThemeID]bool{}
	for range themes {
		seen[id] = true
		id = NextTheme(id).ID
	}
	if len(seen) != len(themes) {
		t.Fatalf("expected to visit all %d themes, visited %d", len(themes), len(seen))
	}
	if id != themes[0].ID {
		t.Fatalf("expected cycle to wrap to %s, got %s", themes[0].ID, id)
	}
}

func TestToastLifecycle(t *testing.T) {
	now := time.Unix(1700000000, 0)
	m := NewToastModel(DefaultStyles())
	m.now = func() time.Time { return now }

	if m.View() != "" {
		t.Fatalf("expected empty view before Show")
	}
	if cmd := m.Show("copied", messages.ToastSuccess); cmd == nil {
		t.Fatalf("expected dismissal command")
	}
	if !strings.Contains(m.View(), "copied") {
		t.Fatalf("expected toast message in view, got %q", m.View())
	}

	// A dismissal for an older toast must not hide the newer one.
	_ = m.Show("second", messages.ToastInfo)
	m, _ = m.Update(ToastDismissed{seq: 1})
	if !m.Visible() {
		t.Fatalf("expected newer toast to stay visible")
	}
	m, _ = m.Update(ToastDismissed{seq: 2})
	if m.Visible() {
		t.Fatalf("expected toast to be dismissed")
	}

	_ = m.Show("late", messages.ToastError)
	now = now.Add(6 * time.Second)
	if m.Visible() {
		t.Fatalf("expected expired toast to be hidden")
	}
}

func TestSafeCmdRecoversPanic(t *testing.T) {
	cmd := SafeCmd(func() tea.Msg { panic("boom") })
	msg := cmd()
	errMsg, ok := msg.(messages.Error)
	if !ok {
		t.Fatalf("expected messages.Error, got %T", msg)
	}
	if !errMsg.Logged || !strings.Contains(errMsg.Error(), "boom") {
		t.Fatalf("unexpected error message %+v", errMsg)
	}
	if SafeCmd(nil) != nil {
		t.Fatalf("expected nil for nil command")
	}
}

func TestSafeBatch(t *testing.T) {
	if SafeBatch(nil, nil) != nil {
		t.Fatalf("expected nil batch for nil commands")
	}
	one := SafeBatch(nil, func() tea.Msg { return "ok" })
	if one == nil || one() != "ok" {
		t.Fatalf("expected single command to pass through")
	}
}

func TestSafeTickRecoversPanic(t *testing.T) {
	if SafeTick(time.Millisecond, nil) != nil {
		t.Fatalf("expected nil for nil callback")
	}
	msg := guard("tick", func() tea.Msg { panic("late") })
	if errMsg, ok := msg.(messages.Error); !ok || errMsg.Context != "tick" {
		t.Fatalf("expected tick error, got %#v", msg)
	}
}

func TestCopyToClipboardRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "\n\n", "\x1b[31m\x1b[0m", "   "} {
		if err := CopyToClipboard(text); !errors.Is(err, ErrNothingToCopy) {
			t.Fatalf("CopyToClipboard(%q) error = %v, want ErrNothingToCopy", text, err)
		}
	}
	if got := plainText("\x1b[1mhello\x1b[0m\nworld\n\n"); got != "hello\nworld" {
		t.Fatalf("plainText() = %q", got)
	}
}

func TestHelpBindingsSkipsDisabled(t *testing.T) {
	pause := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause"))
	hidden := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	hidden.SetEnabled(false)
	bare := key.NewBinding(key.WithKeys("z"))

	items := HelpBindings(pause, hidden, bare)
	if len(items) != 1 || items[0].Key != "p" || items[0].Desc != "pause" {
		t.Fatalf("unexpected help items %+v", items)
	}
}

func TestWrapHelpItems(t *testing.T) {
	items := []string{"aaaa", "bbbb", "cccc"}
	if got := WrapHelpItems(items, 0); len(got) != 1 {
		t.Fatalf("expected unbounded width to use one line, got %v", got)
	}
	got := WrapHelpItems(items, 10)
	if len(got) != 2 || got[0] != "aaaa  bbbb" || got[1] != "cccc" {
		t.Fatalf("unexpected wrap %q", got)
	}
	if got := WrapHelpItems(nil, 10); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected a single empty line, got %q", got)
	}
}
