package source

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/messages"
)

func collector() (Sender, chan tea.Msg) {
	ch := make(chan tea.Msg, 32)
	return func(msg tea.Msg) { ch <- msg }, ch
}

func waitForContent(t *testing.T, ch chan tea.Msg, want string, timeout time.Duration) messages.ContentLoaded {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case msg := <-ch:
			if loaded, ok := msg.(messages.ContentLoaded); ok && strings.Contains(loaded.Text, want) {
				return loaded
			}
		case <-deadline:
			t.Fatalf("timed out waiting for content containing %q", want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"carriage return overwrite", "10%\r50%\r100%\ndone", "100%\ndone"},
		{"tabs", "a\tb", "a       b"},
		{"tab after wide rune", "漢\tx", "漢      x"},
		{"tab after escape", "\x1b[31mab\x1b[0m\tc", "\x1b[31mab\x1b[0m      c"},
		{"trailing newlines", "x\n\n\n", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStaticSource(t *testing.T) {
	send, ch := collector()
	s := NewStatic("args", "hello\tworld\n")
	if err := s.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	loaded := waitForContent(t, ch, "hello", time.Second)
	if loaded.Source != "args" || loaded.Text != "hello   world" {
		t.Fatalf("unexpected content %+v", loaded)
	}
	_ = s.Reload()
	waitForContent(t, ch, "hello", time.Second)
}

func TestReaderSource(t *testing.T) {
	send, ch := collector()
	r := NewReader("stdin", strings.NewReader("one\ntwo\n"))
	if err := r.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	loaded := waitForContent(t, ch, "two", time.Second)
	if loaded.Text != "one\ntwo" {
		t.Fatalf("unexpected text %q", loaded.Text)
	}
	_ = r.Reload()
	waitForContent(t, ch, "one", time.Second)
}

func TestHighlighter(t *testing.T) {
	h := NewHighlighter("")
	out := h.Highlight("main.go", "package main\n\nfunc main() {}\n")
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI colors in highlighted output, got %q", out)
	}
	if !strings.Contains(out, "package") {
		t.Fatalf("expected source text to survive highlighting, got %q", out)
	}
	if h.Highlight("x.go", "") != "" {
		t.Fatalf("expected empty text to stay empty")
	}
}

func TestLanguage(t *testing.T) {
	if got := Language("/tmp/main.go", "package main"); got != "Go" {
		t.Fatalf("expected Go, got %q", got)
	}
}
