// Package source produces the text shown in the marquee: a static string,
// a reader, a watched file, or the output of a command.
package source

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/safego"
)

const (
	tabWidth = 8
	// maxBytes caps how much a single snapshot may read.
	maxBytes = 1 << 20
)

// Sender delivers messages to the running program (tea.Program.Send).
type Sender func(tea.Msg)

// Source produces content snapshots until closed.
type Source interface {
	Name() string
	Start(send Sender) error
	Reload() error
	Close() error
}

// Static is a fixed string.
type Static struct {
	name string
	text string
	send Sender
}

// NewStatic returns a source that always yields text.
func NewStatic(name, text string) *Static {
	return &Static{name: name, text: Normalize(text)}
}

func (s *Static) Name() string { return s.name }

func (s *Static) Start(send Sender) error {
	s.send = send
	return s.Reload()
}

func (s *Static) Reload() error {
	if s.send != nil {
		s.send(messages.ContentLoaded{Source: s.name, Text: s.text})
	}
	return nil
}

func (s *Static) Close() error { return nil }

// Reader reads r once in the background; Reload re-delivers what was read.
type Reader struct {
	name string
	r    io.Reader

	mu   sync.Mutex
	text string
	done bool
	send Sender
}

// NewReader returns a source backed by r, typically stdin.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

func (s *Reader) Name() string { return s.name }

func (s *Reader) Start(send Sender) error {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
	safego.Go("source-reader", func() {
		data, err := io.ReadAll(io.LimitReader(s.r, maxBytes))
		if err != nil {
			send(messages.Error{Err: err, Context: "read " + s.name})
			return
		}
		s.mu.Lock()
		s.text = Normalize(string(data))
		s.done = true
		s.mu.Unlock()
		_ = s.Reload()
	})
	return nil
}

func (s *Reader) Reload() error {
	s.mu.Lock()
	send, text, done := s.send, s.text, s.done
	s.mu.Unlock()
	if send != nil && done {
		send(messages.ContentLoaded{Source: s.name, Text: text})
	}
	return nil
}

func (s *Reader) Close() error { return nil }

// Normalize prepares raw text for display: CRLF becomes LF, carriage-return
// overwrites keep only the last segment, tabs expand to display columns and
// trailing newlines are dropped.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.LastIndexByte(line, '\r'); idx >= 0 {
			line = line[idx+1:]
		}
		lines[i] = expandTabs(line)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// expandTabs replaces tabs with spaces up to the next tab stop, measuring
// columns with display widths and skipping ANSI escape sequences.
func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	inEscape := false
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		i += size
		switch {
		case inEscape:
			b.WriteRune(r)
			if r != '[' && r >= 0x40 && r <= 0x7e {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
			b.WriteRune(r)
		case r == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}
