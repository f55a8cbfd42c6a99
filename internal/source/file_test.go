package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andyrewlee/marquee/internal/messages"
)

func TestFileSourceReadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	send, ch := collector()
	f := NewFile(path)
	if err := f.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer f.Close()

	loaded := waitForContent(t, ch, "first", time.Second)
	if loaded.Source != "notes.txt" {
		t.Fatalf("expected source name notes.txt, got %q", loaded.Source)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	send, _ := collector()
	f := NewFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err := f.Start(send); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileSourceWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.txt")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	send, ch := collector()
	f := NewFile(path, WithWatch(true))
	f.debounce = 10 * time.Millisecond
	if err := f.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer f.Close()
	waitForContent(t, ch, "v1", time.Second)

	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
	waitForContent(t, ch, "v2", 2*time.Second)
}

func TestFileSourceRemovalReportsExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	if err := os.WriteFile(path, []byte("here"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	send, ch := collector()
	f := NewFile(path, WithWatch(true))
	f.debounce = 10 * time.Millisecond
	if err := f.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer f.Close()
	waitForContent(t, ch, "here", time.Second)

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove file: %v", err)
	}
	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-ch:
			if exited, ok := msg.(messages.SourceExited); ok {
				if exited.Err == nil {
					t.Fatalf("expected an error for removed file")
				}
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for SourceExited")
		}
	}
}

func TestFileSourceHighlights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	send, ch := collector()
	f := NewFile(path, WithHighlighter(NewHighlighter("monokai")))
	if err := f.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	loaded := waitForContent(t, ch, "\x1b[", time.Second)
	if loaded.Text == "package main" {
		t.Fatalf("expected highlighted text")
	}
}

func TestFileCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	send, _ := collector()
	f := NewFile(path, WithWatch(true))
	if err := f.Start(send); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
