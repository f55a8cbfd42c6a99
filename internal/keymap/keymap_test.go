package keymap

import (
	"testing"

	"github.com/andyrewlee/marquee/internal/config"
)

func TestDefaults(t *testing.T) {
	km := New(config.KeyMapConfig{})
	if got := PrimaryKey(km.Quit); got != "q" {
		t.Fatalf("expected q for quit, got %q", got)
	}
	if got := km.Pause.Help().Key; got != "space/p" {
		t.Fatalf("expected help key space/p, got %q", got)
	}
	if got := km.Copy.Help().Desc; got != "copy" {
		t.Fatalf("expected copy description, got %q", got)
	}
}

func TestOverrides(t *testing.T) {
	km := New(config.KeyMapConfig{Bindings: map[string][]string{
		"pause": {"s"},
		"copy":  {},
	}})
	if got := PrimaryKey(km.Pause); got != "s" {
		t.Fatalf("expected override s, got %q", got)
	}
	if got := PrimaryKey(km.Copy); got != "y" {
		t.Fatalf("expected empty override to keep default, got %q", got)
	}
}

func TestHelpGroups(t *testing.T) {
	km := New(config.KeyMapConfig{})
	if len(km.ShortHelp()) == 0 {
		t.Fatalf("expected short help bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != len(defaults) {
		t.Fatalf("expected full help to list all %d actions, got %d", len(defaults), total)
	}
}
