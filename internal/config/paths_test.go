package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsEnsureDirectories(t *testing.T) {
	paths := PathsAt(filepath.Join(t.TempDir(), "marquee"))

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	for _, dir := range []string{paths.Home, paths.LogsRoot} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %s to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %s to be a directory", dir)
		}
	}
}

func TestDefaultPathsHonorsEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MARQUEE_HOME", home)
	paths, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if paths.Home != home {
		t.Fatalf("expected home %s, got %s", home, paths.Home)
	}
}
