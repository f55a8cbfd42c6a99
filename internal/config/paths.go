package config

import (
	"os"
	"path/filepath"
)

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.marquee
	ConfigPath string // ~/.marquee/config.json
	LogsRoot   string // ~/.marquee/logs
}

// DefaultPaths returns the default paths configuration. MARQUEE_HOME
// overrides the home directory.
func DefaultPaths() (*Paths, error) {
	home := os.Getenv("MARQUEE_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(userHome, ".marquee")
	}
	return PathsAt(home), nil
}

// PathsAt returns the paths rooted at home.
func PathsAt(home string) *Paths {
	return &Paths{
		Home:       home,
		ConfigPath: filepath.Join(home, "config.json"),
		LogsRoot:   filepath.Join(home, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogsRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
