package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// ScrollConfig controls the auto-scroll loop.
type ScrollConfig struct {
	EndPaddingHeight int  // Minimum blank rows before the content repeats
	DurationMs       int  // Fixed loop duration; 0 scales with content height
	DelayMs          int  // Pause before each loop iteration
	RowMs            int  // Time per row when DurationMs is 0
	FPS              int  // Animation frame rate
	ScrollWhenFits   bool // Loop content that already fits the viewport
}

// Duration returns the fixed loop duration, or zero for proportional.
func (s ScrollConfig) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Delay returns the per-iteration start delay.
func (s ScrollConfig) Delay() time.Duration {
	return time.Duration(s.DelayMs) * time.Millisecond
}

// RowDuration returns the time spent scrolling one row.
func (s ScrollConfig) RowDuration() time.Duration {
	return time.Duration(s.RowMs) * time.Millisecond
}

// Validate rejects values the scroller cannot honor.
func (s ScrollConfig) Validate() error {
	switch {
	case s.EndPaddingHeight < 0:
		return fmt.Errorf("end_padding_height must be >= 0, got %d", s.EndPaddingHeight)
	case s.DurationMs < 0:
		return fmt.Errorf("duration_ms must be >= 0, got %d", s.DurationMs)
	case s.DelayMs < 0:
		return fmt.Errorf("delay_ms must be >= 0, got %d", s.DelayMs)
	case s.RowMs <= 0:
		return fmt.Errorf("row_ms must be > 0, got %d", s.RowMs)
	case s.FPS <= 0 || s.FPS > 120:
		return fmt.Errorf("fps must be in 1..120, got %d", s.FPS)
	}
	return nil
}

// Config holds the application configuration
type Config struct {
	Paths          *Paths
	Scroll         ScrollConfig
	LogLevel       string
	HighlightStyle string
	UI             UISettings
	KeyMap         KeyMapConfig
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths: paths,
		Scroll: ScrollConfig{
			EndPaddingHeight: 10,
			DurationMs:       0,
			DelayMs:          0,
			RowMs:            250,
			FPS:              30,
		},
		LogLevel:       "info",
		HighlightStyle: "catppuccin-mocha",
		UI:             defaultUISettings(),
		KeyMap:         KeyMapConfig{},
	}, nil
}

// Load loads config overrides from ~/.marquee/config.json if present.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyFile(cfg.Paths.ConfigPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var user struct {
		EndPaddingHeight *int         `json:"end_padding_height"`
		DurationMs       *int         `json:"duration_ms"`
		DelayMs          *int         `json:"delay_ms"`
		RowMs            *int         `json:"row_ms"`
		FPS              *int         `json:"fps"`
		ScrollWhenFits   *bool        `json:"scroll_when_fits"`
		LogLevel         *string      `json:"log_level"`
		HighlightStyle   *string      `json:"highlight_style"`
		KeyMap           KeyMapConfig `json:"keymap,omitempty"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	s := &c.Scroll
	if user.EndPaddingHeight != nil {
		s.EndPaddingHeight = *user.EndPaddingHeight
	}
	if user.DurationMs != nil {
		s.DurationMs = *user.DurationMs
	}
	if user.DelayMs != nil {
		s.DelayMs = *user.DelayMs
	}
	if user.RowMs != nil {
		s.RowMs = *user.RowMs
	}
	if user.FPS != nil {
		s.FPS = *user.FPS
	}
	if user.ScrollWhenFits != nil {
		s.ScrollWhenFits = *user.ScrollWhenFits
	}
	if user.LogLevel != nil {
		c.LogLevel = *user.LogLevel
	}
	if user.HighlightStyle != nil {
		c.HighlightStyle = *user.HighlightStyle
	}
	if len(user.KeyMap.Bindings) > 0 {
		c.KeyMap = user.KeyMap
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	c.UI = loadUISettings(path)
	return nil
}
