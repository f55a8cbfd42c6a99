package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeGruvbox      ThemeID = "gruvbox"
	ThemeGruvboxLight ThemeID = "gruvbox-light"
	ThemeTokyoNight   ThemeID = "tokyo-night"
	ThemeDracula      ThemeID = "dracula"
	ThemeNord         ThemeID = "nord"
)

// ThemeColors defines the colors the marquee UI draws with.
type ThemeColors struct {
	Background color.Color
	Foreground color.Color
	Muted      color.Color
	Border     color.Color

	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
}

// AvailableThemes returns all predefined themes; the first is the default.
func AvailableThemes() []Theme {
	return []Theme{
		{
			ID:   ThemeGruvbox,
			Name: "Gruvbox",
			Colors: ThemeColors{
				Background: lipgloss.Color("#282828"),
				Foreground: lipgloss.Color("#ebdbb2"),
				Muted:      lipgloss.Color("#928374"),
				Border:     lipgloss.Color("#504945"),
				Primary:    lipgloss.Color("#fabd2f"),
				Secondary:  lipgloss.Color("#d3869b"),
				Success:    lipgloss.Color("#b8bb26"),
				Warning:    lipgloss.Color("#fe8019"),
				Error:      lipgloss.Color("#fb4934"),
				Info:       lipgloss.Color("#83a598"),
			},
		},
		{
			ID:   ThemeGruvboxLight,
			Name: "Gruvbox Light",
			Colors: ThemeColors{
				Background: lipgloss.Color("#fbf1c7"),
				Foreground: lipgloss.Color("#3c3836"),
				Muted:      lipgloss.Color("#928374"),
				Border:     lipgloss.Color("#d5c4a1"),
				Primary:    lipgloss.Color("#b57614"),
				Secondary:  lipgloss.Color("#8f3f71"),
				Success:    lipgloss.Color("#79740e"),
				Warning:    lipgloss.Color("#af3a03"),
				Error:      lipgloss.Color("#9d0006"),
				Info:       lipgloss.Color("#076678"),
			},
		},
		{
			ID:   ThemeTokyoNight,
			Name: "Tokyo Night",
			Colors: ThemeColors{
				Background: lipgloss.Color("#1a1b26"),
				Foreground: lipgloss.Color("#a9b1d6"),
				Muted:      lipgloss.Color("#565f89"),
				Border:     lipgloss.Color("#292e42"),
				Primary:    lipgloss.Color("#7aa2f7"),
				Secondary:  lipgloss.Color("#bb9af7"),
				Success:    lipgloss.Color("#9ece6a"),
				Warning:    lipgloss.Color("#e0af68"),
				Error:      lipgloss.Color("#f7768e"),
				Info:       lipgloss.Color("#7dcfff"),
			},
		},
		{
			ID:   ThemeDracula,
			Name: "Dracula",
			Colors: ThemeColors{
				Background: lipgloss.Color("#282a36"),
				Foreground: lipgloss.Color("#f8f8f2"),
				Muted:      lipgloss.Color("#6272a4"),
				Border:     lipgloss.Color("#44475a"),
				Primary:    lipgloss.Color("#bd93f9"),
				Secondary:  lipgloss.Color("#ff79c6"),
				Success:    lipgloss.Color("#50fa7b"),
				Warning:    lipgloss.Color("#f1fa8c"),
				Error:      lipgloss.Color("#ff5555"),
				Info:       lipgloss.Color("#8be9fd"),
			},
		},
		{
			ID:   ThemeNord,
			Name: "Nord",
			Colors: ThemeColors{
				Background: lipgloss.Color("#2e3440"),
				Foreground: lipgloss.Color("#eceff4"),
				Muted:      lipgloss.Color("#4c566a"),
				Border:     lipgloss.Color("#3b4252"),
				Primary:    lipgloss.Color("#88c0d0"),
				Secondary:  lipgloss.Color("#b48ead"),
				Success:    lipgloss.Color("#a3be8c"),
				Warning:    lipgloss.Color("#ebcb8b"),
				Error:      lipgloss.Color("#bf616a"),
				Info:       lipgloss.Color("#81a1c1"),
			},
		},
	}
}

// GetTheme returns a theme by ID, defaulting to Gruvbox.
func GetTheme(id ThemeID) Theme {
	themes := AvailableThemes()
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after id, wrapping around.
func NextTheme(id ThemeID) Theme {
	themes := AvailableThemes()
	for i, t := range themes {
		if t.ID == id {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
