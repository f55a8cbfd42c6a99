package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Viewport frame
	Frame      lipgloss.Style
	Borderless lipgloss.Style

	// Header line
	Title  lipgloss.Style
	Source lipgloss.Style
	State  lipgloss.Style
	Paused lipgloss.Style

	// Help line
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return StylesFor(GetTheme(ThemeGruvbox))
}

// StylesFor builds the application styles from a theme.
func StylesFor(theme Theme) Styles {
	c := theme.Colors
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Foreground(c.Foreground),
		Borderless: lipgloss.NewStyle().Foreground(c.Foreground),

		Title:  lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Source: lipgloss.NewStyle().Foreground(c.Muted),
		State:  lipgloss.NewStyle().Foreground(c.Success),
		Paused: lipgloss.NewStyle().Foreground(c.Warning),

		HelpKey:       lipgloss.NewStyle().Foreground(c.Secondary),
		HelpDesc:      lipgloss.NewStyle().Foreground(c.Muted),
		HelpSeparator: lipgloss.NewStyle().Foreground(c.Border),

		ToastSuccess: toast.Foreground(c.Background).Background(c.Success),
		ToastError:   toast.Foreground(c.Background).Background(c.Error),
		ToastWarning: toast.Foreground(c.Background).Background(c.Warning),
		ToastInfo:    toast.Foreground(c.Background).Background(c.Info),
	}
}
