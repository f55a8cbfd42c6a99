package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/marquee/internal/messages"
)

// ToastDismissed is sent when a toast should be dismissed
type ToastDismissed struct {
	seq int
}

// ToastModel shows one notification at a time.
type ToastModel struct {
	message string
	level   messages.ToastLevel
	until   time.Time
	seq     int
	styles  Styles
	now     func() time.Time
}

// NewToastModel creates a new toast model
func NewToastModel(styles Styles) *ToastModel {
	return &ToastModel{styles: styles, now: time.Now}
}

// SetStyles updates the toast styles (for theme changes).
func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Show displays a toast and schedules its dismissal.
func (m *ToastModel) Show(message string, level messages.ToastLevel) tea.Cmd {
	duration := 3 * time.Second
	switch level {
	case messages.ToastError:
		duration = 5 * time.Second
	case messages.ToastWarning:
		duration = 4 * time.Second
	}
	m.seq++
	m.message = message
	m.level = level
	m.until = m.now().Add(duration)

	seq := m.seq
	return SafeTick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{seq: seq}
	})
}

// Update handles dismissal messages.
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if d, ok := msg.(ToastDismissed); ok && d.seq == m.seq {
		m.message = ""
	}
	return m, nil
}

// Visible returns whether a toast is currently shown.
func (m *ToastModel) Visible() bool {
	return m.message != "" && m.now().Before(m.until)
}

// View renders the toast notification
func (m *ToastModel) View() string {
	if !m.Visible() {
		return ""
	}

	var style lipgloss.Style
	icon := "i "
	switch m.level {
	case messages.ToastSuccess:
		style = m.styles.ToastSuccess
		icon = "✓ "
	case messages.ToastError:
		style = m.styles.ToastError
		icon = "✗ "
	case messages.ToastWarning:
		style = m.styles.ToastWarning
		icon = "! "
	default:
		style = m.styles.ToastInfo
	}
	return style.Render(icon + m.message)
}
