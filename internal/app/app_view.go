package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/marquee/internal/perf"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

const headerHeight = 1

// layout sizes the viewport from the window and pushes the width to
// sources that render for a terminal.
func (a *App) layout() tea.Cmd {
	if !a.ready {
		return nil
	}
	w := a.width
	h := a.height - headerHeight - lipgloss.Height(a.footerView())
	if a.opts.Width > 0 {
		w = min(w, a.opts.Width)
	}
	if a.opts.Height > 0 {
		h = min(h, a.opts.Height)
	}
	w, h = max(w, 0), max(h, 0)

	style := a.frameStyle()
	if ws, ok := a.source.(widthSetter); ok {
		ws.SetWidth(w - style.GetHorizontalFrameSize())
	}
	return a.scroller.Layout(style, w, h)
}

// View renders the header, the viewport and the help line.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = a.theme.Colors.Background
	view.ForegroundColor = a.theme.Colors.Foreground
	view.SetContent(a.render())
	return view
}

func (a *App) render() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Loading..."
	}
	parts := []string{a.headerView(), a.scroller.View()}
	if footer := a.footerView(); footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) headerView() string {
	title := a.styles.Title.Render("marquee")
	if a.opts.Version != "" {
		title += a.styles.Source.Render(" " + a.opts.Version)
	}
	left := title
	if a.source != nil {
		left += "  " + a.styles.Source.Render(a.source.Name())
	}

	right := a.toast.View()
	if right == "" {
		right = a.statusView()
	}

	space := a.width - lipgloss.Width(right) - 1
	if space < 1 {
		return ansi.Truncate(right, a.width, "")
	}
	left = ansi.Truncate(left, space, "…")
	pad := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	return left + strings.Repeat(" ", max(pad, 1)) + right
}

func (a *App) statusView() string {
	switch {
	case a.sourceErr != nil:
		return a.styles.ToastError.Render("source stopped")
	case !a.loaded:
		return a.styles.Source.Render("waiting for content")
	case a.scroller.Paused():
		return a.styles.Paused.Render("paused")
	}
	return a.styles.State.Render(a.scroller.State().String())
}

func (a *App) footerView() string {
	if !a.config.UI.ShowHelp && !a.fullHelp {
		return ""
	}
	bindings := a.keymap.ShortHelp()
	if a.fullHelp {
		bindings = nil
		for _, group := range a.keymap.FullHelp() {
			bindings = append(bindings, group...)
		}
	}
	return common.RenderHelpBarItems(a.styles, common.HelpBindings(bindings...), a.width)
}
