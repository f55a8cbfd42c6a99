package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/anim"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/perf"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

// Update handles all messages with panic recovery.
func (a *App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("panic in app.Update: %v\n%s", r, debug.Stack())
			a.err = fmt.Errorf("internal error: %v", r)
			model = a
			cmd = nil
		}
	}()
	return a.update(msg)
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, a.layout()

	case tea.KeyPressMsg:
		return a, a.handleKey(msg)

	case anim.FrameMsg:
		var cmd tea.Cmd
		a.scroller, cmd = a.scroller.Update(msg)
		return a, cmd

	case messages.ContentLoaded:
		a.loaded = true
		a.sourceErr = nil
		a.content.SetText(msg.Text)
		return a, a.scroller.Refresh()

	case messages.SourceExited:
		return a, a.handleSourceExited(msg)

	case messages.ConfigChanged:
		return a, a.reloadConfig()

	case messages.Error:
		return a, a.handleErrorMessage(msg)

	case messages.Toast:
		return a, a.toast.Show(msg.Message, msg.Level)

	case common.ToastDismissed:
		a.toast, _ = a.toast.Update(msg)
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, a.keymap.Pause):
		if a.scroller.Paused() {
			return a.scroller.Resume()
		}
		a.scroller.Pause()
		return nil

	case key.Matches(msg, a.keymap.Copy):
		text := a.content.Text()
		return common.SafeCmd(func() tea.Msg {
			if err := common.CopyToClipboard(text); err != nil {
				return errorMsg(err, "copy to clipboard")
			}
			return messages.Toast{Message: "Copied to clipboard", Level: messages.ToastSuccess}
		})

	case key.Matches(msg, a.keymap.Reload):
		if a.source == nil {
			return nil
		}
		src := a.source
		return common.SafeCmd(func() tea.Msg {
			if err := src.Reload(); err != nil {
				return errorMsg(err, "reload "+src.Name())
			}
			return nil
		})

	case key.Matches(msg, a.keymap.Theme):
		a.applyTheme(common.NextTheme(a.theme.ID))
		return common.SafeBatch(
			a.scroller.SetStyle(a.frameStyle()),
			a.saveUISettings(),
			a.toast.Show("Theme: "+a.theme.Name, messages.ToastInfo),
		)

	case key.Matches(msg, a.keymap.Border):
		a.config.UI.Border = !a.config.UI.Border
		return common.SafeBatch(a.layout(), a.saveUISettings())

	case key.Matches(msg, a.keymap.Help):
		a.fullHelp = !a.fullHelp
		return a.layout()
	}
	return nil
}

func (a *App) applyTheme(theme common.Theme) {
	a.theme = theme
	a.config.UI.Theme = string(theme.ID)
	a.styles = common.StylesFor(theme)
	a.toast.SetStyles(a.styles)
	a.content.SetStyle(a.textStyle())
}

func (a *App) saveUISettings() tea.Cmd {
	c := *a.config
	return func() tea.Msg {
		if err := c.SaveUISettings(); err != nil {
			return errorMsg(err, "save settings")
		}
		return nil
	}
}

func (a *App) handleSourceExited(msg messages.SourceExited) tea.Cmd {
	if msg.Err == nil {
		logging.Info("source %s finished", msg.Source)
		return nil
	}
	a.sourceErr = msg.Err
	logging.Warn("source %s stopped: %v", msg.Source, msg.Err)
	return a.toast.Show(msg.Source+": "+msg.Err.Error(), messages.ToastError)
}

func (a *App) handleErrorMessage(msg messages.Error) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	a.err = msg.Err
	if !msg.Logged {
		logging.Error("Error in %s: %v", msg.Context, msg.Err)
	}
	return a.toast.Show(msg.Error(), messages.ToastError)
}

func errorMsg(err error, context string) messages.Error {
	var existing messages.Error
	if errors.As(err, &existing) {
		return existing
	}
	return messages.Error{Err: err, Context: context}
}
