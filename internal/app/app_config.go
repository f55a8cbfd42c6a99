package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/ui/common"
)

// reloadConfig re-reads the config file and hot-applies scroll settings
// that changed. Command-line flags still win, and UI settings keep their
// in-app values.
func (a *App) reloadConfig() tea.Cmd {
	cfg, err := config.Load()
	if err != nil {
		return a.handleErrorMessage(errorMsg(err, "reload config"))
	}
	if a.opts.Overrides != nil {
		a.opts.Overrides(cfg)
	}
	if err := cfg.Scroll.Validate(); err != nil {
		return a.handleErrorMessage(errorMsg(err, "reload config"))
	}

	next := cfg.Scroll
	if next.FPS != a.config.Scroll.FPS {
		logging.Info("fps %d takes effect on restart", next.FPS)
		next.FPS = a.config.Scroll.FPS
	}
	if next == a.config.Scroll {
		return nil
	}
	a.config.Scroll = next
	logging.Info("applied scroll settings: %+v", next)
	return common.SafeBatch(
		a.scroller.SetOptions(scrollOptions(next)),
		a.toast.Show("Config reloaded", messages.ToastInfo),
	)
}
