package app

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/keymap"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/marquee"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/source"
	"github.com/andyrewlee/marquee/internal/ui/common"
	"github.com/andyrewlee/marquee/internal/ui/scroller"
)

// Options holds per-run settings that are not persisted.
type Options struct {
	// Width and Height fix the viewport size. Zero fills the terminal.
	Width  int
	Height int
	// Version is shown in the header.
	Version string
	// Overrides re-applies command-line settings on top of a reloaded
	// config file.
	Overrides func(*config.Config)
}

// widthSetter is implemented by sources whose output depends on the
// terminal width.
type widthSetter interface {
	SetWidth(cols int)
}

// App is the root Bubbletea model.
type App struct {
	// Configuration
	config *config.Config
	opts   Options
	source source.Source

	// UI Components
	scroller *scroller.Model
	content  *scroller.TextContent
	toast    *common.ToastModel

	// Layout
	width, height int
	keymap        keymap.KeyMap
	theme         common.Theme
	styles        common.Styles
	fullHelp      bool

	// Source state
	loaded    bool
	sourceErr error

	// Lifecycle
	ready        bool
	quitting     bool
	err          error
	shutdownOnce sync.Once
	done         chan struct{}
	watcherMu    sync.Mutex
	watcher      *config.Watcher
	stopped      bool

	// Messages from source and watcher goroutines
	pump *msgPump
}

// New creates the application around a content source.
func New(cfg *config.Config, src source.Source, opts Options) (*App, error) {
	theme := common.GetTheme(common.ThemeID(cfg.UI.Theme))
	styles := common.StylesFor(theme)

	a := &App{
		config: cfg,
		opts:   opts,
		source: src,
		keymap: keymap.New(cfg.KeyMap),
		theme:  theme,
		styles: styles,
		toast:  common.NewToastModel(styles),
		done:   make(chan struct{}),
	}
	a.pump = newMsgPump(pumpQueueSize, a.done)
	a.content = scroller.NewTextContent("", a.textStyle())

	sc, err := scroller.New(scroller.Config{
		Options: scrollOptions(cfg.Scroll),
		FPS:     cfg.Scroll.FPS,
		Style:   a.frameStyle(),
	}, a.content)
	if err != nil {
		return nil, err
	}
	a.scroller = sc
	return a, nil
}

func scrollOptions(s config.ScrollConfig) marquee.Options {
	return marquee.Options{
		EndPadding:     s.EndPaddingHeight,
		Duration:       s.Duration(),
		Delay:          s.Delay(),
		RowDuration:    s.RowDuration(),
		ScrollWhenFits: s.ScrollWhenFits,
	}
}

func (a *App) frameStyle() lipgloss.Style {
	if a.config.UI.Border {
		return a.styles.Frame
	}
	return a.styles.Borderless
}

func (a *App) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(a.theme.Colors.Foreground)
}

// Init starts the content source, the config watcher and the scroller.
func (a *App) Init() tea.Cmd {
	return common.SafeBatch(a.startSource, a.startConfigWatch, a.scroller.Init())
}

func (a *App) startConfigWatch() tea.Msg {
	if a.config.Paths == nil {
		return nil
	}
	w := config.NewWatcher(a.config.Paths.ConfigPath, func() {
		a.enqueueExternalMsg(messages.ConfigChanged{})
	})
	if err := w.Start(); err != nil {
		logging.Warn("config hot-reload disabled: %v", err)
		return nil
	}
	a.watcherMu.Lock()
	defer a.watcherMu.Unlock()
	if a.stopped {
		_ = w.Close()
		return nil
	}
	a.watcher = w
	return nil
}

func (a *App) startSource() tea.Msg {
	if a.source == nil {
		return nil
	}
	if err := a.source.Start(a.enqueueExternalMsg); err != nil {
		return errorMsg(err, "start "+a.source.Name())
	}
	return nil
}

// Scroller exposes the viewport, mainly for tests.
func (a *App) Scroller() *scroller.Model { return a.scroller }
