// Package scroller renders content inside a fixed-size viewport and scrolls
// it vertically in a seamless loop when it does not fit.
package scroller

import (
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/marquee/internal/anim"
	"github.com/andyrewlee/marquee/internal/marquee"
	"github.com/andyrewlee/marquee/internal/perf"
)

// Child is the single scrollable element: it satisfies the engine's content
// contract and can render its rows.
type Child interface {
	marquee.Content
	Lines() []string
}

// widthSetter is implemented by children that reflow with the viewport.
type widthSetter interface {
	SetWidth(width int)
}

// Config configures a scroller.
type Config struct {
	Options marquee.Options
	FPS     int
	// Style is applied untouched to the outer container.
	Style lipgloss.Style
	Clock func() time.Time
}

// DefaultConfig returns the default scroller configuration.
func DefaultConfig() Config {
	return Config{
		Options: marquee.DefaultOptions(),
		FPS:     anim.DefaultFPS,
		Style:   lipgloss.NewStyle(),
	}
}

// Model is the auto-scrolling viewport.
type Model struct {
	engine *marquee.Engine
	loop   *anim.Loop
	child  Child
	style  lipgloss.Style

	width     int
	height    int
	paused    bool
	lastFrame time.Time
}

// New creates a scroller around exactly one child.
func New(cfg Config, children ...Child) (*Model, error) {
	loop := anim.NewLoop(anim.WithFPS(cfg.FPS), anim.WithClock(cfg.Clock), anim.WithEasing(anim.Linear))
	m := &Model{
		engine: marquee.New(loop, cfg.Options),
		loop:   loop,
		style:  cfg.Style,
	}

	contents := make([]marquee.Content, 0, len(children))
	for _, c := range children {
		contents = append(contents, c)
	}
	if err := m.engine.Mount(contents...); err != nil {
		return nil, err
	}
	m.child = children[0]
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.Refresh()
}

// SetSize lays out the outer container. It is the viewport layout event.
// The child reflows to the new width first without notifying the engine;
// the engine then sees the new viewport and content together and restarts
// the loop at most once.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	innerW, innerH := m.innerSize()
	if ws, ok := m.child.(widthSetter); ok && innerW > 0 {
		m.engine.Reflow(func() { ws.SetWidth(innerW) })
	}
	m.engine.OnViewportLayout(innerH)
	m.engine.Remeasure()
	return m.Refresh()
}

// Layout applies a container style and size in one layout pass.
func (m *Model) Layout(style lipgloss.Style, width, height int) tea.Cmd {
	m.style = style
	return m.SetSize(width, height)
}

// SetStyle replaces the outer container style. It re-lays out only once a
// size is known and the frame size changed.
func (m *Model) SetStyle(style lipgloss.Style) tea.Cmd {
	oldW, oldH := m.style.GetFrameSize()
	m.style = style
	if m.width == 0 && m.height == 0 {
		return nil
	}
	if w, h := style.GetFrameSize(); w == oldW && h == oldH {
		return nil
	}
	return m.SetSize(m.width, m.height)
}

// SetOptions applies new engine options.
func (m *Model) SetOptions(opts marquee.Options) tea.Cmd {
	m.engine.SetOptions(opts)
	return m.Refresh()
}

// Refresh schedules animation frames after the content changed. Call it
// after mutating the child directly.
func (m *Model) Refresh() tea.Cmd {
	if m.paused && m.loop.Running() && !m.loop.Paused() {
		m.loop.Pause()
	}
	return m.loop.Tick()
}

// Pause freezes the loop in place.
func (m *Model) Pause() {
	m.paused = true
	m.loop.Pause()
}

// Resume continues a paused loop.
func (m *Model) Resume() tea.Cmd {
	m.paused = false
	m.loop.Resume()
	return m.loop.Tick()
}

// Paused reports whether the loop is paused.
func (m *Model) Paused() bool { return m.paused }

// Close stops the animation and detaches the child.
func (m *Model) Close() {
	m.engine.Unmount()
}

// Update advances the animation on frame messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	frame, ok := msg.(anim.FrameMsg)
	if !ok {
		return m, nil
	}
	if perf.Enabled() && frame.ID == m.loop.ID() {
		if !m.lastFrame.IsZero() {
			perf.Record("frame_interval", frame.Time.Sub(m.lastFrame))
		}
		m.lastFrame = frame.Time
		perf.Count("frames", 1)
	}
	_, cmd := m.loop.Update(msg)
	return m, cmd
}

// State returns the engine's scroll state.
func (m *Model) State() marquee.ScrollState { return m.engine.State() }

// Engine exposes the underlying engine.
func (m *Model) Engine() *marquee.Engine { return m.engine }

// Offset returns the number of rows the wrapper is currently shifted up.
func (m *Model) Offset() int {
	if m.engine.State() != marquee.Looping {
		return 0
	}
	return int(math.Floor(-m.loop.Value()))
}

func (m *Model) innerSize() (int, int) {
	w := m.width - m.style.GetHorizontalFrameSize()
	h := m.height - m.style.GetVerticalFrameSize()
	return max(w, 0), max(h, 0)
}

// rows builds the animated wrapper: the content, and while looping the gap
// and a second copy of the content.
func (m *Model) rows() []string {
	lines := m.child.Lines()
	if m.engine.State() != marquee.Looping {
		return lines
	}
	gap := m.engine.Gap()
	out := make([]string, 0, 2*len(lines)+gap)
	out = append(out, lines...)
	for i := 0; i < gap; i++ {
		out = append(out, "")
	}
	return append(out, lines...)
}

// View renders the outer container around the clipped viewport.
func (m *Model) View() string {
	defer perf.Time("scroller_view")()
	innerW, innerH := m.innerSize()
	if innerW == 0 || innerH == 0 {
		return ""
	}

	wrapper := m.rows()
	skip := m.Offset()
	blank := strings.Repeat(" ", innerW)
	visible := make([]string, innerH)
	for i := range visible {
		idx := skip + i
		if idx < 0 || idx >= len(wrapper) {
			visible[i] = blank
			continue
		}
		row := ansi.Truncate(wrapper[idx], innerW, "")
		if pad := innerW - ansi.StringWidth(row); pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		visible[i] = row
	}
	return m.style.Render(strings.Join(visible, "\n"))
}
