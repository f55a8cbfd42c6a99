// Package anim provides a looping animated value driven by bubbletea frame
// ticks. The value is sampled from wall-clock time, so dropped or late frames
// never drift the position.
package anim

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FrameMsg asks a Loop to redraw. Frames issued before the most recent
// Start, Stop or Reset carry a stale tag and are dropped.
type FrameMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Option configures a Loop.
type Option func(*Loop)

// WithFPS sets the frame rate.
func WithFPS(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		if now != nil {
			l.now = now
		}
	}
}

// WithEasing sets the easing curve. The default is Linear.
func WithEasing(e Easing) Option {
	return func(l *Loop) {
		if e != nil {
			l.easing = e
		}
	}
}

// Loop is a numeric value animated toward a target over a fixed duration,
// repeating forever. Only one animation is live per Loop; starting a new one
// replaces the old one.
type Loop struct {
	id       int
	tag      int
	easing   Easing
	interval time.Duration
	now      func() time.Time

	value    float64
	from     float64
	to       float64
	duration time.Duration
	delay    time.Duration
	start    time.Time
	pausedAt time.Time
	running  bool
	paused   bool
	ticking  bool
}

// NewLoop creates an idle loop at value zero.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		id:       nextID(),
		easing:   Linear,
		interval: time.Second / DefaultFPS,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID identifies the loop's frame messages.
func (l *Loop) ID() int { return l.id }

// Interval returns the frame interval.
func (l *Loop) Interval() time.Duration { return l.interval }

// Start animates from the current value to target over duration, waiting
// delay before each iteration, and repeats indefinitely.
func (l *Loop) Start(target float64, duration, delay time.Duration) {
	from := l.Value()
	if duration <= 0 {
		duration = time.Millisecond
	}
	if delay < 0 {
		delay = 0
	}
	l.tag++
	l.from = from
	l.to = target
	l.duration = duration
	l.delay = delay
	l.start = l.now()
	l.running = true
	l.paused = false
	l.ticking = false
}

// Stop halts the loop, leaving the value where it is.
func (l *Loop) Stop() {
	if l.running && !l.paused {
		l.value = l.sample(l.now())
	}
	l.halt()
}

// Pause freezes a live animation in place. Resume continues it from the
// same point in its iteration.
func (l *Loop) Pause() {
	if !l.running || l.paused {
		return
	}
	now := l.now()
	l.value = l.sample(now)
	l.pausedAt = now
	l.paused = true
	l.tag++
	l.ticking = false
}

// Resume continues a paused animation.
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.start = l.start.Add(l.now().Sub(l.pausedAt))
	l.paused = false
	l.tag++
}

// Paused reports whether a live animation is paused.
func (l *Loop) Paused() bool { return l.paused }

// Reset halts the loop and snaps the value back to zero.
func (l *Loop) Reset() {
	l.halt()
	l.value = 0
}

func (l *Loop) halt() {
	l.tag++
	l.running = false
	l.paused = false
	l.ticking = false
}

// Running reports whether an animation is live.
func (l *Loop) Running() bool { return l.running }

// Value returns the current animated value.
func (l *Loop) Value() float64 {
	if !l.running || l.paused {
		return l.value
	}
	return l.sample(l.now())
}

func (l *Loop) sample(t time.Time) float64 {
	elapsed := t.Sub(l.start)
	if elapsed < 0 {
		elapsed = 0
	}
	phase := elapsed % (l.delay + l.duration)
	if phase < l.delay {
		return l.from
	}
	p := float64(phase-l.delay) / float64(l.duration)
	return l.from + (l.to-l.from)*l.easing(p)
}

// Tick schedules the next frame. It returns nil when the loop is idle or a
// frame for the current animation is already in flight.
func (l *Loop) Tick() tea.Cmd {
	if !l.running || l.paused || l.ticking {
		return nil
	}
	l.ticking = true
	id, tag := l.id, l.tag
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t, tag: tag}
	})
}

// Update consumes frames addressed to this loop and schedules the next one.
func (l *Loop) Update(msg tea.Msg) (*Loop, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != l.id {
		return l, nil
	}
	if frame.tag != l.tag || !l.running || l.paused {
		return l, nil
	}
	l.ticking = false
	return l, l.Tick()
}
