// Package marquee implements the measurement and animation engine behind a
// looping auto-scroll viewport. The engine tracks viewport and content
// heights from layout events, decides whether the content needs to scroll,
// and drives a single looping animation through an Animator.
package marquee

import (
	"errors"
	"time"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/perf"
)

var (
	// ErrNoContent is returned when mounting without a content child.
	ErrNoContent = errors.New("marquee: exactly one content child required, got none")
	// ErrMultipleContent is returned when mounting more than one child.
	ErrMultipleContent = errors.New("marquee: exactly one content child required, got several")
)

// Options configures the engine.
type Options struct {
	// EndPadding is the minimum gap, in rows, before the content repeats.
	EndPadding int
	// Duration fixes the loop duration. Zero scales it with content height.
	Duration time.Duration
	// Delay is the pause before each loop iteration.
	Delay time.Duration
	// RowDuration is the time per row used when Duration is zero.
	RowDuration time.Duration
	// ScrollWhenFits loops content that already fits inside the viewport.
	ScrollWhenFits bool
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		EndPadding:  DefaultEndPadding,
		RowDuration: DefaultRowDuration,
	}
}

// Loop describes the animation last handed to the animator.
type Loop struct {
	Target   float64
	Duration time.Duration
	Delay    time.Duration
}

// Engine is the auto-scroll engine for one mounted widget. It is not safe
// for concurrent use; layout events are expected to arrive serially.
type Engine struct {
	opts     Options
	animator Animator
	content  Content

	viewport ViewportMetrics
	measured ContentMetrics
	gap      int
	state    ScrollState
	loop     Loop
	restarts int
}

// New creates an engine that drives the given animator.
func New(animator Animator, opts Options) *Engine {
	if animator == nil {
		animator = nopAnimator{}
	}
	return &Engine{
		opts:     opts,
		animator: animator,
		gap:      opts.EndPadding,
	}
}

// Mount attaches the content child and registers the layout hook on it.
// Exactly one child must be supplied.
func (e *Engine) Mount(children ...Content) error {
	switch {
	case len(children) == 0:
		return ErrNoContent
	case len(children) > 1:
		return ErrMultipleContent
	case children[0] == nil:
		return ErrNoContent
	}
	if e.content != nil {
		e.Unmount()
	}
	e.content = children[0]
	e.content.OnLayout(e.OnContentLayout)

	if e.viewport.Known() {
		if m, ok := e.content.Measure(); ok {
			e.OnContentLayout(m.Height, m.Offset)
		}
	}
	return nil
}

// Unmount stops the animation and detaches the content.
func (e *Engine) Unmount() {
	e.setIdle("unmount")
	if e.content != nil {
		e.content.OnLayout(nil)
		e.content = nil
	}
	e.measured = ContentMetrics{}
}

// OnViewportLayout records a new viewport height. Unchanged heights are
// ignored; a changed height re-measures the mounted content and restarts the
// loop from a neutral position.
func (e *Engine) OnViewportLayout(height int) {
	if height == e.viewport.Height {
		return
	}
	e.viewport.Height = height
	if !e.viewport.Known() {
		e.animator.Reset()
		e.setIdle("viewport collapsed")
		return
	}
	if e.content == nil {
		return
	}
	m, ok := e.content.Measure()
	if !ok {
		return
	}
	e.animator.Reset()
	e.measured = m
	e.recompute()
}

// OnContentLayout records the content's rendered height and offset. It is
// ignored until the viewport is known and whenever the height is unchanged,
// since the running animation itself re-triggers layout with the same height.
func (e *Engine) OnContentLayout(height, offset int) {
	if !e.viewport.Known() || height == e.measured.Height {
		return
	}
	e.animator.Reset()
	e.measured = ContentMetrics{Height: height, Offset: offset}
	e.recompute()
}

// Reflow runs fn with the content layout hook detached. Callers that change
// the content's layout themselves use it and then report the new metrics
// once, so a single layout pass starts at most one loop.
func (e *Engine) Reflow(fn func()) {
	if e.content == nil {
		fn()
		return
	}
	e.content.OnLayout(nil)
	defer e.content.OnLayout(e.OnContentLayout)
	fn()
}

// Remeasure reads the mounted content's metrics and applies them as a
// content layout event.
func (e *Engine) Remeasure() {
	if e.content == nil {
		return
	}
	if m, ok := e.content.Measure(); ok {
		e.OnContentLayout(m.Height, m.Offset)
	}
}

// SetOptions applies new options and restarts a running loop in place.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts
	if !e.viewport.Known() || e.measured.Height <= 0 {
		e.gap = opts.EndPadding
		return
	}
	e.animator.Reset()
	e.recompute()
}

func (e *Engine) recompute() {
	h := e.measured.Height
	if h <= 0 {
		e.setIdle("empty content")
		return
	}

	e.gap = GapFor(h, e.viewport.Height, e.opts.EndPadding)
	if h <= e.viewport.Height && !e.opts.ScrollWhenFits {
		e.setIdle("content fits")
		return
	}

	e.loop = Loop{
		Target:   Target(h, e.measured.Offset, e.gap),
		Duration: DurationFor(h, e.opts.Duration, e.opts.RowDuration),
		Delay:    e.opts.Delay,
	}
	e.state = Looping
	e.restarts++
	perf.Count("loop_restart", 1)
	logging.Debug("marquee: loop content=%d viewport=%d gap=%d target=%.0f duration=%s",
		h, e.viewport.Height, e.gap, e.loop.Target, e.loop.Duration)
	e.animator.Start(e.loop.Target, e.loop.Duration, e.loop.Delay)
}

func (e *Engine) setIdle(reason string) {
	e.animator.Stop()
	if e.state != Idle {
		logging.Debug("marquee: idle (%s)", reason)
	}
	e.state = Idle
}

// State returns the current scroll state.
func (e *Engine) State() ScrollState { return e.state }

// Gap returns the gap computed for the last measurement.
func (e *Engine) Gap() int { return e.gap }

// Viewport returns the last recorded viewport metrics.
func (e *Engine) Viewport() ViewportMetrics { return e.viewport }

// Content returns the last recorded content metrics.
func (e *Engine) Content() ContentMetrics { return e.measured }

// Options returns the engine options.
func (e *Engine) Options() Options { return e.opts }

// Loop returns the active loop, if any.
func (e *Engine) Loop() (Loop, bool) {
	if e.state != Looping {
		return Loop{}, false
	}
	return e.loop, true
}

// Restarts counts how many loops have been started.
func (e *Engine) Restarts() int { return e.restarts }

type nopAnimator struct{}

func (nopAnimator) Start(float64, time.Duration, time.Duration) {}
func (nopAnimator) Stop()                                       {}
func (nopAnimator) Reset()                                      {}
