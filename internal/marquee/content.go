package marquee

import "time"

// LayoutFunc receives the content's rendered height and vertical offset
// whenever its layout changes.
type LayoutFunc func(height, offset int)

// Content is the single scrollable child. It must notify a layout hook when
// its rendered size changes and support an on-demand measurement of its
// current frame. Measure returns false while the content is not rendered.
type Content interface {
	Measure() (ContentMetrics, bool)
	OnLayout(fn LayoutFunc)
}

// Animator drives the looping position animation. At most one loop is live;
// Start replaces any previous loop, Reset stops it and snaps the value to
// zero, Stop halts it in place.
type Animator interface {
	Start(target float64, duration, delay time.Duration)
	Stop()
	Reset()
}
