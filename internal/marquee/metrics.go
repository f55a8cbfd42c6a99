package marquee

import "time"

const (
	// DefaultEndPadding is the minimum number of blank rows between the end
	// of the content and the start of its repeat.
	DefaultEndPadding = 10
	// DefaultRowDuration is the time it takes to scroll one row when no
	// explicit loop duration is configured.
	DefaultRowDuration = 250 * time.Millisecond
)

// ViewportMetrics holds the last-known viewport height. Zero means unknown.
type ViewportMetrics struct {
	Height int
}

// Known reports whether the viewport has been measured.
func (v ViewportMetrics) Known() bool {
	return v.Height > 0
}

// ContentMetrics holds the content's rendered height and its vertical offset
// within its own frame at measurement time.
type ContentMetrics struct {
	Height int
	Offset int
}

// GapFor returns the blank space appended after the content before it
// repeats. It is never smaller than minGap, and content shorter than the
// viewport is padded so that content+gap fills the viewport exactly.
func GapFor(contentHeight, viewportHeight, minGap int) int {
	if minGap < 0 {
		minGap = 0
	}
	gap := minGap
	if contentHeight < viewportHeight {
		if fill := viewportHeight - contentHeight; fill > gap {
			gap = fill
		}
	}
	return gap
}

// Target returns the loop displacement that brings the second copy of the
// content (rendered after the gap) to where the first copy started.
func Target(contentHeight, anchorOffset, gap int) float64 {
	return float64(-(contentHeight + gap) + anchorOffset)
}

// DurationFor returns the loop duration. An explicit duration wins; otherwise
// the duration grows linearly with the content height so scroll speed stays
// constant.
func DurationFor(contentHeight int, explicit, perRow time.Duration) time.Duration {
	if explicit > 0 {
		return explicit
	}
	if perRow <= 0 {
		perRow = DefaultRowDuration
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	return time.Duration(contentHeight) * perRow
}
