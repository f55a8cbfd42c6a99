package scroller

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/marquee/internal/marquee"
)

// TextContent is a block of styled text that wraps to the viewport width.
// It reports its rendered height through the layout hook whenever the text,
// style or width changes, and can be measured on demand once laid out.
type TextContent struct {
	text  string
	style lipgloss.Style
	width int

	lines   []string
	mounted bool
	hook    marquee.LayoutFunc
}

// NewTextContent creates text content. It is not measurable until SetWidth
// lays it out.
func NewTextContent(text string, style lipgloss.Style) *TextContent {
	return &TextContent{text: text, style: style}
}

// SetText replaces the text and re-lays it out.
func (c *TextContent) SetText(text string) {
	if text == c.text {
		return
	}
	c.text = text
	c.layout()
}

// SetStyle replaces the text style and re-lays it out.
func (c *TextContent) SetStyle(style lipgloss.Style) {
	c.style = style
	c.layout()
}

// SetWidth lays the text out at width columns.
func (c *TextContent) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	if c.mounted && width == c.width {
		return
	}
	c.width = width
	c.mounted = true
	c.layout()
}

func (c *TextContent) layout() {
	if !c.mounted {
		return
	}
	c.lines = nil
	if strings.TrimSpace(c.text) != "" {
		rendered := c.style.Width(c.width).Render(c.text)
		c.lines = strings.Split(rendered, "\n")
	}
	if c.hook != nil {
		c.hook(len(c.lines), 0)
	}
}

// Measure returns the current rendered frame.
func (c *TextContent) Measure() (marquee.ContentMetrics, bool) {
	if !c.mounted {
		return marquee.ContentMetrics{}, false
	}
	return marquee.ContentMetrics{Height: len(c.lines)}, true
}

// OnLayout registers the layout hook. A nil fn detaches it.
func (c *TextContent) OnLayout(fn marquee.LayoutFunc) {
	c.hook = fn
}

// Lines returns the rendered rows.
func (c *TextContent) Lines() []string {
	return c.lines
}

// Text returns the raw text.
func (c *TextContent) Text() string {
	return c.text
}
