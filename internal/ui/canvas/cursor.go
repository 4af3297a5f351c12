package canvas

import (
	"github.com/kk-code-lab/rpager/internal/textutil"
	"github.com/rivo/uniseg"
)

// WrappingMode controls what a cursor does at the right edge of its window.
type WrappingMode int

const (
	// WrapNone clips text at the right edge.
	WrapNone WrappingMode = iota
	// WrapWrap continues on the next row.
	WrapWrap
)

// Cursor writes text into a window. Rows may be negative or past the bottom;
// such text is laid out but not drawn.
type Cursor struct {
	win      *Window
	col      int
	row      int
	wrapping WrappingMode
	style    StyleModifier
}

func NewCursor(win *Window) *Cursor {
	return &Cursor{win: win}
}

func (c *Cursor) SetWrapping(mode WrappingMode) {
	c.wrapping = mode
}

func (c *Cursor) MoveTo(col, row int) {
	c.col = col
	c.row = row
}

func (c *Cursor) Position() (col, row int) {
	return c.col, c.row
}

func (c *Cursor) SetStyleModifier(m StyleModifier) {
	c.style = m
}

func (c *Cursor) StyleModifier() StyleModifier {
	return c.style
}

// Write draws text grapheme by grapheme, advancing the cursor.
func (c *Cursor) Write(text string) {
	if text == "" {
		return
	}
	style := c.style.Apply(c.win.DefaultStyle())
	width := c.win.Width()

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := textutil.ClusterWidth(gr.Str())
		if c.wrapping == WrapWrap && c.col > 0 && c.col+w > width {
			c.col = 0
			c.row++
		}
		c.win.SetContent(c.col, c.row, runes[0], runes[1:], style)
		c.col += w
	}
}

// FillAndWrapLine pads the rest of the row with spaces and moves to the start of the next row.
func (c *Cursor) FillAndWrapLine() {
	style := c.style.Apply(c.win.DefaultStyle())
	for col := c.col; col < c.win.Width(); col++ {
		c.win.SetContent(col, c.row, ' ', nil, style)
	}
	c.col = 0
	c.row++
}

// NumExpectedWraps reports how many extra rows Write(text) uses when started at column 0.
func (c *Cursor) NumExpectedWraps(text string) int {
	width := c.win.Width()
	if c.wrapping != WrapWrap || width <= 0 {
		return 0
	}
	wraps := 0
	col := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := textutil.ClusterWidth(gr.Str())
		if col > 0 && col+w > width {
			wraps++
			col = 0
		}
		col += w
	}
	return wraps
}
