package canvas

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Window is a rectangular view of a screen. Writes outside the rectangle are dropped.
type Window struct {
	screen tcell.Screen
	x      int
	y      int
	width  int
	height int
	style  tcell.Style
}

// NewWindow returns a window covering the given region of screen.
func NewWindow(screen tcell.Screen, x, y, width, height int) Window {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Window{
		screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		style:  tcell.StyleDefault,
	}
}

// RootWindow covers the whole screen.
func RootWindow(screen tcell.Screen) Window {
	w, h := screen.Size()
	return NewWindow(screen, 0, 0, w, h)
}

func (w Window) Width() int  { return w.width }
func (w Window) Height() int { return w.height }

// DefaultStyle is the style used by Fill and as the base for cursor writes.
func (w Window) DefaultStyle() tcell.Style { return w.style }

func (w *Window) SetDefaultStyle(style tcell.Style) {
	w.style = style
}

// SetContent writes a single cell relative to the window origin.
func (w Window) SetContent(col, row int, mainc rune, combc []rune, style tcell.Style) {
	if w.screen == nil {
		return
	}
	if col < 0 || row < 0 || col >= w.width || row >= w.height {
		return
	}
	w.screen.SetContent(w.x+col, w.y+row, mainc, combc, style)
}

// Fill paints every cell with r using the default style.
func (w Window) Fill(r rune) {
	for row := 0; row < w.height; row++ {
		for col := 0; col < w.width; col++ {
			w.SetContent(col, row, r, nil, w.style)
		}
	}
}

// SplitColumns cuts the window into [0,col) and [col,width).
func (w Window) SplitColumns(col int) (Window, Window, error) {
	if col < 0 || col > w.width {
		return Window{}, Window{}, fmt.Errorf("split column %d outside window width %d", col, w.width)
	}
	left := w
	left.width = col
	right := w
	right.x = w.x + col
	right.width = w.width - col
	return left, right, nil
}

// SplitRows cuts the window into [0,row) and [row,height).
func (w Window) SplitRows(row int) (Window, Window, error) {
	if row < 0 || row > w.height {
		return Window{}, Window{}, fmt.Errorf("split row %d outside window height %d", row, w.height)
	}
	top := w
	top.height = row
	bottom := w
	bottom.y = w.y + row
	bottom.height = w.height - row
	return top, bottom, nil
}

// SubWindow keeps the full width and the rows [rowStart,rowEnd), clamped to the window.
func (w Window) SubWindow(rowStart, rowEnd int) Window {
	rowStart = clamp(rowStart, 0, w.height)
	rowEnd = clamp(rowEnd, rowStart, w.height)
	sub := w
	sub.y = w.y + rowStart
	sub.height = rowEnd - rowStart
	return sub
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
