package pager

import (
	"fmt"

	"github.com/kk-code-lab/rpager/internal/textutil"
	"github.com/kk-code-lab/rpager/internal/ui/canvas"
)

// Decorator draws next to the left of each pager line, e.g. line numbers.
type Decorator[L Line] interface {
	// SpaceDemand is the width of the decoration column for the given lines.
	// The column is shared by all lines, so implementations should return
	// the maximum over lines.
	SpaceDemand(lines []IndexedLine[L]) canvas.Demand

	// Decorate draws the decoration of line into win. win usually has as many
	// rows as the line occupies, but may be empty or narrower than demanded.
	Decorate(line L, index, active int, win canvas.Window)
}

// NoDecorator draws nothing. It is the default for new content.
type NoDecorator[L Line] struct{}

func (NoDecorator[L]) SpaceDemand([]IndexedLine[L]) canvas.Demand { return canvas.Exact(0) }

func (NoDecorator[L]) Decorate(L, int, int, canvas.Window) {}

// LineNumberDecorator draws 1-based line numbers, right aligned.
type LineNumberDecorator[L Line] struct{}

func (LineNumberDecorator[L]) SpaceDemand(lines []IndexedLine[L]) canvas.Demand {
	if len(lines) == 0 {
		return canvas.Exact(0)
	}
	last := lines[len(lines)-1].Index + 1
	return canvas.Exact(textutil.DisplayWidth(fmt.Sprintf(" %d ", last)))
}

func (LineNumberDecorator[L]) Decorate(_ L, index, _ int, win canvas.Window) {
	width := win.Width() - 2
	if width < 0 {
		width = 0
	}
	cursor := canvas.NewCursor(&win)
	cursor.Write(fmt.Sprintf(" %*d ", width, index+1))
}

// ActiveLineMarker puts a one-column marker in front of another decorator
// on the active line.
type ActiveLineMarker[L Line] struct {
	Inner  Decorator[L]
	Marker rune
}

func (m ActiveLineMarker[L]) inner() Decorator[L] {
	if m.Inner == nil {
		return NoDecorator[L]{}
	}
	return m.Inner
}

func (m ActiveLineMarker[L]) SpaceDemand(lines []IndexedLine[L]) canvas.Demand {
	d := m.inner().SpaceDemand(lines)
	d.Min++
	if d.Max >= 0 {
		d.Max++
	}
	return d
}

func (m ActiveLineMarker[L]) Decorate(line L, index, active int, win canvas.Window) {
	if win.Width() == 0 || win.Height() == 0 {
		return
	}
	marker := ' '
	if index == active {
		marker = m.Marker
		if marker == 0 {
			marker = '>'
		}
	}
	win.SetContent(0, 0, marker, nil, win.DefaultStyle())
	_, rest, err := win.SplitColumns(1)
	if err != nil {
		return
	}
	m.inner().Decorate(line, index, active, rest)
}
