package pager

import "github.com/kk-code-lab/rpager/internal/ui/canvas"

// SpaceDemand asks for at least one cell in each direction.
func (p *Pager[L]) SpaceDemand() (canvas.Demand, canvas.Demand) {
	return canvas.AtLeast(1), canvas.AtLeast(1)
}

// Draw renders the lines around the active line into win. The active line
// is centered when there is enough content before and after it; near the end
// of the content the last line stays at the bottom edge.
func (p *Pager[L]) Draw(win canvas.Window) {
	content := p.content
	if content == nil || win.Width() <= 0 || win.Height() <= 0 {
		return
	}
	height := win.Height()
	current := p.current

	adjacent := height
	if half := p.highlightContext / 2; half > adjacent {
		adjacent = half
	}
	minLine := current - adjacent
	if minLine < 0 {
		minLine = 0
	}
	maxLine := current + adjacent
	visible := content.View(minLine, maxLine)

	sizes := canvas.LayoutLinearly(win.Width(),
		[]canvas.Demand{content.decorator.SpaceDemand(visible), canvas.AtLeast(1)},
		[]float64{0, 1})
	decorationWin, contentWin, err := win.SplitColumns(sizes[0])
	if err != nil {
		return
	}

	highlight := content.highlight
	contentWin.SetDefaultStyle(highlight.DefaultStyle.Apply(contentWin.DefaultStyle()))
	contentWin.Fill(' ')

	cursor := canvas.NewCursor(&contentWin)
	cursor.SetWrapping(canvas.WrapWrap)

	rowsBefore, rowsFrom := 0, 0
	for _, l := range visible {
		rows := cursor.NumExpectedWraps(l.Line.Content()) + 1
		if l.Index < current {
			rowsBefore += rows
		} else {
			rowsFrom += rows
		}
	}

	centered := height / 2
	bottom := height - rowsFrom
	if centered > bottom {
		bottom = centered
	}
	start := bottom - rowsBefore
	if start > 0 {
		start = 0
	}
	cursor.MoveTo(0, start)

	activeStyle := canvas.NewStyleModifier().ReverseMode(canvas.Toggle).Bold(true)
	for _, l := range visible {
		text := l.Line.Content()
		base := canvas.NewStyleModifier()
		if l.Index == current {
			base = activeStyle
		}
		cursor.SetStyleModifier(base)

		_, startRow := cursor.Position()
		last := 0
		for _, change := range highlight.ForLine(l.Index) {
			offset := change.Offset
			if offset < last {
				offset = last
			}
			if offset > len(text) {
				offset = len(text)
			}
			cursor.Write(text[last:offset])
			cursor.SetStyleModifier(change.Style.OnTopOf(base))
			last = offset
		}
		cursor.Write(text[last:])
		cursor.SetStyleModifier(base)
		cursor.FillAndWrapLine()
		_, endRow := cursor.Position()

		content.decorator.Decorate(l.Line, l.Index, current,
			decorationWin.SubWindow(startRow, endRow))
	}
}
