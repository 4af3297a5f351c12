package pager

// DefaultHighlightContext is the minimum number of lines laid out around the
// active line when drawing.
const DefaultHighlightContext = 40

// Pager displays Content and tracks an active line, which is always visible
// when drawn. Use Load to fill it.
type Pager[L Line] struct {
	content          *Content[L]
	current          int
	highlightContext int
}

// New returns an empty pager.
func New[L Line]() *Pager[L] {
	return &Pager[L]{highlightContext: DefaultHighlightContext}
}

// Load replaces the content. The active line is kept if it still exists,
// otherwise the pager moves to the last line.
func (p *Pager[L]) Load(content *Content[L]) {
	p.content = content
	if !p.lineExists(p.current) {
		if err := p.ScrollToEnd(); err != nil {
			p.current = 0
		}
	}
}

// ClearContent drops the content; later draws write nothing.
func (p *Pager[L]) ClearContent() {
	p.content = nil
}

// Content returns the loaded content or nil. Lines cannot be changed
// through it; use Load to replace them.
func (p *Pager[L]) Content() *Content[L] {
	return p.content
}

// SetHighlightContext changes the minimum number of lines laid out around
// the active line. Values below 0 restore the default.
func (p *Pager[L]) SetHighlightContext(n int) {
	if n < 0 {
		n = DefaultHighlightContext
	}
	p.highlightContext = n
}

func (p *Pager[L]) lineExists(i int) bool {
	return p.content != nil && i >= 0 && i < p.content.Len()
}

// GoToLine makes line i active.
func (p *Pager[L]) GoToLine(i int) error {
	if !p.lineExists(i) {
		return &NoLineError{Index: i}
	}
	p.current = i
	return nil
}

// GoToLineIf makes the first line satisfying pred active.
func (p *Pager[L]) GoToLineIf(pred func(index int, line L) bool) error {
	if p.content == nil {
		return ErrNoContent
	}
	for i, line := range p.content.lines {
		if pred(i, line) {
			return p.GoToLine(i)
		}
	}
	return ErrNoMatchingLine
}

// FindNext makes the next line after the active one that satisfies pred
// active, continuing from the top after the last line.
func (p *Pager[L]) FindNext(pred func(index int, line L) bool) error {
	if p.content == nil {
		return ErrNoContent
	}
	n := p.content.Len()
	for step := 1; step <= n; step++ {
		i := (p.current + step) % n
		if pred(i, p.content.lines[i]) {
			return p.GoToLine(i)
		}
	}
	return ErrNoMatchingLine
}

func (p *Pager[L]) CurrentLineIndex() int {
	return p.current
}

func (p *Pager[L]) CurrentLine() (L, bool) {
	if p.content == nil {
		var zero L
		return zero, false
	}
	return p.content.Line(p.current)
}

func (p *Pager[L]) ScrollBackwards() error {
	if p.current <= 0 {
		return ErrScrollLimit
	}
	p.current--
	return nil
}

func (p *Pager[L]) ScrollForwards() error {
	if err := p.GoToLine(p.current + 1); err != nil {
		return ErrScrollLimit
	}
	return nil
}

func (p *Pager[L]) ScrollToBeginning() error {
	if p.current == 0 {
		return ErrScrollLimit
	}
	p.current = 0
	return nil
}

func (p *Pager[L]) ScrollToEnd() error {
	if p.content == nil || p.content.Len() == 0 {
		return ErrScrollLimit
	}
	last := p.content.Len() - 1
	if p.current == last {
		return ErrScrollLimit
	}
	p.current = last
	return nil
}

// ScrollPageForwards moves n lines down, stopping at the last line.
func (p *Pager[L]) ScrollPageForwards(n int) error {
	if p.content == nil || p.content.Len() == 0 {
		return ErrScrollLimit
	}
	if n < 1 {
		n = 1
	}
	target := p.current + n
	if last := p.content.Len() - 1; target > last {
		target = last
	}
	if target == p.current {
		return ErrScrollLimit
	}
	p.current = target
	return nil
}

// ScrollPageBackwards moves n lines up, stopping at the first line.
func (p *Pager[L]) ScrollPageBackwards(n int) error {
	if n < 1 {
		n = 1
	}
	target := p.current - n
	if target < 0 {
		target = 0
	}
	if target == p.current {
		return ErrScrollLimit
	}
	p.current = target
	return nil
}
