package canvas

import "github.com/gdamore/tcell/v2"

// BoolMode describes how a modifier changes a boolean text attribute.
type BoolMode uint8

const (
	Keep BoolMode = iota
	Set
	Unset
	Toggle
)

func boolMode(v bool) BoolMode {
	if v {
		return Set
	}
	return Unset
}

func (m BoolMode) onTopOf(base BoolMode) BoolMode {
	switch m {
	case Keep:
		return base
	case Toggle:
		switch base {
		case Set:
			return Unset
		case Unset:
			return Set
		case Toggle:
			return Keep
		default:
			return Toggle
		}
	default:
		return m
	}
}

func (m BoolMode) apply(v bool) bool {
	switch m {
	case Set:
		return true
	case Unset:
		return false
	case Toggle:
		return !v
	default:
		return v
	}
}

// StyleModifier is a partial style. Unset fields leave the underlying style alone.
type StyleModifier struct {
	fg        tcell.Color
	bg        tcell.Color
	hasFg     bool
	hasBg     bool
	bold      BoolMode
	italic    BoolMode
	underline BoolMode
	reverse   BoolMode
}

// NewStyleModifier returns a modifier that changes nothing.
func NewStyleModifier() StyleModifier {
	return StyleModifier{}
}

func (m StyleModifier) Foreground(c tcell.Color) StyleModifier {
	m.fg = c
	m.hasFg = true
	return m
}

func (m StyleModifier) Background(c tcell.Color) StyleModifier {
	m.bg = c
	m.hasBg = true
	return m
}

func (m StyleModifier) Bold(v bool) StyleModifier {
	m.bold = boolMode(v)
	return m
}

func (m StyleModifier) Italic(v bool) StyleModifier {
	m.italic = boolMode(v)
	return m
}

func (m StyleModifier) Underline(v bool) StyleModifier {
	m.underline = boolMode(v)
	return m
}

func (m StyleModifier) BoldMode(mode BoolMode) StyleModifier {
	m.bold = mode
	return m
}

func (m StyleModifier) ItalicMode(mode BoolMode) StyleModifier {
	m.italic = mode
	return m
}

func (m StyleModifier) UnderlineMode(mode BoolMode) StyleModifier {
	m.underline = mode
	return m
}

func (m StyleModifier) ReverseMode(mode BoolMode) StyleModifier {
	m.reverse = mode
	return m
}

// ForegroundColor reports the foreground color, if the modifier sets one.
func (m StyleModifier) ForegroundColor() (tcell.Color, bool) { return m.fg, m.hasFg }

// BackgroundColor reports the background color, if the modifier sets one.
func (m StyleModifier) BackgroundColor() (tcell.Color, bool) { return m.bg, m.hasBg }

// IsEmpty reports whether applying m would change nothing.
func (m StyleModifier) IsEmpty() bool {
	return m == StyleModifier{}
}

// OnTopOf layers m over base: every field m sets wins, toggles on both layers cancel.
func (m StyleModifier) OnTopOf(base StyleModifier) StyleModifier {
	out := base
	if m.hasFg {
		out.fg, out.hasFg = m.fg, true
	}
	if m.hasBg {
		out.bg, out.hasBg = m.bg, true
	}
	out.bold = m.bold.onTopOf(base.bold)
	out.italic = m.italic.onTopOf(base.italic)
	out.underline = m.underline.onTopOf(base.underline)
	out.reverse = m.reverse.onTopOf(base.reverse)
	return out
}

// Apply returns style with the modifier applied.
func (m StyleModifier) Apply(style tcell.Style) tcell.Style {
	fg, bg, attrs := style.Decompose()
	if m.hasFg {
		fg = m.fg
	}
	if m.hasBg {
		bg = m.bg
	}
	out := style.Foreground(fg).Background(bg)
	if m.bold != Keep {
		out = out.Bold(m.bold.apply(attrs&tcell.AttrBold != 0))
	}
	if m.italic != Keep {
		out = out.Italic(m.italic.apply(attrs&tcell.AttrItalic != 0))
	}
	if m.underline != Keep {
		out = out.Underline(m.underline.apply(attrs&tcell.AttrUnderline != 0))
	}
	if m.reverse != Keep {
		out = out.Reverse(m.reverse.apply(attrs&tcell.AttrReverse != 0))
	}
	return out
}
