package pager

import "github.com/kk-code-lab/rpager/internal/ui/canvas"

// Highlighter computes style information for a document given as lines.
type Highlighter interface {
	Highlight(lines []string) *HighlightInfo
}

// StyleChange switches to Style starting at byte Offset of a line.
type StyleChange struct {
	Offset int
	Style  canvas.StyleModifier
}

// HighlightInfo is the result of a Highlight call. StyleChanges holds one
// ordered slice per line; DefaultStyle applies where no change is in effect.
type HighlightInfo struct {
	StyleChanges [][]StyleChange
	DefaultStyle canvas.StyleModifier
}

// NoHighlighting returns info that changes no styles.
func NoHighlighting() *HighlightInfo {
	return &HighlightInfo{}
}

// ForLine returns the changes for line i, or nil if there are none.
func (h *HighlightInfo) ForLine(i int) []StyleChange {
	if h == nil || i < 0 || i >= len(h.StyleChanges) {
		return nil
	}
	return h.StyleChanges[i]
}
