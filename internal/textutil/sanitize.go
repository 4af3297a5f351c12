package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const DefaultTabWidth = 4

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x180E: "⟪MVS⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// NormalizeLine prepares one line of file content for cell-based drawing:
// tabs become spaces up to the next tab stop, control characters become '?',
// bidi or zero-width formatting runes are replaced by visible labels so
// file content cannot reorder or hide text on screen, and invalid UTF-8 bytes
// become U+FFFD so byte offsets agree with what highlighters see.
func NormalizeLine(text string, tabWidth int) string {
	if !needsNormalizing(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	column := 0
	for _, r := range text {
		switch {
		case r == '\t':
			spaces := 1
			if tabWidth > 0 {
				spaces = tabWidth - (column % tabWidth)
			}
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case isFormattingRune(r):
			label := formattingRuneLabels[r]
			b.WriteString(label)
			column += DisplayWidth(label)
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
			column++
		default:
			b.WriteRune(r)
			if w := runewidth.RuneWidth(r); w > 0 {
				column += w
			}
		}
	}
	return b.String()
}

func needsNormalizing(text string) bool {
	if !utf8.ValidString(text) {
		return true
	}
	for _, r := range text {
		if r < 0x20 || r == 0x7f || isFormattingRune(r) {
			return true
		}
	}
	return false
}

// HasFormattingRunes reports whether text contains bidi or zero-width formatting runes.
func HasFormattingRunes(text string) bool {
	for _, r := range text {
		if isFormattingRune(r) {
			return true
		}
	}
	return false
}

func isFormattingRune(r rune) bool {
	_, ok := formattingRuneLabels[r]
	return ok
}

// ClusterWidth is the number of terminal cells one grapheme cluster occupies, at least 1.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	return w
}

// DisplayWidth reports the printable width of text, cluster by cluster.
func DisplayWidth(text string) int {
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width += ClusterWidth(gr.Str())
	}
	return width
}
