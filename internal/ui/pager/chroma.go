package pager

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpager/internal/ui/canvas"
)

// DefaultStyleName is the chroma style used when none is configured.
const DefaultStyleName = "monokai"

// ChromaHighlighter highlights with a chroma lexer and style.
type ChromaHighlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewChromaHighlighter uses plain text and the chroma fallback style for nil arguments.
func NewChromaHighlighter(lexer chroma.Lexer, style *chroma.Style) *ChromaHighlighter {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaHighlighter{
		lexer: chroma.Coalesce(lexer),
		style: style,
	}
}

// LexerName is the chroma name of the lexer in use.
func (h *ChromaHighlighter) LexerName() string {
	return h.lexer.Config().Name
}

// StyleName is the chroma name of the style in use.
func (h *ChromaHighlighter) StyleName() string {
	return h.style.Name
}

// Highlight tokenises the whole document at once so constructs spanning
// lines (block comments, raw strings) are styled correctly.
func (h *ChromaHighlighter) Highlight(lines []string) *HighlightInfo {
	background := h.style.Get(chroma.Background)
	info := &HighlightInfo{DefaultStyle: modifierFromEntry(background)}
	if len(lines) == 0 {
		return info
	}

	iter, err := h.lexer.Tokenise(nil, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return info
	}

	cache := make(map[chroma.TokenType]canvas.StyleModifier)
	styleFor := func(tt chroma.TokenType) canvas.StyleModifier {
		if m, ok := cache[tt]; ok {
			return m
		}
		m := modifierFromEntry(h.style.Get(tt).Inherit(background))
		cache[tt] = m
		return m
	}

	tokenLines := chroma.SplitTokensIntoLines(iter.Tokens())
	info.StyleChanges = make([][]StyleChange, len(lines))
	for i := range lines {
		if i >= len(tokenLines) {
			break
		}
		offset := 0
		var changes []StyleChange
		for _, tok := range tokenLines[i] {
			value := strings.TrimSuffix(tok.Value, "\n")
			if value == "" {
				continue
			}
			changes = append(changes, StyleChange{Offset: offset, Style: styleFor(tok.Type)})
			offset += len(value)
		}
		info.StyleChanges[i] = changes
	}
	return info
}

func modifierFromEntry(entry chroma.StyleEntry) canvas.StyleModifier {
	m := canvas.NewStyleModifier()
	if entry.Colour.IsSet() {
		m = m.Foreground(tcellColor(entry.Colour))
	}
	if entry.Background.IsSet() {
		m = m.Background(tcellColor(entry.Background))
	}
	m = m.BoldMode(trileanMode(entry.Bold))
	m = m.ItalicMode(trileanMode(entry.Italic))
	m = m.UnderlineMode(trileanMode(entry.Underline))
	return m
}

func tcellColor(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func trileanMode(t chroma.Trilean) canvas.BoolMode {
	switch t {
	case chroma.Yes:
		return canvas.Set
	case chroma.No:
		return canvas.Unset
	default:
		return canvas.Keep
	}
}

// LexerFor picks a lexer by explicit name, then by file name, then by
// analysing sample. Plain text is the fallback.
func LexerFor(filename, name, sample string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if filename != "" {
		if l := lexers.Match(filepath.Base(filename)); l != nil {
			return l
		}
	}
	if sample != "" {
		if l := lexers.Analyse(sample); l != nil {
			return l
		}
	}
	return lexers.Fallback
}

// StyleByName returns the named chroma style, or the fallback style.
func StyleByName(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyleName
	}
	return styles.Get(name)
}

func LexerNames() []string {
	names := lexers.Names(false)
	sort.Strings(names)
	return names
}

func StyleNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}
