package pager

import (
	"errors"
	"fmt"
	"io"

	fsutil "github.com/kk-code-lab/rpager/internal/fs"
	"github.com/kk-code-lab/rpager/internal/textutil"
)

var (
	// ErrNoContent is returned by operations that need loaded content.
	ErrNoContent = errors.New("pager has no content")
	// ErrNoMatchingLine is returned when no line satisfies a predicate.
	ErrNoMatchingLine = errors.New("no line matches predicate")
	// ErrScrollLimit is returned by scroll operations that could not move.
	ErrScrollLimit = errors.New("cannot scroll any further")
	// ErrBinaryContent is returned when loading data that is not text.
	ErrBinaryContent = fsutil.ErrBinary
)

// NoLineError reports a request for a line index that does not exist.
type NoLineError struct {
	Index int
}

func (e *NoLineError) Error() string {
	return fmt.Sprintf("no line with index %d", e.Index)
}

// Line is a single pager line. Implementations may carry extra data for
// custom highlighters or decorators.
type Line interface {
	Content() string
}

// TextLine is a plain string line.
type TextLine string

func (l TextLine) Content() string { return string(l) }

// IndexedLine pairs a line with its index in the content.
type IndexedLine[L Line] struct {
	Index int
	Line  L
}

// Content is an immutable list of lines together with their highlighting
// and the decorator drawn next to them. Build it with NewContent or
// ContentFromFile, then attach WithHighlighter and WithDecorator.
type Content[L Line] struct {
	lines     []L
	highlight *HighlightInfo
	decorator Decorator[L]
}

// NewContent displays lines top to bottom, without highlighting or decoration.
func NewContent[L Line](lines []L) *Content[L] {
	return &Content[L]{
		lines:     lines,
		highlight: NoHighlighting(),
		decorator: NoDecorator[L]{},
	}
}

// ContentFromFile loads the lines of a text file.
func ContentFromFile(path string, tabWidth int) (*Content[TextLine], error) {
	text, err := fsutil.ReadTextFile(path)
	if err != nil {
		return nil, err
	}
	return NewContent(textLines(text, tabWidth)), nil
}

// ContentFromReader loads the lines of r. name is used in error messages
// and to reject well-known binary file extensions.
func ContentFromReader(r io.Reader, name string, tabWidth int) (*Content[TextLine], error) {
	text, err := fsutil.ReadText(r, name)
	if err != nil {
		return nil, err
	}
	return NewContent(textLines(text, tabWidth)), nil
}

func textLines(text string, tabWidth int) []TextLine {
	raw := fsutil.SplitLines(text)
	lines := make([]TextLine, len(raw))
	for i, line := range raw {
		lines[i] = TextLine(textutil.NormalizeLine(line, tabWidth))
	}
	return lines
}

// WithHighlighter computes highlighting for all lines with h.
func (c *Content[L]) WithHighlighter(h Highlighter) *Content[L] {
	texts := make([]string, len(c.lines))
	for i, line := range c.lines {
		texts[i] = line.Content()
	}
	info := h.Highlight(texts)
	if info == nil {
		info = NoHighlighting()
	}
	c.highlight = info
	return c
}

// WithDecorator replaces the decorator and returns c.
func (c *Content[L]) WithDecorator(d Decorator[L]) *Content[L] {
	c.SetDecorator(d)
	return c
}

func (c *Content[L]) SetDecorator(d Decorator[L]) {
	if d == nil {
		d = NoDecorator[L]{}
	}
	c.decorator = d
}

func (c *Content[L]) Decorator() Decorator[L] { return c.decorator }

func (c *Content[L]) HighlightInfo() *HighlightInfo { return c.highlight }

func (c *Content[L]) Len() int { return len(c.lines) }

// Line returns the line at index i.
func (c *Content[L]) Line(i int) (L, bool) {
	if i < 0 || i >= len(c.lines) {
		var zero L
		return zero, false
	}
	return c.lines[i], true
}

// View returns the lines in [from,to). The range may exceed the stored
// lines; indices outside are simply left out.
func (c *Content[L]) View(from, to int) []IndexedLine[L] {
	if from < 0 {
		from = 0
	}
	if to > len(c.lines) {
		to = len(c.lines)
	}
	if from >= to {
		return nil
	}
	out := make([]IndexedLine[L], 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, IndexedLine[L]{Index: i, Line: c.lines[i]})
	}
	return out
}
