package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/rpager/internal/textutil"
	"github.com/kk-code-lab/rpager/internal/ui/canvas"
)

// Status is what the bottom line of the pager shows.
type Status struct {
	Name    string
	Lexer   string
	Line    int // 0-based active line
	Total   int
	Message string
	// Prompt, when non-empty, replaces the status with an input line.
	Prompt string
	Input  string
}

// FormatStatus renders the left and right halves of the status line.
func FormatStatus(s Status) (left, right string) {
	parts := make([]string, 0, 3)
	if s.Name != "" {
		parts = append(parts, s.Name)
	}
	if s.Lexer != "" {
		parts = append(parts, s.Lexer)
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	left = strings.Join(parts, " · ")

	if s.Total == 0 {
		return left, "empty"
	}
	line := s.Line + 1
	percent := line * 100 / s.Total
	return left, fmt.Sprintf("%d/%d %3d%%", line, s.Total, percent)
}

// DrawStatus draws s into the single-row window win.
func DrawStatus(win canvas.Window, theme ColorTheme, s Status) {
	win.SetDefaultStyle(theme.statusStyle())
	win.Fill(' ')
	width := win.Width()
	cursor := canvas.NewCursor(&win)

	if s.Prompt != "" {
		cursor.SetStyleModifier(canvas.NewStyleModifier().Foreground(theme.PromptFg).Bold(true))
		cursor.Write(truncateToWidth(s.Prompt+s.Input, width))
		return
	}

	_, right := FormatStatus(s)
	right = " " + right + " "
	rightWidth := textutil.DisplayWidth(right)
	if rightWidth > width {
		right = ""
		rightWidth = 0
	}

	// The message is drawn after name and lexer in its own color.
	head, _ := FormatStatus(Status{Name: s.Name, Lexer: s.Lexer})
	avail := width - rightWidth - 2
	head = truncateToWidth(head, avail)
	cursor.MoveTo(1, 0)
	cursor.Write(head)
	if s.Message != "" {
		msg := s.Message
		if head != "" {
			msg = " · " + msg
		}
		cursor.SetStyleModifier(canvas.NewStyleModifier().Foreground(theme.MessageFg).Bold(true))
		cursor.Write(truncateToWidth(msg, avail-textutil.DisplayWidth(head)))
	}
	cursor.SetStyleModifier(canvas.NewStyleModifier())
	cursor.MoveTo(width-rightWidth, 0)
	cursor.Write(right)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if textutil.DisplayWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	if width <= 1 {
		return ellipsis
	}
	var b strings.Builder
	current := 0
	for _, r := range text {
		w := textutil.DisplayWidth(string(r))
		if current+w > width-1 {
			break
		}
		b.WriteRune(r)
		current += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
