package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/rpager/internal/ui/canvas"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		entries: []helpOverlayEntry{
			{keys: "↓ / j", desc: "Next line"},
			{keys: "↑ / k", desc: "Previous line"},
			{keys: "PgDn / Space / f", desc: "Page down"},
			{keys: "PgUp / b", desc: "Page up"},
			{keys: "Home / g", desc: "First line"},
			{keys: "End / G", desc: "Last line"},
		},
	},
	{
		title: "Search",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Search forward"},
			{keys: "n", desc: "Next match"},
			{keys: "Esc", desc: "Cancel search input"},
		},
	},
	{
		title: "Display",
		entries: []helpOverlayEntry{
			{keys: "l", desc: "Toggle line numbers"},
			{keys: "Ctrl+L", desc: "Redraw screen"},
			{keys: "Mouse wheel", desc: "Scroll one line"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q / Esc", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "Ctrl+Z", desc: "Suspend to shell"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 24)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-18s %s", entry.keys, entry.desc))
		}
	}
	return lines
}

// DrawHelpOverlay covers win with the key reference.
func DrawHelpOverlay(win canvas.Window, theme ColorTheme) {
	win.SetDefaultStyle(win.DefaultStyle().Background(theme.HelpBg).Foreground(theme.HelpFg))
	win.Fill(' ')
	w, h := win.Width(), win.Height()
	if w <= 0 || h <= 0 {
		return
	}

	cursor := canvas.NewCursor(&win)
	header := canvas.NewStyleModifier().Background(theme.StatusBg).Foreground(theme.StatusFg).Bold(true)

	title := " Help "
	start := 0
	if w > len(title) {
		start = (w - len(title)) / 2
	}
	cursor.SetStyleModifier(header)
	cursor.MoveTo(start, 0)
	cursor.Write(title)

	cursor.SetStyleModifier(canvas.NewStyleModifier())
	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		cursor.MoveTo(2, row)
		cursor.Write(truncateToWidth(strings.TrimRight(line, " "), w-4))
		row++
	}

	if h > 1 {
		cursor.SetStyleModifier(header)
		cursor.MoveTo(0, h-1)
		cursor.Write(truncateToWidth("? toggle · Esc/q close", w))
	}
}
