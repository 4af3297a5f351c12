package render

import "github.com/gdamore/tcell/v2"

// ColorTheme holds the colors of the pager chrome around the content.
type ColorTheme struct {
	StatusBg  tcell.Color
	StatusFg  tcell.Color
	MessageFg tcell.Color
	PromptFg  tcell.Color
	HelpBg    tcell.Color
	HelpFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		StatusBg:  tcell.Color33,
		StatusFg:  tcell.ColorWhite,
		MessageFg: tcell.Color220,
		PromptFg:  tcell.ColorWhite,
		HelpBg:    tcell.Color234,
		HelpFg:    tcell.Color252,
	}
}

func (t ColorTheme) statusStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.StatusBg).Foreground(t.StatusFg)
}
