package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	pagerui "github.com/kk-code-lab/rpager/internal/ui/pager"
)

func (app *Application) startSearch() {
	app.searching = true
	app.query = ""
}

func (app *Application) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.searching = false
		app.query = ""
	case tcell.KeyEnter:
		app.searching = false
		if app.query != "" {
			app.lastQuery = app.query
		}
		app.query = ""
		app.repeatSearch()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if app.query == "" {
			app.searching = false
			return
		}
		runes := []rune(app.query)
		app.query = string(runes[:len(runes)-1])
	case tcell.KeyRune:
		app.query += string(ev.Rune())
	}
}

// repeatSearch moves to the next line matching the last query.
func (app *Application) repeatSearch() {
	if app.lastQuery == "" {
		app.message = "no previous search"
		return
	}
	match := lineMatcher(app.lastQuery)
	err := app.pager.FindNext(func(_ int, line pagerui.TextLine) bool {
		return match(string(line))
	})
	switch {
	case err == nil:
		app.message = ""
	case errors.Is(err, pagerui.ErrNoMatchingLine), errors.Is(err, pagerui.ErrNoContent):
		app.message = fmt.Sprintf("pattern not found: %s", app.lastQuery)
	default:
		app.message = err.Error()
	}
}

// lineMatcher is a substring match that ignores case unless the query
// contains an upper-case letter.
func lineMatcher(query string) func(string) bool {
	for _, r := range query {
		if unicode.IsUpper(r) {
			return func(line string) bool { return strings.Contains(line, query) }
		}
	}
	lower := strings.ToLower(query)
	return func(line string) bool { return strings.Contains(strings.ToLower(line), lower) }
}
