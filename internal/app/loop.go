package app

import (
	"errors"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpager/internal/ui/canvas"
	pagerui "github.com/kk-code-lab/rpager/internal/ui/pager"
	renderui "github.com/kk-code-lab/rpager/internal/ui/render"
)

// Run starts the event loop and blocks until the user quits.
func (app *Application) Run() {
	app.screen.EnableMouse()
	app.render()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		renderPending := false
		select {
		case ev := <-eventChan:
			renderPending = app.handleEvent(ev)
		case <-sigContCh:
			renderPending = app.resumeAfterStop()
		}
		if renderPending && !app.shouldQuit {
			app.render()
		}
	}
	app.logger.Debug().Int("line", app.pager.CurrentLineIndex()).Msg("quit")
}

// handleEvent reports whether the screen needs to be redrawn.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		// PollEvent returns nil once the screen is finalized.
		app.shouldQuit = true
		return false
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) bool {
	if app.searching {
		app.handleSearchKey(ev)
		return true
	}
	if app.helpVisible {
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q')) {
			app.helpVisible = false
		}
		return true
	}

	app.message = ""
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		app.shouldQuit = true
		return false
	case tcell.KeyCtrlZ:
		app.suspendToShell()
		return false
	case tcell.KeyCtrlL:
		app.screen.Sync()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			app.shouldQuit = true
			return false
		case '?':
			app.helpVisible = true
			return true
		case '/':
			app.startSearch()
			return true
		case 'n':
			app.repeatSearch()
			return true
		case 'l':
			app.toggleLineNumbers()
			return true
		}
	}

	if handled, err := app.scroll.Handle(ev); handled {
		app.noteScrollError(err)
		return true
	}
	if handled, err := app.paging.Handle(ev); handled {
		app.noteScrollError(err)
		return true
	}
	return false
}

func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	var err error
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		err = app.pager.ScrollBackwards()
	case ev.Buttons()&tcell.WheelDown != 0:
		err = app.pager.ScrollForwards()
	default:
		return false
	}
	app.noteScrollError(err)
	return true
}

// noteScrollError drops the expected end-of-content errors and surfaces the rest.
func (app *Application) noteScrollError(err error) {
	if err == nil || errors.Is(err, pagerui.ErrScrollLimit) || errors.Is(err, pagerui.ErrNoContent) {
		return
	}
	app.logger.Warn().Err(err).Msg("scroll failed")
	app.message = err.Error()
}

func (app *Application) status() renderui.Status {
	s := renderui.Status{
		Name:    app.doc.Name,
		Lexer:   app.doc.Lexer,
		Line:    app.pager.CurrentLineIndex(),
		Total:   app.doc.Content.Len(),
		Message: app.message,
	}
	if app.searching {
		s.Prompt = "/"
		s.Input = app.query
	}
	return s
}

func (app *Application) render() {
	app.screen.Clear()
	root := canvas.RootWindow(app.screen)
	if root.Height() < 1 {
		app.screen.Show()
		return
	}

	body, statusRow, err := root.SplitRows(root.Height() - 1)
	if err != nil {
		app.logger.Error().Err(err).Msg("layout failed")
		return
	}
	if app.helpVisible {
		renderui.DrawHelpOverlay(body, app.theme)
	} else {
		app.pager.Draw(body)
	}
	renderui.DrawStatus(statusRow, app.theme, app.status())
	app.screen.Show()
}
