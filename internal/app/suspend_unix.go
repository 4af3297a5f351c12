//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	_ = app.screen.Suspend()
	// Stop only this process so a wrapping shell keeps job control.
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTSTP); err != nil {
		app.logger.Warn().Err(err).Msg("suspend failed")
		app.resumeAfterStop()
	}
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.logger.Error().Err(err).Msg("resume failed")
		return false
	}
	app.screen.EnableMouse()
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}
