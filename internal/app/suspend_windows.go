//go:build windows

package app

// Windows has no job control; suspending is a no-op.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool {
	return false
}
