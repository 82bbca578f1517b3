package spinner

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/doeshing/spinit/internal/domain"
)

// interruptExitCode follows the shell convention of 128 + SIGINT.
const interruptExitCode = 130

// ExitHook stops a still-running spinner when the process terminates,
// whether through a normal return, an error path, or an interrupt signal.
// It funnels through the per-handle stop guard in Controller.Stop, so an
// explicit stop plus the hook never prints a second result line.
type ExitHook struct {
	controller *Controller
	signals    chan os.Signal
	exit       func(int)
}

// NewExitHook creates a hook for c.
func NewExitHook(c *Controller) *ExitHook {
	return &ExitHook{
		controller: c,
		exit:       os.Exit,
	}
}

// Install registers the SIGINT/SIGTERM handler. The returned function
// releases the handler again.
func (e *ExitHook) Install() func() {
	e.signals = make(chan os.Signal, 1)
	signal.Notify(e.signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if _, ok := <-e.signals; !ok {
			return
		}
		e.interrupted()
	}()
	return func() {
		signal.Stop(e.signals)
		close(e.signals)
	}
}

// interrupted tears down the spinner and re-exits. An interrupted run did
// not succeed, so the result line shows a failure.
func (e *ExitHook) interrupted() {
	e.controller.StopActive(domain.StatusFailure)
	e.exit(interruptExitCode)
}

// Finalize stops a still-running spinner with the process's final status.
// Call it on every exit path once the foreground work has finished; after
// an explicit stop it does nothing.
func (e *ExitHook) Finalize(status domain.ExitStatus) {
	e.controller.StopActive(status)
}
