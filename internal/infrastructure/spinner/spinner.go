// Package spinner renders a single-line terminal animation for in-flight
// work and reports the outcome with exactly one success or failure line.
package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/doeshing/spinit/internal/domain"
	"github.com/doeshing/spinit/internal/ports"
)

var (
	successMark = color.New(color.FgGreen, color.Bold).Sprint("✓")
	failureMark = color.New(color.FgRed, color.Bold).Sprint("✗")
)

// Controller owns the animation loop and its lifecycle. At most one spinner
// is active per controller at a time; independent controllers are
// independent spinners.
type Controller struct {
	writer   io.Writer
	interval time.Duration

	mu     sync.Mutex
	active *Handle
}

// Handle identifies one running spinner. It is returned by Start and
// required by Stop.
type Handle struct {
	state *domain.SpinnerState
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// Message returns the text displayed alongside the animation.
func (h *Handle) Message() string {
	return h.state.Message
}

// New creates a controller writing to w.
func New(w io.Writer) *Controller {
	return &Controller{
		writer:   w,
		interval: domain.FrameInterval,
	}
}

// Start schedules the animation loop and returns without waiting for a
// frame to render. It fails with domain.ErrSpinnerRunning while a previous
// spinner on this controller has not been stopped.
func (c *Controller) Start(message string) (ports.SpinnerHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return nil, domain.ErrSpinnerRunning
	}

	h := &Handle{
		state: domain.NewSpinnerState(message),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	c.active = h
	go c.animate(h)
	return h, nil
}

func (c *Controller) animate(h *Handle) {
	defer close(h.done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		fmt.Fprintf(c.writer, "\r%s %s", h.state.Advance(), h.state.Message)
		select {
		case <-h.stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop cancels the animation, erases the spinner line, and writes one
// result line for the given status. The animation loop is confirmed gone
// before anything else is written, so no frame output can trail the result
// line. Stopping a nil, unknown, or already-stopped handle is a no-op.
func (c *Controller) Stop(handle ports.SpinnerHandle, status domain.ExitStatus) {
	h, ok := handle.(*Handle)
	if !ok || h == nil {
		return
	}
	h.once.Do(func() {
		close(h.stop)
		<-h.done
		h.state.Finish(status)

		fmt.Fprint(c.writer, "\r\033[K")
		mark := successMark
		if !status.Success() {
			mark = failureMark
		}
		fmt.Fprintf(c.writer, "%s %s\n", mark, h.state.Message)

		c.mu.Lock()
		if c.active == h {
			c.active = nil
		}
		c.mu.Unlock()
	})
}

// StopActive stops whichever spinner is currently running, if any. Used by
// the exit hook, which holds no handle of its own.
func (c *Controller) StopActive(status domain.ExitStatus) {
	c.mu.Lock()
	h := c.active
	c.mu.Unlock()
	if h != nil {
		c.Stop(h, status)
	}
}

var _ ports.ProgressReporter = (*Controller)(nil)
