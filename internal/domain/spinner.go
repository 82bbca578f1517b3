package domain

import (
	"errors"
	"time"
)

// SpinnerFrames is the fixed animation cycle. The set and the interval are
// constants, not configuration.
var SpinnerFrames = []string{"|", "/", "-", "\\"}

// FrameInterval is the delay between two animation frames.
const FrameInterval = 100 * time.Millisecond

// ErrSpinnerRunning is returned by Start while another spinner is still
// active on the same controller.
var ErrSpinnerRunning = errors.New("spinner already running")

// SpinnerState tracks a single animation run from start to stop.
type SpinnerState struct {
	Frames     []string
	FrameIndex int
	Message    string
	Running    bool
	ExitStatus ExitStatus
}

// NewSpinnerState creates the state for one run. The message is fixed for
// the lifetime of the run.
func NewSpinnerState(message string) *SpinnerState {
	return &SpinnerState{
		Frames:  SpinnerFrames,
		Message: message,
		Running: true,
	}
}

// Advance returns the current frame and moves the index forward, wrapping
// modulo the frame count. FrameIndex stays in [0, len(Frames)).
func (s *SpinnerState) Advance() string {
	frame := s.Frames[s.FrameIndex]
	s.FrameIndex = (s.FrameIndex + 1) % len(s.Frames)
	return frame
}

// Finish captures the final status and ends the run.
func (s *SpinnerState) Finish(status ExitStatus) {
	s.ExitStatus = status
	s.Running = false
}
