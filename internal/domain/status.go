package domain

import "fmt"

// ExitStatus is a process-style result code. Zero denotes success, anything
// else failure.
type ExitStatus int

const (
	StatusSuccess ExitStatus = 0
	StatusFailure ExitStatus = 1
)

// Success reports whether the status denotes success.
func (s ExitStatus) Success() bool {
	return s == StatusSuccess
}

// StatusFromCode converts a raw process exit code.
func StatusFromCode(code int) ExitStatus {
	return ExitStatus(code)
}

// StatusFromError collapses an error into a binary status.
func StatusFromError(err error) ExitStatus {
	if err == nil {
		return StatusSuccess
	}
	return StatusFailure
}

// ExitCodeError carries a command's non-zero exit code up to the process
// exit without losing it to a generic error message.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}
