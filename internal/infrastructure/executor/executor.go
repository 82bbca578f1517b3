// Package executor runs the foreground commands whose progress the spinner
// decorates.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/spinit/internal/domain"
	"github.com/doeshing/spinit/internal/ports"
)

// Local runs commands on the host shell.
type Local struct {
	shell string
}

// NewLocal builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewLocal(shell string) *Local {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Local{shell: shell}
}

// Execute implements ports.CommandExecutor. A command that ran and exited
// non-zero is a normal outcome: the failure is carried in the result's
// status, not in the returned error. The error is reserved for commands
// that could not run at all.
func (e *Local) Execute(ctx context.Context, command, shell string) (domain.RunResult, error) {
	if shell == "" {
		shell = e.shell
	}

	c := exec.CommandContext(ctx, shell, "-c", command)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()

	result := domain.RunResult{
		Ran:      true,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Status = domain.StatusFromCode(result.ExitCode)
		result.Err = err
		return result, nil
	}
	if err != nil {
		result.Ran = false
		result.ExitCode = -1
		result.Status = domain.StatusFailure
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*Local)(nil)
