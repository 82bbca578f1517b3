package domain

import (
	"context"
	"time"
)

// RunRequest describes one command run decorated by a spinner.
type RunRequest struct {
	Context context.Context
	Command string
	// Message is the text shown next to the spinner. Empty derives a
	// default from the command.
	Message string
	Shell   string
	Timeout time.Duration
}

// RunResult captures the outcome of an executed command.
type RunResult struct {
	Ran      bool
	ExitCode int
	Status   ExitStatus
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// DemoStep is one message/command pair in a demo sequence.
type DemoStep struct {
	Message string `yaml:"message"`
	Command string `yaml:"command"`
}

// DemoSequence is a step list loaded from a YAML file.
type DemoSequence struct {
	Steps []DemoStep `yaml:"steps"`
}
