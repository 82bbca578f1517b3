package domain

import "time"

// RunRecord captures one completed run.
type RunRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message"`
	Command    string    `json:"command"`
	ExitCode   int       `json:"exit_code"`
	Success    bool      `json:"success"`
	DurationMS int64     `json:"duration_ms"`
}
