// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The application depends on these abstractions, never
// on concrete implementations like the terminal renderer or the history database.
package ports

import (
	"context"

	"github.com/doeshing/spinit/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.spinit/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SpinnerHandle is the opaque token identifying one running spinner. It is
// returned by ProgressReporter.Start and required by Stop.
type SpinnerHandle interface {
	Message() string
}

// ProgressReporter renders an in-progress indicator alongside foreground work
// and reports the final outcome exactly once per handle. Stopping an unknown
// or already-stopped handle is a silent no-op, so explicit stops and
// process-exit cleanup can overlap safely.
type ProgressReporter interface {
	Start(message string) (SpinnerHandle, error)
	Stop(handle SpinnerHandle, status domain.ExitStatus)
}

// CommandExecutor runs shell commands. An empty shell selects the
// executor's default.
type CommandExecutor interface {
	Execute(ctx context.Context, command, shell string) (domain.RunResult, error)
}

// HistoryRepository persists run outcomes.
type HistoryRepository interface {
	Save(record domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
}

// Logger provides leveled logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
