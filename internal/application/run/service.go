// Package run orchestrates a spinner-decorated command execution.
package run

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doeshing/spinit/internal/domain"
	"github.com/doeshing/spinit/internal/ports"
)

// Service runs one command behind a spinner and records the outcome.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Executor       ports.CommandExecutor
	Reporter       ports.ProgressReporter
	History        ports.HistoryRepository
	Logger         ports.Logger
}

// Run executes a single request. The spinner is a visual aid only: if it
// cannot start, the command still runs and the result still comes back.
func (s *Service) Run(req domain.RunRequest) (domain.RunResult, error) {
	if s.ConfigProvider == nil || s.Executor == nil || s.Reporter == nil || s.Logger == nil {
		return domain.RunResult{}, errors.New("run.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunResult{}, fmt.Errorf("load config: %w", err)
	}

	timeout := req.Timeout
	if timeout == 0 && cfg.Execution.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Execution.TimeoutSeconds) * time.Second
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	message := req.Message
	if message == "" {
		message = "Running " + req.Command
	}

	handle, err := s.Reporter.Start(message)
	if err != nil {
		s.Logger.Warn("spinner unavailable", map[string]interface{}{"error": err.Error()})
		handle = nil
	}

	shell := req.Shell
	if shell == "" {
		shell = cfg.Execution.Shell
	}

	result, execErr := s.Executor.Execute(ctx, req.Command, shell)
	s.Reporter.Stop(handle, result.Status)

	if cfg.History.Enabled && s.History != nil {
		rec := domain.RunRecord{
			Timestamp:  time.Now(),
			Message:    message,
			Command:    req.Command,
			ExitCode:   result.ExitCode,
			Success:    result.Status.Success(),
			DurationMS: result.Duration.Milliseconds(),
		}
		if err := s.History.Save(rec); err != nil {
			s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if execErr != nil {
		return result, fmt.Errorf("execute command: %w", execErr)
	}
	return result, nil
}
