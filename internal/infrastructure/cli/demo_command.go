package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/spinit/internal/app"
	"github.com/doeshing/spinit/internal/domain"
)

// builtinDemoSteps mirrors the classic tutorial sequence: a few short tasks
// run back to back, each resolved with its own result line.
var builtinDemoSteps = []domain.DemoStep{
	{Message: "Resolving dependencies", Command: "sleep 1"},
	{Message: "Compiling sources", Command: "sleep 1"},
	{Message: "Running checks", Command: "sleep 1"},
}

// newDemoCommand creates the 'demo' command
func newDemoCommand(container *app.Container) *cobra.Command {
	var (
		stepFile string
		withFail bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay a demo sequence behind the spinner",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := demoSteps(stepFile, withFail)
			if err != nil {
				return err
			}
			return runDemoSteps(container, cmd, steps)
		},
	}

	cmd.Flags().StringVar(&stepFile, "file", "", "YAML file with demo steps")
	cmd.Flags().BoolVar(&withFail, "fail", false, "Append a failing step to demonstrate the failure line")
	return cmd
}

// demoSteps resolves the step list from the flag set.
func demoSteps(stepFile string, withFail bool) ([]domain.DemoStep, error) {
	steps := builtinDemoSteps
	if stepFile != "" {
		loaded, err := loadDemoSteps(stepFile)
		if err != nil {
			return nil, err
		}
		steps = loaded
	}
	if withFail {
		steps = append(steps, domain.DemoStep{Message: "Publishing artifacts", Command: "exit 1"})
	}
	return steps, nil
}

// loadDemoSteps reads a DemoSequence from a YAML file.
func loadDemoSteps(path string) ([]domain.DemoStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read demo steps: %w", err)
	}
	var seq domain.DemoSequence
	if err := yaml.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("parse demo steps: %w", err)
	}
	if len(seq.Steps) == 0 {
		return nil, fmt.Errorf("demo steps file %s contains no steps", path)
	}
	return seq.Steps, nil
}

// runDemoSteps runs every step; a failing step shows its failure line and
// the sequence continues.
func runDemoSteps(container *app.Container, cmd *cobra.Command, steps []domain.DemoStep) error {
	for _, step := range steps {
		if _, err := container.RunService.Run(domain.RunRequest{
			Context: cmd.Context(),
			Command: step.Command,
			Message: step.Message,
		}); err != nil {
			return err
		}
	}
	return nil
}
