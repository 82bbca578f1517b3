package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/spinit/internal/app"
	"github.com/doeshing/spinit/internal/domain"
)

// newRunCommand creates the 'run' command
func newRunCommand(container *app.Container) *cobra.Command {
	var (
		message string
		shell   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command...>",
		Short: "Run a command behind a spinner",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.RunService.Run(domain.RunRequest{
				Context: cmd.Context(),
				Command: strings.Join(args, " "),
				Message: message,
				Shell:   shell,
				Timeout: timeout,
			})
			if err != nil {
				return err
			}

			echoOutput(cmd, result)
			if result.ExitCode != 0 {
				return &domain.ExitCodeError{Code: result.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Text shown next to the spinner")
	cmd.Flags().StringVar(&shell, "shell", "", "Shell used to run the command")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the command after this duration")
	return cmd
}

// echoOutput replays the captured command output after the spinner line has
// been resolved, keeping the stream single-writer while the animation runs.
func echoOutput(cmd *cobra.Command, result domain.RunResult) {
	if result.Stdout != "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	}
	if result.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	}
}
