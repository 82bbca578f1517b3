// Package cli assembles the cobra command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/spinit/internal/app"
	"github.com/doeshing/spinit/internal/infrastructure/spinner"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The returned exit hook must be
// installed by the caller before executing the tree and finalized on every
// exit path.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, *spinner.ExitHook, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}

	hook := spinner.NewExitHook(container.Spinner)

	root := &cobra.Command{
		Use:   "spinit",
		Short: "spinit - spinner-decorated command runner",
		Long:  "spinit runs commands behind a single-line terminal spinner and reports the outcome with exactly one success or failure line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newDemoCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newVersionCommand())
	return root, hook, nil
}
