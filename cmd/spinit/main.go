package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/spinit/internal/domain"
	"github.com/doeshing/spinit/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	root, hook, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	release := hook.Install()
	defer release()

	if err := root.ExecuteContext(ctx); err != nil {
		hook.Finalize(domain.StatusFailure)

		// A non-zero command exit already produced its failure line;
		// propagate the code without an extra message.
		var exitErr *domain.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	hook.Finalize(domain.StatusSuccess)
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("SPINIT_DEBUG"), "1") || strings.EqualFold(os.Getenv("SPINIT_DEBUG"), "true")
}
