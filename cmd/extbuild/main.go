// Package main is the entry point for the extbuild tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.kinematix.dev/extbuild/cmd/extbuild/commands"
	"go.kinematix.dev/extbuild/internal/app"
	"go.kinematix.dev/extbuild/internal/core/domain"
	_ "go.kinematix.dev/extbuild/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a full error report with stack trace and metadata
		// when formatted with %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)

		var spErr *domain.SubprocessError
		if errors.As(err, &spErr) && spErr.ExitCode > 0 {
			return spErr.ExitCode
		}
		return 1
	}
	return 0
}
