// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// ProcessRunner runs one external process to completion.
//
// The returned exit code is meaningful only when err is nil; err reports
// spawn-level failures (missing executable, bad working directory), not a
// process that ran and exited non-zero. Output is streamed to the given
// writers unmodified; the orchestrator never parses build-tool output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	Run(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) (int, error)
}
