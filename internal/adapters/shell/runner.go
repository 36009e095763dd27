// Package shell provides the subprocess-backed process runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes argv in dir, streaming output to the given writers verbatim.
//
// A process that started and exited non-zero is not an error at this
// boundary: the exit code is returned with a nil error and the caller
// decides what it means. Only spawn-level failures return a non-nil error.
func (r *Runner) Run(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return -1, zerr.New("empty command")
	}

	r.logger.Info("exec: " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the resolved build configuration
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to start process"), "command", argv[0])
	}

	return 0, nil
}
