// Package telemetry provides phase-recording adapters for build progress.
package telemetry

import (
	"context"
	"io"

	"go.kinematix.dev/extbuild/internal/core/ports"
)

// Stream implements ports.Telemetry by handing the build tool's output
// directly to the invoker's own streams, unmodified. This is the default:
// the orchestrator never parses or reformats build-tool output.
type Stream struct {
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// NewStream creates a pass-through telemetry adapter.
func NewStream(stdout, stderr io.Writer, logger ports.Logger) *Stream {
	return &Stream{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Record announces the phase and returns a pass-through vertex.
func (s *Stream) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	s.logger.Info(name)
	return ctx, &streamVertex{stream: s, name: name}
}

// Close does nothing; the underlying streams are owned by the caller.
func (s *Stream) Close() error {
	return nil
}

type streamVertex struct {
	stream *Stream
	name   string
}

func (v *streamVertex) Stdout() io.Writer {
	return v.stream.stdout
}

func (v *streamVertex) Stderr() io.Writer {
	return v.stream.stderr
}

func (v *streamVertex) Complete(err error) {
	if err != nil {
		v.stream.logger.Warn(v.name + " failed")
	}
}
