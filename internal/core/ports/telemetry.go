package ports

import (
	"context"
	"io"
)

// Telemetry records build phases as vertices of a progress display.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for one build phase.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded phase. Its writers receive the external tool's
// output stream verbatim.
type Vertex interface {
	// Stdout returns the writer for the phase's standard output.
	Stdout() io.Writer

	// Stderr returns the writer for the phase's error output.
	Stderr() io.Writer

	// Complete marks the phase finished, successfully or with an error.
	Complete(err error)
}
