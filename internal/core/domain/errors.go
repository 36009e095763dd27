package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrOutputDirNotAbsolute is returned when a BuildContext carries a relative output directory.
	ErrOutputDirNotAbsolute = zerr.New("output directory must be absolute")

	// ErrInvalidPythonVersion is returned when an interpreter version string cannot be parsed.
	ErrInvalidPythonVersion = zerr.New("invalid python version")

	// ErrTargetNotFound is returned when a requested extension is not in the manifest.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrUnknownDependency is returned when an override names a dependency that is not pinned.
	ErrUnknownDependency = zerr.New("override for unknown dependency")
)

// SubprocessError reports a non-zero exit from one of the build tool's two
// phases. The tool's own output has already been streamed through
// unmodified; the error carries only the phase identity and exit code.
type SubprocessError struct {
	Phase    Phase
	ExitCode int
}

// Error implements the error interface.
func (e *SubprocessError) Error() string {
	return fmt.Sprintf("%s phase exited with code %d", strings.ToLower(string(e.Phase)), e.ExitCode)
}
