package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects the optimization level of the native build.
// It is a binary choice; intermediate modes like RelWithDebInfo are
// deliberately unsupported to keep the configuration surface minimal.
type Mode string

const (
	// ModeDebug builds with debug information and no optimization.
	ModeDebug Mode = "Debug"
	// ModeRelease builds optimized.
	ModeRelease Mode = "Release"
)

// ModeFromDebug maps the invoking frontend's boolean debug flag to a Mode.
func ModeFromDebug(debug bool) Mode {
	if debug {
		return ModeDebug
	}
	return ModeRelease
}

// PythonVersion is the interpreter version triple the extension is built against.
type PythonVersion struct {
	Major int
	Minor int
	Patch int
}

// ParsePythonVersion parses "3.11" or "3.11.4" into a PythonVersion.
func ParsePythonVersion(s string) (PythonVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return PythonVersion{}, zerr.With(ErrInvalidPythonVersion, "version", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return PythonVersion{}, zerr.With(ErrInvalidPythonVersion, "version", s)
		}
		nums[i] = n
	}

	v := PythonVersion{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		v.Patch = nums[2]
	}
	return v, nil
}

// FlagValue renders the "major.minor" form consumed by the build system.
func (v PythonVersion) FlagValue() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// String renders the full triple.
func (v PythonVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BuildContext carries the per-invocation inputs of one build.
// It is derived fresh for every invocation and discarded afterwards.
type BuildContext struct {
	// OutputDir is where the finished artifact must land. It must be
	// absolute; the resolver normalizes it to end in a path separator,
	// which the build system's native-library auto-discovery requires.
	OutputDir string

	// Mode is the Debug/Release selector.
	Mode Mode

	// Python is the interpreter executable the extension targets.
	Python string

	// PythonVersion is the interpreter version triple.
	PythonVersion PythonVersion

	// StagingDir is the working directory for the build system's
	// intermediate files. It persists across invocations so rebuilds
	// are incremental.
	StagingDir string

	// ParallelismConfigured records that the invoking environment already
	// expressed a parallelism preference through the build system's own
	// channel. When set, the driver must not add its own -j default.
	ParallelismConfigured bool
}
