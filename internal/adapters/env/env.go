// Package env translates process-environment signals into explicit
// invocation parameters, so the core never touches process-wide state.
package env

import "os"

// Environment variables consulted at the process boundary.
const (
	// OverrideVar switches dependency resolution from network-fetch-all to
	// selective local override. Any value counts; only presence matters.
	OverrideVar = "EXTBUILD_USE_PREINSTALLED_LIBRARIES"

	// ParallelVar is the build system's own parallelism channel. When the
	// caller sets it, the driver must not add its own -j default.
	ParallelVar = "CMAKE_BUILD_PARALLEL_LEVEL"

	// ToolVar overrides the build-tool executable.
	ToolVar = "CMAKE_EXE"
)

// Invocation is the explicit form of the environment signals.
type Invocation struct {
	// OverrideEnabled selects pre-staged local dependency copies.
	OverrideEnabled bool

	// ParallelismConfigured records a caller-supplied parallelism preference.
	ParallelismConfigured bool

	// Tool overrides the manifest's build-tool executable when non-empty.
	Tool string
}

// Detect reads the environment once and returns the invocation parameters.
func Detect() Invocation {
	var inv Invocation

	if _, ok := os.LookupEnv(OverrideVar); ok {
		inv.OverrideEnabled = true
	}
	if _, ok := os.LookupEnv(ParallelVar); ok {
		inv.ParallelismConfigured = true
	}
	if tool := os.Getenv(ToolVar); tool != "" {
		inv.Tool = tool
	}

	return inv
}
