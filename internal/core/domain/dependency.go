package domain

// Pin records the identity of one pinned third-party dependency of the
// native component. The orchestrator treats the pin as opaque packaging
// metadata; it only checks the id against the override tables.
type Pin struct {
	// ID is the dependency identifier (e.g., "abseil-cpp", "osqp").
	ID string

	// Version is the pinned version identity (a tag, commit, or release).
	Version string
}

// Overrides maps dependency identifiers to pre-staged local copies.
// An entry is only honored when its path exists on disk at resolve time;
// a missing path falls back to network fetch for that dependency alone.
type Overrides struct {
	// SourceDirs maps dependency id to a pre-staged source checkout.
	SourceDirs map[string]string

	// Archives maps dependency id to a pre-downloaded release archive.
	Archives map[string]string
}
