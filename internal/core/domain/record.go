package domain

import "time"

// BuildRecord is the persisted outcome of one build of a target. The
// fingerprint lets a later invocation tell that the staging directory was
// configured with different arguments; this is diagnostic only and never
// skips a phase.
type BuildRecord struct {
	Target          string    `json:"target,omitzero"`
	ArgsFingerprint string    `json:"args_fingerprint,omitzero"`
	Mode            Mode      `json:"mode,omitzero"`
	Timestamp       time.Time `json:"timestamp,omitzero"`
}
