package ports

import "go.kinematix.dev/extbuild/internal/core/domain"

// BuildStateStore persists per-target build records across invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildStateStore interface {
	// Get returns the record for the target, or nil if none exists.
	Get(target string) (*domain.BuildRecord, error)

	// Put saves the record, replacing any previous one for the same target.
	Put(record domain.BuildRecord) error

	// Delete removes the record for the target, if present.
	Delete(target string) error
}
