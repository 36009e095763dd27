package ports

import "go.kinematix.dev/extbuild/internal/core/domain"

// ManifestLoader loads the packaging layer's static configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and validates the manifest at the given path.
	Load(path string) (*domain.Manifest, error)
}
