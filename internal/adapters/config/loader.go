// Package config provides the manifest loader for extbuild.
package config

import (
	"fmt"
	"os"
	"slices"

	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the manifest leaves a field empty.
const (
	defaultPrefix = "EXTBUILD"
	defaultPython = "python3"
	defaultTool   = "cmake"
)

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileManifestLoader.
func NewLoader(logger ports.Logger) *FileManifestLoader {
	return &FileManifestLoader{logger: logger}
}

// Load reads and validates the manifest at the given path.
// Targets and dependency pins come out sorted by name so every consumer
// sees the same deterministic order regardless of YAML map iteration.
func (l *FileManifestLoader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	return l.validate(&dto)
}

func (l *FileManifestLoader) validate(dto *manifestDTO) (*domain.Manifest, error) {
	m := &domain.Manifest{
		Prefix: dto.Prefix,
		Python: dto.Python.Executable,
	}
	if m.Prefix == "" {
		m.Prefix = defaultPrefix
	}
	if m.Python == "" {
		m.Python = defaultPython
	}

	version, err := domain.ParsePythonVersion(dto.Python.Version)
	if err != nil {
		return nil, zerr.Wrap(err, "manifest python.version")
	}
	m.PythonVersion = version

	for _, id := range sortedKeys(dto.Dependencies) {
		m.Pins = append(m.Pins, domain.Pin{ID: id, Version: dto.Dependencies[id]})
	}

	m.Overrides = domain.Overrides{
		SourceDirs: dto.Overrides.Sources,
		Archives:   dto.Overrides.Archives,
	}
	for _, table := range []map[string]string{dto.Overrides.Sources, dto.Overrides.Archives} {
		for id := range table {
			if _, ok := dto.Dependencies[id]; !ok {
				return nil, zerr.With(domain.ErrUnknownDependency, "dependency", id)
			}
		}
	}

	if len(dto.Extensions) == 0 {
		return nil, zerr.New("manifest defines no extensions")
	}
	for _, name := range sortedKeys(dto.Extensions) {
		ext := dto.Extensions[name]
		source := ext.Source
		if source == "" {
			source = "."
		}
		m.Targets = append(m.Targets, domain.BuildTarget{
			Name:      name,
			SourceDir: source,
			Tool:      defaultTool,
			Prefix:    m.Prefix,
			Defines:   ext.Defines,
		})
	}

	l.logger.Info(fmt.Sprintf("manifest: %d extension(s), %d pinned dependencies", len(m.Targets), len(m.Pins)))

	return m, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
