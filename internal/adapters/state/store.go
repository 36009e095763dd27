// Package state persists per-target build records in a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is the store location relative to the working directory.
const DefaultPath = ".extbuild/state.json"

// Store implements ports.BuildStateStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// NewStore creates a new BuildStateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read build state store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build state store")
	}

	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build state store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for build state store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build state store")
	}

	return nil
}

// Get returns the record for the target, or nil if none exists.
func (s *Store) Get(target string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put saves the record, replacing any previous one for the same target.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.Target] = record
	return s.save()
}

// Delete removes the record for the target, if present.
func (s *Store) Delete(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache[target]; !ok {
		return nil
	}
	delete(s.cache, target)
	return s.save()
}
