package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.kinematix.dev/extbuild/internal/adapters/state"
	"go.kinematix.dev/extbuild/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := state.NewStore(path)
	require.NoError(t, err)

	// Unknown target is a miss, not an error.
	rec, err := s.Get("controllers.mapper")
	require.NoError(t, err)
	require.Nil(t, rec)

	want := domain.BuildRecord{
		Target:          "controllers.mapper",
		ArgsFingerprint: "deadbeefdeadbeef",
		Mode:            domain.ModeRelease,
		Timestamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(want))

	// A fresh store instance reads the record back from disk.
	s2, err := state.NewStore(path)
	require.NoError(t, err)
	got, err := s2.Get("controllers.mapper")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestStore_PutReplaces(t *testing.T) {
	s, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, s.Put(domain.BuildRecord{Target: "x", ArgsFingerprint: "one"}))
	require.NoError(t, s.Put(domain.BuildRecord{Target: "x", ArgsFingerprint: "two"}))

	got, err := s.Get("x")
	require.NoError(t, err)
	require.Equal(t, "two", got.ArgsFingerprint)
}

func TestStore_Delete(t *testing.T) {
	s, err := state.NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, s.Put(domain.BuildRecord{Target: "x", ArgsFingerprint: "one"}))
	require.NoError(t, s.Delete("x"))
	require.NoError(t, s.Delete("x")) // idempotent

	got, err := s.Get("x")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := state.NewStore(path)
	require.Error(t, err)
}
