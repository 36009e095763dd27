package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.kinematix.dev/extbuild/internal/core/domain"
)

func TestModeFromDebug(t *testing.T) {
	require.Equal(t, domain.ModeDebug, domain.ModeFromDebug(true))
	require.Equal(t, domain.ModeRelease, domain.ModeFromDebug(false))
}

func TestParsePythonVersion(t *testing.T) {
	t.Run("major.minor", func(t *testing.T) {
		v, err := domain.ParsePythonVersion("3.11")
		require.NoError(t, err)
		require.Equal(t, domain.PythonVersion{Major: 3, Minor: 11}, v)
		require.Equal(t, "3.11", v.FlagValue())
	})

	t.Run("full triple", func(t *testing.T) {
		v, err := domain.ParsePythonVersion("3.10.4")
		require.NoError(t, err)
		require.Equal(t, domain.PythonVersion{Major: 3, Minor: 10, Patch: 4}, v)
		require.Equal(t, "3.10", v.FlagValue())
		require.Equal(t, "3.10.4", v.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "3", "3.x", "3.11.2.1", "-3.11"} {
			_, err := domain.ParsePythonVersion(s)
			require.ErrorIs(t, err, domain.ErrInvalidPythonVersion, "input %q", s)
		}
	})
}

func TestArgumentListFingerprint(t *testing.T) {
	a := domain.ArgumentList{"-DCMAKE_BUILD_TYPE=Release", "-DFOO=1"}
	b := domain.ArgumentList{"-DCMAKE_BUILD_TYPE=Release", "-DFOO=1"}

	// Identical content hashes identically.
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Argument boundaries matter: splitting differently must change the hash.
	c := domain.ArgumentList{"-DCMAKE_BUILD_TYPE=Release-DFOO=1"}
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	// Order matters.
	d := domain.ArgumentList{"-DFOO=1", "-DCMAKE_BUILD_TYPE=Release"}
	require.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestManifestTarget(t *testing.T) {
	m := &domain.Manifest{
		Targets: []domain.BuildTarget{
			{Name: "controllers.mapper"},
			{Name: "controllers.solver"},
		},
	}

	got, err := m.Target("controllers.solver")
	require.NoError(t, err)
	require.Equal(t, "controllers.solver", got.Name)

	_, err = m.Target("nope")
	require.ErrorIs(t, err, domain.ErrTargetNotFound)

	require.Equal(t, []string{"controllers.mapper", "controllers.solver"}, m.TargetNames())
}

func TestSubprocessErrorMessage(t *testing.T) {
	err := &domain.SubprocessError{Phase: domain.PhaseConfiguring, ExitCode: 1}
	require.EqualError(t, err, "configuring phase exited with code 1")
}
