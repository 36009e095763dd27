package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.kinematix.dev/extbuild/internal/adapters/shell"
	"go.kinematix.dev/extbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewRunner(mockLogger)
}

func TestRunner_Run_Success(t *testing.T) {
	r := newRunner(t)

	code, err := r.Run(context.Background(), []string{"true"}, t.TempDir(), io.Discard, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestRunner_Run_NonZeroExitIsNotAnError(t *testing.T) {
	r := newRunner(t)

	code, err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"}, t.TempDir(), io.Discard, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 3, code)
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), nil, 0o600))

	var stdout bytes.Buffer
	code, err := r.Run(context.Background(), []string{"ls"}, dir, &stdout, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "marker.txt")
}

func TestRunner_Run_OutputPassthrough(t *testing.T) {
	r := newRunner(t)

	var stdout, stderr bytes.Buffer
	code, err := r.Run(
		context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		t.TempDir(),
		&stdout,
		&stderr,
	)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "out\n", stdout.String())
	require.Equal(t, "err\n", stderr.String())
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	r := newRunner(t)

	code, err := r.Run(context.Background(), []string{"no-such-binary-xyz"}, t.TempDir(), io.Discard, io.Discard)
	require.Error(t, err)
	require.Equal(t, -1, code)
}

func TestRunner_Run_EmptyCommand(t *testing.T) {
	r := newRunner(t)

	_, err := r.Run(context.Background(), nil, t.TempDir(), io.Discard, io.Discard)
	require.Error(t, err)
}
