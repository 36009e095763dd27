package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.kinematix.dev/extbuild/internal/adapters/telemetry"
	"go.kinematix.dev/extbuild/internal/app"
	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.kinematix.dev/extbuild/internal/core/ports/mocks"
	"go.kinematix.dev/extbuild/internal/engine/driver"
	"go.kinematix.dev/extbuild/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app    *app.App
	loader *mocks.MockManifestLoader
	runner *mocks.MockProcessRunner
	store  *mocks.MockBuildStateStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockManifestLoader(ctrl)
	runner := mocks.NewMockProcessRunner(ctrl)
	store := mocks.NewMockBuildStateStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	tel := telemetry.NewStream(io.Discard, io.Discard, logger)
	res := resolver.New(logger)
	drv := driver.New(runner, store, logger, tel)

	return &fixture{
		app:    app.New(loader, res, drv, store, logger),
		loader: loader,
		runner: runner,
		store:  store,
	}
}

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Prefix:        "DMR",
		Python:        "/usr/bin/python3",
		PythonVersion: domain.PythonVersion{Major: 3, Minor: 11},
		Pins: []domain.Pin{
			{ID: "osqp", Version: "0baddd36"},
			{ID: "pybind11", Version: "914c06fb"},
		},
		Targets: []domain.BuildTarget{
			{Name: "controllers.mapper", SourceDir: ".", Tool: "cmake", Prefix: "DMR"},
		},
	}
}

func defaultOptions(t *testing.T) app.Options {
	t.Helper()
	return app.Options{
		ConfigPath:  "extbuild.yaml",
		OutputDir:   "/out",
		StagingRoot: t.TempDir(),
	}
}

func TestBuild_ReleaseWithoutOverrides(t *testing.T) {
	f := newFixture(t)
	opts := defaultOptions(t)

	f.loader.EXPECT().Load("extbuild.yaml").Return(testManifest(), nil)
	f.store.EXPECT().Get("controllers.mapper").Return(nil, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	var configureArgv []string
	gomock.InOrder(
		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, argv []string, _ string, _, _ io.Writer) (int, error) {
				configureArgv = argv
				return 0, nil
			}),
		f.runner.EXPECT().
			Run(gomock.Any(), []string{"cmake", "--build", ".", "-j4"}, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil),
	)

	require.NoError(t, f.app.Build(context.Background(), []string{"controllers.mapper"}, opts))

	// The output directory was normalized with a trailing separator, the
	// mode defaulted to Release, and no network-disable flag appeared.
	joined := strings.Join(configureArgv, " ")
	require.Contains(t, joined, "-DCMAKE_LIBRARY_OUTPUT_DIRECTORY=/out"+string(os.PathSeparator))
	require.Contains(t, joined, "-DCMAKE_BUILD_TYPE=Release")
	require.NotContains(t, joined, "FETCHCONTENT_FULLY_DISCONNECTED")
}

func TestBuild_AllTargetsWhenNoneNamed(t *testing.T) {
	f := newFixture(t)
	opts := defaultOptions(t)

	manifest := testManifest()
	manifest.Targets = append(manifest.Targets, domain.BuildTarget{
		Name: "controllers.solver", SourceDir: "solver", Tool: "cmake", Prefix: "DMR",
	})

	f.loader.EXPECT().Load(gomock.Any()).Return(manifest, nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(2)
	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(4)

	require.NoError(t, f.app.Build(context.Background(), nil, opts))
}

func TestBuild_DistinctStagingDirPerTarget(t *testing.T) {
	f := newFixture(t)
	opts := defaultOptions(t)

	manifest := testManifest()
	manifest.Targets = append(manifest.Targets, domain.BuildTarget{
		Name: "controllers.solver", SourceDir: "solver", Tool: "cmake", Prefix: "DMR",
	})

	f.loader.EXPECT().Load(gomock.Any()).Return(manifest, nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(2)
	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)

	dirs := make(chan string, 4)
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []string, dir string, _, _ io.Writer) (int, error) {
			dirs <- dir
			return 0, nil
		}).
		Times(4)

	require.NoError(t, f.app.Build(context.Background(), nil, opts))
	close(dirs)

	seen := map[string]bool{}
	for dir := range dirs {
		seen[dir] = true
	}
	require.Equal(t, map[string]bool{
		filepath.Join(opts.StagingRoot, "controllers.mapper"): true,
		filepath.Join(opts.StagingRoot, "controllers.solver"): true,
	}, seen)
}

func TestBuild_UnknownTarget(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(testManifest(), nil)

	err := f.app.Build(context.Background(), []string{"nope"}, defaultOptions(t))
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestBuild_SubprocessFailureSurfacesPhaseAndCode(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(testManifest(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil)

	err := f.app.Build(context.Background(), []string{"controllers.mapper"}, defaultOptions(t))
	require.Error(t, err)

	var spErr *domain.SubprocessError
	require.ErrorAs(t, err, &spErr)
	require.Equal(t, domain.PhaseConfiguring, spErr.Phase)
	require.Equal(t, 1, spErr.ExitCode)
}

func TestBuild_OverrideToolFromInvocation(t *testing.T) {
	f := newFixture(t)
	opts := defaultOptions(t)
	opts.Tool = "/opt/cmake/bin/cmake"

	f.loader.EXPECT().Load(gomock.Any()).Return(testManifest(), nil)
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, argv []string, _ string, _, _ io.Writer) (int, error) {
			require.Equal(t, "/opt/cmake/bin/cmake", argv[0])
			return 0, nil
		}).
		Times(2)

	require.NoError(t, f.app.Build(context.Background(), []string{"controllers.mapper"}, opts))
}

func TestClean_RemovesStagingDirAndRecord(t *testing.T) {
	f := newFixture(t)
	opts := defaultOptions(t)

	stagingDir := filepath.Join(opts.StagingRoot, "controllers.mapper")
	require.NoError(t, os.MkdirAll(stagingDir, 0o750))

	f.loader.EXPECT().Load(gomock.Any()).Return(testManifest(), nil)
	f.store.EXPECT().Delete("controllers.mapper").Return(nil)

	require.NoError(t, f.app.Clean(context.Background(), []string{"controllers.mapper"}, opts))
	require.NoDirExists(t, stagingDir)
}
