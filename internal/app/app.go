// Package app implements the application layer for extbuild.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.kinematix.dev/extbuild/internal/engine/driver"
	"go.kinematix.dev/extbuild/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options are the per-invocation parameters gathered by the CLI and the
// environment adapter.
type Options struct {
	// ConfigPath locates the manifest.
	ConfigPath string

	// Debug selects a Debug build; the default is Release.
	Debug bool

	// OutputDir is where artifacts land. Relative paths are resolved
	// against the working directory before the core sees them.
	OutputDir string

	// StagingRoot holds one staging directory per target.
	StagingRoot string

	// OverrideEnabled selects pre-staged local dependency copies.
	OverrideEnabled bool

	// ParallelismConfigured records a caller-supplied parallelism preference.
	ParallelismConfigured bool

	// Tool overrides the manifest's build-tool executable when non-empty.
	Tool string
}

// App wires the manifest, the resolver and the driver into the build and
// clean operations exposed by the CLI.
type App struct {
	loader   ports.ManifestLoader
	resolver *resolver.Resolver
	driver   *driver.Driver
	store    ports.BuildStateStore
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	res *resolver.Resolver,
	drv *driver.Driver,
	store ports.BuildStateStore,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: res,
		driver:   drv,
		store:    store,
		logger:   logger,
	}
}

// Build builds the named targets, or every target in the manifest when
// none are named. Distinct targets own distinct staging directories, so
// they may build concurrently; a single target is never built twice in
// one invocation.
func (a *App) Build(ctx context.Context, targetNames []string, opts Options) error {
	manifest, targets, err := a.selectTargets(opts.ConfigPath, targetNames)
	if err != nil {
		return err
	}

	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve output directory")
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, target := range targets {
		if opts.Tool != "" {
			target.Tool = opts.Tool
		}

		bctx := domain.BuildContext{
			OutputDir:             outputDir,
			Mode:                  domain.ModeFromDebug(opts.Debug),
			Python:                manifest.Python,
			PythonVersion:         manifest.PythonVersion,
			StagingDir:            filepath.Join(opts.StagingRoot, target.Name),
			ParallelismConfigured: opts.ParallelismConfigured,
		}

		g.Go(func() error {
			args, err := a.resolver.Resolve(target, bctx, opts.OverrideEnabled, manifest.Overrides)
			if err != nil {
				return err
			}
			return a.driver.Build(groupCtx, target, bctx, args)
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}

// Clean removes the named targets' staging directories and their build
// records. The output directory is left alone; finished artifacts belong
// to the packaging layer.
func (a *App) Clean(ctx context.Context, targetNames []string, opts Options) error {
	_, targets, err := a.selectTargets(opts.ConfigPath, targetNames)
	if err != nil {
		return err
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		stagingDir := filepath.Join(opts.StagingRoot, target.Name)
		if err := os.RemoveAll(stagingDir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "staging_dir", stagingDir)
		}
		if err := a.store.Delete(target.Name); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("cleaned %s", target.Name))
	}

	return nil
}

func (a *App) selectTargets(configPath string, targetNames []string) (*domain.Manifest, []domain.BuildTarget, error) {
	manifest, err := a.loader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load manifest")
	}

	if len(targetNames) == 0 {
		return manifest, manifest.Targets, nil
	}

	targets := make([]domain.BuildTarget, 0, len(targetNames))
	for _, name := range targetNames {
		target, err := manifest.Target(name)
		if err != nil {
			return nil, nil, err
		}
		targets = append(targets, target)
	}
	return manifest, targets, nil
}
