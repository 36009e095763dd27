// Package driver runs the external build tool's configure and build
// phases inside a target's staging directory.
package driver

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultJobs is the -j value used when the invoking environment has not
// expressed a parallelism preference through the build system's own
// channel. A fixed literal keeps resolved invocations machine-independent.
const defaultJobs = "-j4"

// Driver executes one build as a strict two-phase sequence:
// Pending -> Configuring -> Building -> Succeeded, failing fast out of
// either phase. There are no retries: a failed native build is
// deterministic misconfiguration, and retrying it is never correct.
type Driver struct {
	runner    ports.ProcessRunner
	store     ports.BuildStateStore
	logger    ports.Logger
	telemetry ports.Telemetry

	mu       sync.RWMutex
	statuses map[string]domain.BuildStatus
}

// New creates a new Driver.
func New(
	runner ports.ProcessRunner,
	store ports.BuildStateStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Driver {
	return &Driver{
		runner:    runner,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
		statuses:  make(map[string]domain.BuildStatus),
	}
}

// Status reports where the target's most recent build stands.
func (d *Driver) Status(target string) domain.BuildStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if s, ok := d.statuses[target]; ok {
		return s
	}
	return domain.StatusPending
}

func (d *Driver) setStatus(target string, status domain.BuildStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses[target] = status
}

// Build runs both phases for one target inside its staging directory.
//
// The staging directory is created if absent and never deleted on
// completion, so a later invocation rebuilds incrementally. On success the
// artifact has been written somewhere under the context's output
// directory; its exact name is the packaging layer's business and is not
// verified here.
func (d *Driver) Build(
	ctx context.Context,
	target domain.BuildTarget,
	bctx domain.BuildContext,
	args domain.ArgumentList,
) error {
	d.setStatus(target.Name, domain.StatusPending)

	if err := os.MkdirAll(bctx.StagingDir, 0o750); err != nil {
		d.setStatus(target.Name, domain.StatusFailed)
		return zerr.With(zerr.Wrap(err, "failed to create staging directory"), "staging_dir", bctx.StagingDir)
	}

	d.checkStaleConfiguration(target.Name, args)

	// Configuring
	d.setStatus(target.Name, domain.StatusConfiguring)
	configureArgv := make([]string, 0, len(args)+3)
	configureArgv = append(configureArgv, target.Tool)
	configureArgv = append(configureArgv, args...)
	configureArgv = append(configureArgv, "-S", target.SourceDir)
	if err := d.runPhase(ctx, domain.PhaseConfiguring, target, bctx, configureArgv); err != nil {
		d.setStatus(target.Name, domain.StatusFailed)
		return err
	}

	// Building
	d.setStatus(target.Name, domain.StatusBuilding)
	buildArgv := []string{target.Tool, "--build", "."}
	if !bctx.ParallelismConfigured {
		buildArgv = append(buildArgv, defaultJobs)
	}
	if err := d.runPhase(ctx, domain.PhaseBuilding, target, bctx, buildArgv); err != nil {
		d.setStatus(target.Name, domain.StatusFailed)
		return err
	}

	d.setStatus(target.Name, domain.StatusSucceeded)
	d.recordOutcome(target.Name, bctx.Mode, args)
	return nil
}

// runPhase invokes the tool once in the staging directory, streaming its
// output through a telemetry vertex untouched. A non-zero exit surfaces
// as a SubprocessError carrying the phase identity and exit code.
func (d *Driver) runPhase(
	ctx context.Context,
	phase domain.Phase,
	target domain.BuildTarget,
	bctx domain.BuildContext,
	argv []string,
) error {
	ctx, vertex := d.telemetry.Record(ctx, fmt.Sprintf("%s %s", target.Name, phase))

	code, err := d.runner.Run(ctx, argv, bctx.StagingDir, vertex.Stdout(), vertex.Stderr())
	if err != nil {
		err = zerr.With(err, "phase", string(phase))
		vertex.Complete(err)
		return err
	}
	if code != 0 {
		spErr := &domain.SubprocessError{Phase: phase, ExitCode: code}
		vertex.Complete(spErr)
		return spErr
	}

	vertex.Complete(nil)
	return nil
}

// checkStaleConfiguration compares the incoming argument fingerprint with
// the one recorded for the previous build. A mismatch means the staging
// directory's configure cache was produced by different arguments; the
// configure phase will rewrite it, so this only warns.
func (d *Driver) checkStaleConfiguration(target string, args domain.ArgumentList) {
	record, err := d.store.Get(target)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("could not read build state for %s: %v", target, err))
		return
	}
	if record == nil {
		return
	}
	if record.ArgsFingerprint != args.Fingerprint() {
		d.logger.Warn(fmt.Sprintf("build configuration for %s changed since last run, reconfiguring staging directory", target))
	}
}

func (d *Driver) recordOutcome(target string, mode domain.Mode, args domain.ArgumentList) {
	err := d.store.Put(domain.BuildRecord{
		Target:          target,
		ArgsFingerprint: args.Fingerprint(),
		Mode:            mode,
		Timestamp:       time.Now().UTC(),
	})
	if err != nil {
		// State is a diagnostic cache; losing a write never fails the build.
		d.logger.Warn(fmt.Sprintf("could not persist build state for %s: %v", target, err))
	}
}
