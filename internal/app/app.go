// Package app implements the application layer for gauntlet.
package app

//go:generate sh -c "GOFLAGS='-tags=wireinject' go run github.com/mazrean/kessoku/cmd/kessoku wire.go"

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.gauntlet.dev/gauntlet/internal/adapters/cargo"
	"go.gauntlet.dev/gauntlet/internal/core/domain"
	"go.gauntlet.dev/gauntlet/internal/core/ports"
	"go.gauntlet.dev/gauntlet/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App wires the pipeline runner and the local invocation wrapper over the
// same adapter ports.
type App struct {
	configLoader ports.ConfigLoader
	fetcher      ports.SourceFetcher
	provisioner  ports.Provisioner
	installer    ports.ToolchainInstaller
	snapshots    ports.SnapshotManager
	store        ports.SnapshotStore
	digester     ports.Digester
	executor     ports.Executor
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	fetcher ports.SourceFetcher,
	provisioner ports.Provisioner,
	installer ports.ToolchainInstaller,
	snapshots ports.SnapshotManager,
	store ports.SnapshotStore,
	digester ports.Digester,
	executor ports.Executor,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		fetcher:      fetcher,
		provisioner:  provisioner,
		installer:    installer,
		snapshots:    snapshots,
		store:        store,
		digester:     digester,
		executor:     executor,
		logger:       logger,
		tracer:       tracer,
	}
}

// RunPipeline executes the full five-step pipeline once per matrix entry.
// Entries fan out in parallel; the verdict is pass only when every entry
// passed. The trigger is recorded on the run span and nowhere else.
func (a *App) RunPipeline(ctx context.Context, trigger domain.Trigger) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	ctx, span := a.tracer.Start(ctx, "pipeline")
	defer span.End()
	span.SetAttribute("event", string(trigger.Event))
	if trigger.Ref != "" {
		span.SetAttribute("ref", trigger.Ref)
	}

	err = pipeline.RunMatrix(ctx, cfg.Matrix, func(ctx context.Context, tc domain.Toolchain) error {
		return a.buildPipeline(cfg, tc).Run(ctx)
	})
	if err != nil {
		span.RecordError(err)
		return errors.Join(domain.ErrPipelineFailed, err)
	}
	return nil
}

// buildPipeline assembles the ordered step list for one matrix entry.
//
// The activation environment produced by provisioning is threaded into the
// verification command through a variable the step closures share; steps
// for different entries share nothing.
func (a *App) buildPipeline(cfg *domain.Config, tc domain.Toolchain) *pipeline.Pipeline {
	dir := a.runDir(cfg, tc)
	manifestPath := filepath.Join(dir, cfg.Manifest)
	lockfilePath := filepath.Join(dir, cfg.Lockfile)

	var activation []string

	steps := []pipeline.Step{
		{
			Name: "fetch",
			Skip: func(_ context.Context) (bool, string, error) {
				if cfg.Source.Remote == "" {
					return true, "no remote configured, using the working tree", nil
				}
				if a.fetcher.IsCheckout(dir) {
					return true, "existing checkout at " + dir, nil
				}
				return false, "", nil
			},
			Run: func(ctx context.Context, _ ports.Span) error {
				return a.fetcher.Fetch(ctx, cfg.Source, dir)
			},
		},
		{
			Name: "provision",
			Skip: func(_ context.Context) (bool, string, error) {
				if cfg.EnvManifest == "" {
					return true, "no environment manifest configured", nil
				}
				return false, "", nil
			},
			Run: func(ctx context.Context, _ ports.Span) error {
				env, err := a.provisioner.Provision(ctx, filepath.Join(dir, cfg.EnvManifest))
				if err != nil {
					return err
				}
				activation = env
				return nil
			},
		},
		{
			Name: "toolchain",
			Run: func(ctx context.Context, _ ports.Span) error {
				return a.installer.Install(ctx, tc)
			},
		},
		{
			Name: "snapshot",
			Run: func(ctx context.Context, _ ports.Span) error {
				return a.ensureSnapshot(ctx, dir, manifestPath, lockfilePath)
			},
		},
		{
			Name: "verify",
			Run: func(ctx context.Context, span ports.Span) error {
				if err := a.checkSnapshotFresh(manifestPath, lockfilePath); err != nil {
					return err
				}
				return a.executor.Execute(ctx, cargo.VerifyCommand(dir, activation), span, span)
			},
		},
	}

	return pipeline.New(tc.String(), a.logger, a.tracer, steps...)
}

// ensureSnapshot runs snapshot assurance and records the manifest digest the
// snapshot was resolved from. An existing record for an untouched snapshot
// is left alone so later manifest edits are detected.
func (a *App) ensureSnapshot(ctx context.Context, dir, manifestPath, lockfilePath string) error {
	generated, err := a.snapshots.Ensure(ctx, dir, lockfilePath)
	if err != nil {
		return err
	}

	existing, err := a.store.Get(lockfilePath)
	if err != nil {
		return err
	}
	if existing != nil && !generated {
		return nil
	}

	digest, err := a.digester.DigestFile(manifestPath)
	if err != nil {
		return err
	}
	return a.store.Put(domain.SnapshotInfo{
		LockfilePath:   lockfilePath,
		ManifestDigest: digest,
		Generated:      generated,
		Timestamp:      time.Now(),
	})
}

// checkSnapshotFresh fails when the manifest changed after the snapshot was
// recorded. Verification must fail here rather than let anything re-resolve
// dependencies mid-run; cargo's own --locked flag backstops this check.
func (a *App) checkSnapshotFresh(manifestPath, lockfilePath string) error {
	record, err := a.store.Get(lockfilePath)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	digest, err := a.digester.DigestFile(manifestPath)
	if err != nil {
		return err
	}
	if digest != record.ManifestDigest {
		return zerr.With(
			zerr.With(domain.ErrSnapshotStale, "manifest", manifestPath),
			"lockfile", lockfilePath,
		)
	}
	return nil
}

// runDir returns the working directory for one matrix entry. Entries with a
// configured remote each clone into their own directory so parallel runs
// never observe each other's toolchain or tree.
func (a *App) runDir(cfg *domain.Config, tc domain.Toolchain) string {
	if cfg.Source.Remote == "" {
		return cfg.ProjectDir
	}
	return filepath.Join(".gauntlet", "runs", tc.String())
}

// Run invokes the project's default executable entry point with no
// arguments. Failures propagate as-is.
func (a *App) Run(ctx context.Context) error {
	return a.executor.Execute(ctx, cargo.RunCommand(a.projectDir()), os.Stdout, os.Stderr)
}

// Test runs the wrapper's test operation against the active toolchain.
func (a *App) Test(ctx context.Context, opts domain.TestOptions) error {
	return a.executor.Execute(ctx, cargo.TestCommand(a.projectDir(), opts), os.Stdout, os.Stderr)
}

// Lint runs static analysis across every buildable unit. The exit status is
// the analyzer's own; no threshold is imposed here.
func (a *App) Lint(ctx context.Context) error {
	return a.executor.Execute(ctx, cargo.LintCommand(a.projectDir()), os.Stdout, os.Stderr)
}

// projectDir is best effort for wrapper commands: configuration is optional
// there, the current directory is the default.
func (a *App) projectDir() string {
	cfg, err := a.configLoader.Load(".")
	if err != nil || cfg.ProjectDir == "" {
		return "."
	}
	return cfg.ProjectDir
}
