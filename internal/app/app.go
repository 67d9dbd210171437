package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amaumene/envrun/internal/config"
	"github.com/amaumene/envrun/internal/dispatch"
	"github.com/amaumene/envrun/internal/domain"
	"github.com/amaumene/envrun/internal/envfile"
	"github.com/amaumene/envrun/internal/redact"
	"github.com/amaumene/envrun/internal/report"
	"github.com/amaumene/envrun/internal/storage"
	"github.com/amaumene/envrun/internal/verify"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
)

type App struct {
	cfg   *config.Config
	store *bolthold.Store
	runs  domain.RunRepository
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := bolthold.Open(cfg.DBPath(), cfg.DBFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &App{
		cfg:   cfg,
		store: store,
		runs:  storage.NewRunRepository(store),
	}, nil
}

// Run performs the full sequence: load the env file, export the
// allow-list, verify the setup, print the report, record the run and
// dispatch the command. It returns the child's exit code.
func (a *App) Run(ctx context.Context) (int, error) {
	if _, err := envfile.Load(a.cfg.EnvFile); err != nil {
		return 0, err
	}

	names := config.AllowList()
	exported := envfile.Export(names)

	if res := verify.Setup(a.cfg, exported); !res.OK() {
		return 0, fmt.Errorf("%d check(s) failed: %w", len(res.Errors), domain.ErrSetupInvalid)
	}

	report.Write(os.Stdout, names, exported, config.IsSecret)

	run := a.recordStart(ctx, exported)

	result, err := dispatch.Run(dispatch.Invocation{
		Command: a.cfg.Command,
		Args:    a.cfg.Args,
		WorkDir: a.cfg.WorkDir,
		Env:     os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if err != nil {
		return 0, err
	}

	a.recordFinish(ctx, run, result)

	log.WithFields(log.Fields{
		"exit_code": result.ExitCode,
		"duration":  result.Duration,
	}).Info("command finished")

	return result.ExitCode, nil
}

// recordStart persists the run before dispatch; history is advisory, a
// write failure is logged but never blocks the test run.
func (a *App) recordStart(ctx context.Context, exported map[string]string) *domain.Run {
	run := &domain.Run{
		ID:        uuid.NewString(),
		Command:   a.cfg.Command,
		Args:      a.cfg.Args,
		WorkDir:   a.cfg.WorkDir,
		Env:       redact.Snapshot(exported, config.IsSecret),
		StartedAt: time.Now(),
	}

	if err := a.runs.Insert(ctx, run); err != nil {
		log.WithError(err).Error("recording run start")
	}
	return run
}

func (a *App) recordFinish(ctx context.Context, run *domain.Run, result dispatch.Result) {
	run.FinishedAt = run.StartedAt.Add(result.Duration)
	run.ExitCode = result.ExitCode

	if err := a.runs.Update(ctx, run); err != nil {
		log.WithError(err).Error("recording run result")
	}
}

func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
