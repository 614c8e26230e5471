package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"letterpress/internal/assemble"
	"letterpress/internal/charset"
	"letterpress/internal/config"
	"letterpress/internal/extract"
	"letterpress/internal/fileutil"
	"letterpress/internal/langdata"
	"letterpress/internal/logging"
	"letterpress/internal/preflight"
	"letterpress/internal/progress"
	"letterpress/internal/render"
	"letterpress/internal/runlog"
	"letterpress/internal/services"
	"letterpress/internal/tools"
)

// Request identifies one training run.
type Request struct {
	Lang string
	// Fonts and Exposures override language defaults when non-empty.
	Fonts     []string
	Exposures []int
	// MeanCountOverride replaces the per-language sample count when positive.
	// It beats the config value, which beats the language table.
	MeanCountOverride int
}

// Result describes a completed run.
type Result struct {
	RunID     string
	Params    langdata.Params
	OutputDir string
	Manifest  string
}

// Option configures the driver.
type Option func(*Driver)

// WithRunner injects the tool runner (primarily for tests).
func WithRunner(runner *tools.Runner) Option {
	return func(d *Driver) {
		if runner != nil {
			d.runner = runner
		}
	}
}

// WithReporter injects the progress reporter the concurrent phases feed.
func WithReporter(reporter progress.Reporter) Option {
	return func(d *Driver) {
		if reporter != nil {
			d.reporter = reporter
		}
	}
}

// WithLogFile names the run log file that cleanup copies next to the
// artifacts on success.
func WithLogFile(path string) Option {
	return func(d *Driver) {
		d.logFile = path
	}
}

// Driver owns the run lifecycle: scratch locking, preflight, the phase
// sequence, ledger records, and final cleanup.
type Driver struct {
	cfg      *config.Config
	ledger   *runlog.Store
	runner   *tools.Runner
	reporter progress.Reporter
	logFile  string
	log      *slog.Logger
}

func New(cfg *config.Config, ledger *runlog.Store, logger *slog.Logger, opts ...Option) *Driver {
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Driver{
		cfg:      cfg,
		ledger:   ledger,
		reporter: progress.NewNop(),
		log:      logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.runner == nil {
		d.runner = tools.NewRunner(logger)
	}
	return d
}

// step pairs a phase with the unit count recorded in the ledger.
type step struct {
	name  string
	units int
	run   func(context.Context) error
}

// Run executes the full pipeline for one language. The first failure is
// final: the scratch directory is left in place for inspection and the error
// surfaces after the ledger records it. Cleanup runs only on success.
func (d *Driver) Run(ctx context.Context, req Request) (result *Result, err error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	log := logging.WithContext(ctx, d.log)

	params, err := langdata.NewResolver(d.log).Resolve(langdata.Request{
		Lang:              req.Lang,
		CorpusDir:         d.cfg.Paths.CorpusDir,
		Fonts:             req.Fonts,
		Exposures:         req.Exposures,
		MeanCountOverride: d.meanCountOverride(req),
	})
	if err != nil {
		return nil, err
	}
	log.Info("starting training run",
		logging.String(logging.FieldLanguage, params.Lang),
		logging.Int("fonts", len(params.Fonts)),
		logging.Any("exposures", params.Exposures),
	)

	if err := preflight.Failures(preflight.RunAll(d.cfg)); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "init", "", err.Error(), nil)
	}

	lock := flock.New(d.lockPath(params.Lang))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire scratch lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run is already training %s (lock %s held)", params.Lang, lock.Path())
	}
	defer func() {
		_ = lock.Unlock()
	}()

	// Phases re-discover their inputs by glob, so the scratch tree must start
	// empty or a failed run's leftovers would leak into this one.
	trainingDir := d.cfg.TrainingDir(params.Lang)
	if err := os.RemoveAll(trainingDir); err != nil {
		return nil, fmt.Errorf("clear scratch dir: %w", err)
	}
	if err := os.MkdirAll(trainingDir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	if err := d.startRun(ctx, runlog.Run{
		ID:            runID,
		Language:      params.Lang,
		Status:        runlog.StatusRunning,
		StartedAt:     time.Now().UTC(),
		OutputDir:     d.cfg.Paths.OutputDir,
		FontCount:     len(params.Fonts),
		ExposureCount: len(params.Exposures),
	}); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			d.finishRun(ctx, runID, runlog.StatusFailed, services.Classify(err)+": "+err.Error())
			return
		}
		d.finishRun(ctx, runID, runlog.StatusSucceeded, "")
	}()

	steps, manifest := d.steps(params, trainingDir)
	for _, st := range steps {
		if err := d.runStep(ctx, runID, st); err != nil {
			return nil, err
		}
	}

	if err := d.cleanup(ctx, trainingDir); err != nil {
		return nil, err
	}

	log.Info("training run complete",
		logging.String(logging.FieldLanguage, params.Lang),
		logging.String(logging.FieldPath, manifest),
	)
	return &Result{
		RunID:     runID,
		Params:    params,
		OutputDir: d.cfg.Paths.OutputDir,
		Manifest:  manifest,
	}, nil
}

// steps builds the phase sequence and returns it with the manifest path the
// final phase will write.
func (d *Driver) steps(params langdata.Params, trainingDir string) ([]step, string) {
	pairs := len(params.Fonts) * len(params.Exposures)

	renderPhase := render.New(d.cfg, params, trainingDir, d.fontCacheDir(trainingDir), d.runner, d.reporter, d.log)
	charsetPhase := charset.New(params.Lang, trainingDir, d.cfg.Paths.LangdataDir, params.NormMode, d.runner, d.log)
	extractPhase := extract.New(params.Lang, trainingDir, d.cfg.Paths.LangdataDir, d.cfg.Paths.TessdataDir, d.runner, d.reporter, d.log)
	assemblePhase := assemble.New(params, trainingDir, d.cfg.Paths.LangdataDir, d.cfg.Paths.OutputDir, d.cfg.Training.SaveBoxTiff, d.runner, d.log)

	return []step{
		{name: render.PhaseName, units: pairs, run: renderPhase.Execute},
		{name: charset.PhaseName, units: 1, run: charsetPhase.Execute},
		{name: extract.PhaseName, units: pairs, run: extractPhase.Execute},
		{name: assemble.PhaseName, units: 1, run: assemblePhase.Execute},
	}, assemblePhase.ManifestPath()
}

func (d *Driver) runStep(ctx context.Context, runID string, st step) error {
	phaseCtx := services.WithPhase(ctx, st.name)
	log := logging.WithContext(phaseCtx, d.log)
	started := time.Now().UTC()
	log.Debug("phase starting")

	execErr := st.run(phaseCtx)

	record := runlog.Phase{
		RunID:      runID,
		Name:       st.name,
		Status:     runlog.StatusSucceeded,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		UnitCount:  st.units,
	}
	if execErr != nil {
		record.Status = runlog.StatusFailed
		record.ErrorText = execErr.Error()
	}
	d.recordPhase(ctx, record)

	if execErr != nil {
		log.Error("phase failed", logging.Error(execErr))
		return execErr
	}
	log.Info("phase complete", logging.Duration("duration", record.FinishedAt.Sub(started)))
	return nil
}

// cleanup preserves the run log next to the artifacts, then removes the
// scratch tree.
func (d *Driver) cleanup(ctx context.Context, trainingDir string) error {
	log := logging.WithContext(ctx, d.log)

	if d.logFile != "" {
		if _, err := os.Stat(d.logFile); err == nil {
			dst := filepath.Join(d.cfg.Paths.OutputDir, filepath.Base(d.logFile))
			if err := fileutil.CopyFile(d.logFile, dst); err != nil {
				return fmt.Errorf("preserve run log: %w", err)
			}
			log.Debug("copied run log", logging.String(logging.FieldPath, dst))
		}
	}

	if err := os.RemoveAll(trainingDir); err != nil {
		return fmt.Errorf("remove scratch dir: %w", err)
	}
	log.Info("removed scratch directory", logging.String(logging.FieldPath, trainingDir))
	return nil
}

// lockPath keeps the per-language lock beside, not inside, the scratch tree
// so cleanup can remove the tree while the lock is held.
func (d *Driver) lockPath(lang string) string {
	return filepath.Join(d.cfg.Paths.ScratchDir, lang+".lock")
}

// fontCacheDir picks the fontconfig cache location: the configured override
// or a per-run directory inside the scratch tree.
func (d *Driver) fontCacheDir(trainingDir string) string {
	if d.cfg.Paths.FontCacheDir != "" {
		return d.cfg.Paths.FontCacheDir
	}
	return filepath.Join(trainingDir, "fontconfig")
}

func (d *Driver) meanCountOverride(req Request) int {
	if req.MeanCountOverride > 0 {
		return req.MeanCountOverride
	}
	return d.cfg.Training.MeanCount
}

func (d *Driver) startRun(ctx context.Context, run runlog.Run) error {
	if d.ledger == nil {
		return nil
	}
	if err := d.ledger.StartRun(ctx, run); err != nil {
		return fmt.Errorf("record run start: %w", err)
	}
	return nil
}

func (d *Driver) recordPhase(ctx context.Context, phase runlog.Phase) {
	if d.ledger == nil {
		return
	}
	if err := d.ledger.RecordPhase(ctx, phase); err != nil {
		logging.WithContext(ctx, d.log).Warn("failed to record phase", logging.Error(err))
	}
}

func (d *Driver) finishRun(ctx context.Context, runID string, status runlog.Status, errorText string) {
	if d.ledger == nil {
		return
	}
	if err := d.ledger.FinishRun(ctx, runID, status, errorText); err != nil {
		logging.WithContext(ctx, d.log).Warn("failed to finalize run record", logging.Error(err))
	}
}
