package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"letterpress/internal/artifacts"
	"letterpress/internal/logging"
	"letterpress/internal/pool"
	"letterpress/internal/progress"
	"letterpress/internal/services"
	"letterpress/internal/tools"
)

// PhaseName tags log records and ledger rows for this phase.
const PhaseName = "extract"

// FeatureExt is the extension the recognizer gives extracted feature files.
const FeatureExt = ".lstmf"

// boxConfig selects line-oriented training output from the recognizer.
const boxConfig = "lstm.train"

// extractWorkers bounds concurrent recognizer processes. The recognizer is
// memory-hungry in training mode, so this stays below the render pool size.
const extractWorkers = 2

// Phase runs the recognizer in training mode over every rendered image and
// verifies that each produced a feature file.
type Phase struct {
	lang        string
	trainingDir string
	langdataDir string
	tessdataDir string
	runner      *tools.Runner
	reporter    progress.Reporter
	log         *slog.Logger
}

func New(lang, trainingDir, langdataDir, tessdataDir string, runner *tools.Runner, reporter progress.Reporter, logger *slog.Logger) *Phase {
	if reporter == nil {
		reporter = progress.NewNop()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Phase{
		lang:        lang,
		trainingDir: trainingDir,
		langdataDir: langdataDir,
		tessdataDir: tessdataDir,
		runner:      runner,
		reporter:    reporter,
		log:         logger,
	}
}

// Execute discovers rendered images by glob, runs the recognizer over each on
// a bounded pool, and checks the full set of feature files once the pool
// drains. Images are processed in sorted order so failures reproduce.
func (p *Phase) Execute(ctx context.Context) error {
	log := logging.WithContext(ctx, p.log)

	images, err := filepath.Glob(filepath.Join(p.trainingDir, p.lang+".*.exp*.tif"))
	if err != nil {
		return fmt.Errorf("glob rendered images: %w", err)
	}
	if len(images) == 0 {
		return services.Wrap(services.ErrMissingArtifact, PhaseName, "collect",
			fmt.Sprintf("no rendered images found in '%s'", p.trainingDir), nil)
	}
	sort.Strings(images)

	env := []string{"TESSDATA_PREFIX=" + p.tessdataDir}
	log.Info("extracting features",
		logging.String(logging.FieldLanguage, p.lang),
		logging.Int("images", len(images)),
		logging.String("tessdata_prefix", p.tessdataDir),
	)

	var configArgs []string
	langConfig := filepath.Join(p.langdataDir, p.lang, p.lang+".config")
	if fileExists(langConfig) {
		log.Info("using language config", logging.String(logging.FieldPath, langConfig))
		configArgs = []string{langConfig}
	}

	p.reporter.Start("extracting features", len(images))
	group := pool.NewGroup(ctx, extractWorkers)
	for _, image := range images {
		group.Submit(func(taskCtx context.Context) error {
			return p.extractImage(taskCtx, image, configArgs, env)
		})
	}
	err = group.Wait()
	p.reporter.Finish()
	if err != nil {
		return err
	}

	for _, image := range images {
		if err := artifacts.Check(ctx, FeaturePath(image)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Phase) extractImage(ctx context.Context, image string, configArgs, env []string) error {
	logging.WithContext(ctx, p.log).Info("extracting features from image",
		logging.String(logging.FieldPath, filepath.Base(image)))

	args := []string{image, outputBase(image), boxConfig}
	args = append(args, configArgs...)
	if err := p.runner.Run(ctx, "tesseract", args, env); err != nil {
		return err
	}
	p.reporter.Increment()
	return nil
}

// FeaturePath returns the feature file the recognizer writes for an image.
func FeaturePath(image string) string {
	return outputBase(image) + FeatureExt
}

// outputBase strips the image extension; the recognizer appends its own.
func outputBase(image string) string {
	return strings.TrimSuffix(image, filepath.Ext(image))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
