package assemble

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"letterpress/internal/artifacts"
	"letterpress/internal/extract"
	"letterpress/internal/fileutil"
	"letterpress/internal/langdata"
	"letterpress/internal/logging"
	"letterpress/internal/tools"
)

// PhaseName tags log records and ledger rows for this phase.
const PhaseName = "assemble"

// Phase builds the starter traineddata and stages artifacts for the trainer.
type Phase struct {
	params      langdata.Params
	trainingDir string
	langdataDir string
	outputDir   string
	saveBoxTiff bool
	runner      *tools.Runner
	log         *slog.Logger
}

func New(params langdata.Params, trainingDir, langdataDir, outputDir string, saveBoxTiff bool, runner *tools.Runner, logger *slog.Logger) *Phase {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Phase{
		params:      params,
		trainingDir: trainingDir,
		langdataDir: langdataDir,
		outputDir:   outputDir,
		saveBoxTiff: saveBoxTiff,
		runner:      runner,
		log:         logger,
	}
}

// ManifestPath returns the training-files manifest location.
func (p *Phase) ManifestPath() string {
	return filepath.Join(p.outputDir, p.params.Lang+".training_files.txt")
}

// Execute runs the language-model combiner, relocates artifacts, and writes
// the manifest. Relocation happens only after the combiner succeeds, so a
// failed run leaves the scratch directory untouched.
func (p *Phase) Execute(ctx context.Context) error {
	log := logging.WithContext(ctx, p.log)
	log.Info("constructing lstm training data", logging.String(logging.FieldLanguage, p.params.Lang))

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := p.combineLangModel(ctx); err != nil {
		return err
	}

	if p.saveBoxTiff {
		log.Info("saving box/tiff pairs for training data")
		if err := p.moveMatches(log, p.params.Lang+"*.box", p.params.Lang+"*.tif"); err != nil {
			return err
		}
	}
	log.Info("moving lstmf files for training data")
	if err := p.moveMatches(log, p.params.Lang+".*"+extract.FeatureExt); err != nil {
		return err
	}

	return p.writeManifest(ctx)
}

func (p *Phase) combineLangModel(ctx context.Context) error {
	langPrefix := filepath.Join(p.langdataDir, p.params.Lang, p.params.Lang)
	args := []string{
		"--input_unicharset", filepath.Join(p.trainingDir, p.params.Lang+".unicharset"),
		"--script_dir", p.langdataDir,
		"--words", langPrefix + ".wordlist",
		"--numbers", langPrefix + ".numbers",
		"--puncs", langPrefix + ".punc",
		"--output_dir", p.outputDir,
		"--lang", p.params.Lang,
	}
	if p.params.RTL {
		args = append(args, "--lang_is_rtl")
	}
	if p.params.NormMode >= 2 {
		args = append(args, "--pass_through_recoder")
	}
	return p.runner.Run(ctx, "combine_lang_model", args, nil)
}

func (p *Phase) moveMatches(log *slog.Logger, patterns ...string) error {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(p.trainingDir, pattern))
		if err != nil {
			return fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, src := range matches {
			dst := filepath.Join(p.outputDir, filepath.Base(src))
			log.Debug("moving artifact", logging.String(logging.FieldPath, src))
			if err := fileutil.MoveFile(src, dst); err != nil {
				return fmt.Errorf("move %s: %w", filepath.Base(src), err)
			}
		}
	}
	return nil
}

// writeManifest lists every feature file now in the output directory, one
// path per line, newline-terminated.
func (p *Phase) writeManifest(ctx context.Context) error {
	features, err := filepath.Glob(filepath.Join(p.outputDir, p.params.Lang+".*"+extract.FeatureExt))
	if err != nil {
		return fmt.Errorf("glob features: %w", err)
	}

	var list strings.Builder
	for _, path := range features {
		list.WriteString(path)
		list.WriteByte('\n')
	}
	if err := os.WriteFile(p.ManifestPath(), []byte(list.String()), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	logging.WithContext(ctx, p.log).Info("wrote training-files manifest",
		logging.String(logging.FieldPath, p.ManifestPath()),
		logging.Int("files", len(features)),
	)
	return artifacts.Check(ctx, p.ManifestPath())
}
