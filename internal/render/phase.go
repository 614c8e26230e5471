package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"letterpress/internal/artifacts"
	"letterpress/internal/config"
	"letterpress/internal/langdata"
	"letterpress/internal/logging"
	"letterpress/internal/pool"
	"letterpress/internal/progress"
	"letterpress/internal/tools"
)

// PhaseName tags log records and ledger rows for this phase.
const PhaseName = "render"

// text2image renders with zero extra spacing; languages that need wider
// spacing carry --char_spacing in their extra args instead.
const charSpacing = 0.0

// Phase generates one box/tiff pair per font and exposure from the training
// corpus. Fonts within an exposure render concurrently on a bounded pool.
type Phase struct {
	cfg          *config.Config
	params       langdata.Params
	trainingDir  string
	fontCacheDir string
	runner       *tools.Runner
	reporter     progress.Reporter
	log          *slog.Logger
}

func New(cfg *config.Config, params langdata.Params, trainingDir, fontCacheDir string, runner *tools.Runner, reporter progress.Reporter, logger *slog.Logger) *Phase {
	if reporter == nil {
		reporter = progress.NewNop()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Phase{
		cfg:          cfg,
		params:       params,
		trainingDir:  trainingDir,
		fontCacheDir: fontCacheDir,
		runner:       runner,
		reporter:     reporter,
		log:          logger,
	}
}

// Execute warms the fontconfig cache, then renders every font for every
// exposure. Each unit verifies its own outputs; a final pass re-checks the
// full expected set after the pool drains.
func (p *Phase) Execute(ctx context.Context) error {
	log := logging.WithContext(ctx, p.log)
	log.Info("generating training images",
		logging.String(logging.FieldLanguage, p.params.Lang),
		logging.Int("fonts", len(p.params.Fonts)),
		logging.Any("exposures", p.params.Exposures),
	)

	if err := artifacts.Check(ctx, p.params.TextCorpus); err != nil {
		return err
	}
	if err := p.warmFontCache(ctx); err != nil {
		return err
	}

	for _, exposure := range p.params.Exposures {
		if p.cfg.Training.ExtractFontProperties && fileExists(p.bigramFreqsPath()) {
			if err := p.writeTrainNgrams(ctx); err != nil {
				return err
			}
		}

		p.reporter.Start(fmt.Sprintf("rendering exposure %d", exposure), len(p.params.Fonts))
		group := pool.NewGroup(ctx, p.cfg.Training.Workers)
		for _, font := range p.params.Fonts {
			group.Submit(func(taskCtx context.Context) error {
				return p.renderFont(taskCtx, font, exposure)
			})
		}
		err := group.Wait()
		p.reporter.Finish()
		if err != nil {
			return err
		}

		for _, font := range p.params.Fonts {
			outbase := OutBase(p.trainingDir, p.params.Lang, FontBaseName(font), exposure)
			if err := artifacts.Check(ctx, outbase+".box", outbase+".tif"); err != nil {
				return err
			}
		}
	}
	return nil
}

// warmFontCache renders a tiny sample with the first font so fontconfig
// builds its cache once, before the pool hammers it, and so a broken
// rasterizer setup surfaces immediately.
func (p *Phase) warmFontCache(ctx context.Context) error {
	if err := os.MkdirAll(p.fontCacheDir, 0o755); err != nil {
		return fmt.Errorf("create font cache dir: %w", err)
	}
	sample := filepath.Join(p.fontCacheDir, "sample_text.txt")
	if err := os.WriteFile(sample, []byte("Text\n"), 0o644); err != nil {
		return fmt.Errorf("write fontconfig sample: %w", err)
	}
	logging.WithContext(ctx, p.log).Info("testing font", logging.String(logging.FieldFont, p.params.Fonts[0]))
	return p.runner.Run(ctx, "text2image", []string{
		"--fonts_dir=" + p.cfg.Paths.FontsDir,
		"--font=" + p.params.Fonts[0],
		"--outputbase=" + sample,
		"--text=" + sample,
		"--fontconfig_tmpdir=" + p.fontCacheDir,
		fmt.Sprintf("--ptsize=%d", p.cfg.Training.PointSize),
	}, nil)
}

func (p *Phase) renderFont(ctx context.Context, font string, exposure int) error {
	log := logging.WithContext(ctx, p.log).With(
		logging.String(logging.FieldFont, font),
		logging.Int(logging.FieldExposure, exposure),
	)
	log.Info("rendering font")

	outbase := OutBase(p.trainingDir, p.params.Lang, FontBaseName(font), exposure)
	args := p.commonArgs(outbase, exposure, font)
	args = append(args,
		"--font="+font,
		"--text="+p.params.TextCorpus,
		fmt.Sprintf("--ptsize=%d", p.cfg.Training.PointSize),
	)
	args = append(args, p.params.Text2imageExtraArgs...)
	if err := p.runner.Run(ctx, "text2image", args, nil); err != nil {
		return err
	}
	if err := artifacts.Check(ctx, outbase+".box", outbase+".tif"); err != nil {
		return err
	}

	if p.cfg.Training.ExtractFontProperties && fileExists(p.trainNgramsPath()) {
		log.Info("extracting font properties")
		args := p.commonArgs(outbase, exposure, font)
		args = append(args,
			"--font="+font,
			"--ligatures=false",
			"--text="+p.trainNgramsPath(),
			"--only_extract_font_properties",
			"--ptsize=32",
		)
		if err := p.runner.Run(ctx, "text2image", args, nil); err != nil {
			return err
		}
		if err := artifacts.Check(ctx, outbase+".fontinfo"); err != nil {
			return err
		}
	}

	p.reporter.Increment()
	return nil
}

func (p *Phase) commonArgs(outbase string, exposure int, font string) []string {
	args := []string{
		"--fontconfig_tmpdir=" + p.fontCacheDir,
		"--fonts_dir=" + p.cfg.Paths.FontsDir,
		"--strip_unrenderable_words",
		fmt.Sprintf("--leading=%d", p.params.Leading),
		fmt.Sprintf("--char_spacing=%.1f", charSpacing),
		fmt.Sprintf("--exposure=%d", exposure),
		"--outputbase=" + outbase,
		fmt.Sprintf("--max_pages=%d", p.cfg.Training.MaxPages),
	}
	if p.cfg.Training.DistortImages {
		args = append(args, "--distort_image")
	}
	if langdata.IsVerticalFont(font) {
		args = append(args, "--writing_mode=vertical-upright")
	}
	return args
}

func (p *Phase) bigramFreqsPath() string {
	return p.params.TextCorpus + ".bigram_freqs"
}

func (p *Phase) trainNgramsPath() string {
	return filepath.Join(p.trainingDir, p.params.Lang+".train_ngrams")
}

// FontBaseName converts a font display name into the artifact-safe form used
// in output file names: spaces become underscores, commas are dropped.
func FontBaseName(font string) string {
	return strings.ReplaceAll(strings.ReplaceAll(font, " ", "_"), ",", "")
}

// OutBase returns the per-font, per-exposure output base path. The rendered
// image, box file, and fontinfo file all hang off this base.
func OutBase(trainingDir, lang, fontBase string, exposure int) string {
	return filepath.Join(trainingDir, fmt.Sprintf("%s.%s.exp%d", lang, fontBase, exposure))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
