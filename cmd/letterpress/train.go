package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"letterpress/internal/config"
	"letterpress/internal/langdata"
	"letterpress/internal/logging"
	"letterpress/internal/pipeline"
	"letterpress/internal/progress"
	"letterpress/internal/runlog"
	"letterpress/internal/tools"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	var fonts []string
	var exposures []int
	var maxPages int
	var pointSize int
	var workers int
	var saveBoxTiff bool
	var distort bool
	var extractFontProperties bool

	cmd := &cobra.Command{
		Use:   "train <language>",
		Short: "Generate LSTM training data for one language",
		Long: `Train renders the language corpus with every configured font and exposure,
builds the character set, extracts line features, and assembles a starter
traineddata file plus a manifest of the extracted features. Intermediate
artifacts live in the scratch directory and are removed after success.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := strings.ToLower(strings.TrimSpace(args[0]))
			if !langdata.Known(lang) {
				return fmt.Errorf("unknown language %q; run `letterpress languages` for the supported codes", lang)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("max-pages") {
				cfg.Training.MaxPages = maxPages
			}
			if flags.Changed("ptsize") {
				cfg.Training.PointSize = pointSize
			}
			if flags.Changed("workers") {
				cfg.Training.Workers = workers
			}
			if flags.Changed("save-box-tiff") {
				cfg.Training.SaveBoxTiff = saveBoxTiff
			}
			if flags.Changed("distort") {
				cfg.Training.DistortImages = distort
			}
			if flags.Changed("extract-font-properties") {
				cfg.Training.ExtractFontProperties = extractFontProperties
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			req := pipeline.Request{Lang: lang, Fonts: fonts, Exposures: exposures}
			req.MeanCountOverride, err = meanCountFromEnv()
			if err != nil {
				return err
			}

			logPath := runLogPath(cfg, lang)
			logger, err := logging.New(logging.Options{
				Level:      cfg.Logging.Level,
				Format:     cfg.Logging.Format,
				RunLogPath: logPath,
			})
			if err != nil {
				return err
			}
			logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays, logging.RetentionTarget{
				Dir:     cfg.Paths.LogDir,
				Pattern: "*.log",
				Exclude: []string{logPath},
			})

			ledger, err := runlog.Open(cfg.Paths.LedgerPath)
			if err != nil {
				return err
			}
			defer ledger.Close()

			driver := pipeline.New(cfg, ledger, logger,
				pipeline.WithRunner(tools.NewRunner(logger)),
				pipeline.WithReporter(progress.New(logger)),
				pipeline.WithLogFile(logPath),
			)

			result, err := driver.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			model := filepath.Join(result.OutputDir, result.Params.Lang, result.Params.Lang+".traineddata")
			fmt.Fprintf(out, "Training data for %s is ready\n", result.Params.Lang)
			fmt.Fprintf(out, "  Starter model: %s\n", model)
			fmt.Fprintf(out, "  Manifest:      %s\n", result.Manifest)
			fmt.Fprintf(out, "  Run ID:        %s\n", result.RunID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&fonts, "font", nil, "Font to render with; repeat for several (names may contain commas)")
	flags.IntSliceVar(&exposures, "exposures", nil, "Exposure levels to render")
	flags.IntVar(&maxPages, "max-pages", 0, "Cap rendered pages per font (0 renders everything)")
	flags.IntVar(&pointSize, "ptsize", 0, "Rendering point size")
	flags.IntVar(&workers, "workers", 0, "Rendering pool size")
	flags.BoolVar(&saveBoxTiff, "save-box-tiff", false, "Keep box/tiff pairs next to the final artifacts")
	flags.BoolVar(&distort, "distort", false, "Degrade rendered images")
	flags.BoolVar(&extractFontProperties, "extract-font-properties", true, "Record font metrics during rendering")

	return cmd
}

// meanCountFromEnv reads the MEAN_COUNT override. When set it beats the
// config value, which in turn beats the per-language table.
func meanCountFromEnv() (int, error) {
	raw := strings.TrimSpace(os.Getenv("MEAN_COUNT"))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("MEAN_COUNT must be a positive integer, got %q", raw)
	}
	return value, nil
}

// runLogPath names the per-run debug log. The pipeline copies it next to the
// artifacts after a successful run.
func runLogPath(cfg *config.Config, lang string) string {
	stamp := time.Now().UTC().Format("20060102-150405")
	return filepath.Join(cfg.Paths.LogDir, fmt.Sprintf("%s-%s.log", lang, stamp))
}
