package charset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"

	"letterpress/internal/artifacts"
	"letterpress/internal/logging"
	"letterpress/internal/services"
	"letterpress/internal/tools"
)

// PhaseName tags log records and ledger rows for this phase.
const PhaseName = "unicharset"

// Phase derives the unicharset and unichar properties from rendered box
// files. It runs single-threaded; the two tool invocations are strictly
// ordered because the second rewrites the first's output.
type Phase struct {
	lang        string
	trainingDir string
	langdataDir string
	normMode    int
	runner      *tools.Runner
	log         *slog.Logger
}

func New(lang, trainingDir, langdataDir string, normMode int, runner *tools.Runner, logger *slog.Logger) *Phase {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Phase{
		lang:        lang,
		trainingDir: trainingDir,
		langdataDir: langdataDir,
		normMode:    normMode,
		runner:      runner,
		log:         logger,
	}
}

// UnicharsetPath returns where the extractor writes the unicharset.
func (p *Phase) UnicharsetPath() string {
	return filepath.Join(p.trainingDir, p.lang+".unicharset")
}

// XHeightsPath returns where the properties tool writes x-height data.
func (p *Phase) XHeightsPath() string {
	return filepath.Join(p.trainingDir, p.lang+".xheights")
}

// Execute collects all box files from the working directory, extracts the
// unicharset over them, then sets unichar properties with the unicharset as
// both input and output.
func (p *Phase) Execute(ctx context.Context) error {
	log := logging.WithContext(ctx, p.log)
	log.Info("generating unicharset and unichar properties",
		logging.String(logging.FieldLanguage, p.lang))

	boxFiles, err := filepath.Glob(filepath.Join(p.trainingDir, "*.box"))
	if err != nil {
		return fmt.Errorf("glob box files: %w", err)
	}
	if len(boxFiles) == 0 {
		return services.Wrap(services.ErrMissingArtifact, PhaseName, "collect",
			fmt.Sprintf("no box files found in '%s'", p.trainingDir), nil)
	}
	sort.Strings(boxFiles)
	log.Debug("collected box files", logging.Int("count", len(boxFiles)))

	args := []string{
		"--output_unicharset", p.UnicharsetPath(),
		"--norm_mode", strconv.Itoa(p.normMode),
	}
	args = append(args, boxFiles...)
	if err := p.runner.Run(ctx, "unicharset_extractor", args, nil); err != nil {
		return err
	}
	if err := artifacts.Check(ctx, p.UnicharsetPath()); err != nil {
		return err
	}

	// Input and output deliberately alias: the tool augments the unicharset
	// in place while writing the x-heights file.
	if err := p.runner.Run(ctx, "set_unicharset_properties", []string{
		"-U", p.UnicharsetPath(),
		"-O", p.UnicharsetPath(),
		"-X", p.XHeightsPath(),
		"--script_dir=" + p.langdataDir,
	}, nil); err != nil {
		return err
	}
	return artifacts.Check(ctx, p.XHeightsPath())
}
