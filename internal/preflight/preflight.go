package preflight

import (
	"fmt"
	"strings"

	"letterpress/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every filesystem check for the given config. The scratch
// and output trees must be writable; the data directories only need to be
// readable.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	return []Result{
		CheckDirectoryAccess("Scratch directory", cfg.Paths.ScratchDir),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryReadable("Langdata directory", cfg.Paths.LangdataDir),
		CheckDirectoryReadable("Tessdata directory", cfg.Paths.TessdataDir),
		CheckDirectoryReadable("Fonts directory", cfg.Paths.FontsDir),
		CheckDirectoryReadable("Corpus directory", cfg.Paths.CorpusDir),
		CheckFreeSpace("Scratch free space", cfg.Paths.ScratchDir),
	}
}

// Failures flattens failed results into a single error, or nil when every
// check passed.
func Failures(results []Result) error {
	var failed []string
	for _, res := range results {
		if !res.Passed {
			failed = append(failed, fmt.Sprintf("%s: %s", res.Name, res.Detail))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("preflight checks failed: %s", strings.Join(failed, "; "))
}
