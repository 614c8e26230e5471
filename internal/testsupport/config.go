// Package testsupport centralizes test fixtures: temp-dir configs, stubbed
// external binaries, langdata seeds, and image fixtures.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"letterpress/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// All directories exist on return.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfgVal.Paths.LangdataDir = filepath.Join(base, "langdata")
	cfgVal.Paths.TessdataDir = filepath.Join(base, "tessdata")
	cfgVal.Paths.FontsDir = filepath.Join(base, "fonts")
	cfgVal.Paths.CorpusDir = filepath.Join(base, "corpus")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LedgerPath = filepath.Join(base, "ledger.db")
	cfgVal.Training.Workers = 2
	cfgVal.Training.MaxPages = 2

	for _, dir := range []string{
		cfgVal.Paths.OutputDir,
		cfgVal.Paths.ScratchDir,
		cfgVal.Paths.LangdataDir,
		cfgVal.Paths.TessdataDir,
		cfgVal.Paths.FontsDir,
		cfgVal.Paths.CorpusDir,
		cfgVal.Paths.LogDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWorkers overrides the rendering pool size on the test config.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Training.Workers = n
	}
}

// WithSaveBoxTiff enables box/tiff relocation on the test config.
func WithSaveBoxTiff() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Training.SaveBoxTiff = true
	}
}

// WithExtractFontProperties toggles the font-info rendering pass.
func WithExtractFontProperties(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Training.ExtractFontProperties = enabled
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the default training tools are
// stubbed. The stubs exit zero without producing artifacts; tests that need
// artifact side effects write their own scripts via StubTool.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{
				"text2image",
				"unicharset_extractor",
				"set_unicharset_properties",
				"tesseract",
				"combine_lang_model",
			}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			StubTool(b.t, binDir, name, "#!/bin/sh\nexit 0\n")
		}
		PrependPath(b.t, binDir)
	}
}

// StubTool writes an executable script into binDir.
func StubTool(t testing.TB, binDir, name, script string) {
	t.Helper()

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t testing.TB, dir string) {
	t.Helper()

	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+oldPath); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ScratchDir)
}
