package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths groups every filesystem location the pipeline touches.
type Paths struct {
	// OutputDir receives the assembled starter model, relocated feature
	// files, and the run manifest.
	OutputDir string `toml:"output_dir"`
	// ScratchDir hosts the per-language working directory that holds all
	// intermediate artifacts; removed after a successful run.
	ScratchDir string `toml:"scratch_dir"`
	// LangdataDir is a langdata checkout: per-language wordlists, numbers,
	// punctuation, optional tool configs, and script data.
	LangdataDir string `toml:"langdata_dir"`
	// TessdataDir holds the traineddata consumed by the feature extractor.
	TessdataDir string `toml:"tessdata_dir"`
	// FontsDir is scanned by the rasterizer for font files.
	FontsDir string `toml:"fonts_dir"`
	// FontCacheDir overrides the fontconfig cache location. Empty means a
	// per-run directory inside the scratch tree.
	FontCacheDir string `toml:"font_cache_dir"`
	// CorpusDir holds {lang}.corpus.txt training texts.
	CorpusDir string `toml:"corpus_dir"`
	// LogDir receives per-run log files.
	LogDir string `toml:"log_dir"`
	// LedgerPath locates the run-ledger database.
	LedgerPath string `toml:"ledger_path"`
}

// Training carries the tunables shared by all rendering and extraction phases.
type Training struct {
	// MaxPages caps rendered pages per font; zero renders everything.
	MaxPages  int `toml:"max_pages"`
	PointSize int `toml:"point_size"`
	// Workers bounds the rendering pool. Extraction uses its own fixed bound.
	Workers               int  `toml:"workers"`
	SaveBoxTiff           bool `toml:"save_box_tiff"`
	DistortImages         bool `toml:"distort_images"`
	ExtractFontProperties bool `toml:"extract_font_properties"`
	// MeanCount overrides the per-language sample count when positive.
	MeanCount int `toml:"mean_count"`
}

// Logging controls console log output. Per-run files always log at debug.
type Logging struct {
	Level         string `toml:"level"`
	Format        string `toml:"format"`
	RetentionDays int    `toml:"retention_days"`
}

// Config is the root configuration object.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Training Training `toml:"training"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/letterpress/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. An absent file yields defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("letterpress.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into. Read-only data
// directories (langdata, tessdata, fonts, corpus) are expected to exist
// already and are left to Validate and preflight checks.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.ScratchDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.LedgerPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// TrainingDir returns the per-language working directory inside the scratch root.
func (c *Config) TrainingDir(lang string) string {
	return filepath.Join(c.Paths.ScratchDir, lang)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
