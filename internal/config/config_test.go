package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"letterpress/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, ".local", "share", "letterpress", "output")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	wantScratch := filepath.Join(tempHome, ".local", "share", "letterpress", "scratch")
	if cfg.Paths.ScratchDir != wantScratch {
		t.Fatalf("unexpected scratch dir: got %q want %q", cfg.Paths.ScratchDir, wantScratch)
	}
	if cfg.Paths.FontsDir != "/usr/share/fonts" {
		t.Fatalf("unexpected fonts dir: %q", cfg.Paths.FontsDir)
	}
	if cfg.Paths.FontCacheDir != "" {
		t.Fatalf("expected empty font cache override, got %q", cfg.Paths.FontCacheDir)
	}
	if cfg.Training.PointSize != 12 {
		t.Fatalf("unexpected point size: %d", cfg.Training.PointSize)
	}
	if cfg.Training.MaxPages != 0 {
		t.Fatalf("expected unlimited pages by default, got %d", cfg.Training.MaxPages)
	}
	if !cfg.Training.ExtractFontProperties {
		t.Fatal("expected font property extraction enabled by default")
	}
	if cfg.Training.SaveBoxTiff {
		t.Fatal("expected save_box_tiff disabled by default")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.RetentionDays != 60 {
		t.Fatalf("unexpected retention: %d", cfg.Logging.RetentionDays)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.ScratchDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "letterpress.toml")

	type payload struct {
		Paths struct {
			OutputDir   string `toml:"output_dir"`
			LangdataDir string `toml:"langdata_dir"`
		} `toml:"paths"`
		Training struct {
			MaxPages int `toml:"max_pages"`
			Workers  int `toml:"workers"`
		} `toml:"training"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	custom.Paths.LangdataDir = filepath.Join(tempDir, "langdata")
	custom.Training.MaxPages = 3
	custom.Training.Workers = 2
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.OutputDir != custom.Paths.OutputDir {
		t.Fatalf("expected output dir override, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.LangdataDir != custom.Paths.LangdataDir {
		t.Fatalf("expected langdata dir override, got %q", cfg.Paths.LangdataDir)
	}
	if cfg.Training.MaxPages != 3 {
		t.Fatalf("expected max pages 3, got %d", cfg.Training.MaxPages)
	}
	if cfg.Training.Workers != 2 {
		t.Fatalf("expected workers 2, got %d", cfg.Training.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level normalized to debug, got %q", cfg.Logging.Level)
	}
	if cfg.Training.PointSize != 12 {
		t.Fatalf("expected default point size to survive, got %d", cfg.Training.PointSize)
	}
}

func TestLoadNormalizesNonPositiveWorkers(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "letterpress.toml")
	if err := os.WriteFile(configPath, []byte("[training]\nworkers = -4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Training.Workers != 1 {
		t.Fatalf("expected workers clamped to 1, got %d", cfg.Training.Workers)
	}
}

func TestTrainingDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.ScratchDir = "/tmp/scratch"
	if got := cfg.TrainingDir("eng"); got != filepath.Join("/tmp/scratch", "eng") {
		t.Fatalf("unexpected training dir: %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "langdata_dir") {
		t.Fatalf("sample config missing langdata path: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !strings.Contains(cfg.Paths.ScratchDir, "letterpress") {
		t.Fatalf("expected scratch dir to contain letterpress, got %q", cfg.Paths.ScratchDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Training.PointSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive point size")
	}

	cfg = config.Default()
	cfg.Training.MaxPages = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative page cap")
	}

	cfg = config.Default()
	cfg.Paths.LangdataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing langdata dir")
	}

	cfg = config.Default()
	cfg.Paths.ScratchDir = cfg.Paths.OutputDir
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when scratch and output collide")
	}

	cfg = config.Default()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}
