package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTraining(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	required := []struct {
		field string
		value string
	}{
		{"paths.output_dir", c.Paths.OutputDir},
		{"paths.scratch_dir", c.Paths.ScratchDir},
		{"paths.langdata_dir", c.Paths.LangdataDir},
		{"paths.tessdata_dir", c.Paths.TessdataDir},
		{"paths.fonts_dir", c.Paths.FontsDir},
		{"paths.corpus_dir", c.Paths.CorpusDir},
	}
	for _, entry := range required {
		if entry.value == "" {
			return fmt.Errorf("%s must be set", entry.field)
		}
	}
	if c.Paths.OutputDir == c.Paths.ScratchDir {
		return errors.New("paths.output_dir and paths.scratch_dir must differ")
	}
	return nil
}

func (c *Config) validateTraining() error {
	if c.Training.MaxPages < 0 {
		return errors.New("training.max_pages must be zero (unlimited) or positive")
	}
	if c.Training.PointSize <= 0 {
		return errors.New("training.point_size must be positive")
	}
	if c.Training.Workers <= 0 {
		return errors.New("training.workers must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
