package config

const (
	defaultOutputDir     = "~/.local/share/letterpress/output"
	defaultScratchDir    = "~/.local/share/letterpress/scratch"
	defaultLangdataDir   = "~/.local/share/letterpress/langdata"
	defaultTessdataDir   = "/usr/share/tessdata"
	defaultFontsDir      = "/usr/share/fonts"
	defaultCorpusDir     = "~/.local/share/letterpress/corpus"
	defaultLogDir        = "~/.local/share/letterpress/logs"
	defaultLedgerPath    = "~/.local/share/letterpress/letterpress.db"
	defaultMaxPages      = 0
	defaultPointSize     = 12
	defaultWorkers       = 8
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:   defaultOutputDir,
			ScratchDir:  defaultScratchDir,
			LangdataDir: defaultLangdataDir,
			TessdataDir: defaultTessdataDir,
			FontsDir:    defaultFontsDir,
			CorpusDir:   defaultCorpusDir,
			LogDir:      defaultLogDir,
			LedgerPath:  defaultLedgerPath,
		},
		Training: Training{
			MaxPages:              defaultMaxPages,
			PointSize:             defaultPointSize,
			Workers:               defaultWorkers,
			ExtractFontProperties: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultRetentionDays,
		},
	}
}
