package langdata

import (
	"fmt"
	"log/slog"

	"letterpress/internal/logging"
	"letterpress/internal/services"
)

// Resolver turns a language code into the full training parameter set. It is
// a pure function of the request: environment-derived overrides arrive as
// explicit fields, never read here.
type Resolver struct {
	log *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{log: logger}
}

// Resolve populates every parameter for the requested language. Non-empty
// caller fonts and exposures always win over table values, and an explicit
// mean-count override beats both rule and default. Codes outside the table
// resolve to ErrInvalidLanguageCode.
func (r *Resolver) Resolve(req Request) (Params, error) {
	matched, ok := findRule(req.Lang)
	if !ok {
		return Params{}, services.Wrap(services.ErrInvalidLanguageCode, "resolve", "language",
			fmt.Sprintf("%s is not a valid language code", req.Lang), nil)
	}

	p := defaults(req)
	matched.apply(&p, req)

	meanSource := sourceDefault
	if p.MeanCount != defaultMeanCount {
		meanSource = sourceTable
	}
	if req.MeanCountOverride > 0 {
		p.MeanCount = req.MeanCountOverride
		p.TrainingDataArgs = append(p.TrainingDataArgs, fmt.Sprintf("--mean_count=%d", req.MeanCountOverride))
		meanSource = sourceRequest
	}

	fontSource := sourceTable
	if len(req.Fonts) > 0 {
		fontSource = sourceRequest
	} else if len(p.Fonts) == 0 {
		p.Fonts = latinFonts
		fontSource = sourceDefault
	}

	exposureSource := sourceTable
	if len(req.Exposures) > 0 {
		exposureSource = sourceRequest
	} else if len(p.Exposures) == 0 {
		p.Exposures = []int{0}
		exposureSource = sourceDefault
	}

	switch {
	case rtlCodes[req.Lang]:
		p.RTL = true
		p.NormMode = 2
	case normMode2Codes[req.Lang]:
		p.NormMode = 2
	default:
		p.NormMode = 1
	}

	// Callers own the returned slices; detach them from the package tables.
	p.Fonts = append([]string(nil), p.Fonts...)
	p.Exposures = append([]int(nil), p.Exposures...)

	r.logResolved(p, fontSource, exposureSource, meanSource)
	return p, nil
}

const defaultMeanCount = 40

// defaults mirrors the base values every language starts from before its rule
// applies. Mean count 40 suits Latin scripts; dense scripts trim it in their
// rules to keep the rendered text volume manageable.
func defaults(req Request) Params {
	return Params{
		Lang:                    req.Lang,
		TextCorpus:              CorpusPath(req.CorpusDir, req.Lang),
		Fonts:                   req.Fonts,
		Exposures:               req.Exposures,
		WordDawgFactor:          0.05,
		NumberDawgFactor:        0.125,
		BigramDawgFactor:        0.015,
		FragmentsDisabled:       true,
		AmbigsFilterDenominator: "100000",
		Leading:                 32,
		MeanCount:               defaultMeanCount,
		// Language to mix with for maximum accuracy; base languages override.
		MixLang: "eng",
	}
}

const (
	sourceRequest = "request"
	sourceTable   = "table"
	sourceDefault = "default"
)

func (r *Resolver) logResolved(p Params, fontSource, exposureSource, meanSource string) {
	log := r.log.With(logging.String(logging.FieldLanguage, p.Lang))
	log.Debug("fonts resolved", logging.Int("count", len(p.Fonts)), logging.String("source", fontSource))
	log.Debug("exposures resolved", logging.Any("exposures", p.Exposures), logging.String("source", exposureSource))
	log.Debug("mean count resolved", logging.Int("mean_count", p.MeanCount), logging.String("source", meanSource))
	log.Debug("language parameters resolved",
		logging.String("text_corpus", p.TextCorpus),
		logging.String("mix_lang", p.MixLang),
		logging.Float64("word_dawg_factor", p.WordDawgFactor),
		logging.Float64("punc_dawg_factor", p.PuncDawgFactor),
		logging.Float64("number_dawg_factor", p.NumberDawgFactor),
		logging.Float64("bigram_dawg_factor", p.BigramDawgFactor),
		logging.Int("word_dawg_size", p.WordDawgSize),
		logging.Int("leading", p.Leading),
		logging.Int("norm_mode", p.NormMode),
		logging.Bool("lang_is_rtl", p.RTL),
		logging.Any("filter_args", p.FilterArgs),
		logging.Any("training_data_args", p.TrainingDataArgs),
		logging.Any("text2image_extra_args", p.Text2imageExtraArgs),
	)
}
