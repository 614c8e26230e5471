package langdata

import "path/filepath"

// Request carries the caller-controlled inputs to parameter resolution.
// Environment-derived values (the mean-count override) are read at the CLI
// edge and threaded through here so resolution itself stays deterministic.
type Request struct {
	Lang      string
	CorpusDir string
	// Fonts and Exposures win over language defaults when non-empty.
	Fonts     []string
	Exposures []int
	// MeanCountOverride replaces the per-language sample count when positive.
	MeanCountOverride int
}

// Params is the fully-resolved per-language training configuration. Every
// field holds its final value once Resolve returns; phases treat it as
// read-only.
type Params struct {
	Lang string

	// TextCorpus is the training-text file. Some languages read another
	// code's corpus (frm reads fra).
	TextCorpus string

	Fonts     []string
	Exposures []int

	// FilterArgs feed the corpus filter, TrainingDataArgs the training-data
	// builder, and Text2imageExtraArgs the rasterizer.
	FilterArgs          []string
	TrainingDataArgs    []string
	Text2imageExtraArgs []string
	WordlistDawgArgs    string

	// Dawg factors are the fraction of the corpus deliberately left
	// uncovered. Zero means unset for the punctuation factor.
	PuncDawgFactor   float64
	NumberDawgFactor float64
	WordDawgFactor   float64
	BigramDawgFactor float64

	// GenerateWordBigrams is nil when unset; language-id and CJK rules pin
	// it to zero.
	GenerateWordBigrams *int
	WordDawgSize        int

	FragmentsDisabled       bool
	RunShapeClustering      bool
	AmbigsFilterDenominator string

	// Leading is the inter-line spacing passed to the rasterizer.
	Leading   int
	MeanCount int
	MixLang   string

	RTL      bool
	NormMode int
}

// CorpusPath builds the conventional corpus location for a language code.
func CorpusPath(corpusDir, lang string) string {
	return filepath.Join(corpusDir, lang+".corpus.txt")
}

func intPtr(v int) *int {
	return &v
}
