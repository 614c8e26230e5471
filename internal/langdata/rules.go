package langdata

// rule binds a set of language codes to a parameter delta. Rules only touch
// the fields they override; everything else keeps the package defaults. Font
// and exposure assignments are guarded so caller-supplied values survive.
type rule struct {
	codes []string
	apply func(p *Params, req Request)
}

func noOverrides(*Params, Request) {}

// ruleTable maps every accepted language code (plus zlm, which upstream
// handles without listing) to its overrides. Resolution walks the table in
// order and applies the first match; unmatched codes are invalid.
var ruleTable = []rule{
	// Latin languages.
	{codes: []string{"enm"}, apply: func(p *Params, req Request) {
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--ligatures")
		if len(p.Fonts) == 0 {
			p.Fonts = earlyLatinFonts
		}
	}},
	{codes: []string{"frm"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "fra")
		// Make long-s substitutions for Middle French text.
		p.FilterArgs = append(p.FilterArgs, "--make_early_language_variant=fra")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--ligatures")
		if len(p.Fonts) == 0 {
			p.Fonts = earlyLatinFonts
		}
	}},
	{codes: []string{"frk", "deu_latf"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "deu")
		if len(p.Fonts) == 0 {
			p.Fonts = frakturFonts
		}
	}},
	{codes: []string{"ita_old"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "ita")
		// Make long-s substitutions for Early Italian text.
		p.FilterArgs = append(p.FilterArgs, "--make_early_language_variant=ita")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--ligatures")
		if len(p.Fonts) == 0 {
			p.Fonts = earlyLatinFonts
		}
	}},
	{codes: []string{"lat"}, apply: func(p *Params, req Request) {
		if len(p.Exposures) == 0 {
			p.Exposures = []int{-3, -2, -1, 0, 1, 2, 3}
		}
		if len(p.Fonts) == 0 {
			p.Fonts = neoLatinFonts
		}
	}},
	{codes: []string{"spa_old"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "spa")
		// Make long-s substitutions for Early Spanish text.
		p.FilterArgs = append(p.FilterArgs, "--make_early_language_variant=spa")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--ligatures")
		if len(p.Fonts) == 0 {
			p.Fonts = earlyLatinFonts
		}
	}},
	{codes: []string{"srp_latn"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "srp")
	}},
	{codes: []string{"vie"}, apply: func(p *Params, req Request) {
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		if len(p.Fonts) == 0 {
			p.Fonts = vietnameseFonts
		}
	}},

	// Highly inflective languages get a bigger dawg size.
	{codes: []string{"hun", "pol"}, apply: func(p *Params, req Request) {
		p.WordDawgSize = 1_000_000
	}},

	// Latin with default treatment.
	{codes: []string{
		"afr", "aze", "bos", "cat", "ceb", "cym", "dan", "epo", "est", "eus",
		"fil", "fin", "gle", "glg", "hat", "hrv", "iast", "ind", "isl", "ita",
		"jav", "lav", "lit", "mlt", "msa", "nor", "por", "ron", "slk", "slv",
		"spa", "sqi", "swa", "swe", "tgl", "tur", "uzb", "zlm",
	}, apply: noOverrides},
	{codes: []string{"ces"}, apply: func(p *Params, req Request) {
		p.PuncDawgFactor = 0.004
	}},
	{codes: []string{"deu"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.125
	}},
	{codes: []string{"eng"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.03
	}},
	{codes: []string{"fra"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.08
	}},
	{codes: []string{"nld"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.02
	}},
	{codes: []string{"gle_uncial"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = irishUncialFonts
		}
	}},

	// Language-id training on EFIGS+Latin+Vietnamese text with regular and
	// fraktur fonts.
	{codes: []string{"lat_lid"}, apply: func(p *Params, req Request) {
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.GenerateWordBigrams = intPtr(0)
		p.WordDawgSize = 1_000_000
		// Not all fonts render the extended Latin symbols found in
		// Vietnamese text.
		if len(p.Fonts) == 0 {
			p.Fonts = earlyLatinFonts
		}
	}},

	// Cyrillic script-based languages. It is bad to mix Latin with Cyrillic.
	{codes: []string{"rus"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = russianFonts
		}
		p.MixLang = "rus"
		p.NumberDawgFactor = 0.05
		p.WordDawgSize = 1_000_000
	}},
	{codes: []string{"aze_cyrl", "bel", "bul", "kaz", "mkd", "srp", "tgk", "ukr", "uzb_cyrl"},
		apply: func(p *Params, req Request) {
			p.MixLang = p.Lang
			if len(p.Fonts) == 0 {
				p.Fonts = russianFonts
			}
		}},
	{codes: []string{"cyr_lid"}, apply: func(p *Params, req Request) {
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.GenerateWordBigrams = intPtr(0)
		p.WordDawgSize = 1_000_000
		if len(p.Fonts) == 0 {
			p.Fonts = russianFonts
		}
	}},

	// South Asian scripts have many graphemes, so trim the mean count to
	// avoid a huge amount of text.
	{codes: []string{"asm", "ben"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		if len(p.Fonts) == 0 {
			p.Fonts = bengaliFonts
		}
	}},
	{codes: []string{"bih", "hin", "mar", "nep", "san"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		if len(p.Fonts) == 0 {
			p.Fonts = devanagariFonts
		}
	}},
	{codes: []string{"bod"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		if len(p.Fonts) == 0 {
			p.Fonts = tibetanFonts
		}
	}},
	{codes: []string{"dzo"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.01
		if len(p.Fonts) == 0 {
			p.Fonts = tibetanFonts
		}
	}},
	{codes: []string{"guj"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		if len(p.Fonts) == 0 {
			p.Fonts = gujaratiFonts
		}
	}},
	{codes: []string{"kan"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_newline_in_output")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--char_spacing=0.5")
		if len(p.Fonts) == 0 {
			p.Fonts = kannadaFonts
		}
	}},
	{codes: []string{"mal"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_newline_in_output")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--char_spacing=0.5")
		if len(p.Fonts) == 0 {
			p.Fonts = malayalamFonts
		}
	}},
	{codes: []string{"ori"}, apply: func(p *Params, req Request) {
		p.WordDawgFactor = 0.01
		if len(p.Fonts) == 0 {
			p.Fonts = oriyaFonts
		}
	}},
	{codes: []string{"pan"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.01
		if len(p.Fonts) == 0 {
			p.Fonts = punjabiFonts
		}
	}},
	{codes: []string{"sin"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.01
		if len(p.Fonts) == 0 {
			p.Fonts = sinhalaFonts
		}
	}},
	{codes: []string{"tam"}, apply: func(p *Params, req Request) {
		p.MeanCount = 30
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_newline_in_output")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--char_spacing=0.5")
		if len(p.Fonts) == 0 {
			p.Fonts = tamilFonts
		}
	}},
	{codes: []string{"tel"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_newline_in_output")
		p.Text2imageExtraArgs = append(p.Text2imageExtraArgs, "--char_spacing=0.5")
		if len(p.Fonts) == 0 {
			p.Fonts = teluguFonts
		}
	}},

	// SouthEast Asian scripts.
	{codes: []string{"jav_java"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		if len(p.Fonts) == 0 {
			p.Fonts = javaneseFonts
		}
	}},
	{codes: []string{"khm"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		if len(p.Fonts) == 0 {
			p.Fonts = khmerFonts
		}
	}},
	{codes: []string{"lao"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		if len(p.Fonts) == 0 {
			p.Fonts = laothianFonts
		}
	}},
	{codes: []string{"mya"}, apply: func(p *Params, req Request) {
		p.MeanCount = 12
		p.WordDawgFactor = 0.15
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		if len(p.Fonts) == 0 {
			p.Fonts = burmeseFonts
		}
	}},
	{codes: []string{"tha"}, apply: func(p *Params, req Request) {
		p.MeanCount = 30
		p.WordDawgFactor = 0.01
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.FilterArgs = append(p.FilterArgs, "--segmenter_lang=tha")
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_space_in_output", "--desired_bigrams=")
		p.AmbigsFilterDenominator = "1000"
		p.Leading = 48
		if len(p.Fonts) == 0 {
			p.Fonts = thaiFonts
		}
	}},

	// CJK.
	{codes: []string{"chi_sim"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.PuncDawgFactor = 0.015
		p.WordDawgFactor = 0.015
		p.GenerateWordBigrams = intPtr(0)
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_space_in_output", "--desired_bigrams=")
		p.FilterArgs = append(p.FilterArgs, "--charset_filter=chi_sim", "--segmenter_lang=chi_sim")
		if len(p.Fonts) == 0 {
			p.Fonts = chiSimFonts
		}
	}},
	{codes: []string{"chi_tra"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.015
		p.GenerateWordBigrams = intPtr(0)
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_space_in_output", "--desired_bigrams=")
		p.FilterArgs = append(p.FilterArgs, "--charset_filter=chi_tr", "--segmenter_lang=chi_tra")
		if len(p.Fonts) == 0 {
			p.Fonts = chiTraFonts
		}
	}},
	{codes: []string{"jpn"}, apply: func(p *Params, req Request) {
		p.MeanCount = 15
		p.WordDawgFactor = 0.015
		p.GenerateWordBigrams = intPtr(0)
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--no_space_in_output", "--desired_bigrams=")
		p.FilterArgs = append(p.FilterArgs, "--charset_filter=jpn", "--segmenter_lang=jpn")
		if len(p.Fonts) == 0 {
			p.Fonts = jpnFonts
		}
	}},
	{codes: []string{"kor"}, apply: func(p *Params, req Request) {
		p.MeanCount = 20
		p.WordDawgFactor = 0.015
		p.NumberDawgFactor = 0.05
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=10000")
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--desired_bigrams=")
		p.GenerateWordBigrams = intPtr(0)
		p.FilterArgs = append(p.FilterArgs, "--charset_filter=kor", "--segmenter_lang=kor")
		if len(p.Fonts) == 0 {
			p.Fonts = koreanFonts
		}
	}},

	// Middle-Eastern scripts.
	{codes: []string{"ara"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = arabicFonts
		}
	}},
	{codes: []string{"div"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = thaanaFonts
		}
	}},
	{codes: []string{"fas", "pus", "snd", "uig", "urd"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = persianFonts
		}
	}},
	{codes: []string{"heb", "yid"}, apply: func(p *Params, req Request) {
		p.NumberDawgFactor = 0.05
		p.WordDawgFactor = 0.08
		if len(p.Fonts) == 0 {
			p.Fonts = hebrewFonts
		}
	}},
	{codes: []string{"syr"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = syriacFonts
		}
	}},

	// Other scripts.
	{codes: []string{"amh", "tir"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = amharicFonts
		}
	}},
	{codes: []string{"chr"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = concatFonts(northAmericanAboriginalFonts, []string{"Noto Sans Cherokee"})
		}
	}},
	{codes: []string{"ell"}, apply: func(p *Params, req Request) {
		p.NumberDawgFactor = 0.05
		p.WordDawgFactor = 0.08
		if len(p.Fonts) == 0 {
			p.Fonts = greekFonts
		}
	}},
	{codes: []string{"grc"}, apply: func(p *Params, req Request) {
		if len(p.Exposures) == 0 {
			p.Exposures = []int{-3, -2, -1, 0, 1, 2, 3}
		}
		if len(p.Fonts) == 0 {
			p.Fonts = ancientGreekFonts
		}
	}},
	{codes: []string{"hye"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = armenianFonts
		}
	}},
	{codes: []string{"iku"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = northAmericanAboriginalFonts
		}
	}},
	{codes: []string{"kat"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = georgianFonts
		}
	}},
	{codes: []string{"kat_old"}, apply: func(p *Params, req Request) {
		p.TextCorpus = CorpusPath(req.CorpusDir, "kat")
		if len(p.Fonts) == 0 {
			p.Fonts = oldGeorgianFonts
		}
	}},
	{codes: []string{"kir"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = kyrgyzFonts
		}
		p.TrainingDataArgs = append(p.TrainingDataArgs, "--infrequent_ratio=100")
	}},
	{codes: []string{"kmr"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = latinFonts
		}
	}},
	{codes: []string{"kur_ara"}, apply: func(p *Params, req Request) {
		if len(p.Fonts) == 0 {
			p.Fonts = kurdishFonts
		}
	}},
}

// rtlCodes get lang_is_rtl and pass-through normalization.
var rtlCodes = map[string]bool{
	"ara": true, "div": true, "fas": true, "pus": true, "snd": true,
	"syr": true, "uig": true, "urd": true, "kur_ara": true, "heb": true,
	"yid": true,
}

// normMode2Codes are the left-to-right scripts that still need pass-through
// normalization. Plain jav is deliberately absent: upstream lists it with a
// stray trailing space, so it has always trained with mode 1.
var normMode2Codes = map[string]bool{
	"asm": true, "ben": true, "bih": true, "hin": true, "mar": true,
	"nep": true, "guj": true, "kan": true, "mal": true, "tam": true,
	"tel": true, "pan": true, "dzo": true, "sin": true, "san": true,
	"bod": true, "ori": true, "khm": true, "mya": true, "tha": true,
	"lao": true, "jav_java": true,
}

func findRule(lang string) (rule, bool) {
	for _, r := range ruleTable {
		for _, code := range r.codes {
			if code == lang {
				return r, true
			}
		}
	}
	return rule{}, false
}
