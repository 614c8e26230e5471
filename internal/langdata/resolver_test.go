package langdata_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"letterpress/internal/langdata"
	"letterpress/internal/logging"
	"letterpress/internal/services"
)

func resolve(t *testing.T, req langdata.Request) langdata.Params {
	t.Helper()
	params, err := langdata.NewResolver(logging.NewNop()).Resolve(req)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", req.Lang, err)
	}
	return params
}

func TestResolveTotalOverCatalog(t *testing.T) {
	codes := append(langdata.Codes(), "zlm")
	resolver := langdata.NewResolver(nil)
	for _, code := range codes {
		params, err := resolver.Resolve(langdata.Request{Lang: code, CorpusDir: "/corpus"})
		if err != nil {
			t.Fatalf("Resolve(%q): %v", code, err)
		}
		if len(params.Fonts) == 0 {
			t.Fatalf("%s: no fonts resolved", code)
		}
		if len(params.Exposures) == 0 {
			t.Fatalf("%s: no exposures resolved", code)
		}
		if params.TextCorpus == "" {
			t.Fatalf("%s: empty text corpus", code)
		}
		if params.MeanCount <= 0 || params.Leading <= 0 {
			t.Fatalf("%s: mean count %d leading %d", code, params.MeanCount, params.Leading)
		}
		if params.NormMode != 1 && params.NormMode != 2 {
			t.Fatalf("%s: norm mode %d", code, params.NormMode)
		}
		if params.WordDawgFactor <= 0 || params.NumberDawgFactor <= 0 || params.BigramDawgFactor <= 0 {
			t.Fatalf("%s: non-positive dawg factor", code)
		}
		if params.AmbigsFilterDenominator == "" || params.MixLang == "" {
			t.Fatalf("%s: missing ambigs denominator or mix language", code)
		}
	}
}

func TestResolveUnknownLanguage(t *testing.T) {
	resolver := langdata.NewResolver(nil)
	for _, code := range []string{"xx", "", "english"} {
		_, err := resolver.Resolve(langdata.Request{Lang: code, CorpusDir: "/corpus"})
		if !errors.Is(err, services.ErrInvalidLanguageCode) {
			t.Fatalf("Resolve(%q): expected invalid language code, got %v", code, err)
		}
		if !strings.Contains(err.Error(), "is not a valid language code") {
			t.Fatalf("Resolve(%q): unexpected message %q", code, err)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	resolver := langdata.NewResolver(nil)
	for _, code := range []string{"eng", "tha", "chi_tra", "ara", "lat"} {
		req := langdata.Request{Lang: code, CorpusDir: "/corpus"}
		first, err := resolver.Resolve(req)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", code, err)
		}
		second, err := resolver.Resolve(req)
		if err != nil {
			t.Fatalf("Resolve(%q) again: %v", code, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: resolution not stable:\n%+v\n%+v", code, first, second)
		}
	}
}

func TestResolveCallerFontsAlwaysWin(t *testing.T) {
	resolver := langdata.NewResolver(nil)
	custom := []string{"Custom Sans"}
	for _, code := range append(langdata.Codes(), "zlm") {
		params, err := resolver.Resolve(langdata.Request{Lang: code, CorpusDir: "/corpus", Fonts: custom})
		if err != nil {
			t.Fatalf("Resolve(%q): %v", code, err)
		}
		if !slices.Equal(params.Fonts, custom) {
			t.Fatalf("%s: caller fonts overwritten: %v", code, params.Fonts)
		}
	}
}

func TestResolveCallerExposuresWin(t *testing.T) {
	params := resolve(t, langdata.Request{Lang: "lat", CorpusDir: "/corpus", Exposures: []int{2, 5}})
	if !slices.Equal(params.Exposures, []int{2, 5}) {
		t.Fatalf("caller exposures overwritten: %v", params.Exposures)
	}
}

func TestResolveMeanCountOverride(t *testing.T) {
	params := resolve(t, langdata.Request{Lang: "tha", CorpusDir: "/corpus", MeanCountOverride: 9})
	if params.MeanCount != 9 {
		t.Fatalf("override ignored, mean count %d", params.MeanCount)
	}
	if !slices.Contains(params.TrainingDataArgs, "--mean_count=9") {
		t.Fatalf("missing mean count argument: %v", params.TrainingDataArgs)
	}
}

func TestResolveDefaults(t *testing.T) {
	params := resolve(t, langdata.Request{Lang: "eng", CorpusDir: "/corpus"})
	if params.TextCorpus != filepath.Join("/corpus", "eng.corpus.txt") {
		t.Fatalf("unexpected corpus path %q", params.TextCorpus)
	}
	if params.WordDawgFactor != 0.03 {
		t.Fatalf("unexpected word dawg factor %v", params.WordDawgFactor)
	}
	if params.MeanCount != 40 || params.Leading != 32 || params.MixLang != "eng" {
		t.Fatalf("unexpected defaults: %+v", params)
	}
	if len(params.Fonts) != 32 || params.Fonts[0] != "Arial Bold" {
		t.Fatalf("expected the Latin font list, got %d fonts", len(params.Fonts))
	}
	if !slices.Equal(params.Exposures, []int{0}) {
		t.Fatalf("unexpected exposures %v", params.Exposures)
	}
	if params.NormMode != 1 || params.RTL {
		t.Fatalf("unexpected script settings: norm %d rtl %v", params.NormMode, params.RTL)
	}
	if params.GenerateWordBigrams != nil {
		t.Fatalf("word bigrams should stay unset for eng")
	}
}

func TestResolveLanguageOverrides(t *testing.T) {
	cases := []struct {
		lang  string
		check func(t *testing.T, p langdata.Params)
	}{
		{"tha", func(t *testing.T, p langdata.Params) {
			if p.Leading != 48 || p.AmbigsFilterDenominator != "1000" {
				t.Fatalf("tha: leading %d ambigs %q", p.Leading, p.AmbigsFilterDenominator)
			}
			if p.MeanCount != 30 || p.WordDawgFactor != 0.01 {
				t.Fatalf("tha: mean %d word factor %v", p.MeanCount, p.WordDawgFactor)
			}
			want := []string{"--infrequent_ratio=10000", "--no_space_in_output", "--desired_bigrams="}
			if !slices.Equal(p.TrainingDataArgs, want) {
				t.Fatalf("tha: training args %v", p.TrainingDataArgs)
			}
			if !slices.Contains(p.FilterArgs, "--segmenter_lang=tha") {
				t.Fatalf("tha: filter args %v", p.FilterArgs)
			}
			if p.NormMode != 2 || p.RTL {
				t.Fatalf("tha: norm %d rtl %v", p.NormMode, p.RTL)
			}
		}},
		{"chi_tra", func(t *testing.T, p langdata.Params) {
			want := []string{"--charset_filter=chi_tr", "--segmenter_lang=chi_tra"}
			if !slices.Equal(p.FilterArgs, want) {
				t.Fatalf("chi_tra: filter args %v", p.FilterArgs)
			}
			if p.GenerateWordBigrams == nil || *p.GenerateWordBigrams != 0 {
				t.Fatalf("chi_tra: word bigrams %v", p.GenerateWordBigrams)
			}
			if p.MeanCount != 15 || p.WordDawgFactor != 0.015 {
				t.Fatalf("chi_tra: mean %d word factor %v", p.MeanCount, p.WordDawgFactor)
			}
		}},
		{"kor", func(t *testing.T, p langdata.Params) {
			if p.MeanCount != 20 || p.NumberDawgFactor != 0.05 {
				t.Fatalf("kor: mean %d number factor %v", p.MeanCount, p.NumberDawgFactor)
			}
			want := []string{"--infrequent_ratio=10000", "--desired_bigrams="}
			if !slices.Equal(p.TrainingDataArgs, want) {
				t.Fatalf("kor: training args %v", p.TrainingDataArgs)
			}
		}},
		{"kat_old", func(t *testing.T, p langdata.Params) {
			if p.TextCorpus != filepath.Join("/corpus", "kat.corpus.txt") {
				t.Fatalf("kat_old: corpus %q", p.TextCorpus)
			}
		}},
		{"frm", func(t *testing.T, p langdata.Params) {
			if p.TextCorpus != filepath.Join("/corpus", "fra.corpus.txt") {
				t.Fatalf("frm: corpus %q", p.TextCorpus)
			}
			if !slices.Contains(p.FilterArgs, "--make_early_language_variant=fra") {
				t.Fatalf("frm: filter args %v", p.FilterArgs)
			}
			if !slices.Contains(p.Text2imageExtraArgs, "--ligatures") {
				t.Fatalf("frm: text2image args %v", p.Text2imageExtraArgs)
			}
		}},
		{"ara", func(t *testing.T, p langdata.Params) {
			if !p.RTL || p.NormMode != 2 {
				t.Fatalf("ara: norm %d rtl %v", p.NormMode, p.RTL)
			}
		}},
		{"jav", func(t *testing.T, p langdata.Params) {
			if p.NormMode != 1 {
				t.Fatalf("jav: norm %d", p.NormMode)
			}
		}},
		{"jav_java", func(t *testing.T, p langdata.Params) {
			if p.NormMode != 2 || p.MeanCount != 15 {
				t.Fatalf("jav_java: norm %d mean %d", p.NormMode, p.MeanCount)
			}
		}},
		{"lat", func(t *testing.T, p langdata.Params) {
			if !slices.Equal(p.Exposures, []int{-3, -2, -1, 0, 1, 2, 3}) {
				t.Fatalf("lat: exposures %v", p.Exposures)
			}
			if len(p.Fonts) == 0 || p.Fonts[0] != "GFS Bodoni" {
				t.Fatalf("lat: fonts %v", p.Fonts[:min(3, len(p.Fonts))])
			}
		}},
		{"hun", func(t *testing.T, p langdata.Params) {
			if p.WordDawgSize != 1_000_000 {
				t.Fatalf("hun: word dawg size %d", p.WordDawgSize)
			}
		}},
		{"rus", func(t *testing.T, p langdata.Params) {
			if p.MixLang != "rus" || p.WordDawgSize != 1_000_000 || p.NumberDawgFactor != 0.05 {
				t.Fatalf("rus: %+v", p)
			}
		}},
		{"bel", func(t *testing.T, p langdata.Params) {
			if p.MixLang != "bel" {
				t.Fatalf("bel: mix language %q", p.MixLang)
			}
		}},
		{"vie", func(t *testing.T, p langdata.Params) {
			if !slices.Contains(p.TrainingDataArgs, "--infrequent_ratio=10000") {
				t.Fatalf("vie: training args %v", p.TrainingDataArgs)
			}
		}},
		{"dzo", func(t *testing.T, p langdata.Params) {
			if p.WordDawgFactor != 0.01 || p.NormMode != 2 {
				t.Fatalf("dzo: word factor %v norm %d", p.WordDawgFactor, p.NormMode)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.lang, func(t *testing.T) {
			tc.check(t, resolve(t, langdata.Request{Lang: tc.lang, CorpusDir: "/corpus"}))
		})
	}
}

func TestResolveAcceptsZlmOutsideCatalog(t *testing.T) {
	params := resolve(t, langdata.Request{Lang: "zlm", CorpusDir: "/corpus"})
	if params.Lang != "zlm" {
		t.Fatalf("unexpected language %q", params.Lang)
	}
	if langdata.Known("zlm") {
		t.Fatal("zlm should not be in the accepted catalog")
	}
}
