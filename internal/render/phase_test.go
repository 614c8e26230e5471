package render_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"letterpress/internal/config"
	"letterpress/internal/langdata"
	"letterpress/internal/render"
	"letterpress/internal/services"
	"letterpress/internal/testsupport"
	"letterpress/internal/tools"
)

// rasterExec mimics text2image: every invocation writes the box/tiff pair
// (or the fontinfo file in property-extraction mode) for its outputbase and
// records the call. The pool renders concurrently, so recording is locked.
type rasterExec struct {
	mu       sync.Mutex
	calls    [][]string
	failFont string
}

func (e *rasterExec) Run(_ context.Context, binary string, args []string, _ []string) ([]byte, error) {
	e.mu.Lock()
	e.calls = append(e.calls, append([]string{filepath.Base(binary)}, args...))
	e.mu.Unlock()

	var outbase, font string
	fontinfo := false
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--outputbase="); ok {
			outbase = v
		}
		if v, ok := strings.CutPrefix(arg, "--font="); ok {
			font = v
		}
		if arg == "--only_extract_font_properties" {
			fontinfo = true
		}
	}
	if e.failFont != "" && font == e.failFont {
		return []byte("Failed to load font " + font), errors.New("exit status 1")
	}
	if fontinfo {
		return nil, os.WriteFile(outbase+".fontinfo", []byte("props"), 0o644)
	}
	if err := os.WriteFile(outbase+".box", []byte("a 1 1 2 2 0\n"), 0o644); err != nil {
		return nil, err
	}
	return nil, os.WriteFile(outbase+".tif", []byte("II*"), 0o644)
}

func (e *rasterExec) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func newRunner(exec tools.Executor) *tools.Runner {
	return tools.NewRunner(nil,
		tools.WithExecutor(exec),
		tools.WithLookPath(func(name string) (string, error) { return "/opt/tesseract/" + name, nil }),
	)
}

func resolveParams(t *testing.T, cfg *config.Config, fonts []string, exposures []int) langdata.Params {
	t.Helper()

	params, err := langdata.NewResolver(nil).Resolve(langdata.Request{
		Lang:      "eng",
		CorpusDir: cfg.Paths.CorpusDir,
		Fonts:     fonts,
		Exposures: exposures,
	})
	if err != nil {
		t.Fatalf("resolve params: %v", err)
	}
	return params
}

func newPhase(cfg *config.Config, params langdata.Params, exec tools.Executor) *render.Phase {
	trainingDir := cfg.TrainingDir(params.Lang)
	fontCacheDir := filepath.Join(testsupport.BaseDir(cfg), "fc_cache")
	return render.New(cfg, params, trainingDir, fontCacheDir, newRunner(exec), nil, nil)
}

func TestExecuteRendersEveryFontExposurePair(t *testing.T) {
	fonts := []string{"Arial", "Courier New", "Impact Condensed"}
	exposures := []int{0, 3}

	for _, workers := range []int{1, len(fonts)} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			cfg := testsupport.NewConfig(t, testsupport.WithWorkers(workers))
			testsupport.WriteCorpus(t, cfg, "eng", "The quick brown fox\n")
			params := resolveParams(t, cfg, fonts, exposures)

			exec := &rasterExec{}
			phase := newPhase(cfg, params, exec)
			if err := phase.Execute(context.Background()); err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}

			trainingDir := cfg.TrainingDir("eng")
			for _, font := range fonts {
				for _, exposure := range exposures {
					outbase := render.OutBase(trainingDir, "eng", render.FontBaseName(font), exposure)
					for _, ext := range []string{".box", ".tif"} {
						if _, err := os.Stat(outbase + ext); err != nil {
							t.Fatalf("missing %s%s: %v", filepath.Base(outbase), ext, err)
						}
					}
				}
			}

			boxes, err := filepath.Glob(filepath.Join(trainingDir, "*.box"))
			if err != nil {
				t.Fatalf("glob boxes: %v", err)
			}
			if want := len(fonts) * len(exposures); len(boxes) != want {
				t.Fatalf("expected %d box files, got %d: %v", want, len(boxes), boxes)
			}

			// One warm-up invocation plus one render per pair.
			if want := 1 + len(fonts)*len(exposures); exec.callCount() != want {
				t.Fatalf("expected %d tool invocations, got %d", want, exec.callCount())
			}
		})
	}
}

func TestExecuteSpacesOutputNames(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCorpus(t, cfg, "eng", "text\n")
	params := resolveParams(t, cfg, []string{"Times New Roman, Bold"}, []int{0})

	phase := newPhase(cfg, params, &rasterExec{})
	if err := phase.Execute(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := filepath.Join(cfg.TrainingDir("eng"), "eng.Times_New_Roman_Bold.exp0.box")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("font name not normalized in artifact name: %v", err)
	}
}

func TestExecuteRequiresCorpus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	params := resolveParams(t, cfg, []string{"Arial"}, []int{0})

	phase := newPhase(cfg, params, &rasterExec{})
	err := phase.Execute(context.Background())
	if !errors.Is(err, services.ErrMissingArtifact) {
		t.Fatalf("expected missing corpus error, got %v", err)
	}
	if !strings.Contains(err.Error(), params.TextCorpus) {
		t.Fatalf("error should name the corpus file: %v", err)
	}
}

func TestExecuteAbortsWhenFontFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCorpus(t, cfg, "eng", "text\n")
	params := resolveParams(t, cfg, []string{"Arial", "Impact", "Verdana"}, []int{0})

	// The warm-up renders the first font, so fail a later one.
	exec := &rasterExec{failFont: "Impact"}
	phase := newPhase(cfg, params, exec)
	err := phase.Execute(context.Background())
	if !errors.Is(err, services.ErrToolExecutionFailed) {
		t.Fatalf("expected tool failure, got %v", err)
	}

	failed := render.OutBase(cfg.TrainingDir("eng"), "eng", "Impact", 0)
	if _, statErr := os.Stat(failed + ".box"); !os.IsNotExist(statErr) {
		t.Fatalf("failed font should not leave artifacts: %v", statErr)
	}
}

func TestExecuteWritesNgramsAndFontinfo(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithExtractFontProperties(true))
	corpus := testsupport.WriteCorpus(t, cfg, "eng", "the other\n")
	testsupport.WriteText(t, corpus+".bigram_freqs", "th 9800\nin 150\ner 40\non 9\nqz 1\n")
	params := resolveParams(t, cfg, []string{"Arial"}, []int{0})

	exec := &rasterExec{}
	phase := newPhase(cfg, params, exec)
	if err := phase.Execute(context.Background()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	trainingDir := cfg.TrainingDir("eng")
	ngrams, err := os.ReadFile(filepath.Join(trainingDir, "eng.train_ngrams"))
	if err != nil {
		t.Fatalf("read train_ngrams: %v", err)
	}
	if got := string(ngrams); got != "th in " {
		t.Fatalf("unexpected ngram selection %q", got)
	}

	outbase := render.OutBase(trainingDir, "eng", "Arial", 0)
	if _, err := os.Stat(outbase + ".fontinfo"); err != nil {
		t.Fatalf("fontinfo missing: %v", err)
	}
	// Warm-up, render, and the font-properties pass.
	if exec.callCount() != 3 {
		t.Fatalf("expected 3 tool invocations, got %d", exec.callCount())
	}
}
