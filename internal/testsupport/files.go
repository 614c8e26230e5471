package testsupport

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"letterpress/internal/config"
)

// WriteText fills the target path with the given content, creating parents.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCorpus drops a small training text for lang into the corpus dir and
// returns its path.
func WriteCorpus(t testing.TB, cfg *config.Config, lang, text string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.CorpusDir, lang+".corpus.txt")
	WriteText(t, path, text)
	return path
}

// SeedLangdata writes the per-language wordlist, numbers, and punc files the
// assembler consumes.
func SeedLangdata(t testing.TB, cfg *config.Config, lang string) {
	t.Helper()

	dir := filepath.Join(cfg.Paths.LangdataDir, lang)
	WriteText(t, filepath.Join(dir, lang+".wordlist"), "the\nand\nof\n")
	WriteText(t, filepath.Join(dir, lang+".numbers"), "0\n1\n2\n")
	WriteText(t, filepath.Join(dir, lang+".punc"), ".\n,\n!\n")
}

// WriteTIFF encodes a small grayscale image at path.
func WriteTIFF(t testing.TB, path string, width, height int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := tiff.Encode(f, img, nil); err != nil {
		t.Fatalf("encode tiff %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}
