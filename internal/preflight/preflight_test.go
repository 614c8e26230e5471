package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"letterpress/internal/testsupport"
)

func stubStatfs(t *testing.T, total, free uint64, err error) {
	t.Helper()

	prev := statfs
	statfs = func(string) (uint64, uint64, error) { return total, free, err }
	t.Cleanup(func() { statfs = prev })
}

func TestCheckDirectoryAccessOK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccessNotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccessNotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryReadableOK(t *testing.T) {
	result := CheckDirectoryReadable("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	t.Run("plenty", func(t *testing.T) {
		stubStatfs(t, 100<<30, 50<<30, nil)
		result := CheckFreeSpace("scratch", t.TempDir())
		if !result.Passed {
			t.Fatalf("expected pass, got: %s", result.Detail)
		}
	})
	t.Run("nearly full", func(t *testing.T) {
		stubStatfs(t, 100<<30, 10<<20, nil)
		result := CheckFreeSpace("scratch", t.TempDir())
		if result.Passed {
			t.Fatal("expected failure when below the floor")
		}
		if !strings.Contains(result.Detail, "GiB") {
			t.Fatalf("detail should report sizes: %s", result.Detail)
		}
	})
	t.Run("statfs error", func(t *testing.T) {
		stubStatfs(t, 0, 0, errors.New("boom"))
		result := CheckFreeSpace("scratch", t.TempDir())
		if result.Passed {
			t.Fatal("expected failure on statfs error")
		}
	})
}

func TestRunAllAndFailures(t *testing.T) {
	stubStatfs(t, 100<<30, 50<<30, nil)
	cfg := testsupport.NewConfig(t)

	results := RunAll(cfg)
	if err := Failures(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}

	if err := os.RemoveAll(cfg.Paths.FontsDir); err != nil {
		t.Fatalf("remove fonts dir: %v", err)
	}
	err := Failures(RunAll(cfg))
	if err == nil {
		t.Fatal("expected failure after removing fonts dir")
	}
	if !strings.Contains(err.Error(), "Fonts directory") {
		t.Fatalf("error should name the failing check: %v", err)
	}
}

func TestCheckSystemDeps(t *testing.T) {
	resolve := func(name string) (string, error) {
		if name == "tesseract" {
			return "/usr/bin/tesseract", nil
		}
		return "", errors.New("not found")
	}
	statuses := CheckSystemDeps(resolve)
	if len(statuses) != 5 {
		t.Fatalf("expected 5 tool statuses, got %d", len(statuses))
	}
	available := 0
	for _, status := range statuses {
		if status.Available {
			available++
		}
	}
	if available != 1 {
		t.Fatalf("expected exactly one available tool, got %d", available)
	}
}
