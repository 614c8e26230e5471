package artifacts_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"letterpress/internal/artifacts"
	"letterpress/internal/services"
	"letterpress/internal/testsupport"
)

func TestCheckReadableFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "eng.Arial.exp0.box")
	second := filepath.Join(dir, "eng.Arial.exp0.tif")
	testsupport.WriteText(t, first, "box data")
	testsupport.WriteText(t, second, "tif data")

	if err := artifacts.Check(context.Background(), first, second); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "eng.unicharset")
	err := artifacts.Check(context.Background(), missing)
	if !errors.Is(err, services.ErrMissingArtifact) {
		t.Fatalf("expected missing artifact, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error should name the path, got %q", err)
	}
}

func TestCheckUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked.tif")
	testsupport.WriteText(t, locked, "data")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	err := artifacts.Check(context.Background(), locked)
	if !errors.Is(err, services.ErrUnreadableArtifact) {
		t.Fatalf("expected unreadable artifact, got %v", err)
	}
}

func TestCheckStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	testsupport.WriteText(t, present, "ok")
	missing := filepath.Join(dir, "absent.txt")

	err := artifacts.Check(context.Background(), missing, present)
	if !errors.Is(err, services.ErrMissingArtifact) {
		t.Fatalf("expected missing artifact, got %v", err)
	}
	if !strings.Contains(err.Error(), "absent.txt") {
		t.Fatalf("error should name the first failing path, got %q", err)
	}
}
