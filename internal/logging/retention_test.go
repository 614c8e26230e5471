package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"letterpress/internal/logging"
)

func writeAgedFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("log"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("age %s: %v", name, err)
	}
	return path
}

func TestCleanupOldLogsPrunesExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	old := writeAgedFile(t, dir, "eng-old.log", 100*24*time.Hour)
	fresh := writeAgedFile(t, dir, "eng-fresh.log", time.Hour)
	other := writeAgedFile(t, dir, "notes.txt", 100*24*time.Hour)

	logging.CleanupOldLogs(nil, 60, logging.RetentionTarget{Dir: dir, Pattern: "*.log"})

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected %s pruned, stat err %v", old, err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh log should survive: %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Fatalf("non-matching file should survive: %v", err)
	}
}

func TestCleanupOldLogsHonorsExclusions(t *testing.T) {
	dir := t.TempDir()
	active := writeAgedFile(t, dir, "eng-active.log", 100*24*time.Hour)

	logging.CleanupOldLogs(nil, 60, logging.RetentionTarget{
		Dir:     dir,
		Pattern: "*.log",
		Exclude: []string{active},
	})

	if _, err := os.Stat(active); err != nil {
		t.Fatalf("excluded log should survive: %v", err)
	}
}

func TestCleanupOldLogsDisabledByZeroRetention(t *testing.T) {
	dir := t.TempDir()
	old := writeAgedFile(t, dir, "eng-old.log", 100*24*time.Hour)

	logging.CleanupOldLogs(nil, 0, logging.RetentionTarget{Dir: dir, Pattern: "*.log"})

	if _, err := os.Stat(old); err != nil {
		t.Fatalf("zero retention must not prune: %v", err)
	}
}
