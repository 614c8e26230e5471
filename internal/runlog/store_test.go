package runlog_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"letterpress/internal/runlog"
)

func openStore(t *testing.T) *runlog.Store {
	t.Helper()
	store, err := runlog.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestStartFinishRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := runlog.Run{
		ID:            uuid.NewString(),
		Language:      "eng",
		OutputDir:     "/tmp/out",
		FontCount:     2,
		ExposureCount: 1,
	}
	if err := store.StartRun(ctx, run); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}

	fetched, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected run to exist")
	}
	if fetched.Status != runlog.StatusRunning {
		t.Fatalf("unexpected status: %q", fetched.Status)
	}
	if !fetched.FinishedAt.IsZero() {
		t.Fatalf("expected zero finish time, got %v", fetched.FinishedAt)
	}
	if fetched.FontCount != 2 || fetched.ExposureCount != 1 {
		t.Fatalf("unexpected counts: %#v", fetched)
	}

	if err := store.FinishRun(ctx, run.ID, runlog.StatusFailed, "rasterizer exited 1"); err != nil {
		t.Fatalf("FinishRun failed: %v", err)
	}
	fetched, err = store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if fetched.Status != runlog.StatusFailed {
		t.Fatalf("unexpected status: %q", fetched.Status)
	}
	if fetched.ErrorText != "rasterizer exited 1" {
		t.Fatalf("unexpected error text: %q", fetched.ErrorText)
	}
	if fetched.FinishedAt.IsZero() {
		t.Fatal("expected finish time to be set")
	}
}

func TestStartRunRequiresID(t *testing.T) {
	store := openStore(t)
	if err := store.StartRun(context.Background(), runlog.Run{Language: "eng"}); err == nil {
		t.Fatal("expected error for missing run ID")
	}
}

func TestRecordAndListPhases(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	runID := uuid.NewString()
	if err := store.StartRun(ctx, runlog.Run{ID: runID, Language: "eng"}); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}

	start := time.Now().UTC().Add(-time.Minute)
	for i, name := range []string{"render", "charset"} {
		phase := runlog.Phase{
			RunID:      runID,
			Name:       name,
			Status:     runlog.StatusSucceeded,
			StartedAt:  start.Add(time.Duration(i) * time.Second),
			FinishedAt: start.Add(time.Duration(i+1) * time.Second),
			UnitCount:  i + 1,
		}
		if err := store.RecordPhase(ctx, phase); err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
	}

	phases, err := store.ListPhases(ctx, runID)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(phases))
	}
	if phases[0].Name != "render" || phases[1].Name != "charset" {
		t.Fatalf("unexpected phase order: %q, %q", phases[0].Name, phases[1].Name)
	}
	if phases[1].UnitCount != 2 {
		t.Fatalf("unexpected unit count: %d", phases[1].UnitCount)
	}
	if phases[0].Duration() != time.Second {
		t.Fatalf("unexpected duration: %v", phases[0].Duration())
	}
}

func TestListRunsNewestFirstAndLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]string, 3)
	for i := range ids {
		ids[i] = uuid.NewString()
		run := runlog.Run{
			ID:        ids[i],
			Language:  "eng",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.StartRun(ctx, run); err != nil {
			t.Fatalf("StartRun failed: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Fatalf("unexpected order: %q, %q", runs[0].ID, runs[1].ID)
	}
}

func TestClearRemovesRunsAndPhases(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	runID := uuid.NewString()
	if err := store.StartRun(ctx, runlog.Run{ID: runID, Language: "eng"}); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	phase := runlog.Phase{
		RunID:      runID,
		Name:       "render",
		Status:     runlog.StatusSucceeded,
		StartedAt:  time.Now().UTC(),
		FinishedAt: time.Now().UTC(),
	}
	if err := store.RecordPhase(ctx, phase); err != nil {
		t.Fatalf("RecordPhase failed: %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty ledger, got %d runs", len(runs))
	}
	phases, err := store.ListPhases(ctx, runID)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(phases) != 0 {
		t.Fatalf("expected cascading delete, got %d phases", len(phases))
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ledger.db")

	store, err := runlog.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	runID := uuid.NewString()
	if err := store.StartRun(context.Background(), runlog.Run{ID: runID, Language: "kan"}); err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := runlog.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	run, err := reopened.GetRun(context.Background(), runID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run == nil || run.Language != "kan" {
		t.Fatalf("unexpected run after reopen: %#v", run)
	}
}
