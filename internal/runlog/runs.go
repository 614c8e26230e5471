package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StartRun inserts a running record for the given run.
func (s *Store) StartRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("start run: id is required")
	}
	started := run.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}
	return s.execWithRetry(
		ctx,
		`INSERT INTO runs (id, language, status, started_at, output_dir, font_count, exposure_count)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Language,
		StatusRunning,
		started.UTC().Format(time.RFC3339Nano),
		run.OutputDir,
		run.FontCount,
		run.ExposureCount,
	)
}

// FinishRun marks a run as succeeded or failed.
func (s *Store) FinishRun(ctx context.Context, id string, status Status, errorText string) error {
	return s.execWithRetry(
		ctx,
		`UPDATE runs SET status = ?, finished_at = ?, error_text = ? WHERE id = ?`,
		status,
		time.Now().UTC().Format(time.RFC3339Nano),
		nullableString(errorText),
		id,
	)
}

// RecordPhase inserts one completed-phase record. The driver calls this at
// every phase boundary, including the failing one.
func (s *Store) RecordPhase(ctx context.Context, phase Phase) error {
	return s.execWithRetry(
		ctx,
		`INSERT INTO run_phases (run_id, name, status, started_at, finished_at, unit_count, error_text)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		phase.RunID,
		phase.Name,
		phase.Status,
		phase.StartedAt.UTC().Format(time.RFC3339Nano),
		phase.FinishedAt.UTC().Format(time.RFC3339Nano),
		phase.UnitCount,
		nullableString(phase.ErrorText),
	)
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, language, status, started_at, finished_at, error_text, output_dir, font_count, exposure_count
              FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun fetches a single run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT id, language, status, started_at, finished_at, error_text, output_dir, font_count, exposure_count
         FROM runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListPhases returns a run's phase records in execution order.
func (s *Store) ListPhases(ctx context.Context, runID string) ([]Phase, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT run_id, name, status, started_at, finished_at, unit_count, error_text
         FROM run_phases WHERE run_id = ? ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list phases: %w", err)
	}
	defer rows.Close()

	var phases []Phase
	for rows.Next() {
		var (
			phase     Phase
			status    string
			started   string
			finished  string
			errorText sql.NullString
		)
		if err := rows.Scan(&phase.RunID, &phase.Name, &status, &started, &finished, &phase.UnitCount, &errorText); err != nil {
			return nil, err
		}
		phase.Status = Status(status)
		if phase.StartedAt, err = parseTimestamp(started); err != nil {
			return nil, err
		}
		if phase.FinishedAt, err = parseTimestamp(finished); err != nil {
			return nil, err
		}
		phase.ErrorText = errorText.String
		phases = append(phases, phase)
	}
	return phases, rows.Err()
}

// Clear removes every run and phase record.
func (s *Store) Clear(ctx context.Context) error {
	return s.execWithRetry(ensureContext(ctx), `DELETE FROM runs`)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		status    string
		started   string
		finished  sql.NullString
		errorText sql.NullString
	)
	if err := row.Scan(&run.ID, &run.Language, &status, &started, &finished, &errorText, &run.OutputDir, &run.FontCount, &run.ExposureCount); err != nil {
		return Run{}, err
	}
	run.Status = Status(status)
	var err error
	if run.StartedAt, err = parseTimestamp(started); err != nil {
		return Run{}, err
	}
	if finished.Valid {
		if run.FinishedAt, err = parseTimestamp(finished.String); err != nil {
			return Run{}, err
		}
	}
	run.ErrorText = errorText.String
	return run, nil
}

func parseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return ts, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
