package runlog

import "time"

// Status describes the lifecycle of a run or phase record.
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run is one pipeline invocation.
type Run struct {
	ID            string
	Language      string
	Status        Status
	StartedAt     time.Time
	FinishedAt    time.Time // zero while running
	ErrorText     string
	OutputDir     string
	FontCount     int
	ExposureCount int
}

// Duration returns the run's wall time, or time since start while running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Phase is one completed pipeline phase within a run.
type Phase struct {
	RunID      string
	Name       string
	Status     Status
	StartedAt  time.Time
	FinishedAt time.Time
	UnitCount  int
	ErrorText  string
}

// Duration returns the phase's wall time.
func (p Phase) Duration() time.Duration {
	return p.FinishedAt.Sub(p.StartedAt)
}
