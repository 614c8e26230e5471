// Package progress surfaces per-unit completion for the concurrent phases.
// Interactive sessions get a terminal progress bar; everything else falls
// back to debug log lines so JSON logs stay machine-readable.
package progress

import (
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"letterpress/internal/logging"
)

// Reporter tracks one phase's completed work units. Start resets the counter
// for the next phase; Increment is safe to call from pool workers.
type Reporter interface {
	Start(label string, total int)
	Increment()
	Finish()
}

// New selects a reporter for the current session: a progress bar when stderr
// is a terminal, log lines otherwise.
func New(logger *slog.Logger) Reporter {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &barReporter{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &logReporter{log: logger}
}

// NewNop returns a reporter that discards all updates.
func NewNop() Reporter { return nopReporter{} }

type barReporter struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func (r *barReporter) Start(label string, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *barReporter) Increment() {
	r.mu.Lock()
	bar := r.bar
	r.mu.Unlock()
	if bar != nil {
		_ = bar.Add(1)
	}
}

func (r *barReporter) Finish() {
	r.mu.Lock()
	bar := r.bar
	r.bar = nil
	r.mu.Unlock()
	if bar != nil {
		_ = bar.Finish()
	}
}

type logReporter struct {
	log   *slog.Logger
	label string
	total int
	done  atomic.Int64
}

func (r *logReporter) Start(label string, total int) {
	r.label = label
	r.total = total
	r.done.Store(0)
	r.log.Debug("step started", logging.String("step", label), logging.Int("total", total))
}

func (r *logReporter) Increment() {
	count := r.done.Add(1)
	r.log.Debug("unit complete",
		logging.String("step", r.label),
		logging.Int64("done", count),
		logging.Int("total", r.total),
	)
}

func (r *logReporter) Finish() {
	r.log.Debug("step complete", logging.String("step", r.label), logging.Int("total", r.total))
}

type nopReporter struct{}

func (nopReporter) Start(string, int) {}
func (nopReporter) Increment()        {}
func (nopReporter) Finish()           {}
