package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"letterpress/internal/logging"
	"letterpress/internal/services"
)

// resolvePrefixes are tried in order when locating a tool. Bare names hit the
// search path; the prefixed forms pick up binaries run from a tesseract build
// tree, where api/ and training/ hold the executables.
var resolvePrefixes = []string{"", "api/", "training/"}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, env []string) ([]byte, error)
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithLookPath injects the executable lookup used during resolution.
func WithLookPath(lookup func(string) (string, error)) Option {
	return func(r *Runner) {
		if lookup != nil {
			r.lookPath = lookup
		}
	}
}

// Runner resolves and executes the external training tools with combined
// output capture. Every failure it reports is fatal to the run.
type Runner struct {
	log      *slog.Logger
	exec     Executor
	lookPath func(string) (string, error)
}

func NewRunner(logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	runner := &Runner{
		log:      logger,
		exec:     commandExecutor{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Resolve returns the executable path for name, trying the bare name first
// and then the api/ and training/ prefixed variants. A miss on all three is
// ErrToolNotFound.
func (r *Runner) Resolve(name string) (string, error) {
	for _, prefix := range resolvePrefixes {
		if path, err := r.lookPath(prefix + name); err == nil {
			return path, nil
		}
	}
	return "", services.Wrap(services.ErrToolNotFound, "", "resolve",
		fmt.Sprintf("%s not found", name), nil)
}

// Run resolves and executes the named tool. env entries are KEY=VALUE pairs
// layered over the current environment. A non-zero exit logs the captured
// output and returns ErrToolExecutionFailed; success logs it at debug only.
func (r *Runner) Run(ctx context.Context, tool string, args []string, env []string) error {
	path, err := r.Resolve(tool)
	if err != nil {
		return err
	}

	log := logging.WithContext(ctx, r.log).With(logging.String(logging.FieldTool, tool))
	log.Debug("running tool", logging.String(logging.FieldPath, path), logging.Any("args", args))

	output, runErr := r.exec.Run(ctx, path, args, env)
	text := outputText(output)
	if runErr == nil {
		if text != "" {
			log.Debug("tool output", logging.String("output", text))
		}
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		code = exitErr.ExitCode()
	}
	log.Error("tool failed",
		logging.Int("exit_code", code),
		logging.String("output", text),
	)
	phase, _ := services.PhaseFromContext(ctx)
	return services.Wrap(services.ErrToolExecutionFailed, phase, tool,
		fmt.Sprintf("Program %s failed with return code %d", tool, code), runErr)
}

// outputText trims the captured output and replaces invalid UTF-8 so log
// handlers never see broken encodings.
func outputText(output []byte) string {
	if len(output) == 0 {
		return ""
	}
	if !utf8.Valid(output) {
		return strings.TrimSpace(strings.ToValidUTF8(string(output), string(utf8.RuneError)))
	}
	return strings.TrimSpace(string(output))
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, env []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	return cmd.CombinedOutput()
}
