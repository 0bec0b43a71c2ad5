package execution

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"etd/internal/config"
	"etd/internal/domain"
)

// Runner executes the configured external test runner for one spec file or
// the whole suite, bounded by the configured wall-clock timeout.
type Runner struct {
	config *config.Config
	log    zerolog.Logger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, log zerolog.Logger) *Runner {
	return &Runner{config: cfg, log: log}
}

// Run invokes the runner and captures its output. It never returns an error:
// launch failures, nonzero exits and timeouts are all reported inside the
// RunOutcome so the caller can still hand partial output to the parser.
func (r *Runner) Run(ctx context.Context, specPath, testTitle string) domain.RunOutcome {
	ctx, cancel := context.WithTimeout(ctx, r.config.RunTimeout)
	defer cancel()

	args := make([]string, len(r.config.RunnerArgs))
	copy(args, r.config.RunnerArgs)
	if specPath != "" {
		args = append(args, specPath)
	}
	if testTitle != "" {
		args = append(args, "--grep", testTitle)
	}

	cmd := exec.CommandContext(ctx, r.config.RunnerCmd, args...)
	cmd.Dir = r.config.ProjectPath
	cmd.Env = append(os.Environ(), "CI=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug().
		Str("cmd", r.config.RunnerCmd).
		Strs("args", args).
		Msg("starting test runner")

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	outcome := domain.RunOutcome{
		SpecPath: specPath,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	switch {
	case err == nil:
		outcome.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			outcome.ExitCode = -1
			outcome.Err = err
		}
	}

	r.log.Info().
		Str("spec", specPath).
		Int("exit_code", outcome.ExitCode).
		Bool("timed_out", outcome.TimedOut).
		Dur("elapsed", elapsed).
		Msg("test runner finished")

	return outcome
}
