package execution

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"etd/internal/config"
)

func testConfig(cmd string, args ...string) *config.Config {
	cfg := config.New()
	cfg.ProjectPath = ""
	cfg.RunnerCmd = cmd
	cfg.RunnerArgs = args
	cfg.RunTimeout = 5 * time.Second
	return cfg
}

func TestRunner_Run_CapturesOutput(t *testing.T) {
	cfg := testConfig("sh", "-c", `echo "[1/1] [chromium] > out"; echo "warn" >&2; exit 0`, "--")
	r := NewRunner(cfg, zerolog.Nop())

	outcome := r.Run(context.Background(), "", "")

	assert.Equal(t, 0, outcome.ExitCode)
	assert.NoError(t, outcome.Err)
	assert.Contains(t, outcome.Stdout, "[1/1] [chromium] > out")
	assert.Contains(t, outcome.Stderr, "warn")
	assert.False(t, outcome.TimedOut)
}

func TestRunner_Run_NonzeroExit(t *testing.T) {
	cfg := testConfig("sh", "-c", "echo boom; exit 3", "--")
	r := NewRunner(cfg, zerolog.Nop())

	outcome := r.Run(context.Background(), "", "")

	assert.Equal(t, 3, outcome.ExitCode)
	assert.Contains(t, outcome.Stdout, "boom")
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	cfg := testConfig("/definitely/not/a/binary")
	r := NewRunner(cfg, zerolog.Nop())

	outcome := r.Run(context.Background(), "", "")

	assert.Equal(t, -1, outcome.ExitCode)
	assert.Error(t, outcome.Err)
}

func TestRunner_Run_Timeout(t *testing.T) {
	cfg := testConfig("sh", "-c", "sleep 10", "--")
	cfg.RunTimeout = 100 * time.Millisecond
	r := NewRunner(cfg, zerolog.Nop())

	outcome := r.Run(context.Background(), "", "")

	assert.True(t, outcome.TimedOut)
	assert.NotEqual(t, 0, outcome.ExitCode)
}
