package execution

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"etd/internal/config"
)

// artifact directories the runner leaves behind
var staleArtifacts = []string{"test-results", "playwright-report"}

// Cleaner removes leftover runner artifacts from a previous, possibly
// aborted, invocation so stale reports never leak into a fresh run.
type Cleaner struct {
	config *config.Config
	log    zerolog.Logger
}

// NewCleaner creates a new Cleaner
func NewCleaner(cfg *config.Config, log zerolog.Logger) *Cleaner {
	return &Cleaner{config: cfg, log: log}
}

// Clean removes stale artifact directories. Best effort: failures are logged
// and never abort a run.
func (c *Cleaner) Clean() {
	for _, dir := range staleArtifacts {
		path := filepath.Join(c.config.ProjectPath, dir)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			c.log.Warn().Str("path", path).Err(err).Msg("could not remove stale artifacts")
			continue
		}
		c.log.Debug().Str("path", path).Msg("removed stale artifacts")
	}
}
