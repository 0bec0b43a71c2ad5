package execution

import (
	"context"

	"etd/internal/domain"
)

// Executor invokes the external test runner and delivers its captured output.
// Implementations run nothing themselves; all test execution belongs to the
// runner process.
type Executor interface {
	// Run executes the runner against one spec file ("" for the whole
	// suite), optionally narrowed to a single test title.
	Run(ctx context.Context, specPath, testTitle string) domain.RunOutcome
}
