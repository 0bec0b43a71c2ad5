package parser

import (
	"strings"

	"etd/internal/domain"
)

// Parser turns raw runner output into a structured RunResult.
type Parser interface {
	Parse(raw string) domain.RunResult
}

// PlaywrightParser parses the console output of a Playwright-style browser
// test runner. It is a pure function over its input: no I/O, no logging, no
// state shared between calls, and it never fails — any string, including
// empty or binary garbage, yields a RunResult.
type PlaywrightParser struct{}

// NewPlaywrightParser creates a new PlaywrightParser.
func NewPlaywrightParser() *PlaywrightParser {
	return &PlaywrightParser{}
}

// Tokens whose presence anywhere in the output means it came from a test
// runner at all. Case sensitive, checked literally.
var presenceTokens = []string{"test", "describe", "expect", "passed", "failed"}

// Parse scans raw output line by line and returns the committed records in
// discovery order plus the overall verdict.
//
// The overall verdict is a coarse substring heuristic: the run passes only if
// the output contains no case-insensitive "failed", "error" or "timeout"
// anywhere. A test whose title or log legitimately mentions one of those
// words is therefore reported as failing. Known limitation, kept as is.
func (p *PlaywrightParser) Parse(raw string) domain.RunResult {
	text := Sanitize(raw)

	acc := newAccumulator()
	for _, line := range strings.Split(text, "\n") {
		acc.Apply(ClassifyLine(line))
	}
	records := acc.Finish()

	lower := strings.ToLower(text)
	clean := !strings.Contains(lower, "failed") &&
		!strings.Contains(lower, "error") &&
		!strings.Contains(lower, "timeout")
	present := hasTestEvidence(text)
	overall := clean && present

	if len(records) == 0 {
		if !present {
			// Output looks unrelated to tests, e.g. a shell error before
			// any test ran. The process exit decides; see ParseOutcome.
			return domain.RunResult{OverallPassed: false, Records: []domain.TestRecord{}}
		}
		status := domain.StatusPassed
		if !overall {
			status = domain.StatusFailed
		}
		records = append(records, domain.TestRecord{
			TestName:  "Test Execution",
			Status:    status,
			Duration:  "0ms",
			ErrorText: acc.ResidualError(),
		})
	}

	return domain.RunResult{OverallPassed: overall, Records: records}
}

// ParseOutcome parses the combined output of a finished runner invocation and
// folds in the process-level signals the parser alone cannot see: when the
// output carried no test evidence at all, the exit status decides the
// verdict, and a wall-clock timeout always fails the run.
func (p *PlaywrightParser) ParseOutcome(o domain.RunOutcome) domain.RunResult {
	result := p.Parse(o.CombinedOutput())

	if len(result.Records) == 0 {
		result.OverallPassed = o.ExitCode == 0 && o.Err == nil && !o.TimedOut
		return result
	}
	if o.TimedOut {
		result.OverallPassed = false
	}
	return result
}

func hasTestEvidence(text string) bool {
	for _, tok := range presenceTokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
