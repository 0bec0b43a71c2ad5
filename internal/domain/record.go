package domain

// TestStatus is the terminal state of one discovered test.
type TestStatus string

const (
	StatusPassed   TestStatus = "passed"
	StatusFailed   TestStatus = "failed"
	StatusSkipped  TestStatus = "skipped"
	StatusTimedOut TestStatus = "timedOut"
)

// TestRecord is the structured result for one test discovered in runner output.
// Once committed to a RunResult it is never mutated.
type TestRecord struct {
	SourceFile string     `json:"source_file"` // basename only, directory discarded
	TestName   string     `json:"test_name"`
	Status     TestStatus `json:"status"`
	Duration   string     `json:"duration"` // verbatim token, e.g. "120ms", "2.5s"
	Retries    int        `json:"retries"`
	ErrorText  string     `json:"error_text,omitempty"`
}

// RunResult is what one parse call returns: the overall verdict plus the
// records in discovery order.
type RunResult struct {
	OverallPassed bool         `json:"overall_passed"`
	Records       []TestRecord `json:"records"`
}
