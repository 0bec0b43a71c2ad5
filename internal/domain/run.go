package domain

import "time"

// RunOutcome is what the process-invocation layer delivers after the external
// runner exits (or is killed by the wall-clock timeout).
type RunOutcome struct {
	SpecPath string        // spec file the runner was pointed at, "" for whole suite
	ExitCode int           // process exit code, -1 when the process never ran
	Stdout   string        // captured standard output
	Stderr   string        // captured standard error
	Duration time.Duration // wall-clock time of the invocation
	TimedOut bool          // the wall-clock timeout fired
	Err      error         // launch failure, if any
}

// CombinedOutput returns stdout followed by stderr, the text handed to the parser.
func (o RunOutcome) CombinedOutput() string {
	if o.Stderr == "" {
		return o.Stdout
	}
	if o.Stdout == "" {
		return o.Stderr
	}
	return o.Stdout + "\n" + o.Stderr
}

// RunSummary holds aggregate counts for one run, for presentation.
type RunSummary struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Skipped  int     `json:"skipped"`
	TimedOut int     `json:"timed_out"`
	Duration string  `json:"duration"`
	Seconds  float64 `json:"duration_seconds"`
}

// Summarize computes aggregate counts over a run's records.
func Summarize(result RunResult, elapsed time.Duration) RunSummary {
	s := RunSummary{
		Total:    len(result.Records),
		Duration: elapsed.Round(time.Millisecond).String(),
		Seconds:  elapsed.Seconds(),
	}
	for _, r := range result.Records {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		case StatusTimedOut:
			s.TimedOut++
		}
	}
	return s
}
