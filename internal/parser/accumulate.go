package parser

import (
	"path/filepath"
	"strings"

	"etd/internal/domain"
)

const timeoutMessage = "Test execution timed out"

// accumulator folds classified lines into committed TestRecords. At most one
// record is open at a time; a new test-start commits the previous one.
type accumulator struct {
	open     *domain.TestRecord
	errBuf   strings.Builder
	records  []domain.TestRecord
	residual strings.Builder // error lines seen with no record open
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

// Apply advances the accumulator by one classified line.
func (a *accumulator) Apply(c LineClass) {
	// Continuation lines of a multi-line error accumulate until the next
	// test-start or end of input. This outranks the skip rule, so a stack
	// trace line mentioning "skipped" stays part of the error text. Timeout
	// markers keep their own meaning: a timeout overrides prior error text.
	if (c.Kind == KindUnrecognized || c.Kind == KindSkip) && a.open != nil && a.errBuf.Len() > 0 {
		c.Kind = KindErrorFragment
	}

	switch c.Kind {
	case KindTestStart:
		a.commit()
		rec := domain.TestRecord{
			SourceFile: filepath.Base(c.File),
			TestName:   strings.TrimSpace(c.Title),
			Status:     domain.StatusPassed,
			Duration:   "0ms",
		}
		if c.Duration != "" {
			rec.Duration = c.Duration
		}
		if c.Status != "" {
			rec.Status = c.Status
		}
		a.open = &rec

	case KindRetry:
		if a.open != nil {
			a.open.Retries++
		}

	case KindDuration:
		if a.open != nil {
			a.open.Duration = c.Duration
		}

	case KindErrorFragment:
		if a.open == nil {
			a.residual.WriteString(strings.TrimSpace(c.Text))
			a.residual.WriteString("\n")
			return
		}
		a.errBuf.WriteString(strings.TrimSpace(c.Text))
		a.errBuf.WriteString("\n")
		// Error evidence downgrades a tentatively-passed record. A timeout
		// or skip verdict already reached stands.
		if a.open.Status == domain.StatusPassed {
			a.open.Status = domain.StatusFailed
		}

	case KindTimeout:
		if a.open != nil {
			a.open.Status = domain.StatusTimedOut
			a.errBuf.Reset()
			a.errBuf.WriteString(timeoutMessage)
		}

	case KindSkip:
		if a.open != nil {
			a.open.Status = domain.StatusSkipped
		}
	}
}

// Finish commits any open record and returns the committed list.
func (a *accumulator) Finish() []domain.TestRecord {
	a.commit()
	return a.records
}

// ResidualError returns error text that was seen before any test started.
func (a *accumulator) ResidualError() string {
	return strings.TrimSpace(a.residual.String())
}

func (a *accumulator) commit() {
	if a.open == nil {
		return
	}
	rec := *a.open
	rec.SourceFile = Sanitize(rec.SourceFile)
	rec.TestName = Sanitize(rec.TestName)
	rec.ErrorText = Sanitize(strings.TrimSpace(a.errBuf.String()))
	a.records = append(a.records, rec)
	a.open = nil
	a.errBuf.Reset()
}
