package parser

import (
	"regexp"
	"strings"

	"etd/internal/domain"
)

// LineKind tags what one line of sanitized runner output represents.
type LineKind int

const (
	KindUnrecognized LineKind = iota
	KindTestStart
	KindRetry
	KindDuration
	KindErrorFragment
	KindTimeout
	KindSkip
)

// LineClass is the classification of a single output line plus whatever
// payload the matched pattern carries.
type LineClass struct {
	Kind     LineKind
	Engine   string            // browser/engine tag from a test-start line
	File     string            // path as printed by the runner
	Title    string            // test title, trimmed
	Duration string            // verbatim duration token, unit included
	Status   domain.TestStatus // set by the compact grammar's status glyph
	Text     string            // the line itself, for error accumulation
}

// Verbose reporter line: [1/2] [chromium] › tests/foo.spec.ts:3:5 › My Test (120ms)
var testStartRe = regexp.MustCompile(`^\s*\[\d+/\d+\]\s+\[([^\]]+)\]\s+›\s+(.+?):\d+:\d+\s+›\s+(.+?)(?:\s*\((\d+(?:\.\d+)?m?s)\))?\s*$`)

// Compact list line: ✓ 1 [chromium] › tests/foo.spec.ts:3:5 › My Test (120ms)
var compactStartRe = regexp.MustCompile(`^\s*([✓✘✗-])\s+\d+\s+\[([^\]]+)\]\s+›\s+(.+?):\d+:\d+\s+›\s+(.+?)(?:\s*\((\d+(?:\.\d+)?m?s)\))?\s*$`)

var durationRe = regexp.MustCompile(`\((\d+(?:\.\d+)?m?s)\)`)

var glyphStatus = map[string]domain.TestStatus{
	"✓": domain.StatusPassed,
	"✘": domain.StatusFailed,
	"✗": domain.StatusFailed,
	"-": domain.StatusSkipped,
}

// ClassifyLine tags one sanitized line. Patterns are tried in priority
// order and the first match wins; a line yields exactly one classification.
func ClassifyLine(line string) LineClass {
	if m := testStartRe.FindStringSubmatch(line); m != nil {
		return LineClass{
			Kind:     KindTestStart,
			Engine:   m[1],
			File:     m[2],
			Title:    strings.TrimSpace(m[3]),
			Duration: m[4],
			Text:     line,
		}
	}
	if m := compactStartRe.FindStringSubmatch(line); m != nil {
		return LineClass{
			Kind:     KindTestStart,
			Engine:   m[2],
			File:     m[3],
			Title:    strings.TrimSpace(m[4]),
			Duration: m[5],
			Status:   glyphStatus[m[1]],
			Text:     line,
		}
	}
	if strings.Contains(line, "retry #") {
		return LineClass{Kind: KindRetry, Text: line}
	}
	if m := durationRe.FindStringSubmatch(line); m != nil {
		return LineClass{Kind: KindDuration, Duration: m[1], Text: line}
	}
	if strings.Contains(line, "Error:") || strings.Contains(line, "expect(") {
		return LineClass{Kind: KindErrorFragment, Text: line}
	}
	if strings.Contains(line, "Timed out") {
		return LineClass{Kind: KindTimeout, Text: line}
	}
	if strings.Contains(line, "skipped") {
		return LineClass{Kind: KindSkip, Text: line}
	}
	return LineClass{Kind: KindUnrecognized, Text: line}
}
