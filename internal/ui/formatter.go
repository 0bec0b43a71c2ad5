package ui

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintRunResult prints per-test lines followed by the summary table.
func (f *Formatter) PrintRunResult(result domain.RunResult, summary domain.RunSummary) {
	fmt.Println()
	for _, rec := range result.Records {
		f.printRecordLine(rec)
	}

	f.printSummaryTable(summary)

	fmt.Println()
	if result.OverallPassed {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ Run failed: %d failed, %d timed out", summary.Failed, summary.TimedOut)
	}
}

func (f *Formatter) printRecordLine(rec domain.TestRecord) {
	name := rec.TestName
	if rec.SourceFile != "" {
		name = fmt.Sprintf("%s › %s", rec.SourceFile, rec.TestName)
	}
	suffix := ""
	if rec.Retries > 0 {
		suffix = fmt.Sprintf(" (retried %dx)", rec.Retries)
	}

	switch rec.Status {
	case domain.StatusPassed:
		color.Green("  ✓ %s (%s)%s", name, rec.Duration, suffix)
	case domain.StatusFailed:
		color.Red("  ✘ %s (%s)%s", name, rec.Duration, suffix)
	case domain.StatusTimedOut:
		color.Red("  ✘ %s — timed out%s", name, suffix)
	case domain.StatusSkipped:
		color.Yellow("  - %s%s", name, suffix)
	}
}

func (f *Formatter) printSummaryTable(summary domain.RunSummary) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", summary.Total)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", summary.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", summary.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", summary.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timed Out")
	color.Red("%-27d │\n", summary.TimedOut)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", summary.Duration)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")
}

// PrintSpecList prints a list of spec files, optionally with their declared
// test cases as a tree.
func (f *Formatter) PrintSpecList(specs []string, showTestCases bool) error {
	if showTestCases {
		color.Green("Found %d spec file(s) with test cases:\n", len(specs))

		for i, spec := range specs {
			cases, err := f.parser.FindTestCases(spec)
			if err != nil {
				color.Red("Error reading spec file %s: %v", spec, err)
				continue
			}

			relPath, err := filepath.Rel(f.config.ProjectPath, spec)
			if err != nil {
				relPath = spec
			}

			isLastFile := i == len(specs)-1
			if isLastFile {
				color.Cyan("└── %s", relPath)
			} else {
				color.Cyan("├── %s", relPath)
			}

			if len(cases) == 0 {
				fmt.Printf("%s%s\n", branchPrefix(isLastFile, true), color.RedString("(no test cases found)"))
			} else {
				for j, tc := range cases {
					isLastCase := j == len(cases)-1
					fmt.Printf("%s%s\n", branchPrefix(isLastFile, isLastCase), color.YellowString(tc.TestName))
				}
			}

			if i < len(specs)-1 {
				fmt.Println()
			}
		}
		return nil
	}

	color.Green("Found %d spec file(s):\n", len(specs))
	for i, spec := range specs {
		relPath, err := filepath.Rel(f.config.ProjectPath, spec)
		if err != nil {
			relPath = spec
		}
		if i == len(specs)-1 {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}
	}
	return nil
}

func branchPrefix(isLastFile, isLastCase bool) string {
	switch {
	case isLastFile && isLastCase:
		return "    └── "
	case isLastFile:
		return "    ├── "
	case isLastCase:
		return "│   └── "
	default:
		return "│   ├── "
	}
}
