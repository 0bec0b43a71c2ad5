package commands

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/domain"
	"etd/internal/execution"
	"etd/internal/parser"
	"etd/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	runner    *execution.Runner
	cleaner   *execution.Cleaner
	parser    *parser.PlaywrightParser
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	runner *execution.Runner,
	cleaner *execution.Cleaner,
	outputParser *parser.PlaywrightParser,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		runner:    runner,
		cleaner:   cleaner,
		parser:    outputParser,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	specs, err := rc.scanner.Scan(rc.config.GetTestPath())
	if err != nil {
		return err
	}

	specs = rc.filter.FilterByName(specs, rc.config.Flags.NameFilter)

	if len(specs) == 0 {
		color.Yellow("No specs to execute")
		return nil
	}

	rc.cleaner.Clean()

	progress := ui.NewProgressBar(len(specs))

	overall := domain.RunResult{OverallPassed: true}
	var passed, failed int
	start := time.Now()

	// One runner invocation per spec file. Each output is parsed
	// independently; the verdicts are folded together at the end.
	for i, spec := range specs {
		outcome := rc.runner.Run(cmd.Context(), spec, rc.config.Flags.Grep)
		result := rc.parser.ParseOutcome(outcome)

		overall.Records = append(overall.Records, result.Records...)
		if !result.OverallPassed {
			overall.OverallPassed = false
		}

		for _, rec := range result.Records {
			if rec.Status == domain.StatusPassed {
				passed++
			} else if rec.Status != domain.StatusSkipped {
				failed++
			}
		}
		progress.Update(i+1, passed, failed)
	}
	progress.Finish()

	summary := domain.Summarize(overall, time.Since(start))
	rc.formatter.PrintRunResult(overall, summary)

	if rc.config.Flags.OpenFailures && !overall.OverallPassed {
		return rc.viewer.View(overall)
	}
	return nil
}
