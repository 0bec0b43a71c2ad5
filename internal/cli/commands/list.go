package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	specs, err := lc.scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	specs = lc.filter.FilterByName(specs, lc.config.Flags.NameFilter)

	if len(specs) == 0 {
		color.Yellow("No specs found")
		return nil
	}

	return lc.formatter.PrintSpecList(specs, lc.config.Flags.TestCases)
}
