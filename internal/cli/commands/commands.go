package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"etd/internal/cli"
	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/execution"
	"etd/internal/parser"
	"etd/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Serve *ServeCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log zerolog.Logger) *Commands {
	scanner := discovery.NewScanner(cfg.SkipDirs)
	filter := discovery.NewFilter()
	caseParser := discovery.NewParser()
	runner := execution.NewRunner(cfg, log)
	cleaner := execution.NewCleaner(cfg, log)
	outputParser := parser.NewPlaywrightParser()
	formatter := ui.NewFormatter(cfg, caseParser)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:   NewRunCommand(cfg, scanner, filter, runner, cleaner, outputParser, formatter, viewer),
		List:  NewListCommand(cfg, scanner, filter, formatter),
		Serve: NewServeCommand(cfg, log, scanner, caseParser, runner),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run end-to-end specs in the terminal",
		Long:  "Discover spec files, execute them through the external runner and print parsed results",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Directory where spec discovery should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter spec files by name pattern (supports wildcards, e.g. '*login*' or '*.spec.ts')")
	runCmd.Flags().StringVarP(&flags.Grep, "grep", "g", "", "Run only tests whose title matches")
	runCmd.Flags().IntVar(&flags.TimeoutSecs, "timeout", 0, "Per-invocation timeout in seconds")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "failures", false, "Open the interactive failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered spec files",
		Long:  "Scan and list all end-to-end spec files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter spec files by name pattern")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Directory where spec discovery should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List declared test cases instead of just files")
	rootCmd.AddCommand(listCmd)

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long:  "Serve the dashboard that lists spec files and triggers runs over HTTP",
		RunE:  c.Serve.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	serveCmd.Flags().StringVarP(&flags.ListenAddr, "addr", "a", "", "Listen address, e.g. ':8841'")
	serveCmd.Flags().IntVar(&flags.TimeoutSecs, "timeout", 0, "Per-invocation timeout in seconds")
	rootCmd.AddCommand(serveCmd)
}
