package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"etd/internal/cli"
	"etd/internal/cli/commands"
	"etd/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "etd",
		Short:   "End-to-end test dashboard",
		Long:    `A dashboard and CLI for end-to-end browser test suites. Discovers spec files, triggers the external test runner and turns its console output into structured pass/fail results.`,
		Version: version,
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var flags cli.Flags
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flags.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	cmds := commands.NewCommands(cfg, log)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
