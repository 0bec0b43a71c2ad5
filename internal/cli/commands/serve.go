package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/execution"
	"etd/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config     *config.Config
	log        zerolog.Logger
	scanner    *discovery.Scanner
	caseParser *discovery.Parser
	runner     *execution.Runner
}

// NewServeCommand creates a new ServeCommand
func NewServeCommand(
	cfg *config.Config,
	log zerolog.Logger,
	scanner *discovery.Scanner,
	caseParser *discovery.Parser,
	runner *execution.Runner,
) *ServeCommand {
	return &ServeCommand{
		config:     cfg,
		log:        log,
		scanner:    scanner,
		caseParser: caseParser,
		runner:     runner,
	}
}

// Execute runs the command
func (sc *ServeCommand) Execute(cmd *cobra.Command, args []string) error {
	srv := server.NewServer(sc.config, sc.log, sc.scanner, sc.caseParser, sc.runner)
	return srv.Start()
}
