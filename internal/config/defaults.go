package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestDir is the default spec directory relative to the project
	DefaultTestDir = "tests"
	// DefaultRunnerCmd is the external test runner command
	DefaultRunnerCmd = "npx"
	// DefaultListenAddr is the dashboard listen address
	DefaultListenAddr = ":8841"
	// DefaultRunTimeout bounds one runner invocation
	DefaultRunTimeout = 30 * time.Second
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = "etd.yaml"
)

// DefaultRunnerArgs are prepended to every runner invocation
var DefaultRunnerArgs = []string{"playwright", "test", "--reporter=list"}

// DefaultSkipDirs are directories ignored when scanning for spec files
var DefaultSkipDirs = []string{
	"node_modules",
	"test-results",
	"playwright-report",
	"dist",
	"build",
	"coverage",
}
