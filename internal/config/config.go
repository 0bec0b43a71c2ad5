package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestDir     string

	// Runner settings
	RunnerCmd  string
	RunnerArgs []string
	RunTimeout time.Duration

	// Dashboard settings
	ListenAddr string

	// Directories to skip when scanning
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath     string
	NameFilter   string
	Grep         string
	TestCases    bool
	OpenFailures bool
	ListenAddr   string
	TimeoutSecs  int
}

// fileConfig is the shape of the optional etd.yaml file
type fileConfig struct {
	ProjectPath string   `yaml:"project_path"`
	TestDir     string   `yaml:"test_dir"`
	RunnerCmd   string   `yaml:"runner_cmd"`
	RunnerArgs  []string `yaml:"runner_args"`
	TimeoutSecs int      `yaml:"timeout_seconds"`
	ListenAddr  string   `yaml:"listen_addr"`
	SkipDirs    []string `yaml:"skip_dirs"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		TestDir:     DefaultTestDir,
		RunnerCmd:   DefaultRunnerCmd,
		RunTimeout:  DefaultRunTimeout,
		ListenAddr:  DefaultListenAddr,
	}
	cfg.RunnerArgs = make([]string, len(DefaultRunnerArgs))
	copy(cfg.RunnerArgs, DefaultRunnerArgs)
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// Load builds a config from defaults, .env, the optional YAML file and the
// environment, in that order of increasing precedence.
func Load() (*Config, error) {
	cfg := New()

	// .env from the working directory feeds the process environment; a
	// missing file is fine.
	_ = godotenv.Load()

	if err := cfg.applyFile(filepath.Join(".", DefaultConfigFile)); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.ProjectPath != "" {
		c.ProjectPath = fc.ProjectPath
	}
	if fc.TestDir != "" {
		c.TestDir = fc.TestDir
	}
	if fc.RunnerCmd != "" {
		c.RunnerCmd = fc.RunnerCmd
	}
	if len(fc.RunnerArgs) > 0 {
		c.RunnerArgs = fc.RunnerArgs
	}
	if fc.TimeoutSecs > 0 {
		c.RunTimeout = time.Duration(fc.TimeoutSecs) * time.Second
	}
	if fc.ListenAddr != "" {
		c.ListenAddr = fc.ListenAddr
	}
	if len(fc.SkipDirs) > 0 {
		c.SkipDirs = fc.SkipDirs
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ETD_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("ETD_TEST_DIR"); v != "" {
		c.TestDir = v
	}
	if v := os.Getenv("ETD_RUNNER_CMD"); v != "" {
		c.RunnerCmd = v
	}
	if v := os.Getenv("ETD_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("ETD_RUN_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.RunTimeout = time.Duration(secs) * time.Second
		}
	}
}

// ApplyFlags folds parsed command-line flags into the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.ListenAddr != "" {
		c.ListenAddr = flags.ListenAddr
	}
	if flags.TimeoutSecs > 0 {
		c.RunTimeout = time.Duration(flags.TimeoutSecs) * time.Second
	}
}

// GetTestPath returns the spec directory, using the flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	return filepath.Join(c.ProjectPath, c.TestDir)
}
