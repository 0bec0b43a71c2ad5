package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestDir:     "tests",
				Flags:       Flags{},
			},
			expected: "tests",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestDir:     "tests",
				Flags: Flags{
					TestPath: "e2e",
				},
			},
			expected: "/project/e2e",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestDir:     "tests",
				Flags: Flags{
					TestPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.RunTimeout != DefaultRunTimeout {
		t.Errorf("expected RunTimeout %s, got %s", DefaultRunTimeout, cfg.RunTimeout)
	}

	if len(cfg.SkipDirs) != len(DefaultSkipDirs) {
		t.Errorf("expected %d skip dirs, got %d", len(DefaultSkipDirs), len(cfg.SkipDirs))
	}

	if cfg.RunnerCmd != DefaultRunnerCmd {
		t.Errorf("expected RunnerCmd %s, got %s", DefaultRunnerCmd, cfg.RunnerCmd)
	}
}

func TestConfig_ApplyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "etd.yaml")
	content := `project_path: /srv/app
test_dir: e2e
runner_cmd: yarn
timeout_seconds: 45
listen_addr: ":9000"
skip_dirs:
  - node_modules
  - fixtures
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New()
	if err := cfg.applyFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ProjectPath != "/srv/app" {
		t.Errorf("expected project path /srv/app, got %s", cfg.ProjectPath)
	}
	if cfg.TestDir != "e2e" {
		t.Errorf("expected test dir e2e, got %s", cfg.TestDir)
	}
	if cfg.RunnerCmd != "yarn" {
		t.Errorf("expected runner cmd yarn, got %s", cfg.RunnerCmd)
	}
	if cfg.RunTimeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.RunTimeout)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("expected listen addr :9000, got %s", cfg.ListenAddr)
	}
	if len(cfg.SkipDirs) != 2 {
		t.Errorf("expected 2 skip dirs, got %d", len(cfg.SkipDirs))
	}
}

func TestConfig_ApplyFile_Missing(t *testing.T) {
	cfg := New()
	if err := cfg.applyFile(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing config file should not be an error, got %v", err)
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()
	cfg.ApplyFlags(Flags{ListenAddr: ":7777", TimeoutSecs: 10})

	if cfg.ListenAddr != ":7777" {
		t.Errorf("expected listen addr :7777, got %s", cfg.ListenAddr)
	}
	if cfg.RunTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.RunTimeout)
	}
}
