package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etd/internal/config"
	"etd/internal/discovery"
	"etd/internal/domain"
)

// stubExecutor returns a canned outcome and records what it was asked to run
type stubExecutor struct {
	outcome  domain.RunOutcome
	gotSpec  string
	gotTitle string
}

func (s *stubExecutor) Run(ctx context.Context, specPath, testTitle string) domain.RunOutcome {
	s.gotSpec = specPath
	s.gotTitle = testTitle
	return s.outcome
}

func newTestServer(t *testing.T, exec *stubExecutor) (*Server, string) {
	t.Helper()

	projectDir := t.TempDir()
	testsDir := filepath.Join(projectDir, "tests")
	require.NoError(t, os.MkdirAll(testsDir, 0755))

	spec := `import { test } from '@playwright/test';

test('logs in', async ({ page }) => {});
test('logs out', async ({ page }) => {});
`
	require.NoError(t, os.WriteFile(filepath.Join(testsDir, "auth.spec.ts"), []byte(spec), 0644))

	cfg := config.New()
	cfg.ProjectPath = projectDir

	srv := NewServer(
		cfg,
		zerolog.Nop(),
		discovery.NewScanner(cfg.SkipDirs),
		discovery.NewParser(),
		exec,
	)
	return srv, projectDir
}

func TestServer_ListTests(t *testing.T) {
	srv, _ := newTestServer(t, &stubExecutor{})

	req := httptest.NewRequest(http.MethodGet, "/api/tests", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Specs, 1)

	spec := resp.Specs[0]
	assert.Equal(t, "auth.spec.ts", spec.FileName)
	assert.Equal(t, "tests/auth.spec.ts", spec.FilePath)
	require.Len(t, spec.Tests, 2)
	assert.Equal(t, "logs in", spec.Tests[0].TestName)
	assert.Equal(t, "logs out", spec.Tests[1].TestName)
}

func TestServer_CreateRun(t *testing.T) {
	exec := &stubExecutor{
		outcome: domain.RunOutcome{
			ExitCode: 0,
			Stdout:   "[1/1] [chromium] › tests/auth.spec.ts:3:1 › logs in (88ms)\n",
		},
	}
	srv, projectDir := newTestServer(t, exec)

	body := strings.NewReader(`{"file": "auth.spec.ts", "test": "logs in"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/runs", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.OverallPassed)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "auth.spec.ts", resp.Records[0].SourceFile)
	assert.Equal(t, "logs in", resp.Records[0].TestName)
	assert.Equal(t, domain.StatusPassed, resp.Records[0].Status)
	assert.Equal(t, 1, resp.Summary.Passed)

	// The executor must be pointed at the resolved path, not the raw name
	assert.Equal(t, filepath.Join(projectDir, "tests", "auth.spec.ts"), exec.gotSpec)
	assert.Equal(t, "logs in", exec.gotTitle)
}

func TestServer_CreateRun_WholeSuite(t *testing.T) {
	exec := &stubExecutor{
		outcome: domain.RunOutcome{
			ExitCode: 1,
			Stdout: "[1/1] [chromium] › tests/auth.spec.ts:3:1 › logs in\n" +
				"Error: expect(received).toBe(expected)\n",
		},
	}
	srv, _ := newTestServer(t, exec)

	req := httptest.NewRequest(http.MethodPost, "/api/runs", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp runResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Empty(t, exec.gotSpec)
	assert.False(t, resp.OverallPassed)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, domain.StatusFailed, resp.Records[0].Status)
	assert.Contains(t, resp.Records[0].ErrorText, "expect(received)")
}

func TestServer_CreateRun_UnknownFile(t *testing.T) {
	srv, _ := newTestServer(t, &stubExecutor{})

	body := strings.NewReader(`{"file": "../../etc/passwd"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/runs", body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CreateRun_BadBody(t *testing.T) {
	srv, _ := newTestServer(t, &stubExecutor{})

	req := httptest.NewRequest(http.MethodPost, "/api/runs", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Index(t *testing.T) {
	srv, _ := newTestServer(t, &stubExecutor{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "auth.spec.ts")
	assert.Contains(t, rec.Body.String(), "logs in")
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, &stubExecutor{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
