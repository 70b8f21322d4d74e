package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"go-ats-dashboard/config"
	v1 "go-ats-dashboard/internal/delivery/http/v1"
	"go-ats-dashboard/internal/repository/memory"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/auth"
	"go-ats-dashboard/pkg/validation"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	color.NoColor = true

	cfg := &config.Config{GinMode: gin.TestMode, AdminEmail: "admin@example.com"}
	validate := validation.New()
	candUC := usecase.NewCandidateUsecase(memory.NewCandidateRepository(memory.Latency{}, memory.SeedCandidates()), validate)
	jobUC := usecase.NewJobUsecase(memory.NewJobRepository(memory.Latency{}, memory.SeedJobs()), validate)
	users := memory.NewUserRepository()
	require.NoError(t, usecase.SeedAdmin(context.Background(), users, cfg.AdminEmail, ""))
	tokens := auth.NewTokenManager("cli-secret", time.Hour)

	srv := httptest.NewServer(v1.NewRouter(v1.RouterDeps{
		AuthUC:      usecase.NewAuthUsecase(users, tokens),
		CandidateUC: candUC,
		JobUC:       jobUC,
		DashboardUC: usecase.NewDashboardUsecase(candUC, jobUC, 0),
		ExportUC:    usecase.NewExportUsecase(candUC, jobUC, nil),
		HealthUC:    usecase.NewHealthUsecase(config.BackendMemory, nil),
		Tokens:      tokens,
		Config:      cfg,
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func runCLI(url string, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-url", url}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	url := newServer(t)

	t.Run("Should list candidates filtered by status", func(t *testing.T) {
		code, out, _ := runCLI(url, "candidates", "list", "-status", "Hired")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "Candidates (1)")
		assert.Contains(t, out, "Mike Johnson")
		assert.NotContains(t, out, "Jane Smith")
	})

	t.Run("Should create a candidate and find it by search", func(t *testing.T) {
		code, out, _ := runCLI(url, "candidates", "create",
			"-name", "Ada Lovelace", "-email", "ada@example.com", "-skills", "Go, SQL", "-applied", "2023-03-01")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "Candidate created successfully")

		code, out, _ = runCLI(url, "candidates", "list", "-search", "lovelace")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "Candidates (1)")
		assert.Contains(t, out, "Ada Lovelace")
	})

	t.Run("Should update only the given fields", func(t *testing.T) {
		code, out, _ := runCLI(url, "candidates", "update", "1", "-status", "Offer")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "Candidate updated successfully")

		code, out, _ = runCLI(url, "candidates", "show", "1")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "John Doe")
		assert.Contains(t, out, "Offer")
	})

	t.Run("Should delete a candidate", func(t *testing.T) {
		code, out, _ := runCLI(url, "candidates", "delete", "5")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "Candidate deleted successfully")

		code, _, _ = runCLI(url, "candidates", "show", "5")
		assert.Equal(t, 1, code)
	})

	t.Run("Should exit 1 with a toast when the candidate does not exist", func(t *testing.T) {
		code, out, _ := runCLI(url, "candidates", "show", "999")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "Failed to load candidate details")
	})

	t.Run("Should list departments", func(t *testing.T) {
		code, out, _ := runCLI(url, "jobs", "departments")
		assert.Equal(t, 0, code)
		for _, d := range []string{"Design", "Engineering", "Operations", "Product"} {
			assert.Contains(t, out, d)
		}
	})

	t.Run("Should keep the salary currency when only min changes", func(t *testing.T) {
		code, _, _ := runCLI(url, "jobs", "update", "2", "-min", "90000")
		require.Equal(t, 0, code)

		code, out, _ := runCLI(url, "jobs", "show", "2")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "90000")
		assert.Contains(t, out, "USD")
	})

	t.Run("Should render dashboard stats", func(t *testing.T) {
		code, out, _ := runCLI(url, "dashboard")
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "Interview")
	})

	t.Run("Should print a token after login", func(t *testing.T) {
		code, out, _ := runCLI(url, "login", "-email", "admin@example.com", "-password", usecase.DemoAdminPassword)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, "export ATS_TOKEN=")
	})

	t.Run("Should reject bad credentials", func(t *testing.T) {
		code, out, _ := runCLI(url, "login", "-email", "admin@example.com", "-password", "nope")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "Invalid email or password")
	})

	t.Run("Should exit 2 on usage errors", func(t *testing.T) {
		code, _, errOut := runCLI(url, "candidates", "list", "-sort", "salary")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "invalid sort key")

		code, _, errOut = runCLI(url, "candidates", "update")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "missing id")

		code, _, _ = runCLI(url, "bogus")
		assert.Equal(t, 2, code)
	})
}

func TestEnvDuration(t *testing.T) {
	t.Run("Should accept a duration or whole seconds", func(t *testing.T) {
		t.Setenv("ATS_TEST_TIMEOUT", "1500ms")
		assert.Equal(t, 1500*time.Millisecond, envDuration("ATS_TEST_TIMEOUT", time.Second))

		t.Setenv("ATS_TEST_TIMEOUT", "45")
		assert.Equal(t, 45*time.Second, envDuration("ATS_TEST_TIMEOUT", time.Second))
	})

	t.Run("Should fall back on garbage", func(t *testing.T) {
		t.Setenv("ATS_TEST_TIMEOUT", "soon")
		assert.Equal(t, time.Second, envDuration("ATS_TEST_TIMEOUT", time.Second))
	})
}

func TestSplit(t *testing.T) {
	t.Run("Should reject a flag in id position", func(t *testing.T) {
		_, _, err := split([]string{"-name", "x"})
		assert.ErrorIs(t, err, errMissingID)
	})

	t.Run("Should return the remaining args", func(t *testing.T) {
		id, rest, err := split([]string{"3", "-name", "x"})
		require.NoError(t, err)
		assert.Equal(t, "3", id)
		assert.Equal(t, []string{"-name", "x"}, rest)
	})
}

func TestCandidatePatchOnlySetFlags(t *testing.T) {
	var cf candidateFlags
	p, err := cf.patch(map[string]bool{"notes": true})
	require.NoError(t, err)
	assert.Nil(t, p.Name)
	require.NotNil(t, p.Notes)
	assert.Equal(t, "", *p.Notes)
}
