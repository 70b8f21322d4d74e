package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ats-dashboard/config"
	v1 "go-ats-dashboard/internal/delivery/http/v1"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/repository/memory"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/auth"
	"go-ats-dashboard/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, time.March, 20, 9, 30, 0, 0, time.UTC)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GinMode:                  gin.TestMode,
		FrontendURL:              "http://localhost:3000",
		AdminEmail:               "admin@example.com",
		RateLimitWindowSeconds:   3600,
		RateLimitGlobalThreshold: 1000,
	}
	if mutate != nil {
		mutate(cfg)
	}

	clock := usecase.WithClock(func() time.Time { return fixedNow })
	validate := validation.New()
	candUC := usecase.NewCandidateUsecase(memory.NewCandidateRepository(memory.Latency{}, memory.SeedCandidates()), validate, clock)
	jobUC := usecase.NewJobUsecase(memory.NewJobRepository(memory.Latency{}, memory.SeedJobs()), validate, clock)

	users := memory.NewUserRepository()
	require.NoError(t, usecase.SeedAdmin(context.Background(), users, cfg.AdminEmail, ""))
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:      usecase.NewAuthUsecase(users, tokens, clock),
		CandidateUC: candUC,
		JobUC:       jobUC,
		DashboardUC: usecase.NewDashboardUsecase(candUC, jobUC, 0, clock),
		ExportUC:    usecase.NewExportUsecase(candUC, jobUC, nil, clock),
		HealthUC:    usecase.NewHealthUsecase(config.BackendMemory, nil),
		Tokens:      tokens,
		Config:      cfg,
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCandidateRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	t.Run("Should list with filter, sort and paging", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/candidates?sort_by=name&order=asc&page=1&page_size=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, env.RequestID)

		page := decode[domain.PaginatedResult[domain.Candidate]](t, env.Data)
		assert.EqualValues(t, 5, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "David Brown", page.Data[0].Name)
		assert.Equal(t, "Jane Smith", page.Data[1].Name)
	})

	t.Run("Should return everything without paging", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/v1/candidates?status=all", nil, "")
		page := decode[domain.PaginatedResult[domain.Candidate]](t, env.Data)
		assert.Len(t, page.Data, 5)
	})

	t.Run("Should reject an unknown sort key", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/candidates?sort_by=salary", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "invalid sort key")
	})

	t.Run("Should 404 an unknown id", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/candidates/nope", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Candidate not found", env.Message)
	})

	t.Run("Should create, patch and delete", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/candidates", map[string]any{
			"name": "Alex Kim", "email": "alex@example.com", "skills": []string{"Go"},
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		created := decode[domain.Candidate](t, env.Data)
		assert.Equal(t, domain.CandidateApplied, created.Status)
		assert.Equal(t, "2023-03-20", created.AppliedDate.String())

		w, env = do(t, r, http.MethodPut, "/v1/candidates/"+created.ID, map[string]any{"status": "Offer"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		updated := decode[domain.Candidate](t, env.Data)
		assert.Equal(t, domain.CandidateOffer, updated.Status)
		assert.Equal(t, "Alex Kim", updated.Name)

		w, _ = do(t, r, http.MethodDelete, "/v1/candidates/"+created.ID, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = do(t, r, http.MethodGet, "/v1/candidates/"+created.ID, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Should reject a blank name", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/candidates", map[string]any{"name": " ", "email": "x@y.z"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Name is required")
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/candidates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestJobRoutes(t *testing.T) {
	r := newTestRouter(t, nil)

	t.Run("Should list departments", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/jobs/departments", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Design", "Engineering", "Operations", "Product"}, decode[[]string](t, env.Data))
	})

	t.Run("Should filter by department", func(t *testing.T) {
		_, env := do(t, r, http.MethodGet, "/v1/jobs?department=Engineering&sort_by=title", nil, "")
		page := decode[domain.PaginatedResult[domain.Job]](t, env.Data)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Backend Engineer", page.Data[0].Title)
	})

	t.Run("Should get one job", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/jobs/3", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "UX Designer", decode[domain.Job](t, env.Data).Title)
	})

	t.Run("Should reject an invalid level", func(t *testing.T) {
		w, _ := do(t, r, http.MethodPost, "/v1/jobs", map[string]any{"title": "SRE", "department": "Ops", "level": "Wizard"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDashboardRoute(t *testing.T) {
	r := newTestRouter(t, nil)

	w, env := do(t, r, http.MethodGet, "/v1/dashboard/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[domain.DashboardStats](t, env.Data)
	assert.Equal(t, 5, st.TotalCandidates)
	assert.Equal(t, 3, st.OpenJobs)
	assert.Len(t, st.ApplicationTrends, 6)
}

func TestExportRoute(t *testing.T) {
	r := newTestRouter(t, nil)

	t.Run("Should download CSV", func(t *testing.T) {
		w, _ := do(t, r, http.MethodGet, "/v1/exports/jobs?format=csv&status=Open", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "ats_jobs_20230320_093000.csv")
		assert.Contains(t, w.Body.String(), "Senior Frontend Developer")
		assert.NotContains(t, w.Body.String(), "Product Manager")
	})

	t.Run("Should reject an unknown format", func(t *testing.T) {
		w, _ := do(t, r, http.MethodGet, "/v1/exports/candidates?format=pdf", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthRoutes(t *testing.T) {
	r := newTestRouter(t, func(c *config.Config) { c.AuthRequired = true })

	t.Run("Should require a token when auth is required", func(t *testing.T) {
		w, _ := do(t, r, http.MethodGet, "/v1/candidates", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, _ = do(t, r, http.MethodGet, "/v1/candidates", nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject bad credentials", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", env.Message)
	})

	t.Run("Should log in the demo admin and reach protected routes", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/auth/login", map[string]string{"email": "admin@example.com", "password": "password"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		session := decode[domain.Session](t, env.Data)
		require.NotEmpty(t, session.Token)

		w, _ = do(t, r, http.MethodGet, "/v1/candidates", nil, session.Token)
		assert.Equal(t, http.StatusOK, w.Code)

		w, env = do(t, r, http.MethodGet, "/v1/auth/me", nil, session.Token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin@example.com", decode[domain.User](t, env.Data).Email)
	})

	t.Run("Should register and refuse a duplicate", func(t *testing.T) {
		body := map[string]string{"name": "New User", "email": "new@example.com", "password": "secret1"}
		w, _ := do(t, r, http.MethodPost, "/v1/auth/register", body, "")
		assert.Equal(t, http.StatusCreated, w.Code)

		w, _ = do(t, r, http.MethodPost, "/v1/auth/register", body, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Should validate the register body", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/v1/auth/register", map[string]string{"name": "x", "email": "bad", "password": "1"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Validation failed", env.Message)
	})
}

func TestAnonymousMe(t *testing.T) {
	r := newTestRouter(t, nil)
	w, _ := do(t, r, http.MethodGet, "/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthAndHeaders(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "abc-123", env.RequestID)
	assert.Equal(t, map[string]string{"status": "ok", "backend": "memory"}, decode[map[string]string](t, env.Data))
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(t, func(c *config.Config) { c.RateLimitGlobalThreshold = 2 })

	for i := 0; i < 2; i++ {
		w, _ := do(t, r, http.MethodGet, "/v1/jobs/1", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, env := do(t, r, http.MethodGet, "/v1/jobs/1", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, env.Message, "Rate limit exceeded")
}
