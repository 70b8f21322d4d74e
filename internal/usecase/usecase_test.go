package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/apperror"
	"go-ats-dashboard/pkg/redis"
	"go-ats-dashboard/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, j *domain.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepo) Update(ctx context.Context, j *domain.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

var fixedNow = time.Date(2023, time.March, 20, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func code(t *testing.T, err error) int {
	t.Helper()
	ae, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return ae.Code
}

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign id and fill defaults", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New(), usecase.WithClock(clock))

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		c, err := uc.CreateCandidate(ctx, domain.CandidateInput{Name: "Ada Lovelace", Email: "ada@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, domain.CandidateApplied, c.Status)
		assert.Equal(t, "2023-03-20", c.AppliedDate.String())
		assert.NotNil(t, c.Skills)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail if required fields are missing", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())

		_, err := uc.CreateCandidate(ctx, domain.CandidateInput{Name: "  ", Email: "a@b.c"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, code(t, err))
		assert.Contains(t, err.Error(), "Name is required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject statuses outside the enum", func(t *testing.T) {
		uc := usecase.NewCandidateUsecase(new(MockCandidateRepo), validation.New())
		_, err := uc.CreateCandidate(ctx, domain.CandidateInput{Name: "A", Email: "a@b.c", Status: "Ghosted"})
		assert.Equal(t, http.StatusBadRequest, code(t, err))
	})

	t.Run("Should invalidate cached stats after create", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		cache := new(MockCache)
		uc := usecase.NewCandidateUsecase(repo, validation.New(), usecase.WithStatsCache(cache))

		repo.On("Create", ctx, mock.Anything).Return(nil)
		cache.On("Delete", mock.Anything, []string{redis.StatsKey}).Return(nil)

		_, err := uc.CreateCandidate(ctx, domain.CandidateInput{Name: "A", Email: "a@b.c"})
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestUpdateCandidate(t *testing.T) {
	ctx := context.Background()
	notes := "Strong React skills"
	existing := &domain.Candidate{
		ID: "1", Name: "John Doe", Email: "john@example.com", Status: domain.CandidateApplied,
		Skills: []string{"React"}, AppliedDate: domain.MustParseDate("2023-03-15"), Notes: &notes,
	}

	t.Run("Should merge only patched fields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())

		repo.On("GetByID", ctx, "1").Return(existing, nil)
		var stored domain.Candidate
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			stored = *args.Get(1).(*domain.Candidate)
		})

		status := domain.CandidateInterview
		interview := domain.MustParseDate("2023-03-22")
		got, err := uc.UpdateCandidate(ctx, "1", domain.CandidatePatch{Status: &status, InterviewDate: &interview})
		require.NoError(t, err)

		assert.Equal(t, domain.CandidateInterview, got.Status)
		assert.Equal(t, "2023-03-22", got.InterviewDate.String())
		assert.Equal(t, "John Doe", stored.Name)
		assert.Equal(t, []string{"React"}, stored.Skills)
		assert.Equal(t, "Strong React skills", *stored.Notes)
		assert.Equal(t, domain.CandidateApplied, existing.Status, "input record must not be modified")
	})

	t.Run("Should return 404 for unknown id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validation.New())
		repo.On("GetByID", ctx, "nope").Return(nil, domain.ErrNotFound)

		name := "X"
		_, err := uc.UpdateCandidate(ctx, "nope", domain.CandidatePatch{Name: &name})
		assert.Equal(t, http.StatusNotFound, code(t, err))
		assert.Equal(t, "Candidate not found", err.Error())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteCandidate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, validation.New())

	repo.On("Delete", ctx, "1").Return(nil)
	repo.On("Delete", ctx, "2").Return(domain.ErrNotFound)
	repo.On("Delete", ctx, "3").Return(errors.New("connection reset"))

	assert.NoError(t, uc.DeleteCandidate(ctx, "1"))
	assert.Equal(t, http.StatusNotFound, code(t, uc.DeleteCandidate(ctx, "2")))
	assert.Equal(t, http.StatusInternalServerError, code(t, uc.DeleteCandidate(ctx, "3")))
}

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should set createdDate, zero applications and defaults", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo, validation.New(), usecase.WithClock(clock))
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateJob(ctx, domain.JobInput{
			Title:       "Platform Engineer",
			Department:  "Engineering",
			SalaryRange: domain.SalaryRange{Min: 100000, Max: 150000},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, 0, job.Applications)
		assert.Equal(t, "2023-03-20", job.CreatedDate.String())
		assert.Equal(t, domain.LevelMid, job.Level)
		assert.Equal(t, domain.TypeFullTime, job.Type)
		assert.Equal(t, domain.JobOpen, job.Status)
		assert.Equal(t, "USD", job.SalaryRange.Currency)
	})

	t.Run("Should require title and department", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo), validation.New())
		_, err := uc.CreateJob(ctx, domain.JobInput{Title: "Only title"})
		assert.Equal(t, http.StatusBadRequest, code(t, err))
	})
}

func TestUpdateJob(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo, validation.New())

	existing := &domain.Job{ID: "5", Title: "Product Manager", Department: "Product", Status: domain.JobOpen, Applications: 32}
	repo.On("GetByID", ctx, "5").Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

	closed := domain.JobClosed
	closedOn := domain.MustParseDate("2023-02-28")
	got, err := uc.UpdateJob(ctx, "5", domain.JobPatch{Status: &closed, ClosedDate: &closedOn})
	require.NoError(t, err)
	assert.Equal(t, domain.JobClosed, got.Status)
	assert.Equal(t, 32, got.Applications)
	assert.Equal(t, "Product Manager", got.Title)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	candidates := []domain.Candidate{
		{ID: "1", Status: domain.CandidateHired, AppliedDate: domain.MustParseDate("2023-03-02")},
		{ID: "2", Status: domain.CandidateApplied, AppliedDate: domain.MustParseDate("2023-01-10")},
	}
	jobs := []domain.Job{{ID: "1", Status: domain.JobOpen}, {ID: "2", Status: domain.JobClosed}}

	newUC := func(cRepo *MockCandidateRepo, jRepo *MockJobRepo, opts ...usecase.Option) domain.DashboardUsecase {
		cu := usecase.NewCandidateUsecase(cRepo, validation.New())
		ju := usecase.NewJobUsecase(jRepo, validation.New())
		return usecase.NewDashboardUsecase(cu, ju, time.Minute, append(opts, usecase.WithClock(clock))...)
	}

	t.Run("Should compute stats from both collections", func(t *testing.T) {
		cRepo, jRepo := new(MockCandidateRepo), new(MockJobRepo)
		cRepo.On("List", mock.Anything).Return(candidates, nil)
		jRepo.On("List", mock.Anything).Return(jobs, nil)

		st, err := newUC(cRepo, jRepo).GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, st.TotalCandidates)
		assert.Equal(t, 1, st.OpenJobs)
		assert.Equal(t, 1, st.HiredThisMonth)
	})

	t.Run("Should produce no stats when one fetch fails", func(t *testing.T) {
		cRepo, jRepo := new(MockCandidateRepo), new(MockJobRepo)
		cRepo.On("List", mock.Anything).Return(candidates, nil)
		jRepo.On("List", mock.Anything).Return(nil, errors.New("timeout"))

		st, err := newUC(cRepo, jRepo).GetStats(ctx)
		assert.Error(t, err)
		assert.Nil(t, st)
	})

	t.Run("Should serve cached stats without touching the stores", func(t *testing.T) {
		cRepo, jRepo := new(MockCandidateRepo), new(MockJobRepo)
		cache := new(MockCache)
		cache.On("Get", ctx, redis.StatsKey, mock.AnythingOfType("*domain.DashboardStats")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(2).(*domain.DashboardStats).TotalCandidates = 99
		})

		st, err := newUC(cRepo, jRepo, usecase.WithStatsCache(cache)).GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 99, st.TotalCandidates)
		cRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Should populate the cache on a miss", func(t *testing.T) {
		cRepo, jRepo := new(MockCandidateRepo), new(MockJobRepo)
		cRepo.On("List", mock.Anything).Return(candidates, nil)
		jRepo.On("List", mock.Anything).Return(jobs, nil)
		cache := new(MockCache)
		cache.On("Get", ctx, redis.StatsKey, mock.Anything).Return(redis.ErrCacheMiss)
		cache.On("Set", ctx, redis.StatsKey, mock.AnythingOfType("*domain.DashboardStats"), time.Minute).Return(nil)

		_, err := newUC(cRepo, jRepo, usecase.WithStatsCache(cache)).GetStats(ctx)
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}
