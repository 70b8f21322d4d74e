package controller

import (
	"context"
	"sync"
	"time"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/stats"
	"go-ats-dashboard/internal/usecase"
	"go-ats-dashboard/pkg/logger"
)

type DashboardController struct {
	state      *AppState
	candidates domain.CandidateUsecase
	jobs       domain.JobUsecase
	now        func() time.Time

	mu    sync.RWMutex
	stats domain.DashboardStats
}

// NewDashboardController starts with empty stats. A nil clock means time.Now.
func NewDashboardController(state *AppState, candidates domain.CandidateUsecase, jobs domain.JobUsecase, now func() time.Time) *DashboardController {
	if now == nil {
		now = time.Now
	}
	return &DashboardController{
		state:      state,
		candidates: candidates,
		jobs:       jobs,
		now:        now,
		stats:      stats.Compute(nil, nil, now()),
	}
}

// Fetch loads both collections concurrently and recomputes the stats. If
// either load fails the previous stats stay in place.
func (d *DashboardController) Fetch(ctx context.Context) bool {
	defer d.state.track()()

	st, err := usecase.FetchStats(ctx, d.candidates, d.jobs, d.now())
	if err != nil {
		logger.Log.Warn("fetch dashboard stats failed", "error", err)
		d.state.showError("Failed to load dashboard stats")
		return false
	}

	d.mu.Lock()
	d.stats = *st
	d.mu.Unlock()
	return true
}

func (d *DashboardController) Stats() domain.DashboardStats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := d.stats
	out.ApplicationTrends = append([]domain.Bucket(nil), d.stats.ApplicationTrends...)
	out.StatusDistribution = append([]domain.Bucket(nil), d.stats.StatusDistribution...)
	return out
}
