package usecase

import (
	"context"
	"errors"
	"time"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/stats"
	"go-ats-dashboard/pkg/logger"
	"go-ats-dashboard/pkg/redis"

	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	candidates domain.CandidateUsecase
	jobs       domain.JobUsecase
	ttl        time.Duration
	opts       options
}

// NewDashboardUsecase aggregates over the candidate and job façades. With a
// StatsCache configured, results are cached for ttl.
func NewDashboardUsecase(candidates domain.CandidateUsecase, jobs domain.JobUsecase, ttl time.Duration, opts ...Option) domain.DashboardUsecase {
	return &dashboardUsecase{
		candidates: candidates,
		jobs:       jobs,
		ttl:        ttl,
		opts:       buildOptions(opts),
	}
}

func (u *dashboardUsecase) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	if u.opts.cache != nil && u.ttl > 0 {
		var cached domain.DashboardStats
		err := u.opts.cache.Get(ctx, redis.StatsKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logger.Log.Warn("stats cache read failed", "error", err)
		}
	}

	st, err := FetchStats(ctx, u.candidates, u.jobs, u.opts.now())
	if err != nil {
		return nil, err
	}

	if u.opts.cache != nil && u.ttl > 0 {
		if err := u.opts.cache.Set(ctx, redis.StatsKey, st, u.ttl); err != nil {
			logger.Log.Warn("stats cache write failed", "error", err)
		}
	}
	return st, nil
}

// FetchStats loads both collections concurrently and computes the stats.
// Either both fetches succeed or no stats are produced.
func FetchStats(ctx context.Context, candidates domain.CandidateUsecase, jobs domain.JobUsecase, now time.Time) (*domain.DashboardStats, error) {
	var (
		cs []domain.Candidate
		js []domain.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cs, err = candidates.ListCandidates(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		js, err = jobs.ListJobs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := stats.Compute(cs, js, now)
	return &st, nil
}
