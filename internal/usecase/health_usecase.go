package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthCheck probes one dependency; nil means healthy.
type HealthCheck func(ctx context.Context) error

type healthUsecase struct {
	backend string
	checks  map[string]HealthCheck
}

// NewHealthUsecase reports the store backend and the result of each named check.
func NewHealthUsecase(backend string, checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{backend: backend, checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{
		"status":  "ok",
		"backend": u.backend,
	}
	for name, check := range u.checks {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(cctx)
		cancel()
		if err != nil {
			out[name] = "unavailable"
			out["status"] = "degraded"
			continue
		}
		out[name] = "ok"
	}
	return out
}
