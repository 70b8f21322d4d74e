package memory

import (
	"context"

	"go-ats-dashboard/internal/domain"
)

type candidateRepo struct {
	arena   *arena[domain.Candidate]
	latency Latency
}

// NewCandidateRepository returns an arena-backed repository holding a copy of seed.
func NewCandidateRepository(latency Latency, seed []domain.Candidate) domain.CandidateRepository {
	return &candidateRepo{
		arena: newArena(
			func(c domain.Candidate) string { return c.ID },
			domain.Candidate.Clone,
			seed,
		),
		latency: latency,
	}
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	if err := sleep(ctx, r.latency.List); err != nil {
		return nil, err
	}
	return r.arena.list(), nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if err := sleep(ctx, r.latency.Get); err != nil {
		return nil, err
	}
	c, err := r.arena.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	if err := sleep(ctx, r.latency.Create); err != nil {
		return err
	}
	return r.arena.insert(*candidate)
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	if err := sleep(ctx, r.latency.Update); err != nil {
		return err
	}
	return r.arena.replace(*candidate)
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	if err := sleep(ctx, r.latency.Delete); err != nil {
		return err
	}
	return r.arena.remove(id)
}
