package memory

import (
	"context"

	"go-ats-dashboard/internal/domain"
)

type jobRepo struct {
	arena   *arena[domain.Job]
	latency Latency
}

func NewJobRepository(latency Latency, seed []domain.Job) domain.JobRepository {
	return &jobRepo{
		arena: newArena(
			func(j domain.Job) string { return j.ID },
			domain.Job.Clone,
			seed,
		),
		latency: latency,
	}
}

func (r *jobRepo) List(ctx context.Context) ([]domain.Job, error) {
	if err := sleep(ctx, r.latency.List); err != nil {
		return nil, err
	}
	return r.arena.list(), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if err := sleep(ctx, r.latency.Get); err != nil {
		return nil, err
	}
	j, err := r.arena.get(id)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if err := sleep(ctx, r.latency.Create); err != nil {
		return err
	}
	return r.arena.insert(*job)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	if err := sleep(ctx, r.latency.Update); err != nil {
		return err
	}
	return r.arena.replace(*job)
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	if err := sleep(ctx, r.latency.Delete); err != nil {
		return err
	}
	return r.arena.remove(id)
}
