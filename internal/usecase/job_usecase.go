package usecase

import (
	"context"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/audit"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
	opts     options
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate, opts ...Option) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
		opts:     buildOptions(opts),
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	list, err := u.jobRepo.List(ctx)
	if err != nil {
		return nil, translate(err, "Job")
	}
	return list, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Job")
	}
	return job, nil
}

// CreateJob sets id, createdDate and a zero application count, and fills the
// form defaults (Mid, Full-time, Open, USD) for omitted fields.
func (u *jobUsecase) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	job := domain.Job{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Department:   input.Department,
		Level:        input.Level,
		Description:  input.Description,
		Requirements: input.Requirements,
		Location:     input.Location,
		Type:         input.Type,
		Status:       input.Status,
		SalaryRange:  input.SalaryRange,
		Applications: 0,
		CreatedDate:  u.opts.today(),
		ClosedDate:   input.ClosedDate,
	}
	job = job.Clone()
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Level == "" {
		job.Level = domain.LevelMid
	}
	if job.Type == "" {
		job.Type = domain.TypeFullTime
	}
	if job.Status == "" {
		job.Status = domain.JobOpen
	}
	if job.SalaryRange.Currency == "" {
		job.SalaryRange.Currency = domain.DefaultCurrency
	}

	if err := u.jobRepo.Create(ctx, &job); err != nil {
		return nil, translate(err, "Job")
	}

	u.opts.audit.Record(ctx, audit.EventJobCreated, "job", job.ID)
	u.opts.invalidateStats(ctx)
	return &job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	if err := validateInput(u.validate, patch); err != nil {
		return nil, err
	}

	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Job")
	}

	updated := patch.Apply(*existing)
	updated.ID = id
	if err := u.jobRepo.Update(ctx, &updated); err != nil {
		return nil, translate(err, "Job")
	}

	u.opts.audit.Record(ctx, audit.EventJobUpdated, "job", id)
	u.opts.invalidateStats(ctx)
	return &updated, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return translate(err, "Job")
	}

	u.opts.audit.Record(ctx, audit.EventJobDeleted, "job", id)
	u.opts.invalidateStats(ctx)
	return nil
}
