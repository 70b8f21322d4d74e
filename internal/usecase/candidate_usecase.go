package usecase

import (
	"context"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/pkg/audit"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
	opts          options
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate, opts ...Option) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo: candidateRepo,
		validate:      validate,
		opts:          buildOptions(opts),
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	list, err := u.candidateRepo.List(ctx)
	if err != nil {
		return nil, translate(err, "Candidate")
	}
	return list, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	c, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Candidate")
	}
	return c, nil
}

// CreateCandidate assigns a fresh id and fills the form defaults: status
// Applied and today's date when appliedDate is missing.
func (u *candidateUsecase) CreateCandidate(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	if err := validateInput(u.validate, input); err != nil {
		return nil, err
	}

	c := domain.Candidate{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Skills:        input.Skills,
		Experience:    input.Experience,
		Education:     input.Education,
		Status:        input.Status,
		AppliedDate:   input.AppliedDate,
		InterviewDate: input.InterviewDate,
		Notes:         input.Notes,
	}
	c = c.Clone()
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Status == "" {
		c.Status = domain.CandidateApplied
	}
	if c.AppliedDate.IsZero() {
		c.AppliedDate = u.opts.today()
	}

	if err := u.candidateRepo.Create(ctx, &c); err != nil {
		return nil, translate(err, "Candidate")
	}

	u.opts.audit.Record(ctx, audit.EventCandidateCreated, "candidate", c.ID)
	u.opts.invalidateStats(ctx)
	return &c, nil
}

// UpdateCandidate merges the non-nil fields of patch onto the stored candidate.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if err := validateInput(u.validate, patch); err != nil {
		return nil, err
	}

	existing, err := u.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Candidate")
	}

	updated := patch.Apply(*existing)
	updated.ID = id
	if err := u.candidateRepo.Update(ctx, &updated); err != nil {
		return nil, translate(err, "Candidate")
	}

	u.opts.audit.Record(ctx, audit.EventCandidateUpdated, "candidate", id)
	u.opts.invalidateStats(ctx)
	return &updated, nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.candidateRepo.Delete(ctx, id); err != nil {
		return translate(err, "Candidate")
	}

	u.opts.audit.Record(ctx, audit.EventCandidateDeleted, "candidate", id)
	u.opts.invalidateStats(ctx)
	return nil
}
