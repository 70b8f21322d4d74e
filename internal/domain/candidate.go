package domain

import (
	"context"
	"slices"
)

type CandidateStatus string

const (
	CandidateApplied   CandidateStatus = "Applied"
	CandidateInterview CandidateStatus = "Interview"
	CandidateOffer     CandidateStatus = "Offer"
	CandidateHired     CandidateStatus = "Hired"
	CandidateRejected  CandidateStatus = "Rejected"
)

// CandidateStatuses lists every status in pipeline order. Dashboard buckets follow this order.
var CandidateStatuses = []CandidateStatus{
	CandidateApplied,
	CandidateInterview,
	CandidateOffer,
	CandidateHired,
	CandidateRejected,
}

func (s CandidateStatus) Valid() bool {
	return slices.Contains(CandidateStatuses, s)
}

type Candidate struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Skills        []string        `json:"skills"`
	Experience    string          `json:"experience"`
	Education     string          `json:"education"`
	Status        CandidateStatus `json:"status"`
	AppliedDate   Date            `json:"appliedDate"`
	InterviewDate *Date           `json:"interviewDate,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

// Clone returns a deep copy so callers never share slices or pointers with a store.
func (c Candidate) Clone() Candidate {
	out := c
	out.Skills = slices.Clone(c.Skills)
	if c.InterviewDate != nil {
		d := *c.InterviewDate
		out.InterviewDate = &d
	}
	if c.Notes != nil {
		n := *c.Notes
		out.Notes = &n
	}
	return out
}

// HasInterview reports whether an interview date has been scheduled.
func (c Candidate) HasInterview() bool {
	return c.InterviewDate != nil && !c.InterviewDate.IsZero()
}

// CandidateInput is a candidate without an id, as submitted by the create form.
type CandidateInput struct {
	Name          string          `json:"name" validate:"required,notblank"`
	Email         string          `json:"email" validate:"required,notblank"`
	Phone         string          `json:"phone"`
	Skills        []string        `json:"skills"`
	Experience    string          `json:"experience"`
	Education     string          `json:"education"`
	Status        CandidateStatus `json:"status" validate:"omitempty,oneof=Applied Interview Offer Hired Rejected"`
	AppliedDate   Date            `json:"appliedDate"`
	InterviewDate *Date           `json:"interviewDate,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

// CandidatePatch carries a partial update; nil fields are left untouched.
type CandidatePatch struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,notblank"`
	Email         *string          `json:"email,omitempty" validate:"omitempty,notblank"`
	Phone         *string          `json:"phone,omitempty"`
	Skills        *[]string        `json:"skills,omitempty"`
	Experience    *string          `json:"experience,omitempty"`
	Education     *string          `json:"education,omitempty"`
	Status        *CandidateStatus `json:"status,omitempty" validate:"omitempty,oneof=Applied Interview Offer Hired Rejected"`
	AppliedDate   *Date            `json:"appliedDate,omitempty"`
	InterviewDate *Date            `json:"interviewDate,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// Apply merges the patch onto c and returns the result. c itself is not modified.
func (p CandidatePatch) Apply(c Candidate) Candidate {
	out := c.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Skills != nil {
		out.Skills = slices.Clone(*p.Skills)
	}
	if p.Experience != nil {
		out.Experience = *p.Experience
	}
	if p.Education != nil {
		out.Education = *p.Education
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.AppliedDate != nil {
		out.AppliedDate = *p.AppliedDate
	}
	if p.InterviewDate != nil {
		d := *p.InterviewDate
		out.InterviewDate = &d
	}
	if p.Notes != nil {
		n := *p.Notes
		out.Notes = &n
	}
	return out
}

type CandidateRepository interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id string) error
}

// CandidateUsecase is the data access façade for candidates. It is implemented
// locally over a CandidateRepository and remotely over the REST API.
type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	CreateCandidate(ctx context.Context, input CandidateInput) (*Candidate, error)
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
}
