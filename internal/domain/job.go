package domain

import (
	"context"
	"slices"
)

type JobLevel string

const (
	LevelIntern JobLevel = "Intern"
	LevelJunior JobLevel = "Junior"
	LevelMid    JobLevel = "Mid"
	LevelSenior JobLevel = "Senior"
	LevelLead   JobLevel = "Lead"
)

var JobLevels = []JobLevel{LevelIntern, LevelJunior, LevelMid, LevelSenior, LevelLead}

type JobType string

const (
	TypeFullTime JobType = "Full-time"
	TypePartTime JobType = "Part-time"
	TypeContract JobType = "Contract"
	TypeRemote   JobType = "Remote"
)

var JobTypes = []JobType{TypeFullTime, TypePartTime, TypeContract, TypeRemote}

type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobClosed JobStatus = "Closed"
	JobOnHold JobStatus = "On-hold"
)

var JobStatuses = []JobStatus{JobOpen, JobClosed, JobOnHold}

func (l JobLevel) Valid() bool  { return slices.Contains(JobLevels, l) }
func (t JobType) Valid() bool   { return slices.Contains(JobTypes, t) }
func (s JobStatus) Valid() bool { return slices.Contains(JobStatuses, s) }

// DefaultCurrency is used when a new job does not name one.
const DefaultCurrency = "USD"

// SalaryRange is not checked for Min <= Max.
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Job struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Department   string      `json:"department"`
	Level        JobLevel    `json:"level"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	Location     string      `json:"location"`
	Type         JobType     `json:"type"`
	Status       JobStatus   `json:"status"`
	SalaryRange  SalaryRange `json:"salaryRange"`
	Applications int         `json:"applications"`
	CreatedDate  Date        `json:"createdDate"`
	ClosedDate   *Date       `json:"closedDate,omitempty"`
}

func (j Job) Clone() Job {
	out := j
	out.Requirements = slices.Clone(j.Requirements)
	if j.ClosedDate != nil {
		d := *j.ClosedDate
		out.ClosedDate = &d
	}
	return out
}

// JobInput is a job as submitted by the create form. Id, applications and
// createdDate are assigned by the façade.
type JobInput struct {
	Title        string      `json:"title" validate:"required,notblank"`
	Department   string      `json:"department" validate:"required,notblank"`
	Level        JobLevel    `json:"level" validate:"omitempty,oneof=Intern Junior Mid Senior Lead"`
	Description  string      `json:"description"`
	Requirements []string    `json:"requirements"`
	Location     string      `json:"location"`
	Type         JobType     `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Remote"`
	Status       JobStatus   `json:"status" validate:"omitempty,oneof=Open Closed On-hold"`
	SalaryRange  SalaryRange `json:"salaryRange"`
	ClosedDate   *Date       `json:"closedDate,omitempty"`
}

type JobPatch struct {
	Title        *string      `json:"title,omitempty" validate:"omitempty,notblank"`
	Department   *string      `json:"department,omitempty" validate:"omitempty,notblank"`
	Level        *JobLevel    `json:"level,omitempty" validate:"omitempty,oneof=Intern Junior Mid Senior Lead"`
	Description  *string      `json:"description,omitempty"`
	Requirements *[]string    `json:"requirements,omitempty"`
	Location     *string      `json:"location,omitempty"`
	Type         *JobType     `json:"type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Remote"`
	Status       *JobStatus   `json:"status,omitempty" validate:"omitempty,oneof=Open Closed On-hold"`
	SalaryRange  *SalaryRange `json:"salaryRange,omitempty"`
	Applications *int         `json:"applications,omitempty"`
	ClosedDate   *Date        `json:"closedDate,omitempty"`
}

func (p JobPatch) Apply(j Job) Job {
	out := j.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.Level != nil {
		out.Level = *p.Level
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Requirements != nil {
		out.Requirements = slices.Clone(*p.Requirements)
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.SalaryRange != nil {
		out.SalaryRange = *p.SalaryRange
	}
	if p.Applications != nil {
		out.Applications = *p.Applications
	}
	if p.ClosedDate != nil {
		d := *p.ClosedDate
		out.ClosedDate = &d
	}
	return out
}

type JobRepository interface {
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, job *Job) error
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

// JobUsecase is the data access façade for job postings.
type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, input JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id string, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
