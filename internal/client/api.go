package client

import (
	"context"
	"net/url"

	"go-ats-dashboard/internal/domain"
)

type CandidateAPI struct {
	c *Client
}

func NewCandidateAPI(c *Client) domain.CandidateUsecase {
	return &CandidateAPI{c: c}
}

func (a *CandidateAPI) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	var page domain.PaginatedResult[domain.Candidate]
	if err := a.c.Get(ctx, "/candidates", nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (a *CandidateAPI) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.Get(ctx, "/candidates/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidateAPI) CreateCandidate(ctx context.Context, input domain.CandidateInput) (*domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.Post(ctx, "/candidates", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidateAPI) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.Put(ctx, "/candidates/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CandidateAPI) DeleteCandidate(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "/candidates/"+url.PathEscape(id))
}

type JobAPI struct {
	c *Client
}

func NewJobAPI(c *Client) domain.JobUsecase {
	return &JobAPI{c: c}
}

func (a *JobAPI) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var page domain.PaginatedResult[domain.Job]
	if err := a.c.Get(ctx, "/jobs", nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

func (a *JobAPI) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var out domain.Job
	if err := a.c.Get(ctx, "/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobAPI) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	var out domain.Job
	if err := a.c.Post(ctx, "/jobs", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobAPI) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	var out domain.Job
	if err := a.c.Put(ctx, "/jobs/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *JobAPI) DeleteJob(ctx context.Context, id string) error {
	return a.c.Delete(ctx, "/jobs/"+url.PathEscape(id))
}

// Login exchanges credentials for a session and stores its token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var s domain.Session
	if err := c.Post(ctx, "/auth/login", domain.LoginRequest{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	c.SetToken(s.Token)
	return &s, nil
}
