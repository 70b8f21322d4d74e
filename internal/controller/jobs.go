package controller

import (
	"context"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"
	"go-ats-dashboard/pkg/logger"
)

type JobController struct {
	state *AppState
	api   domain.JobUsecase
	cache *collection[domain.Job]
}

func NewJobController(state *AppState, api domain.JobUsecase) *JobController {
	return &JobController{
		state: state,
		api:   api,
		cache: newCollection(
			func(j domain.Job) string { return j.ID },
			domain.Job.Clone,
		),
	}
}

// Mount performs the initial load.
func (c *JobController) Mount(ctx context.Context) bool {
	return c.Fetch(ctx)
}

// Fetch reloads the whole collection. On failure the cache keeps its previous contents.
func (c *JobController) Fetch(ctx context.Context) bool {
	defer c.state.track()()

	items, err := c.api.ListJobs(ctx)
	if err != nil {
		logger.Log.Warn("fetch jobs failed", "error", err)
		c.state.showError("Failed to fetch jobs")
		return false
	}
	c.cache.set(items)
	return true
}

func (c *JobController) Items() []domain.Job {
	return c.cache.all()
}

// Visible applies filter, search and sort to the cached collection.
func (c *JobController) Visible(q domain.JobQuery) []domain.Job {
	return query.ApplyJobQuery(c.cache.all(), q)
}

// Departments lists the distinct departments of the cached jobs for the filter dropdown.
func (c *JobController) Departments() []string {
	return query.Departments(c.cache.all())
}

// Select marks a cached job as selected. It reports false for an unknown id.
func (c *JobController) Select(id string) bool {
	return c.cache.selectID(id)
}

func (c *JobController) Selected() *domain.Job {
	return c.cache.current()
}

func (c *JobController) ClearSelection() {
	c.cache.clearSelection()
}

// Load fetches one job from the façade and selects it.
func (c *JobController) Load(ctx context.Context, id string) (*domain.Job, bool) {
	defer c.state.track()()

	got, err := c.api.GetJob(ctx, id)
	if err != nil {
		logger.Log.Warn("load job failed", "id", id, "error", err)
		c.state.showError("Failed to load job details")
		return nil, false
	}
	c.cache.selectItem(*got)
	return got, true
}

func (c *JobController) Create(ctx context.Context, input domain.JobInput) bool {
	defer c.state.track()()

	created, err := c.api.CreateJob(ctx, input)
	if err != nil {
		logger.Log.Warn("create job failed", "error", err)
		c.state.showError("Failed to create job")
		return false
	}
	c.cache.add(*created)
	c.state.showSuccess("Job created successfully")
	return true
}

func (c *JobController) Update(ctx context.Context, id string, patch domain.JobPatch) bool {
	defer c.state.track()()

	updated, err := c.api.UpdateJob(ctx, id, patch)
	if err != nil {
		logger.Log.Warn("update job failed", "id", id, "error", err)
		c.state.showError("Failed to update job")
		return false
	}
	c.cache.replace(*updated)
	c.state.showSuccess("Job updated successfully")
	return true
}

func (c *JobController) Delete(ctx context.Context, id string) bool {
	defer c.state.track()()

	if err := c.api.DeleteJob(ctx, id); err != nil {
		logger.Log.Warn("delete job failed", "id", id, "error", err)
		c.state.showError("Failed to delete job")
		return false
	}
	c.cache.remove(id)
	c.state.showSuccess("Job deleted successfully")
	return true
}

// Reset drops the cached collection and selection.
func (c *JobController) Reset() {
	c.cache.reset()
}
