package controller

import (
	"context"

	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"
	"go-ats-dashboard/pkg/logger"
)

type CandidateController struct {
	state *AppState
	api   domain.CandidateUsecase
	cache *collection[domain.Candidate]
}

func NewCandidateController(state *AppState, api domain.CandidateUsecase) *CandidateController {
	return &CandidateController{
		state: state,
		api:   api,
		cache: newCollection(
			func(c domain.Candidate) string { return c.ID },
			domain.Candidate.Clone,
		),
	}
}

// Mount performs the initial load.
func (c *CandidateController) Mount(ctx context.Context) bool {
	return c.Fetch(ctx)
}

// Fetch reloads the whole collection. On failure the cache keeps its previous contents.
func (c *CandidateController) Fetch(ctx context.Context) bool {
	defer c.state.track()()

	items, err := c.api.ListCandidates(ctx)
	if err != nil {
		logger.Log.Warn("fetch candidates failed", "error", err)
		c.state.showError("Failed to fetch candidates")
		return false
	}
	c.cache.set(items)
	return true
}

func (c *CandidateController) Items() []domain.Candidate {
	return c.cache.all()
}

// Visible applies filter, search and sort to the cached collection.
func (c *CandidateController) Visible(q domain.CandidateQuery) []domain.Candidate {
	return query.ApplyCandidateQuery(c.cache.all(), q)
}

// Select marks a cached candidate as selected. It reports false for an unknown id.
func (c *CandidateController) Select(id string) bool {
	return c.cache.selectID(id)
}

func (c *CandidateController) Selected() *domain.Candidate {
	return c.cache.current()
}

func (c *CandidateController) ClearSelection() {
	c.cache.clearSelection()
}

// Load fetches one candidate from the façade and selects it.
func (c *CandidateController) Load(ctx context.Context, id string) (*domain.Candidate, bool) {
	defer c.state.track()()

	got, err := c.api.GetCandidate(ctx, id)
	if err != nil {
		logger.Log.Warn("load candidate failed", "id", id, "error", err)
		c.state.showError("Failed to load candidate details")
		return nil, false
	}
	c.cache.selectItem(*got)
	return got, true
}

func (c *CandidateController) Create(ctx context.Context, input domain.CandidateInput) bool {
	defer c.state.track()()

	created, err := c.api.CreateCandidate(ctx, input)
	if err != nil {
		logger.Log.Warn("create candidate failed", "error", err)
		c.state.showError("Failed to create candidate")
		return false
	}
	c.cache.add(*created)
	c.state.showSuccess("Candidate created successfully")
	return true
}

func (c *CandidateController) Update(ctx context.Context, id string, patch domain.CandidatePatch) bool {
	defer c.state.track()()

	updated, err := c.api.UpdateCandidate(ctx, id, patch)
	if err != nil {
		logger.Log.Warn("update candidate failed", "id", id, "error", err)
		c.state.showError("Failed to update candidate")
		return false
	}
	c.cache.replace(*updated)
	c.state.showSuccess("Candidate updated successfully")
	return true
}

func (c *CandidateController) Delete(ctx context.Context, id string) bool {
	defer c.state.track()()

	if err := c.api.DeleteCandidate(ctx, id); err != nil {
		logger.Log.Warn("delete candidate failed", "id", id, "error", err)
		c.state.showError("Failed to delete candidate")
		return false
	}
	c.cache.remove(id)
	c.state.showSuccess("Candidate deleted successfully")
	return true
}

// Reset drops the cached collection and selection.
func (c *CandidateController) Reset() {
	c.cache.reset()
}
