package v1

import (
	"net/http"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Filter, search, sort and page the candidate collection. Without page every match is returned.
// @Tags         candidates
// @Produce      json
// @Param        status     query     string  false  "Applied, Interview, Offer, Hired, Rejected or all"
// @Param        search     query     string  false  "Matches name, email and skills"
// @Param        sort_by    query     string  false  "name, email, phone, experience, education, status, appliedDate, interviewDate"
// @Param        order      query     string  false  "asc or desc"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.PaginatedResult[domain.Candidate]}
// @Failure      400  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	q, err := candidateQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	page, size, err := paging(c)
	if err != nil {
		c.Error(err)
		return
	}

	all, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	result := query.Paginate(query.ApplyCandidateQuery(all, q), page, size)
	response.Success(c, http.StatusOK, "Candidates retrieved", result)
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Status defaults to Applied and appliedDate to today.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate JSON"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if !bindJSON(c, &input) {
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Description  Merges the given fields into the stored candidate.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      string                 true  "Candidate ID"
// @Param        patch  body      domain.CandidatePatch  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
// @Security     BearerAuth
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if !bindJSON(c, &patch) {
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}
