package v1

import (
	"net/http"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"
	"go-ats-dashboard/internal/query"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/departments", handler.Departments)
		jobs.GET("/:id", handler.Get)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Filter by status and department, search, sort and page the job collection.
// @Tags         jobs
// @Produce      json
// @Param        status      query     string  false  "Open, Closed, On-hold or all"
// @Param        department  query     string  false  "Department name or all"
// @Param        search      query     string  false  "Matches title, department and requirements"
// @Param        sort_by     query     string  false  "title, department, location, level, type, status, applications, salaryRange, createdDate, closedDate"
// @Param        order       query     string  false  "asc or desc"
// @Param        page        query     int     false  "Page number"
// @Param        page_size   query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Failure      400  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	q, err := jobQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	page, size, err := paging(c)
	if err != nil {
		c.Error(err)
		return
	}

	all, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	result := query.Paginate(query.ApplyJobQuery(all, q), page, size)
	response.Success(c, http.StatusOK, "Jobs retrieved", result)
}

// ListDepartments godoc
// @Summary      List departments
// @Description  Distinct departments across all jobs, sorted.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /jobs/departments [get]
// @Security     BearerAuth
func (h *JobHandler) Departments(c *gin.Context) {
	all, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Departments retrieved", query.Departments(all))
}

// GetJob godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Level defaults to Mid, type to Full-time, status to Open and currency to USD.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if !bindJSON(c, &input) {
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      string           true  "Job ID"
// @Param        patch  body      domain.JobPatch  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobPatch
	if !bindJSON(c, &patch) {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}
