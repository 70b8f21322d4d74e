package v1

import (
	"strings"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportUC domain.ExportUsecase
}

func NewExportHandler(r *gin.RouterGroup, exportUC domain.ExportUsecase) {
	handler := &ExportHandler{exportUC: exportUC}

	exports := r.Group("/exports")
	{
		exports.GET("/candidates", handler.Candidates)
		exports.GET("/jobs", handler.Jobs)
	}
}

func exportFormat(c *gin.Context) domain.ExportFormat {
	return domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportXLSX))))
}

// ExportCandidates godoc
// @Summary      Export candidates
// @Description  Download the filtered candidate list as XLSX or CSV.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format   query  string  false  "xlsx (default) or csv"
// @Param        status   query  string  false  "Status filter"
// @Param        search   query  string  false  "Search text"
// @Param        sort_by  query  string  false  "Sort key"
// @Param        order    query  string  false  "asc or desc"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /exports/candidates [get]
// @Security     BearerAuth
func (h *ExportHandler) Candidates(c *gin.Context) {
	q, err := candidateQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := h.exportUC.ExportCandidates(c.Request.Context(), q, exportFormat(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Attachment(c, file)
}

// ExportJobs godoc
// @Summary      Export jobs
// @Description  Download the filtered job list as XLSX or CSV.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format      query  string  false  "xlsx (default) or csv"
// @Param        status      query  string  false  "Status filter"
// @Param        department  query  string  false  "Department filter"
// @Param        search      query  string  false  "Search text"
// @Param        sort_by     query  string  false  "Sort key"
// @Param        order       query  string  false  "asc or desc"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /exports/jobs [get]
// @Security     BearerAuth
func (h *ExportHandler) Jobs(c *gin.Context) {
	q, err := jobQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	file, err := h.exportUC.ExportJobs(c.Request.Context(), q, exportFormat(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Attachment(c, file)
}
