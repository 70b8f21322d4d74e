package v1

import (
	"net/http"

	"go-ats-dashboard/internal/delivery/http/response"
	"go-ats-dashboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	r.GET("/dashboard/stats", handler.Stats)
}

// DashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Headline counters, six-month application trend and status distribution.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.DashboardStats}
// @Failure      502  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}
