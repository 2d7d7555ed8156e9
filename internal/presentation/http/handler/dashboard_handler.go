package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pharmadist/pharmadist-api/internal/application/service"
	"github.com/pharmadist/pharmadist-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard metric requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the aggregated dashboard metrics
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
