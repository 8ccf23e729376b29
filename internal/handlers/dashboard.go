package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard counters.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns the dashboard widget payload.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to gather dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
