package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrackhq/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
)

// DashboardHandler serves the aggregated dashboard stats.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvcFacade) {
	h := NewDashboardHandler(ds)

	rg.GET("/dashboard/stats", h.GetStats)
}

// GetStats godoc
// @Summary Dashboard stats
// @Description Returns available funds, monthly income and expense totals, profit/loss, overdraft usage and top category breakdowns for the given month.
// @Tags dashboard
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	month := time.Now().UTC()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			respondError(c, apperrors.NewAppError(http.StatusBadRequest, "month must be in YYYY-MM format", err))
			return
		}
		month = parsed
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats, month.Format("2006-01")))
}
