package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartinventory/internal/domain/reports"
	"smartinventory/internal/infrastructure/http/v1/dto"
)

// DashboardHandler serves the derived KPI and chart aggregates.
type DashboardHandler struct {
	*BaseHandler
	reports *reports.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, reportsService *reports.Service) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: base,
		reports:     reportsService,
	}
}

// KPI handles GET /dashboard/kpi
func (h *DashboardHandler) KPI(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromKPI(h.reports.KPI()))
}

// Charts handles GET /dashboard/charts
func (h *DashboardHandler) Charts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromChartSeries(h.reports.Charts()))
}
