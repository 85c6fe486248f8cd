package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartinventory/internal/core/apperror"
	"smartinventory/internal/domain/inventory"
	"smartinventory/internal/infrastructure/export"
)

// ReportsHandler serves CSV downloads of the raw collections.
type ReportsHandler struct {
	*BaseHandler
	engine *inventory.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, engine *inventory.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		engine:      engine,
	}
}

// ExportInventory handles GET /reports/inventory/export
func (h *ReportsHandler) ExportInventory(c *gin.Context) {
	h.setCSVHeaders(c, "inventory-report")
	if err := export.WriteItemsCSV(c.Writer, h.engine.Items()); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

// ExportMovements handles GET /reports/movements/export
func (h *ReportsHandler) ExportMovements(c *gin.Context) {
	h.setCSVHeaders(c, "movements-report")
	if err := export.WriteMovementsCSV(c.Writer, h.engine.Movements()); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

func (h *ReportsHandler) setCSVHeaders(c *gin.Context, name string) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
}
