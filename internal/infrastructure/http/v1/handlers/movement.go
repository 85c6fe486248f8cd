package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartinventory/internal/domain/inventory"
	"smartinventory/internal/infrastructure/http/v1/dto"
)

// MovementHandler handles HTTP requests for the stock movement ledger.
type MovementHandler struct {
	*BaseHandler
	engine *inventory.Service
}

// NewMovementHandler creates a new movement handler.
func NewMovementHandler(base *BaseHandler, engine *inventory.Service) *MovementHandler {
	return &MovementHandler{
		BaseHandler: base,
		engine:      engine,
	}
}

// List handles GET /movements (newest-first).
func (h *MovementHandler) List(c *gin.Context) {
	movements := h.engine.Movements()
	c.JSON(http.StatusOK, dto.ListResponse{
		Items: dto.FromMovements(movements),
		Total: len(movements),
	})
}

// Create handles POST /movements.
// Recording a movement also adjusts the referenced item's quantity and
// status; the operator name comes from the authenticated session.
func (h *MovementHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput(h.GetOperator(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	mv, err := h.engine.RecordMovement(ctx, input)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromMovement(mv))
}
