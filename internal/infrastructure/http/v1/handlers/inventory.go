package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartinventory/internal/core/apperror"
	"smartinventory/internal/core/id"
	"smartinventory/internal/domain/inventory"
	"smartinventory/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	*BaseHandler
	engine *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, engine *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		engine:      engine,
	}
}

// List handles GET /items
func (h *InventoryHandler) List(c *gin.Context) {
	items := h.engine.Items()
	c.JSON(http.StatusOK, dto.ListResponse{
		Items: dto.FromItems(items),
		Total: len(items),
	})
}

// Get handles GET /items/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	item, err := h.engine.Item(itemID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromItem(item))
}

// Create handles POST /items
func (h *InventoryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.engine.AddItem(ctx, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromItem(item))
}

// Update handles PATCH /items/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.engine.UpdateItem(ctx, itemID, req.ToUpdate())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromItem(item))
}
