package dto

import (
	"time"

	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/inventory"
)

// --- Request DTOs ---

// CreateItemRequest carries the caller-supplied item attributes.
// ID, lastUpdated and status are engine-generated.
type CreateItemRequest struct {
	Name        string      `json:"name" binding:"required"`
	SKU         string      `json:"sku"`
	Quantity    int         `json:"quantity"`
	MinQuantity int         `json:"minQuantity"`
	Location    string      `json:"location"`
	Zone        string      `json:"zone"`
	Category    string      `json:"category"`
	Price       types.Money `json:"price"`
}

// ToInput converts to the engine input.
func (r *CreateItemRequest) ToInput() inventory.NewItemInput {
	return inventory.NewItemInput{
		Name:        r.Name,
		SKU:         r.SKU,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		Location:    r.Location,
		Zone:        r.Zone,
		Category:    r.Category,
		Price:       r.Price,
	}
}

// UpdateItemRequest is a partial update; absent fields are untouched.
// Status is derived and deliberately not accepted here.
type UpdateItemRequest struct {
	Name        *string      `json:"name"`
	SKU         *string      `json:"sku"`
	Quantity    *int         `json:"quantity"`
	MinQuantity *int         `json:"minQuantity"`
	Location    *string      `json:"location"`
	Zone        *string      `json:"zone"`
	Category    *string      `json:"category"`
	Price       *types.Money `json:"price"`
}

// ToUpdate converts to the engine partial update.
func (r *UpdateItemRequest) ToUpdate() inventory.ItemUpdate {
	return inventory.ItemUpdate{
		Name:        r.Name,
		SKU:         r.SKU,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		Location:    r.Location,
		Zone:        r.Zone,
		Category:    r.Category,
		Price:       r.Price,
	}
}

// --- Response DTOs ---

// ItemResponse represents an inventory item in API responses.
type ItemResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Quantity    int         `json:"quantity"`
	MinQuantity int         `json:"minQuantity"`
	Location    string      `json:"location"`
	Zone        string      `json:"zone"`
	Category    string      `json:"category"`
	Price       types.Money `json:"price"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Status      string      `json:"status"`
}

// FromItem converts entity to response DTO.
func FromItem(item inventory.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		SKU:         item.SKU,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		Location:    item.Location,
		Zone:        item.Zone,
		Category:    item.Category,
		Price:       item.Price,
		LastUpdated: item.LastUpdated,
		Status:      string(item.Status),
	}
}

// FromItems converts a slice of entities preserving order.
func FromItems(items []inventory.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = FromItem(item)
	}
	return out
}
