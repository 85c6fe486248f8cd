package dto

import (
	"time"

	"smartinventory/internal/core/apperror"
	"smartinventory/internal/core/id"
	"smartinventory/internal/domain/inventory"
)

// --- Request DTOs ---

// CreateMovementRequest carries the caller-supplied movement attributes.
// ID and timestamp are engine-generated; the operator comes from the
// authenticated session, not the payload.
type CreateMovementRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemName string `json:"itemName"`
	SKU      string `json:"sku"`
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// ToInput converts to the engine input.
func (r *CreateMovementRequest) ToInput(operator string) (inventory.NewMovementInput, error) {
	itemID, err := id.Parse(r.ItemID)
	if err != nil {
		return inventory.NewMovementInput{}, apperror.NewValidation("invalid itemId format").
			WithDetail("itemId", r.ItemID)
	}

	return inventory.NewMovementInput{
		ItemID:   itemID,
		ItemName: r.ItemName,
		SKU:      r.SKU,
		Type:     inventory.MovementType(r.Type),
		Quantity: r.Quantity,
		Location: r.Location,
		Notes:    r.Notes,
		Operator: operator,
	}, nil
}

// --- Response DTOs ---

// MovementResponse represents a stock movement in API responses.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"itemId"`
	ItemName  string    `json:"itemName"`
	SKU       string    `json:"sku"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
	Operator  string    `json:"operator"`
}

// FromMovement converts entity to response DTO.
func FromMovement(mv inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:        mv.ID.String(),
		ItemID:    mv.ItemID.String(),
		ItemName:  mv.ItemName,
		SKU:       mv.SKU,
		Type:      string(mv.Type),
		Quantity:  mv.Quantity,
		Location:  mv.Location,
		Timestamp: mv.Timestamp,
		Notes:     mv.Notes,
		Operator:  mv.Operator,
	}
}

// FromMovements converts a slice of entities preserving ledger order.
func FromMovements(movements []inventory.Movement) []MovementResponse {
	out := make([]MovementResponse, len(movements))
	for i, mv := range movements {
		out[i] = FromMovement(mv)
	}
	return out
}
