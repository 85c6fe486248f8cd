// Package inventory provides the in-memory inventory engine: the item
// store, the stock movement ledger, and the status classification rules
// that keep them consistent.
package inventory

import (
	"time"

	"smartinventory/internal/core/id"
	"smartinventory/internal/core/types"
)

// Status is the derived stock-level classification of an item.
// It is always recomputed from Quantity and MinQuantity, never set by callers.
type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

// ClassifyStatus maps quantity and reorder threshold to a stock status.
// Zero quantity wins over the low-stock rule, even when minQuantity is 0.
func ClassifyStatus(quantity, minQuantity int) Status {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if quantity <= minQuantity {
		return StatusLowStock
	}
	return StatusInStock
}

// Item represents a trackable inventory entity.
type Item struct {
	ID id.ID `json:"id"`

	Name string `json:"name"`

	// SKU is a human identifier. Uniqueness is not enforced; duplicate
	// SKUs across items are accepted.
	SKU string `json:"sku"`

	// Quantity on hand, never negative.
	Quantity int `json:"quantity"`

	// MinQuantity is the reorder threshold.
	MinQuantity int `json:"minQuantity"`

	Location string `json:"location"`
	Zone     string `json:"zone"`

	// Category is a free-text grouping key (case-sensitive).
	Category string `json:"category"`

	Price types.Money `json:"price"`

	// LastUpdated is refreshed on every mutation of the item.
	LastUpdated time.Time `json:"lastUpdated"`

	// Status is derived via ClassifyStatus on every mutation.
	Status Status `json:"status"`
}

// MovementType encodes the direction of a stock movement.
// Movement quantities are always positive magnitudes; direction lives here.
type MovementType string

const (
	MovementInbound  MovementType = "inbound"
	MovementOutbound MovementType = "outbound"
)

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t == MovementInbound || t == MovementOutbound
}

// Movement is an immutable record of a quantity change against one item.
// ItemName and SKU are a denormalized snapshot taken at movement time,
// not live-linked to the item.
type Movement struct {
	ID        id.ID        `json:"id"`
	ItemID    id.ID        `json:"itemId"`
	ItemName  string       `json:"itemName"`
	SKU       string       `json:"sku"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Location  string       `json:"location"`
	Timestamp time.Time    `json:"timestamp"`
	Notes     string       `json:"notes,omitempty"`

	// Operator is the acting user's display name, free text.
	Operator string `json:"operator"`
}

// SignedDelta returns the quantity change the movement applies to its item:
// positive for inbound, negative for outbound.
func (m Movement) SignedDelta() int {
	if m.Type == MovementOutbound {
		return -m.Quantity
	}
	return m.Quantity
}
