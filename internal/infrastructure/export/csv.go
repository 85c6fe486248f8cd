// Package export renders the inventory collections as flat delimited
// rows for download, one row per entity.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"smartinventory/internal/domain/inventory"
)

// Column orders follow the entity attribute order.
var (
	itemHeader = []string{
		"id", "name", "sku", "quantity", "minQuantity",
		"location", "zone", "category", "price", "lastUpdated", "status",
	}
	movementHeader = []string{
		"id", "itemId", "itemName", "sku", "type", "quantity",
		"location", "timestamp", "notes", "operator",
	}
)

// WriteItemsCSV streams the item collection as CSV.
func WriteItemsCSV(w io.Writer, items []inventory.Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(itemHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.ID.String(),
			item.Name,
			item.SKU,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("%d", item.MinQuantity),
			item.Location,
			item.Zone,
			item.Category,
			item.Price.String(),
			item.LastUpdated.UTC().Format(time.RFC3339),
			string(item.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write item row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMovementsCSV streams the movement ledger as CSV, newest-first.
func WriteMovementsCSV(w io.Writer, movements []inventory.Movement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(movementHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, mv := range movements {
		row := []string{
			mv.ID.String(),
			mv.ItemID.String(),
			mv.ItemName,
			mv.SKU,
			string(mv.Type),
			fmt.Sprintf("%d", mv.Quantity),
			mv.Location,
			mv.Timestamp.UTC().Format(time.RFC3339),
			mv.Notes,
			mv.Operator,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write movement row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
