package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartinventory/internal/domain/inventory"
)

func TestLoadInventoryLandsOnDemoQuantities(t *testing.T) {
	engine := inventory.NewService()
	require.NoError(t, LoadInventory(context.Background(), engine))

	items := engine.Items()
	require.Len(t, items, 5)

	bySKU := make(map[string]inventory.Item)
	for _, item := range items {
		bySKU[item.SKU] = item
	}

	tests := []struct {
		sku      string
		quantity int
		status   inventory.Status
	}{
		{"ISB-001", 150, inventory.StatusInStock},
		{"LED-002", 25, inventory.StatusLowStock},
		{"HPA-003", 0, inventory.StatusOutOfStock},
		{"SH-004", 200, inventory.StatusInStock},
		{"PBB-005", 75, inventory.StatusLowStock},
	}
	for _, tt := range tests {
		item, ok := bySKU[tt.sku]
		require.True(t, ok, "missing seeded item %s", tt.sku)
		assert.Equal(t, tt.quantity, item.Quantity, "quantity of %s", tt.sku)
		assert.Equal(t, tt.status, item.Status, "status of %s", tt.sku)
	}

	movements := engine.Movements()
	require.Len(t, movements, 4)
	// Newest-first: the ISB restock was recorded last.
	assert.Equal(t, "ISB-001", movements[0].SKU)
	assert.Equal(t, inventory.MovementInbound, movements[0].Type)
	assert.Equal(t, "HPA-003", movements[3].SKU)
}
