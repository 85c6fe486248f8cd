package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartinventory/internal/core/id"
	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/inventory"
)

func TestWriteItemsCSV(t *testing.T) {
	items := []inventory.Item{
		{
			ID:          id.New(),
			Name:        "Industrial Steel Brackets",
			SKU:         "ISB-001",
			Quantity:    150,
			MinQuantity: 50,
			Location:    "A1-B3",
			Zone:        "Zone A",
			Category:    "Hardware",
			Price:       types.MustMoney("25.99"),
			Status:      inventory.StatusInStock,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItemsCSV(&buf, items))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, itemHeader, records[0])
	row := records[1]
	assert.Equal(t, items[0].ID.String(), row[0])
	assert.Equal(t, "ISB-001", row[2])
	assert.Equal(t, "150", row[3])
	assert.Equal(t, "25.99", row[8])
	assert.Equal(t, "in-stock", row[10])
}

func TestWriteMovementsCSVHandlesCommasInNotes(t *testing.T) {
	movements := []inventory.Movement{
		{
			ID:       id.New(),
			ItemID:   id.New(),
			ItemName: "Safety Helmets - White",
			SKU:      "SH-004",
			Type:     inventory.MovementInbound,
			Quantity: 100,
			Notes:    "restock, priority",
			Operator: "David Wilson",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMovementsCSV(&buf, movements))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "restock, priority", records[1][8])
	assert.Equal(t, "inbound", records[1][4])
}
