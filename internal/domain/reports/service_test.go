package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/inventory"
)

func seedEngine(t *testing.T) (*inventory.Service, inventory.Item) {
	t.Helper()
	engine := inventory.NewService()
	ctx := context.Background()

	first, err := engine.AddItem(ctx, inventory.NewItemInput{
		Name:        "Industrial Steel Brackets",
		SKU:         "ISB-001",
		Quantity:    150,
		MinQuantity: 50,
		Category:    "Hardware",
		Price:       types.MustMoney("25.99"),
	})
	require.NoError(t, err)

	_, err = engine.AddItem(ctx, inventory.NewItemInput{
		Name:        "Premium LED Light Strips",
		SKU:         "LED-002",
		Quantity:    25,
		MinQuantity: 30,
		Category:    "Electronics",
		Price:       types.MustMoney("89.50"),
	})
	require.NoError(t, err)

	_, err = engine.AddItem(ctx, inventory.NewItemInput{
		Name:        "Hydraulic Pump Assembly",
		SKU:         "HPA-003",
		Quantity:    0,
		MinQuantity: 5,
		Category:    "Machinery",
		Price:       types.MustMoney("450.00"),
	})
	require.NoError(t, err)

	return engine, first
}

func TestComputeKPI(t *testing.T) {
	engine, first := seedEngine(t)
	ctx := context.Background()

	_, err := engine.RecordMovement(ctx, inventory.NewMovementInput{
		ItemID:   first.ID,
		Type:     inventory.MovementInbound,
		Quantity: 50,
	})
	require.NoError(t, err)

	items, movements, _ := engine.Snapshot()
	kpi := ComputeKPI(items, movements)

	assert.Equal(t, 3, kpi.TotalItems)
	assert.Equal(t, 2, kpi.LowStockAlerts, "low-stock and out-of-stock both alert")
	assert.Equal(t, 1, kpi.TotalMovements)

	// 200*25.99 + 25*89.50 + 0*450.00
	want := types.MustMoney("7435.50")
	assert.True(t, kpi.StockValue.Equal(want),
		"stock value = %s, want %s", kpi.StockValue, want)
}

func TestStockByCategorySumsPerCategory(t *testing.T) {
	items := []inventory.Item{
		{Category: "A", Quantity: 5},
		{Category: "A", Quantity: 3},
		{Category: "B", Quantity: 2},
	}

	series := ComputeChartSeries(items, nil)
	require.Len(t, series.StockByCategory, 2)

	byName := make(map[string]int)
	for _, entry := range series.StockByCategory {
		byName[entry.Name] = entry.Quantity
	}
	assert.Equal(t, 8, byName["A"])
	assert.Equal(t, 2, byName["B"])
}

func TestStockByCategoryIsCaseSensitive(t *testing.T) {
	items := []inventory.Item{
		{Category: "hardware", Quantity: 1},
		{Category: "Hardware", Quantity: 2},
	}

	series := ComputeChartSeries(items, nil)
	assert.Len(t, series.StockByCategory, 2)
}

func TestMovementTrendSlots(t *testing.T) {
	engine, item := seedEngine(t)
	ctx := context.Background()

	// Ten movements; only the seven most recent make the trend.
	for i := 1; i <= 10; i++ {
		typ := inventory.MovementInbound
		if i%2 == 0 {
			typ = inventory.MovementOutbound
		}
		_, err := engine.RecordMovement(ctx, inventory.NewMovementInput{
			ItemID:   item.ID,
			Type:     typ,
			Quantity: i,
		})
		require.NoError(t, err)
	}

	_, movements, _ := engine.Snapshot()
	series := ComputeChartSeries(nil, movements)
	require.Len(t, series.MovementTrend, 7)

	// Chronological order: movements 4..10, oldest first.
	first := series.MovementTrend[0]
	assert.Equal(t, "Day 1", first.Day)
	assert.Equal(t, 0, first.Inbound)
	assert.Equal(t, 4, first.Outbound)

	last := series.MovementTrend[6]
	assert.Equal(t, "Day 7", last.Day)
	assert.Equal(t, 0, last.Inbound)
	assert.Equal(t, 10, last.Outbound)

	// Exactly one side of every slot is populated.
	for _, point := range series.MovementTrend {
		assert.True(t, (point.Inbound == 0) != (point.Outbound == 0),
			"slot %s must carry exactly one direction", point.Day)
	}
}

func TestMovementTrendShortLedger(t *testing.T) {
	movements := []inventory.Movement{
		{Type: inventory.MovementOutbound, Quantity: 9}, // newest
		{Type: inventory.MovementInbound, Quantity: 4},  // oldest
	}

	series := ComputeChartSeries(nil, movements)
	require.Len(t, series.MovementTrend, 2)
	assert.Equal(t, 4, series.MovementTrend[0].Inbound)
	assert.Equal(t, 9, series.MovementTrend[1].Outbound)
}

func TestServiceMemoizesOnVersion(t *testing.T) {
	engine, item := seedEngine(t)
	svc := NewService(engine)
	ctx := context.Background()

	before := svc.KPI()
	assert.Equal(t, 3, before.TotalItems)

	// Unchanged engine: identical result.
	assert.Equal(t, before, svc.KPI())

	_, err := engine.RecordMovement(ctx, inventory.NewMovementInput{
		ItemID:   item.ID,
		Type:     inventory.MovementOutbound,
		Quantity: 150,
	})
	require.NoError(t, err)

	after := svc.KPI()
	assert.Equal(t, 1, after.TotalMovements)
	assert.Equal(t, 3, after.LowStockAlerts, "drained item now alerts")

	charts := svc.Charts()
	require.Len(t, charts.MovementTrend, 1)
	assert.Equal(t, 150, charts.MovementTrend[0].Outbound)
}
