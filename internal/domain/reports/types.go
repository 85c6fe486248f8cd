// Package reports derives KPI snapshots and chart series from the
// inventory engine's current state.
package reports

import (
	"smartinventory/internal/core/types"
)

// KPISnapshot holds the dashboard summary statistics. It is always
// recomputed from the source collections, never persisted independently.
type KPISnapshot struct {
	// TotalItems is the count of items in the store.
	TotalItems int `json:"totalItems"`

	// LowStockAlerts counts items whose status is low-stock or out-of-stock.
	LowStockAlerts int `json:"lowStockAlerts"`

	// StockValue is the sum of quantity x price over all items.
	// Full precision; rounding is left to the presentation layer.
	StockValue types.Money `json:"stockValue"`

	// TotalMovements is the count of ledger entries.
	TotalMovements int `json:"totalMovements"`
}

// CategoryStock is one stock-by-category chart entry: the summed quantity
// of all items sharing one category value (case-sensitive exact match).
type CategoryStock struct {
	Name     string `json:"name"`
	Quantity int    `json:"value"`
}

// TrendPoint is one movement-trend chart slot, carrying the inbound and
// outbound magnitude of a single movement. Exactly one of the two fields
// is nonzero.
type TrendPoint struct {
	Day      string `json:"day"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// ChartSeries bundles the chart-ready series for the dashboard.
type ChartSeries struct {
	StockByCategory []CategoryStock `json:"stockByCategory"`
	MovementTrend   []TrendPoint    `json:"movementTrend"`
}
