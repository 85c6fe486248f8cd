package dto

import (
	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/reports"
)

// KPIResponse represents the dashboard KPI snapshot.
type KPIResponse struct {
	TotalItems     int         `json:"totalItems"`
	LowStockAlerts int         `json:"lowStockAlerts"`
	StockValue     types.Money `json:"stockValue"`
	TotalMovements int         `json:"totalMovements"`
}

// FromKPI converts the derived snapshot to a response DTO.
func FromKPI(kpi reports.KPISnapshot) KPIResponse {
	return KPIResponse{
		TotalItems:     kpi.TotalItems,
		LowStockAlerts: kpi.LowStockAlerts,
		StockValue:     kpi.StockValue,
		TotalMovements: kpi.TotalMovements,
	}
}

// ChartSeriesResponse represents the dashboard chart series.
// The derived types are already presentation-shaped; pass them through.
type ChartSeriesResponse struct {
	StockByCategory []reports.CategoryStock `json:"stockByCategory"`
	MovementTrend   []reports.TrendPoint    `json:"movementTrend"`
}

// FromChartSeries converts the derived series to a response DTO.
func FromChartSeries(series reports.ChartSeries) ChartSeriesResponse {
	return ChartSeriesResponse{
		StockByCategory: series.StockByCategory,
		MovementTrend:   series.MovementTrend,
	}
}
