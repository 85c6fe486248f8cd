package reports

import (
	"fmt"
	"sort"
	"sync"

	"smartinventory/internal/core/types"
	"smartinventory/internal/domain/inventory"
)

// trendSlots bounds the movement trend to the most recent movements.
const trendSlots = 7

// Source is the inventory engine view the aggregation engine reads from.
// Snapshot must return a consistent item/ledger pair plus the version it
// corresponds to.
type Source interface {
	Snapshot() ([]inventory.Item, []inventory.Movement, uint64)
}

// Service computes derived aggregates over the inventory engine.
// Results are memoized on the engine's version counter, so repeated
// dashboard reads between mutations cost one map lookup.
type Service struct {
	source Source

	mu      sync.Mutex
	version uint64
	kpi     KPISnapshot
	charts  ChartSeries
	primed  bool
}

// NewService creates a new aggregation service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// KPI returns the current KPI snapshot.
func (s *Service) KPI() KPISnapshot {
	kpi, _ := s.current()
	return kpi
}

// Charts returns the current chart series.
func (s *Service) Charts() ChartSeries {
	_, charts := s.current()
	return charts
}

// current recomputes the aggregates if the engine has moved past the
// memoized version.
func (s *Service) current() (KPISnapshot, ChartSeries) {
	items, movements, version := s.source.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.primed && version == s.version {
		return s.kpi, s.charts
	}

	s.kpi = ComputeKPI(items, movements)
	s.charts = ComputeChartSeries(items, movements)
	s.version = version
	s.primed = true

	return s.kpi, s.charts
}

// ComputeKPI derives the KPI snapshot from the given collections.
// Pure function, no side effects.
func ComputeKPI(items []inventory.Item, movements []inventory.Movement) KPISnapshot {
	kpi := KPISnapshot{
		TotalItems:     len(items),
		StockValue:     types.Zero(),
		TotalMovements: len(movements),
	}

	for _, item := range items {
		if item.Status == inventory.StatusLowStock || item.Status == inventory.StatusOutOfStock {
			kpi.LowStockAlerts++
		}
		lineValue := item.Price.Mul(types.NewMoneyFromInt(int64(item.Quantity)))
		kpi.StockValue = kpi.StockValue.Add(lineValue)
	}

	return kpi
}

// ComputeChartSeries derives the chart series from the given collections.
// Pure function, no side effects. The movements slice must be in the
// ledger's canonical newest-first order.
func ComputeChartSeries(items []inventory.Item, movements []inventory.Movement) ChartSeries {
	return ChartSeries{
		StockByCategory: stockByCategory(items),
		MovementTrend:   movementTrend(movements),
	}
}

// stockByCategory groups items by category (case-sensitive) and sums
// their quantities. Output is sorted by category name; consumers treat
// the order as insignificant.
func stockByCategory(items []inventory.Item) []CategoryStock {
	totals := make(map[string]int)
	for _, item := range items {
		totals[item.Category] += item.Quantity
	}

	out := make([]CategoryStock, 0, len(totals))
	for name, quantity := range totals {
		out = append(out, CategoryStock{Name: name, Quantity: quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// movementTrend maps the most recent movements to chart slots in
// chronological order. This is a slot-per-movement sequence, not a
// date-bucketed aggregation: two movements on the same day stay in
// separate slots, and days without movements produce no slot.
func movementTrend(movements []inventory.Movement) []TrendPoint {
	n := len(movements)
	if n > trendSlots {
		n = trendSlots
	}

	// movements is newest-first; fill slots back to front so the series
	// reads oldest to newest.
	out := make([]TrendPoint, n)
	for i := 0; i < n; i++ {
		mv := movements[i]
		slot := n - 1 - i
		point := TrendPoint{Day: fmt.Sprintf("Day %d", slot+1)}
		if mv.Type == inventory.MovementInbound {
			point.Inbound = mv.Quantity
		} else {
			point.Outbound = mv.Quantity
		}
		out[slot] = point
	}
	return out
}
