// Package dashboard aggregates the full order snapshot into the summary
// statistics and time-bucketed chart series shown on the dashboard screen.
package dashboard

import "github.com/anujay00/alpha-admin/internal/domain"

// Stats are the scalar summaries over the date-filtered order subset.
type Stats struct {
	TotalOrders     int     `json:"total_orders"`
	TotalIncome     float64 `json:"total_income"`
	AvgOrderValue   float64 `json:"avg_order_value"` // rounded to 2 decimals, 0 when empty
	PendingOrders   int     `json:"pending_orders"`  // everything not yet Delivered
	DeliveredOrders int     `json:"delivered_orders"`
}

// StatusCount is one row of the status summary, computed over the full
// unfiltered snapshot.
type StatusCount struct {
	Status     domain.OrderStatus `json:"status"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
}

// ChartSeries holds the positionally aligned chart data. Labels are emitted
// in chronological first-seen order; Counts and Income always have the same
// length as Labels.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Counts []int     `json:"counts"`
	Income []float64 `json:"income"`
}

// View is the full dashboard payload.
type View struct {
	Range   domain.RangeKind `json:"range"`
	Stats   Stats            `json:"stats"`
	Summary []StatusCount    `json:"status_summary"`
	Chart   ChartSeries      `json:"chart"`
}
