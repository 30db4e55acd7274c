package orders

import "github.com/anujay00/alpha-admin/internal/domain"

// Filter applies the active criteria axes to records and returns the kept
// subset in input order. Axes are independent and combined with logical AND:
//
//   - date: keep iff start <= record.Date <= end on the normalized inclusive
//     range; the axis requires both bounds (a half-specified range is ignored)
//   - status: exact match; empty status imposes no constraint
//
// Filter is pure and total: an empty input yields an empty output, never an
// error, and the input slice is never mutated.
func Filter(records []domain.Order, criteria domain.FilterCriteria) []domain.Order {
	dateActive := criteria.DateActive()
	var dateRange domain.DateRange
	if dateActive {
		dateRange = criteria.DateRange.Normalize()
	}

	out := make([]domain.Order, 0, len(records))
	for _, record := range records {
		if dateActive && !dateRange.Contains(record.Date) {
			continue
		}
		if criteria.Status != "" && string(record.Status) != criteria.Status {
			continue
		}
		out = append(out, record)
	}
	return out
}
