package orders

import (
	"sort"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Sort returns a new slice ordered by the given spec. The sort is stable, so
// records with equal keys keep their relative order; the input is never
// mutated. Orders sort by date; any other key falls back to date so a stale
// client request cannot produce an unsorted view.
func Sort(records []domain.Order, spec domain.SortSpec) []domain.Order {
	spec = spec.Normalize()

	out := make([]domain.Order, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		less := out[i].Date.Before(out[j].Date)
		if spec.Descending() {
			return out[j].Date.Before(out[i].Date)
		}
		return less
	})

	return out
}
