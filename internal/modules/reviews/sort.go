package reviews

import (
	"sort"
	"strings"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Sort returns a new slice ordered by the given spec. The sort is stable and
// never mutates its input. Name keys compare case-insensitively; a missing
// name is treated as an empty string and therefore sorts first ascending.
func Sort(records []domain.Review, spec domain.SortSpec) []domain.Review {
	spec = spec.Normalize()

	out := make([]domain.Review, len(records))
	copy(out, records)

	less := lessFunc(spec.Key)
	if spec.Descending() {
		inner := less
		less = func(a, b domain.Review) bool { return inner(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out
}

func lessFunc(key domain.SortKey) func(a, b domain.Review) bool {
	switch key {
	case domain.SortByRating:
		return func(a, b domain.Review) bool { return a.Rating < b.Rating }
	case domain.SortByProduct:
		return func(a, b domain.Review) bool { return foldCompare(a.Product, b.Product) }
	case domain.SortByUser:
		return func(a, b domain.Review) bool { return foldCompare(a.User, b.User) }
	default:
		return func(a, b domain.Review) bool { return a.Date.Before(b.Date) }
	}
}

func foldCompare(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
