package reviews

import (
	"strings"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Filter applies the active criteria axes to reviews, preserving input order.
// The search axis is a case-insensitive substring match against the user
// name, product name and comment text; a review is kept when any candidate
// matches. Missing sub-fields behave as empty strings: they never match and
// never error. Axes combine with logical AND.
func Filter(records []domain.Review, criteria domain.FilterCriteria) []domain.Review {
	dateActive := criteria.DateActive()
	var dateRange domain.DateRange
	if dateActive {
		dateRange = criteria.DateRange.Normalize()
	}

	needle := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]domain.Review, 0, len(records))
	for _, record := range records {
		if dateActive && !dateRange.Contains(record.Date) {
			continue
		}
		if needle != "" && !matchesSearch(record, needle) {
			continue
		}
		out = append(out, record)
	}
	return out
}

func matchesSearch(r domain.Review, needle string) bool {
	for _, candidate := range []string{r.User, r.Product, r.Comment} {
		if strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}
	return false
}
