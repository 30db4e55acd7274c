package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujay00/alpha-admin/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "o-1", Date: day(2024, time.January, 1), Amount: 100, Status: domain.StatusDelivered},
		{ID: "o-2", Date: day(2024, time.January, 3), Amount: 50, Status: domain.StatusPacking},
		{ID: "o-3", Date: day(2024, time.January, 5), Amount: 75, Status: domain.StatusDelivered},
		{ID: "o-4", Date: day(2024, time.February, 1), Amount: 20, Status: domain.StatusShipped},
	}
}

func ids(records []domain.Order) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(sampleOrders(), domain.FilterCriteria{Status: string(domain.StatusDelivered)})
	assert.Equal(t, []string{"o-1", "o-3"}, ids(got))
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	r := domain.DateRange{Start: day(2024, time.January, 1), End: day(2024, time.January, 3)}
	got := Filter(sampleOrders(), domain.FilterCriteria{DateRange: &r})
	assert.Equal(t, []string{"o-1", "o-2"}, ids(got))
}

func TestFilterDateBoundaryMillisecond(t *testing.T) {
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{Start: day(2024, time.January, 1), End: end}

	onBoundary := domain.Order{ID: "edge", Date: time.Date(2024, time.January, 31, 23, 59, 59, 999*int(time.Millisecond), time.UTC)}
	pastBoundary := domain.Order{ID: "late", Date: onBoundary.Date.Add(time.Millisecond)}

	got := Filter([]domain.Order{onBoundary, pastBoundary}, domain.FilterCriteria{DateRange: &r})
	assert.Equal(t, []string{"edge"}, ids(got))
}

func TestFilterHalfSpecifiedRangeIsIgnored(t *testing.T) {
	r := domain.DateRange{Start: day(2024, time.January, 2)} // no end bound
	got := Filter(sampleOrders(), domain.FilterCriteria{DateRange: &r})
	assert.Len(t, got, 4, "a single bound must not activate the date axis")
}

func TestFilterConjunctionComposes(t *testing.T) {
	// Applying both axes at once must equal applying them one at a time.
	r := domain.DateRange{Start: day(2024, time.January, 1), End: day(2024, time.January, 31)}
	criteria := domain.FilterCriteria{DateRange: &r, Status: string(domain.StatusDelivered)}

	combined := Filter(sampleOrders(), criteria)
	sequential := Filter(
		Filter(sampleOrders(), domain.FilterCriteria{DateRange: &r}),
		domain.FilterCriteria{Status: string(domain.StatusDelivered)},
	)

	assert.Equal(t, ids(sequential), ids(combined))
	assert.Equal(t, []string{"o-1", "o-3"}, ids(combined))
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, domain.FilterCriteria{Status: string(domain.StatusDelivered)})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleOrders()
	_ = Filter(records, domain.FilterCriteria{Status: string(domain.StatusPacking)})
	assert.Equal(t, []string{"o-1", "o-2", "o-3", "o-4"}, ids(records))
}

func TestFilterIsDeterministic(t *testing.T) {
	criteria := domain.FilterCriteria{Status: string(domain.StatusDelivered)}
	first := Filter(sampleOrders(), criteria)
	second := Filter(sampleOrders(), criteria)
	assert.Equal(t, ids(first), ids(second))
}
