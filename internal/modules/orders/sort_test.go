package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anujay00/alpha-admin/internal/domain"
)

func TestSortByDateAscending(t *testing.T) {
	records := []domain.Order{
		{ID: "b", Date: day(2024, time.January, 3)},
		{ID: "a", Date: day(2024, time.January, 1)},
		{ID: "c", Date: day(2024, time.January, 5)},
	}

	got := Sort(records, domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortAsc})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestSortReversalProperty(t *testing.T) {
	// With distinct keys, sorting desc then asc must equal sorting asc once.
	records := []domain.Order{
		{ID: "b", Date: day(2024, time.January, 3)},
		{ID: "d", Date: day(2024, time.January, 9)},
		{ID: "a", Date: day(2024, time.January, 1)},
		{ID: "c", Date: day(2024, time.January, 5)},
	}

	asc := domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortAsc}
	desc := domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortDesc}

	direct := Sort(records, asc)
	roundTrip := Sort(Sort(records, desc), asc)
	assert.Equal(t, ids(direct), ids(roundTrip))
}

func TestSortIsStableOnEqualDates(t *testing.T) {
	same := day(2024, time.January, 2)
	records := []domain.Order{
		{ID: "first", Date: same},
		{ID: "second", Date: same},
		{ID: "third", Date: same},
	}

	got := Sort(records, domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortDesc})
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := []domain.Order{
		{ID: "b", Date: day(2024, time.January, 3)},
		{ID: "a", Date: day(2024, time.January, 1)},
	}

	_ = Sort(records, domain.SortSpec{Key: domain.SortByDate, Direction: domain.SortAsc})
	assert.Equal(t, []string{"b", "a"}, ids(records))
}

func TestSortDefaultsToDateDescending(t *testing.T) {
	records := []domain.Order{
		{ID: "old", Date: day(2024, time.January, 1)},
		{ID: "new", Date: day(2024, time.March, 1)},
	}

	got := Sort(records, domain.SortSpec{})
	assert.Equal(t, []string{"new", "old"}, ids(got))
}
