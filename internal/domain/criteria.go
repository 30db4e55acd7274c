package domain

// FilterCriteria is the set of optional filter axes applied to a record
// collection. Absent axes impose no constraint; active axes are combined with
// logical AND. The date axis requires both bounds (see DateRange.IsZero).
type FilterCriteria struct {
	DateRange *DateRange `json:"date_range,omitempty"`
	Status    string     `json:"status,omitempty"`
	Search    string     `json:"search,omitempty"`
}

// DateActive reports whether the date axis is active.
func (c FilterCriteria) DateActive() bool {
	return c.DateRange != nil && !c.DateRange.IsZero()
}

// SortDirection flips the comparator sign.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortKey selects the comparison key for the sort engine.
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByRating  SortKey = "rating"
	SortByProduct SortKey = "productName"
	SortByUser    SortKey = "userName"
)

// SortSpec pairs a key with a direction. The zero value sorts by date
// descending, which is what every screen shows on first load.
type SortSpec struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Normalize fills in the defaults for a partially specified spec.
func (s SortSpec) Normalize() SortSpec {
	if s.Key == "" {
		s.Key = SortByDate
	}
	if s.Direction != SortAsc {
		s.Direction = SortDesc
	}
	return s
}

// Descending reports whether the comparator sign should be flipped.
func (s SortSpec) Descending() bool {
	return s.Direction != SortAsc
}
