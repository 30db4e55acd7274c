package domain

import "time"

// DateRange is an inclusive calendar-day range. Normalize floors Start to
// 00:00:00.000 and ceils End to 23:59:59.999 of their respective days, so a
// record dated exactly at the end-of-day instant is still inside the range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Normalize returns the range expanded to full calendar days.
func (r DateRange) Normalize() DateRange {
	return DateRange{
		Start: startOfDay(r.Start),
		End:   endOfDay(r.End),
	}
}

// Contains reports whether t falls inside the normalized range (inclusive on
// both bounds).
func (r DateRange) Contains(t time.Time) bool {
	n := r.Normalize()
	return !t.Before(n.Start) && !t.After(n.End)
}

// IsZero reports whether either bound is unset. A half-specified range never
// activates the date axis.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// RangeKind selects how the dashboard date range is resolved relative to the
// current instant.
type RangeKind string

const (
	RangeWeek   RangeKind = "week"   // last 7 days ending now
	RangeMonth  RangeKind = "month"  // last 30 days ending now
	RangeYear   RangeKind = "year"   // last 365 days ending now
	RangeCustom RangeKind = "custom" // explicit bounds
)

// ResolveRange resolves a relative range kind to a concrete normalized range.
// For RangeCustom the explicit bounds are used; if either custom bound is
// unset the constraint is inactive and ok is false (all records pass).
func ResolveRange(kind RangeKind, custom DateRange, now time.Time) (DateRange, bool) {
	switch kind {
	case RangeWeek:
		return lastNDays(now, 7), true
	case RangeMonth:
		return lastNDays(now, 30), true
	case RangeYear:
		return lastNDays(now, 365), true
	case RangeCustom:
		if custom.IsZero() {
			return DateRange{}, false
		}
		return custom.Normalize(), true
	}
	return DateRange{}, false
}

// QuickPreset is a symbolic relative date range used by the orders screen.
type QuickPreset string

const (
	PresetToday     QuickPreset = "today"
	PresetYesterday QuickPreset = "yesterday"
	PresetLast7     QuickPreset = "last7"
	PresetLast30    QuickPreset = "last30"
	PresetThisMonth QuickPreset = "thisMonth"
)

// ResolvePreset resolves a quick preset to a concrete normalized range,
// computed from now at call time. Unknown presets return ok false.
func ResolvePreset(p QuickPreset, now time.Time) (DateRange, bool) {
	switch p {
	case PresetToday:
		return lastNDays(now, 1), true
	case PresetYesterday:
		y := now.AddDate(0, 0, -1)
		return DateRange{Start: y, End: y}.Normalize(), true
	case PresetLast7:
		return lastNDays(now, 7), true
	case PresetLast30:
		return lastNDays(now, 30), true
	case PresetThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: first, End: now}.Normalize(), true
	}
	return DateRange{}, false
}

// lastNDays covers today plus the n-1 preceding calendar days.
func lastNDays(now time.Time, n int) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -(n - 1)),
		End:   now,
	}.Normalize()
}
