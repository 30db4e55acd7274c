package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/metrics"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
)

// Service projects the order store into the dashboard view. It holds no state
// of its own; every call recomputes from the current snapshot.
type Service struct {
	store   *orders.Store
	log     zerolog.Logger
	nowFunc func() time.Time
}

// NewService creates the dashboard projector over the shared order store.
func NewService(store *orders.Store, log zerolog.Logger) *Service {
	return &Service{
		store:   store,
		log:     log.With().Str("service", "dashboard").Logger(),
		nowFunc: time.Now,
	}
}

// View computes the dashboard for the given range. The status summary always
// runs over the full snapshot; stats and chart series run over the
// date-filtered subset. An inactive custom range means all records pass.
func (s *Service) View(kind domain.RangeKind, custom domain.DateRange) View {
	snapshot := s.store.Snapshot()

	subset := snapshot
	if r, ok := domain.ResolveRange(kind, custom, s.nowFunc()); ok {
		subset = filterByRange(snapshot, r)
	}

	view := View{
		Range:   kind,
		Stats:   computeStats(subset),
		Summary: statusSummary(snapshot),
		Chart:   bucketSeries(subset, kind),
	}

	metrics.RecordRecompute("dashboard")
	return view
}

func filterByRange(records []domain.Order, r domain.DateRange) []domain.Order {
	out := make([]domain.Order, 0, len(records))
	for _, o := range records {
		if r.Contains(o.Date) {
			out = append(out, o)
		}
	}
	return out
}

// computeStats summarizes the date-filtered subset. Empty input yields zeroes,
// never NaN.
func computeStats(records []domain.Order) Stats {
	stats := Stats{TotalOrders: len(records)}

	for _, o := range records {
		stats.TotalIncome += o.Amount
		if o.Status == domain.StatusDelivered {
			stats.DeliveredOrders++
		} else {
			stats.PendingOrders++
		}
	}

	if stats.TotalOrders > 0 {
		avg := stats.TotalIncome / float64(stats.TotalOrders)
		stats.AvgOrderValue = math.Round(avg*100) / 100
	}
	return stats
}

// statusSummary counts every lifecycle status over the full snapshot. The
// result always contains one row per status, zero-count rows included.
func statusSummary(records []domain.Order) []StatusCount {
	counts := make(map[domain.OrderStatus]int, 5)
	for _, o := range records {
		counts[o.Status]++
	}

	total := len(records)
	statuses := domain.OrderStatuses()
	out := make([]StatusCount, 0, len(statuses))
	for _, st := range statuses {
		row := StatusCount{Status: st, Count: counts[st]}
		if total > 0 {
			row.Percentage = math.Round(float64(row.Count) / float64(total) * 100)
		}
		out = append(out, row)
	}
	return out
}

// bucketLabel formats a record date for its bucket, by granularity:
// week buckets by weekday, month by day, year and custom by month.
func bucketLabel(t time.Time, kind domain.RangeKind) string {
	switch kind {
	case domain.RangeWeek:
		return t.Format("Mon")
	case domain.RangeMonth:
		return t.Format("Jan 2")
	}
	return t.Format("Jan 2006")
}

// bucketSeries groups the subset into labeled buckets, accumulating order
// count and summed income per bucket. Buckets appear in chronological
// first-seen order; the two series stay positionally aligned with the labels.
func bucketSeries(records []domain.Order, kind domain.RangeKind) ChartSeries {
	byDate := make([]domain.Order, len(records))
	copy(byDate, records)
	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].Date.Before(byDate[j].Date)
	})

	series := ChartSeries{
		Labels: []string{},
		Counts: []int{},
		Income: []float64{},
	}
	index := make(map[string]int)

	for _, o := range byDate {
		label := bucketLabel(o.Date, kind)
		i, seen := index[label]
		if !seen {
			i = len(series.Labels)
			index[label] = i
			series.Labels = append(series.Labels, label)
			series.Counts = append(series.Counts, 0)
			series.Income = append(series.Income, 0)
		}
		series.Counts[i]++
		series.Income[i] += o.Amount
	}
	return series
}
