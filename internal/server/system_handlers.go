package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/anujay00/alpha-admin/internal/cache"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
	"github.com/anujay00/alpha-admin/internal/modules/reviews"
)

// SystemHandlers handles system monitoring endpoints.
type SystemHandlers struct {
	log           zerolog.Logger
	startupTime   time.Time
	orderService  *orders.Service
	reviewService *reviews.Service
	snapshots     *cache.SnapshotCache // may be nil when caching is disabled
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, orderService *orders.Service, reviewService *reviews.Service, snapshots *cache.SnapshotCache) *SystemHandlers {
	return &SystemHandlers{
		log:           log.With().Str("handler", "system").Logger(),
		startupTime:   time.Now(),
		orderService:  orderService,
		reviewService: reviewService,
		snapshots:     snapshots,
	}
}

type screenHealth struct {
	State string `json:"state"`
	Total int    `json:"total"`
}

type systemHealth struct {
	Status        string            `json:"status"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	CPUPercent    float64           `json:"cpu_percent"`
	RAMPercent    float64           `json:"ram_percent"`
	Screens       map[string]screenHealth `json:"screens"`
	SnapshotAge   map[string]float64      `json:"snapshot_age_seconds,omitempty"`
}

// HandleSystemHealth handles GET /api/system/health
func (h *SystemHandlers) HandleSystemHealth(w http.ResponseWriter, r *http.Request) {
	cpuPct, ramPct := h.getSystemStats()

	orderView := h.orderService.View()
	reviewView := h.reviewService.View()

	health := systemHealth{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startupTime).Seconds()),
		CPUPercent:    cpuPct,
		RAMPercent:    ramPct,
		Screens: map[string]screenHealth{
			"orders":  {State: string(orderView.State), Total: orderView.Total},
			"reviews": {State: string(reviewView.State), Total: reviewView.Total},
		},
	}

	if h.snapshots != nil {
		health.SnapshotAge = make(map[string]float64)
		now := time.Now()
		for _, name := range []string{cache.SnapshotOrders, cache.SnapshotReviews} {
			if age, ok := h.snapshots.Age(name, now); ok {
				health.SnapshotAge[name] = age.Seconds()
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode system health")
	}
}

// getSystemStats calculates CPU and RAM usage percentages. A short sampling
// interval keeps the endpoint responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}
	return cpuAvg, memStat.UsedPercent
}
