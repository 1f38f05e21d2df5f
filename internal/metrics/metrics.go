package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds all application metrics
type Metrics struct {
	// Rodadas avaliadas
	RoundsEvaluated int64
	RoundsRejected  int64

	// Estimativas percorridas
	EstimatesScanned int64

	// Rodadas cujo resultado não tem menor estimativa
	RoundsWithoutLowest int64

	// Start time for uptime calculation
	StartTime time.Time
}

// global metrics instance
var globalMetrics *Metrics
var once sync.Once

// Init initializes the global metrics instance
func Init() {
	once.Do(func() {
		globalMetrics = New()
	})
}

// Get returns the global metrics instance
func Get() *Metrics {
	Init()
	return globalMetrics
}

// New creates an isolated metrics instance
func New() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// IncrementRoundEvaluated records one evaluated round
func (m *Metrics) IncrementRoundEvaluated(estimates int, hasLowest bool) {
	atomic.AddInt64(&m.RoundsEvaluated, 1)
	atomic.AddInt64(&m.EstimatesScanned, int64(estimates))

	if !hasLowest {
		atomic.AddInt64(&m.RoundsWithoutLowest, 1)
	}
}

// IncrementRoundRejected records one round rejected before evaluation
func (m *Metrics) IncrementRoundRejected() {
	atomic.AddInt64(&m.RoundsRejected, 1)
}

// GetUptime returns the uptime duration
func (m *Metrics) GetUptime() time.Duration {
	return time.Since(m.StartTime)
}

// MetricsSnapshot represents a point-in-time snapshot of all metrics
type MetricsSnapshot struct {
	Uptime              string `json:"uptime"`
	UptimeSeconds       int64  `json:"uptime_seconds"`
	RoundsEvaluated     int64  `json:"rounds_evaluated"`
	RoundsRejected      int64  `json:"rounds_rejected"`
	EstimatesScanned    int64  `json:"estimates_scanned"`
	RoundsWithoutLowest int64  `json:"rounds_without_lowest"`
}

// Snapshot returns a point-in-time snapshot of all metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	uptime := m.GetUptime()

	return MetricsSnapshot{
		Uptime:              uptime.Round(time.Second).String(),
		UptimeSeconds:       int64(uptime.Seconds()),
		RoundsEvaluated:     atomic.LoadInt64(&m.RoundsEvaluated),
		RoundsRejected:      atomic.LoadInt64(&m.RoundsRejected),
		EstimatesScanned:    atomic.LoadInt64(&m.EstimatesScanned),
		RoundsWithoutLowest: atomic.LoadInt64(&m.RoundsWithoutLowest),
	}
}
