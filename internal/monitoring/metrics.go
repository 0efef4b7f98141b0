package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool dispatch metrics
	ServiceCalls  *prometheus.CounterVec
	ServiceErrors *prometheus.CounterVec

	// Inventory metrics
	CacheRebuilds prometheus.Counter
	SnapshotApps  prometheus.Gauge

	// Launch metrics
	Launches       *prometheus.CounterVec
	LaunchFailures *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates and registers the metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apphub_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apphub_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ServiceCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apphub_service_calls_total",
				Help: "Total number of service tool calls",
			},
			[]string{"tool"},
		),
		ServiceErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apphub_service_errors_total",
				Help: "Total number of failed service tool calls",
			},
			[]string{"tool"},
		),
		CacheRebuilds: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "apphub_inventory_rebuilds_total",
				Help: "Total number of inventory snapshot rebuilds",
			},
		),
		SnapshotApps: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "apphub_inventory_snapshot_apps",
				Help: "Number of reconciled apps in the current snapshot",
			},
		),
		Launches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apphub_launches_total",
				Help: "Total number of successful app launches",
			},
			[]string{"method"},
		),
		LaunchFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apphub_launch_failures_total",
				Help: "Total number of failed launch attempts",
			},
			[]string{"reason"},
		),
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "apphub_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordRebuild observes one completed inventory rebuild.
func (m *Metrics) RecordRebuild(apps int) {
	m.CacheRebuilds.Inc()
	m.SnapshotApps.Set(float64(apps))
}

// RecordLaunch observes one successful launch by method tag.
func (m *Metrics) RecordLaunch(method string) {
	m.Launches.WithLabelValues(method).Inc()
}

// RecordLaunchFailure observes one terminal launch failure by reason.
func (m *Metrics) RecordLaunchFailure(reason string) {
	m.LaunchFailures.WithLabelValues(reason).Inc()
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
