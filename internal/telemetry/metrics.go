// Package telemetry holds the Prometheus collectors exposed on /metrics.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lifeboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lifeboard_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)

	HabitTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_habit_toggles_total",
			Help: "Habit log toggles by resulting state (completed, cleared, error)",
		},
		[]string{"result"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_cache_lookups_total",
			Help: "Habit cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	StreakJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_streak_jobs_total",
			Help: "Streak recalculation jobs by outcome (updated, unchanged, dropped, failed)",
		},
		[]string{"outcome"},
	)

	StreakQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lifeboard_streak_queue_depth",
			Help: "Jobs waiting in the streak worker queue",
		},
	)

	DashboardRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lifeboard_dashboard_refresh_total",
			Help: "Application state refreshes by result (ok, error)",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordToggle(completed bool, err error) {
	switch {
	case err != nil:
		HabitTogglesTotal.WithLabelValues("error").Inc()
	case completed:
		HabitTogglesTotal.WithLabelValues("completed").Inc()
	default:
		HabitTogglesTotal.WithLabelValues("cleared").Inc()
	}
}
