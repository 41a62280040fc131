package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wb-go/wbf/ginext"
)

const namespace = "reminders"

// Send outcomes.
const (
	OutcomeSent       = "sent"
	OutcomeFailed     = "failed"
	OutcomeDeadLetter = "dead_letter"
)

// Metrics holds Prometheus metrics of the dispatcher.
type Metrics struct {
	JobsEnqueued    *prometheus.CounterVec
	Sends           *prometheus.CounterVec
	SendDuration    *prometheus.HistogramVec
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DBConnPoolStats *prometheus.GaugeVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		JobsEnqueued: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_jobs_enqueued_total",
				Help:      "Dispatch jobs published to the queue",
			},
			[]string{"channel", "source"}, // source: scan or requeue
		),
		Sends: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sends_total",
				Help:      "Send attempts by outcome",
			},
			[]string{"channel", "outcome"},
		),
		SendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "send_duration_seconds",
				Help:      "Time spent in channel senders",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"channel"},
		),
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of admin API requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Admin API request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
	}
}

// ObserveSend records one sender call.
func (m *Metrics) ObserveSend(channel, outcome string, took time.Duration) {
	m.Sends.WithLabelValues(channel, outcome).Inc()
	m.SendDuration.WithLabelValues(channel).Observe(took.Seconds())
}

// Middleware records admin API request counts and latencies.
func (m *Metrics) Middleware() func(*ginext.Context) {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RequestCounter.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordDBPoolStats records database connection pool statistics.
func (m *Metrics) RecordDBPoolStats(stats sql.DBStats) {
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
	m.DBConnPoolStats.WithLabelValues("wait_duration_ms").Set(float64(stats.WaitDuration.Milliseconds()))
}
