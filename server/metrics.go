package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ezrec/bfi/engine"
)

// Metrics are the prometheus collectors of one server.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	runSteps     prometheus.Histogram
}

// NewMetrics creates and registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bfi",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bfi",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bfi",
				Subsystem: "engine",
				Name:      "runs_total",
				Help:      "Program runs by end status and cell configuration.",
			},
			[]string{"status", "config"},
		),
		runSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "bfi",
				Subsystem: "engine",
				Name:      "run_steps",
				Help:      "Operators dispatched per program run.",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
			},
		),
	}

	m.Registry.MustRegister(m.httpRequests, m.httpDuration, m.runs, m.runSteps)

	return m
}

// RecordRun counts a finished run.
func (m *Metrics) RecordRun(state engine.State, steps int) {
	m.runs.WithLabelValues(state.Status.String(), state.Config).Inc()
	m.runSteps.Observe(float64(steps))
}

// RecordHTTPRequest counts a served request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	m.httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// Middleware records every request handled by the router.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
