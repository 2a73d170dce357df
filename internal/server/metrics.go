package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Translation outcomes used as the "outcome" label.
const (
	OutcomeOK        = "ok"
	OutcomeEcho      = "echo"
	OutcomeEmpty     = "empty"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// Metrics holds the service collectors. Each instance registers on its own
// registry so several servers can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration     *prometheus.HistogramVec
	requestsTotal       *prometheus.CounterVec
	translationsTotal   *prometheus.CounterVec
	translationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		translationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translations_total",
				Help: "Translations by outcome",
			},
			[]string{"outcome"},
		),
		translationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "translation_duration_seconds",
				Help:    "Backend translation duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),
	}
}

// Middleware records duration and count per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// ObserveTranslation records one translate call.
func (m *Metrics) ObserveTranslation(outcome string, d time.Duration) {
	m.translationsTotal.WithLabelValues(outcome).Inc()
	m.translationDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
