package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus instruments for the pre-check service. A nil
// *Metrics is valid and records nothing, which keeps tests free of a
// registry.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsClassified *prometheus.CounterVec
	bundleStatus        *prometheus.CounterVec
	analyzeDuration     prometheus.Histogram
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "precheck",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "precheck",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "precheck",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsClassified := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "precheck",
			Subsystem: "pipeline",
			Name:      "documents_classified_total",
			Help:      "Total classified documents by detected type.",
		},
		[]string{"service", "doc_type"},
	)
	bundleStatus := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "precheck",
			Subsystem: "pipeline",
			Name:      "bundle_status_total",
			Help:      "Total analyzed bundles by overall status.",
		},
		[]string{"service", "status"},
	)
	analyzeDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "precheck",
			Subsystem: "pipeline",
			Name:      "analyze_duration_seconds",
			Help:      "Bundle analysis duration in seconds.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsClassified,
		bundleStatus,
		analyzeDuration,
	)

	return &Metrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		documentsClassified: documentsClassified,
		bundleStatus:        bundleStatus,
		analyzeDuration:     analyzeDuration,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts, durations and in-flight gauge for
// every route.
func (m *Metrics) GinMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		m.requestTotal.WithLabelValues(
			service,
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(service, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) RecordClassification(docType string) {
	if m == nil {
		return
	}
	m.documentsClassified.WithLabelValues("precheck-api", docType).Inc()
}

func (m *Metrics) RecordBundle(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.bundleStatus.WithLabelValues("precheck-api", status).Inc()
	m.analyzeDuration.Observe(duration.Seconds())
}
