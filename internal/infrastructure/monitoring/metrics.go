package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentDuration *prometheus.HistogramVec
	EnumFallbacksTotal *prometheus.CounterVec
	ReportCacheHits    prometheus.Counter
	ReportCacheMisses  prometheus.Counter

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// NewMetrics registers all collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AssessmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "veilscan_assessments_total",
				Help: "Total number of risk assessments performed",
			},
			[]string{"risk_level", "result"},
		),
		AssessmentDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "veilscan_assessment_duration_seconds",
				Help:    "Time spent computing a risk assessment",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		EnumFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "veilscan_enum_fallbacks_total",
				Help: "Unrecognized enum values normalized to a fallback",
			},
			[]string{"field"},
		),
		ReportCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "veilscan_report_cache_hits_total",
				Help: "Report lookups served from the cache",
			},
		),
		ReportCacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "veilscan_report_cache_misses_total",
				Help: "Report lookups that found no cached report",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "veilscan_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "veilscan_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "veilscan_http_requests_in_flight",
				Help: "HTTP requests currently being served",
			},
		),
	}
}

// RecordAssessment records the outcome and latency of one assessment.
func (m *Metrics) RecordAssessment(riskLevel, result string, duration time.Duration) {
	m.AssessmentsTotal.WithLabelValues(riskLevel, result).Inc()
	m.AssessmentDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordEnumFallback counts one unrecognized enum value on the named field.
func (m *Metrics) RecordEnumFallback(field string) {
	m.EnumFallbacksTotal.WithLabelValues(field).Inc()
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
