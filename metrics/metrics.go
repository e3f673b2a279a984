package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "remastered"

// Registry свой реестр, чтобы в /metrics было только наше
var Registry = prometheus.NewRegistry()

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"route", "code"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"route"})

	filterResults = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_filter_results",
		Help:      "Number of games left after catalog filtering",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	}, []string{"category"})

	draftsSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_submitted_total",
		Help:      "Game drafts submitted (logged and discarded)",
	}, []string{"template"})

	draftsBlocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_blocked_total",
		Help:      "Create flow transitions rejected by validation",
	}, []string{"step"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestsTotal,
		requestDuration,
		filterResults,
		draftsSubmitted,
		draftsBlocked,
	)
}

// Handler отдаёт метрики в формате prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveRequest учёт запроса, route - шаблон пути, а не сам путь
func ObserveRequest(route string, code int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func ObserveFilterResult(category string, n int) {
	filterResults.WithLabelValues(category).Observe(float64(n))
}

func IncDraftsSubmitted(template string) {
	draftsSubmitted.WithLabelValues(template).Inc()
}

func IncDraftsBlocked(step int) {
	draftsBlocked.WithLabelValues(strconv.Itoa(step)).Inc()
}
