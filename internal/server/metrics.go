package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer, engine Projector) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rothtrad",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rothtrad",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(
		m.requests,
		m.duration,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "rothtrad",
			Name:      "schedule_cache_hits_total",
			Help:      "Schedules served from the engine cache.",
		}, func() float64 { return float64(engine.CacheStats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "rothtrad",
			Name:      "schedule_cache_misses_total",
			Help:      "Schedules computed because they were not cached.",
		}, func() float64 { return float64(engine.CacheStats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "rothtrad",
			Name:      "schedule_cache_entries",
			Help:      "Schedules currently held in the engine cache.",
		}, func() float64 { return float64(engine.CacheStats().Entries) }),
	)
	return m
}

func (m *metrics) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(route, strconv.Itoa(rw.statusCode)).Inc()
	})
}
