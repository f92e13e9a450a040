package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theirongolddev/bizlens/internal/query"
)

type metrics struct {
	reg       *prometheus.Registry
	questions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		reg: reg,
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizlens_questions_total",
			Help: "Questions answered, by classified intent.",
		}, []string{"intent"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizlens_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
	reg.MustRegister(m.questions, m.duration)

	// Expose every intent from the start so dashboards see zeros.
	for _, in := range query.Intents() {
		m.questions.WithLabelValues(string(in))
	}
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
