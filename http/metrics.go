package http

import (
	"net/http"

	"github.com/fwojciec/smartscrape/form"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors. The sessions gauge reads store.Len.
func NewMetrics(store *form.Store) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smartscrape_submissions_total",
			Help: "Form submissions by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "smartscrape_extraction_duration_seconds",
			Help:    "Duration of extraction calls that reached the service.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		}),
	}
	m.registry.MustRegister(
		m.submissions,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if store != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "smartscrape_sessions",
			Help: "Live form sessions.",
		}, func() float64 { return float64(store.Len()) }))
	}
	return m
}

// Observe records one submission outcome.
func (m *Metrics) Observe(out *form.Outcome) {
	m.submissions.WithLabelValues(string(out.State)).Inc()
	if out.State == form.StateSucceeded || out.State == form.StateFailed {
		m.duration.Observe(out.Duration.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
