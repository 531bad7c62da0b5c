package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are registered on a per-Server registry so several servers
// (tests, mostly) can coexist in one process.
type metrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
}

func newMetrics(reg *prometheus.Registry) *metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Completed searches by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time of a single search.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 16), // 50µs to ~1.6s
		}, []string{"algorithm"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_cells",
			Help:    "Cells expanded per search.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 11), // 1 to ~1M
		}, []string{"algorithm"}),
	}
}

func (m *metrics) observe(algorithm, outcome string, seconds float64, expanded int) {
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	m.duration.WithLabelValues(algorithm).Observe(seconds)
	m.expanded.WithLabelValues(algorithm).Observe(float64(expanded))
}
