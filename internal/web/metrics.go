package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors. Each server has its own registry
// so tests can build servers side by side.
type metrics struct {
	registry *prometheus.Registry
	searches prometheus.Counter
	results  prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "propertyhub_searches_total",
			Help: "Number of listing searches served.",
		}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "propertyhub_search_results",
			Help:    "Number of listings returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}
	m.registry.MustRegister(
		m.searches,
		m.results,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeSearch(n int) {
	m.searches.Inc()
	m.results.Observe(float64(n))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
