package server

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the server's prometheus collectors. Each server carries its
// own registry so tests can run multiple instances without collisions.
type metrics struct {
	registry  *prometheus.Registry
	renders   *prometheus.CounterVec
	cacheHits prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quadrat_renders_total",
				Help: "Total number of drawings served, by format",
			},
			[]string{"format"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "quadrat_cache_hits_total",
				Help: "Total number of drawings served from cache",
			},
		),
	}
	m.registry.MustRegister(m.renders, m.cacheHits)
	return m
}
