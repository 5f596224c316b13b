package exporter

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private Prometheus registry and the per-generation gauges/counters the
// scheduler CLI publishes, grounded in noah-isme's MetricsService (a dedicated registry rather
// than the global default, so tests and repeated runs never collide on collector names).
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	generation  prometheus.Gauge
	bestHard    prometheus.Gauge
	bestSoft    prometheus.Gauge
	diversity   prometheus.Gauge
	repairFixes prometheus.Counter
}

// NewMetrics registers the scheduler's collectors against a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	generation := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "uctp_scheduler_generation",
		Help: "Index of the most recently completed generation.",
	})
	bestHard := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "uctp_scheduler_best_hard_violations",
		Help: "Hard constraint violation count of the current best individual.",
	})
	bestSoft := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "uctp_scheduler_best_soft_penalty",
		Help: "Soft constraint penalty of the current best individual.",
	})
	diversity := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "uctp_scheduler_population_diversity",
		Help: "Mean pairwise gene-assignment distance across the population.",
	})
	repairFixes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "uctp_scheduler_repair_fixes_total",
		Help: "Cumulative number of fixes applied by the repair pipeline.",
	})

	registry.MustRegister(generation, bestHard, bestSoft, diversity, repairFixes)

	return &Metrics{
		registry:    registry,
		handler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		generation:  generation,
		bestHard:    bestHard,
		bestSoft:    bestSoft,
		diversity:   diversity,
		repairFixes: repairFixes,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Observe records one generation's summary.
func (m *Metrics) Observe(generation, bestHard int, bestSoft, diversity float64, repairFixes int) {
	if m == nil {
		return
	}
	m.generation.Set(float64(generation))
	m.bestHard.Set(float64(bestHard))
	m.bestSoft.Set(bestSoft)
	m.diversity.Set(diversity)
	m.repairFixes.Add(float64(repairFixes))
}
