package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics — Prometheus метрики пайплайна сборки.
type Metrics struct {
	// BuildsTotal — количество выполненных сборок.
	BuildsTotal prometheus.Counter

	// BuildFailures — количество неудачных сборок.
	BuildFailures prometheus.Counter

	// CacheHits — внешние зависимости, найденные в кэше.
	CacheHits prometheus.Counter

	// CacheMisses — внешние зависимости, отсутствующие в кэше.
	CacheMisses prometheus.Counter

	// BuildDuration — длительность одной сборки в секундах.
	BuildDuration prometheus.Histogram
}

// NewMetrics регистрирует метрики в reg и возвращает их.
// Для тестов удобно передавать prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BuildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fabrica_builds_total",
			Help: "Number of spec builds executed.",
		}),
		BuildFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fabrica_build_failures_total",
			Help: "Number of spec builds that failed.",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "fabrica_cache_hits_total",
			Help: "External dependency lookups satisfied by the artifact cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "fabrica_cache_misses_total",
			Help: "External dependency lookups missing from the artifact cache.",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fabrica_build_duration_seconds",
			Help:    "Duration of a single spec build.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
