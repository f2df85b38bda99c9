package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codescore_analysis_seconds",
		Help:    "Time spent analyzing a code snippet.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codescore_analyses_total",
		Help: "Total number of complexity analyses performed.",
	}, []string{"language"})

	OverrideAnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codescore_override_analyses_total",
		Help: "Total number of analyses run with custom pattern overrides.",
	})

	ActorAnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "codescore_actor_analyses_total",
		Help: "Total number of actor-model heuristic evaluations.",
	})
)
