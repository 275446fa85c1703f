package analyzers

import (
	"log-intel/internal/shared/metrics"
)

var (
	metricLlmCallsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "llm_calls_total",
		},
		[]string{"model", "outcome"},
	)

	// outcome is "ok" or "degraded"; degraded responses carry the
	// placeholder result instead of a model verdict.
	metricAnalysisTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "analysis_total",
		},
		[]string{"outcome"},
	)
)

const (
	outcomeOk       = "ok"
	outcomeDegraded = "degraded"
)
