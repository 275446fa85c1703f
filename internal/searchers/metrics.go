package searchers

import (
	"log-intel/internal/shared/metrics"
)

var (
	metricSearchesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSearch,
			Name:      "searches_total",
		},
		[]string{},
	)
)
