package aggregators

import (
	"log-intel/internal/shared/metrics"
)

var (
	// metricSnapshotComputedTotal counts full aggregate computations.
	// Cache hits (same table version) do not increment it.
	metricSnapshotComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "snapshot_computed_total",
		},
		[]string{},
	)

	metricSnapshotComputeDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "snapshot_compute_latency",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
