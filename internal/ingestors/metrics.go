package ingestors

import (
	"log-intel/internal/shared/metrics"
)

var (
	metricTableReplacedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "table_replaced_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// Accepted vs skipped lines per ingestion; skipped means wrong column count.
	metricLinesAcceptedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_accepted_total",
		},
		[]string{},
	)

	metricLinesSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_skipped_total",
		},
		[]string{},
	)
)
