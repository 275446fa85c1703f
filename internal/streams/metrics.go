package streams

import (
	"log-intel/internal/shared/metrics"
)

var (
	streamTableReplaced              = "table_replaced"
	metricTableReplacedProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "table_replaced_published_total",
		},
		[]string{"stream_id"},
	)

	metricTableReplacedConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "table_replaced_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
