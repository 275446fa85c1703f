package streams

import (
	"context"

	"log-intel/internal/events"
)

// TableReplacedProducer publishes one TableReplacedEvent per successful
// ingestion. The table version is the partition key: replacements are
// rare and strictly ordered per version, so one consumer lane is enough
// to keep snapshot warming sequential.
//
//go:generate mockgen -source=table_replaced_producer.go -destination=./mocks/table_replaced_producer_mock.go -package=mocks
type TableReplacedProducer interface {
	Produce(ctx context.Context, tableVersion string, acceptedCount int) error
}

type tableReplacedProducer struct {
	queue *PartitionedQueue[events.TableReplacedEvent]
}

func NewTableReplacedProducer(queue *PartitionedQueue[events.TableReplacedEvent]) TableReplacedProducer {
	return &tableReplacedProducer{
		queue: queue,
	}
}

func (producer *tableReplacedProducer) Produce(ctx context.Context, tableVersion string, acceptedCount int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	producer.queue.Publish(tableVersion, events.TableReplacedEvent{
		TableVersion:  tableVersion,
		AcceptedCount: acceptedCount,
	})
	metricTableReplacedProducedTotal.WithLabelValues(streamTableReplaced).Inc()
	return nil
}
