package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"log-intel/internal/aggregators"
	"log-intel/internal/events"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/shared/metrics"
	"log-intel/internal/shared/svcerrors"
	"log-intel/internal/shared/ulid"
)

// StatsRefreshConsumer warms the aggregate snapshot cache after each table
// replacement, so the first stats read following an ingest does not pay
// the full aggregation cost.
//
//go:generate mockgen -source=stats_refresh_consumer.go -destination=./mocks/stats_refresh_consumer_mock.go -package=mocks
type StatsRefreshConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type statsRefreshConsumer struct {
	queue        *PartitionedQueue[events.TableReplacedEvent]
	statsService aggregators.StatsService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewStatsRefreshConsumer(queue *PartitionedQueue[events.TableReplacedEvent], statsService aggregators.StatsService, logger loggers.Logger) StatsRefreshConsumer {
	return &statsRefreshConsumer{
		queue:        queue,
		statsService: statsService,
		stopCh:       make(chan struct{}),
		logger:       logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *statsRefreshConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *statsRefreshConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *statsRefreshConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TableReplacedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handleEvent(ctx, partitionIndex, event)
		}
	}
}

func (consumer *statsRefreshConsumer) handleEvent(ctx context.Context, partitionIndex int, event events.TableReplacedEvent) {
	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricTableReplacedConsumedTotal.WithLabelValues(streamTableReplaced, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldTableVersion, event.TableVersion).
		Logger().WithContext(ctx)

	snapshot := consumer.statsService.Stats(ctx)
	metricTableReplacedConsumedTotal.WithLabelValues(streamTableReplaced, metrics.ValueNoError).Inc()

	loggers.Ctx(ctx).Debug().
		Msgf("stats snapshot warmed for table version %s (total=%d)", snapshot.TableVersion, snapshot.Total)
}
