package streams_test

import (
	"context"
	"testing"
	"time"

	"log-intel/internal/aggregators"
	aggregatormocks "log-intel/internal/aggregators/mocks"
	"log-intel/internal/events"
	"log-intel/internal/models"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/streams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger(t *testing.T) loggers.Logger {
	t.Helper()

	logger, err := loggers.New("error")
	require.NoError(t, err)
	return logger
}

func TestProduce_DeliversEventToConsumer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := aggregatormocks.NewMockStatsService(ctrl)

	warmed := make(chan struct{})
	statsService.EXPECT().
		Stats(gomock.Any()).
		DoAndReturn(func(context.Context) *models.StatsResult {
			close(warmed)
			return models.NewEmptyStatsResult("v1")
		})

	queue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	producer := streams.NewTableReplacedProducer(queue)
	consumer := streams.NewStatsRefreshConsumer(queue, statsService, testLogger(t))

	ctx := context.Background()
	consumer.Start(ctx)
	defer consumer.Stop()

	require.NoError(t, producer.Produce(ctx, "v1", 42))

	select {
	case <-warmed:
	case <-time.After(5 * time.Second):
		t.Fatal("snapshot was never warmed")
	}
}

func TestProduce_CancelledContext(t *testing.T) {
	t.Parallel()

	queue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	producer := streams.NewTableReplacedProducer(queue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Produce(ctx, "v1", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsumer_SameVersionStaysOrdered(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := aggregatormocks.NewMockStatsService(ctrl)

	const eventCount = 20
	done := make(chan struct{})
	calls := 0
	statsService.EXPECT().
		Stats(gomock.Any()).
		DoAndReturn(func(context.Context) *models.StatsResult {
			// Same partition key means one worker, so no lock is needed.
			calls++
			if calls == eventCount {
				close(done)
			}
			return models.NewEmptyStatsResult("v1")
		}).
		Times(eventCount)

	queue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	producer := streams.NewTableReplacedProducer(queue)
	consumer := streams.NewStatsRefreshConsumer(queue, statsService, testLogger(t))

	ctx := context.Background()
	consumer.Start(ctx)
	defer consumer.Stop()

	for i := 0; i < eventCount; i++ {
		require.NoError(t, producer.Produce(ctx, "v1", i))
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not all events were consumed")
	}
}

func TestConsumer_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statsService := aggregatormocks.NewMockStatsService(ctrl)

	survived := make(chan struct{})
	first := statsService.EXPECT().
		Stats(gomock.Any()).
		DoAndReturn(func(context.Context) *models.StatsResult {
			panic("aggregation blew up")
		})
	statsService.EXPECT().
		Stats(gomock.Any()).
		DoAndReturn(func(context.Context) *models.StatsResult {
			close(survived)
			return models.NewEmptyStatsResult("v2")
		}).
		After(first)

	queue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	producer := streams.NewTableReplacedProducer(queue)
	consumer := streams.NewStatsRefreshConsumer(queue, statsService, testLogger(t))

	ctx := context.Background()
	consumer.Start(ctx)
	defer consumer.Stop()

	// Same key keeps both events on the one worker that panicked.
	require.NoError(t, producer.Produce(ctx, "same-key", 1))
	require.NoError(t, producer.Produce(ctx, "same-key", 2))

	select {
	case <-survived:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not survive the panic")
	}
}

func TestConsumer_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	queue := streams.NewPartitionedQueue[events.TableReplacedEvent]()
	var statsService aggregators.StatsService = aggregatormocks.NewMockStatsService(gomock.NewController(t))
	consumer := streams.NewStatsRefreshConsumer(queue, statsService, testLogger(t))

	consumer.Start(context.Background())
	consumer.Stop()
	consumer.Stop()
}
