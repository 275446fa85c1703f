package aggregators

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"log-intel/internal/models"
	"log-intel/internal/shared/loggers"
	"log-intel/internal/stores"
)

const topK = 5

// maxGapFilledBuckets bounds the zero-filled requests_over_time series.
const maxGapFilledBuckets = 100_000

// errorStatusMin and errorStatusMax bound the half-open [400, 600) range
// counted as errors.
const (
	errorStatusMin = 400
	errorStatusMax = 600
)

// StatsService computes aggregate snapshots over the current log table.
//
// Stats never fails: an empty table yields the all-zero snapshot. Results
// are cached per table version, so repeated reads between ingestions are
// O(1); the stats-refresh consumer warms the cache right after each
// table replacement.
//
//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	Stats(ctx context.Context) *models.StatsResult
}

type statsService struct {
	tableStore stores.LogTableStore
	windowSize models.WindowSize

	snapshot atomic.Pointer[models.StatsResult]
}

func NewStatsService(tableStore stores.LogTableStore, windowSize models.WindowSize) StatsService {
	return &statsService{
		tableStore: tableStore,
		windowSize: windowSize,
	}
}

func (s *statsService) Stats(ctx context.Context) *models.StatsResult {
	table := s.tableStore.Current()

	if cached := s.snapshot.Load(); cached != nil && cached.TableVersion == table.Version {
		return cached
	}

	start := time.Now()
	result := s.compute(table)
	s.snapshot.Store(result)

	metricSnapshotComputedTotal.WithLabelValues().Inc()
	metricSnapshotComputeDuration.WithLabelValues().Observe(time.Since(start).Seconds())

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldTableVersion, table.Version).
		Msgf("aggregate snapshot computed over %d records", table.Len())

	return result
}

func (s *statsService) compute(table *models.LogTable) *models.StatsResult {
	if table.Len() == 0 {
		return models.NewEmptyStatsResult(table.Version)
	}

	hostCounter := newOrderedCounter()
	endpointCounter := newOrderedCounter()
	errorCount := int64(0)

	for _, record := range table.Records {
		hostCounter.Add(record.Host)
		endpointCounter.Add(endpointKey(record.Request))

		if record.Status >= errorStatusMin && record.Status < errorStatusMax {
			errorCount++
		}
	}

	total := int64(table.Len())

	return &models.StatsResult{
		TableVersion:     table.Version,
		Total:            total,
		UniqueIPs:        int64(hostCounter.Distinct()),
		ErrorRatePct:     roundHalfUp(100*float64(errorCount)/float64(total), 2),
		Top5IPs:          hostCounter.Top(topK),
		Top5Endpoints:    endpointCounter.Top(topK),
		RequestsOverTime: s.bucketize(table.Records),
	}
}

// endpointKey extracts the second whitespace-delimited token of a request
// ("METHOD URL" -> URL). A request without a second token is ranked by its
// full string instead.
func endpointKey(request string) string {
	tokens := strings.Fields(request)
	if len(tokens) >= 2 {
		return tokens[1]
	}
	return request
}

// bucketize groups records with a valid ParsedTime into contiguous
// windows spanning the earliest to the latest timestamp, one entry per
// window in chronological order. Records without a valid time are
// excluded here only.
func (s *statsService) bucketize(records []*models.LogRecord) []models.TimeBucket {
	countsByStart := make(map[time.Time]int64)
	var earliest, latest time.Time
	seen := false

	for _, record := range records {
		if record.ParsedTime == nil {
			continue
		}
		bucketStart := s.windowSize.Truncate(*record.ParsedTime)
		countsByStart[bucketStart]++

		if !seen {
			earliest, latest = bucketStart, bucketStart
			seen = true
			continue
		}
		if bucketStart.Before(earliest) {
			earliest = bucketStart
		}
		if bucketStart.After(latest) {
			latest = bucketStart
		}
	}

	if !seen {
		return []models.TimeBucket{}
	}

	step := s.windowSize.Duration()
	span := latest.Sub(earliest)/step + 1

	// A pathological timestamp spread must not balloon the response; past
	// the cap only populated buckets are returned, still chronological.
	if span > maxGapFilledBuckets {
		starts := make([]time.Time, 0, len(countsByStart))
		for start := range countsByStart {
			starts = append(starts, start)
		}
		sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

		buckets := make([]models.TimeBucket, 0, len(starts))
		for _, start := range starts {
			buckets = append(buckets, models.TimeBucket{
				BucketStart: start,
				Count:       countsByStart[start],
			})
		}
		return buckets
	}

	buckets := make([]models.TimeBucket, 0, span)
	for start := earliest; !start.After(latest); start = start.Add(step) {
		buckets = append(buckets, models.TimeBucket{
			BucketStart: start,
			Count:       countsByStart[start],
		})
	}
	return buckets
}

// roundHalfUp rounds to the given number of decimals, halves away from
// zero (2.345 -> 2.35 at 2 decimals).
func roundHalfUp(value float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(value*shift) / shift
}

// orderedCounter counts string keys while remembering each key's first
// occurrence, the tie-break for top-K rankings.
type orderedCounter struct {
	counts    map[string]int64
	firstSeen map[string]int
	next      int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{
		counts:    make(map[string]int64),
		firstSeen: make(map[string]int),
	}
}

func (c *orderedCounter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.firstSeen[key] = c.next
		c.next++
	}
	c.counts[key]++
}

func (c *orderedCounter) Distinct() int {
	return len(c.counts)
}

// Top returns up to k entries, non-increasing by count, ties broken by
// first occurrence.
func (c *orderedCounter) Top(k int) []models.KeyCount {
	keys := make([]string, 0, len(c.counts))
	for key := range c.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c.counts[keys[i]] != c.counts[keys[j]] {
			return c.counts[keys[i]] > c.counts[keys[j]]
		}
		return c.firstSeen[keys[i]] < c.firstSeen[keys[j]]
	})

	if len(keys) > k {
		keys = keys[:k]
	}

	top := make([]models.KeyCount, 0, len(keys))
	for _, key := range keys {
		top = append(top, models.KeyCount{Key: key, Count: c.counts[key]})
	}
	return top
}
