package models

import "time"

// KeyCount is one entry of a top-K ranking: a key (host or endpoint) and
// how many records carry it.
type KeyCount struct {
	Key   string
	Count int64
}

// TimeBucket is one requests_over_time entry: the bucket's start instant
// (UTC) and the number of records whose ParsedTime falls inside it.
type TimeBucket struct {
	BucketStart time.Time
	Count       int64
}

// StatsResult is a point-in-time aggregate snapshot over one LogTable.
//
// Rankings are non-increasing by count; ties are broken by the key's first
// occurrence in the table. RequestsOverTime covers the contiguous bucket
// range from the earliest to the latest valid ParsedTime, one entry per
// bucket in chronological order. Records without a valid ParsedTime count
// toward Total but not toward RequestsOverTime.
type StatsResult struct {
	// TableVersion is the version of the LogTable this snapshot was
	// computed from.
	TableVersion string

	Total            int64
	UniqueIPs        int64
	ErrorRatePct     float64
	Top5IPs          []KeyCount
	Top5Endpoints    []KeyCount
	RequestsOverTime []TimeBucket
}

// NewEmptyStatsResult returns the degenerate snapshot reported for an
// empty table: zero counts and empty (non-nil) rankings.
func NewEmptyStatsResult(tableVersion string) *StatsResult {
	return &StatsResult{
		TableVersion:     tableVersion,
		Top5IPs:          []KeyCount{},
		Top5Endpoints:    []KeyCount{},
		RequestsOverTime: []TimeBucket{},
	}
}
