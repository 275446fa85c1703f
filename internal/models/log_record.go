package models

import "time"

// displayTimeLayout renders timestamps the way classic access-log tooling
// expects them: 22/Jun/1995:12:01:44, 24-hour clock, UTC.
const displayTimeLayout = "02/Jan/2006:15:04:05"

// LogRecord is one normalized access-log line after field derivation.
//
// Host, Request, Status and Bytes are always populated: coercion defaults
// (0 for Status, 0 for Bytes) are applied during derivation, never nil.
// ParsedTime is nil when the raw epoch field failed to parse; such records
// stay in the table but are excluded from time-bucketed aggregates.
type LogRecord struct {
	Host       string
	Request    string
	Status     int
	Bytes      float64
	ParsedTime *time.Time
}

// DisplayTime renders ParsedTime in the fixed access-log layout (UTC).
// Returns the empty string when the record has no valid timestamp.
func (r *LogRecord) DisplayTime() string {
	if r.ParsedTime == nil {
		return ""
	}
	return r.ParsedTime.UTC().Format(displayTimeLayout)
}
