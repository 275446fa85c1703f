package ingestors

import (
	"math"
	"strconv"
	"strings"
	"time"

	"log-intel/internal/models"
)

// FieldDeriver maps one accepted raw row to a LogRecord.
//
// Derivation is total: every per-field coercion returns a value or a
// default, never an error, so ingestion cannot fail mid-file on a bad
// field. Status defaults to 0 (float text is truncated), bytes defaults
// to 0, an unparsable epoch yields a nil ParsedTime with the record kept.
//
//go:generate mockgen -source=field_deriver.go -destination=./mocks/field_deriver_mock.go -package=mocks
type FieldDeriver interface {
	Derive(row RawRow) *models.LogRecord
}

type fieldDeriver struct{}

func NewFieldDeriver() FieldDeriver {
	return &fieldDeriver{}
}

func (d *fieldDeriver) Derive(row RawRow) *models.LogRecord {
	return &models.LogRecord{
		Host:       row.Host,
		Request:    row.Method + " " + row.URL,
		Status:     coerceStatus(row.Status),
		Bytes:      coerceBytes(row.Bytes),
		ParsedTime: coerceEpoch(row.TimeEpoch),
	}
}

func coerceStatus(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	// Conversion of NaN, infinities or out-of-range floats to int is
	// unspecified in Go; treat them all as coercion failures.
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int(f)
}

func coerceBytes(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// minEpochSeconds and maxEpochSeconds bound epochs to the
// nanosecond-representable range (~1677 to ~2262); anything outside is a
// coercion failure, not a timestamp centuries away.
const (
	minEpochSeconds = -9223372036
	maxEpochSeconds = 9223372036
)

func coerceEpoch(raw string) *time.Time {
	seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	if seconds < minEpochSeconds || seconds > maxEpochSeconds {
		return nil
	}
	t := time.Unix(seconds, 0).UTC()
	return &t
}
