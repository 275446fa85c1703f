package analyzers_test

import (
	"fmt"
	"testing"
	"time"

	"log-intel/internal/analyzers"
	"log-intel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(records ...*models.LogRecord) *models.LogTable {
	return &models.LogTable{Version: "v1", Records: records}
}

func record(host, request string, status int) *models.LogRecord {
	return &models.LogRecord{Host: host, Request: request, Status: status}
}

func TestSample_KeywordMatchingIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	table := newTable(
		record("10.0.0.1", "GET /index.html", 200),
		record("10.0.0.2", "GET /ADMIN/panel", 200),
		record("10.0.0.3", "GET /?q=UNION+SELECT+1", 200),
		record("10.0.0.4", "GET /../../etc/passwd", 200),
		record("10.0.0.5", "POST /Login", 200),
	)

	lines := sampler.Sample(table, 15, 42)

	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.NotContains(t, line, "index.html")
	}
}

func TestSample_ErrorStatusIsSuspicious(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	table := newTable(
		record("10.0.0.1", "GET /ok", 200),
		record("10.0.0.2", "GET /broken", 500),
		record("10.0.0.3", "GET /forbidden", 403),
	)

	lines := sampler.Sample(table, 15, 42)

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "/broken")
	assert.Contains(t, lines[1], "/forbidden")
}

func TestSample_NoMatchesReturnsNil(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	table := newTable(
		record("10.0.0.1", "GET /ok", 200),
		record("10.0.0.2", "GET /fine", 304),
	)

	assert.Nil(t, sampler.Sample(table, 15, 42))
	assert.Nil(t, sampler.Sample(models.NewEmptyLogTable(), 15, 42))
}

func TestSample_DeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	records := make([]*models.LogRecord, 0, 40)
	for i := 0; i < 40; i++ {
		records = append(records, record(fmt.Sprintf("10.0.0.%d", i), fmt.Sprintf("GET /err/%d", i), 500))
	}
	table := newTable(records...)

	first := sampler.Sample(table, 15, 42)
	second := sampler.Sample(table, 15, 42)

	require.Len(t, first, 15)
	assert.Equal(t, first, second)
}

func TestSample_KeepsTableOrder(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	records := make([]*models.LogRecord, 0, 40)
	for i := 0; i < 40; i++ {
		records = append(records, record(fmt.Sprintf("host-%02d", i), fmt.Sprintf("GET /err/%02d", i), 500))
	}
	table := newTable(records...)

	lines := sampler.Sample(table, 15, 42)

	require.Len(t, lines, 15)
	// Sampled subset, but in the order the records appear in the table.
	previous := ""
	for _, line := range lines {
		assert.Greater(t, line, previous, "lines must stay in table order")
		previous = line
	}
}

func TestSample_CapsAtMaxN(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	records := make([]*models.LogRecord, 0, 20)
	for i := 0; i < 20; i++ {
		records = append(records, record("10.0.0.1", "GET /err", 500))
	}
	table := newTable(records...)

	assert.Len(t, sampler.Sample(table, 5, 42), 5)
	assert.Len(t, sampler.Sample(table, 100, 42), 20)
	assert.Nil(t, sampler.Sample(table, 0, 42))
}

func TestSample_LineFormat(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	parsed := time.Unix(804571304, 0).UTC()
	table := newTable(&models.LogRecord{
		Host:       "burger.letters.com",
		Request:    "GET /shuttle/countdown/liftoff.html",
		Status:     404,
		ParsedTime: &parsed,
	})

	lines := sampler.Sample(table, 15, 42)

	require.Len(t, lines, 1)
	assert.Equal(t, `burger.letters.com - 01/Jul/1995:04:01:44 "GET /shuttle/countdown/liftoff.html" 404`, lines[0])
}

func TestSample_LineFormatKeepsRequestVerbatim(t *testing.T) {
	t.Parallel()

	sampler := analyzers.NewSuspiciousSampler()
	parsed := time.Unix(804571304, 0).UTC()
	table := newTable(&models.LogRecord{
		Host:       "10.0.0.1",
		Request:    `GET /search?q="union select"\x27`,
		Status:     403,
		ParsedTime: &parsed,
	})

	lines := sampler.Sample(table, 15, 42)

	// Quotes and backslashes inside the request stay as-is; the prompt
	// must see the raw payload, not a Go-escaped rendition of it.
	require.Len(t, lines, 1)
	assert.Equal(t, `10.0.0.1 - 01/Jul/1995:04:01:44 "GET /search?q="union select"\x27" 403`, lines[0])
}
