package analyzers

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"log-intel/internal/models"
)

// suspiciousKeywords flag requests worth a security review. Matching is
// case-insensitive substring over the request field.
var suspiciousKeywords = []string{"admin", "login", "union", "select", "etc/passwd"}

// SuspiciousSampler selects records that look suspicious and renders them
// as prompt-ready log lines.
//
// A record is suspicious when its status is >= 400 or its request
// contains any keyword. If no record matches, the filter falls back to
// status >= 400 alone. Sampling is deterministic for a given table and
// seed; sampled lines keep table order.
//
//go:generate mockgen -source=sampler.go -destination=./mocks/sampler_mock.go -package=mocks
type SuspiciousSampler interface {
	Sample(table *models.LogTable, maxN int, seed int64) []string
}

type suspiciousSampler struct{}

func NewSuspiciousSampler() SuspiciousSampler {
	return &suspiciousSampler{}
}

func (s *suspiciousSampler) Sample(table *models.LogTable, maxN int, seed int64) []string {
	matches := filterSuspicious(table.Records)
	if len(matches) == 0 {
		matches = filterErrorStatus(table.Records)
	}
	if len(matches) == 0 || maxN <= 0 {
		return nil
	}

	n := maxN
	if n > len(matches) {
		n = len(matches)
	}

	// Fixed-seed permutation keeps the sample reproducible run to run.
	picked := rand.New(rand.NewSource(seed)).Perm(len(matches))[:n]
	sort.Ints(picked)

	lines := make([]string, 0, n)
	for _, idx := range picked {
		lines = append(lines, formatLogLine(matches[idx]))
	}
	return lines
}

func filterSuspicious(records []*models.LogRecord) []*models.LogRecord {
	var matches []*models.LogRecord
	for _, record := range records {
		if record.Status >= 400 || containsAnyKeyword(record.Request) {
			matches = append(matches, record)
		}
	}
	return matches
}

func filterErrorStatus(records []*models.LogRecord) []*models.LogRecord {
	var matches []*models.LogRecord
	for _, record := range records {
		if record.Status >= 400 {
			matches = append(matches, record)
		}
	}
	return matches
}

func containsAnyKeyword(request string) bool {
	lowered := strings.ToLower(request)
	for _, keyword := range suspiciousKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func formatLogLine(record *models.LogRecord) string {
	return fmt.Sprintf("%s - %s \"%s\" %d", record.Host, record.DisplayTime(), record.Request, record.Status)
}
