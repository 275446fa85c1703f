package searchers

import (
	"context"
	"strconv"
	"strings"

	"log-intel/internal/models"
	"log-intel/internal/stores"
)

// maxResults caps one search response; matches beyond the cap are not
// reported, and Count is the size of the returned window.
const maxResults = 50

// SearchResult is one search response: the capped match count and the
// matching records rendered as string maps (internal timestamp excluded).
type SearchResult struct {
	Count   int
	Results []map[string]string
}

// SearchService filters the current log table by case-insensitive
// substring match over the request field. Table order is preserved;
// search never fails: an empty query or empty table yields zero results.
//
//go:generate mockgen -source=search_service.go -destination=./mocks/search_service_mock.go -package=mocks
type SearchService interface {
	Search(ctx context.Context, query string) *SearchResult
}

type searchService struct {
	tableStore stores.LogTableStore
}

func NewSearchService(tableStore stores.LogTableStore) SearchService {
	return &searchService{tableStore: tableStore}
}

func (s *searchService) Search(ctx context.Context, query string) *SearchResult {
	metricSearchesTotal.WithLabelValues().Inc()

	result := &SearchResult{Results: []map[string]string{}}

	query = strings.TrimSpace(query)
	if query == "" {
		return result
	}

	needle := strings.ToLower(query)
	table := s.tableStore.Current()

	for _, record := range table.Records {
		if !strings.Contains(strings.ToLower(record.Request), needle) {
			continue
		}
		result.Results = append(result.Results, renderRecord(record))
		if len(result.Results) == maxResults {
			break
		}
	}

	result.Count = len(result.Results)
	return result
}

// renderRecord serializes every presentable field as text. ParsedTime is
// internal and stays out; its display rendering is included as "time".
func renderRecord(record *models.LogRecord) map[string]string {
	return map[string]string{
		"host":    record.Host,
		"time":    record.DisplayTime(),
		"request": record.Request,
		"status":  strconv.Itoa(record.Status),
		"bytes":   strconv.FormatFloat(record.Bytes, 'f', -1, 64),
	}
}
