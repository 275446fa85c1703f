package http

import (
	"net/http"
	"time"

	"log-intel/internal/aggregators"
)

// StatsResponse mirrors the aggregate snapshot with the wire field names
// the dashboard consumes.
type StatsResponse struct {
	Total            int64             `json:"total"`
	UniqueIPs        int64             `json:"unique_ips"`
	ErrorRatePct     float64           `json:"error_rate_pct"`
	Top5IPs          []IPCountEntry    `json:"top_5_ips"`
	Top5Endpoints    []EndpointCount   `json:"top_5_endpoints"`
	RequestsOverTime []TimeBucketEntry `json:"requests_over_time"`
}

type IPCountEntry struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

type EndpointCount struct {
	Endpoint string `json:"endpoint"`
	Count    int64  `json:"count"`
}

type TimeBucketEntry struct {
	Time  string `json:"time"`
	Count int64  `json:"count"`
}

type statsHandler struct {
	statsService aggregators.StatsService
}

func NewStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &statsHandler{statsService: statsService}
}

// Handle processes GET /stats requests. Always succeeds; an empty table
// yields all-zero defaults.
func (h *statsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot := h.statsService.Stats(r.Context())

	response := StatsResponse{
		Total:            snapshot.Total,
		UniqueIPs:        snapshot.UniqueIPs,
		ErrorRatePct:     snapshot.ErrorRatePct,
		Top5IPs:          make([]IPCountEntry, 0, len(snapshot.Top5IPs)),
		Top5Endpoints:    make([]EndpointCount, 0, len(snapshot.Top5Endpoints)),
		RequestsOverTime: make([]TimeBucketEntry, 0, len(snapshot.RequestsOverTime)),
	}

	for _, entry := range snapshot.Top5IPs {
		response.Top5IPs = append(response.Top5IPs, IPCountEntry{IP: entry.Key, Count: entry.Count})
	}
	for _, entry := range snapshot.Top5Endpoints {
		response.Top5Endpoints = append(response.Top5Endpoints, EndpointCount{Endpoint: entry.Key, Count: entry.Count})
	}
	for _, bucket := range snapshot.RequestsOverTime {
		response.RequestsOverTime = append(response.RequestsOverTime, TimeBucketEntry{
			Time:  bucket.BucketStart.UTC().Format(time.RFC3339),
			Count: bucket.Count,
		})
	}

	return writeJSONResponse(w, http.StatusOK, response)
}
