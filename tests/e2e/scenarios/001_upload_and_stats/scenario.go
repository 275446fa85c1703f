package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalLines     = 64000 // Total number of TSV log lines to generate
	malformedEvery = 100   // Every Nth line is malformed and must be skipped
)

var (
	hosts = []string{
		"unicomp6.unicomp.net",
		"piweba3y.prodigy.com",
		"burger.letters.com",
		"d104.aa.net",
		"199.120.110.21",
		"205.189.154.54",
		"129.94.144.152",
		"ppptky391.asahi-net.or.jp",
	}
	paths = []string{"/", "/shuttle/countdown/", "/images/NASA-logosmall.gif", "/history/apollo/"}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_upload_and_stats
//
// This scenario tests the end-to-end flow of log upload, table replacement,
// aggregation, search, and LLM analysis. It uploads 64,000 TSV log lines in
// one request, then verifies each read endpoint against the deterministic
// expected values.
//
// What it tests:
//   - Log file upload and ingestion via POST /upload
//   - Malformed line skipping (wrong column count)
//   - Aggregate snapshot via GET /stats (totals, unique IPs, error rate,
//     top-5 rankings, hourly request buckets)
//   - Case-insensitive capped substring search via GET /search
//   - Security analysis via POST /analyze (degraded placeholder accepted
//     when no API key is configured)
//   - Full table replacement: a second upload fully supersedes the first
//
// Expected results:
//   - 64000 lines accepted minus the malformed ones
//   - 8 unique hosts, requests spread over 4 hourly buckets
//   - /search caps results at 50 regardless of total matches
//   - /analyze returns a JSON verdict with patterns_detected, risk_level,
//     and summary (placeholder values when the LLM is unreachable)
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the log intelligence API server
	wantAnalyze := true                // If false, skip the /analyze step (no LLM involved)

	acceptedLines := totalLines - totalLines/malformedEvery

	fmt.Println("Starting e2e scenario: 001_upload_and_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Printf("MALFORMED_EVERY: %d\n", malformedEvery)
	fmt.Printf("EXPECTED_ACCEPTED: %d\n", acceptedLines)
	fmt.Printf("WANT_ANALYZE: %v\n", wantAnalyze)
	fmt.Println()

	fmt.Printf("Generating %d TSV lines...\n", totalLines)
	body := generateTSV(totalLines)
	fmt.Printf("Generated %d bytes\n", len(body))
	fmt.Println()

	client := &http.Client{Timeout: 120 * time.Second}

	// Step 1: upload
	fmt.Println("Uploading log file...")
	upload := uploadLogs(client, baseURL, body)
	if upload.AcceptedCount != acceptedLines {
		fail("expected %d accepted lines, got %d", acceptedLines, upload.AcceptedCount)
	}
	fmt.Printf("Upload accepted %d lines\n", upload.AcceptedCount)
	fmt.Println()

	// Step 2: stats
	fmt.Println("Checking /stats...")
	stats := fetchStats(client, baseURL)
	if stats.Total != int64(acceptedLines) {
		fail("expected total %d, got %d", acceptedLines, stats.Total)
	}
	if stats.UniqueIPs != int64(len(hosts)) {
		fail("expected %d unique IPs, got %d", len(hosts), stats.UniqueIPs)
	}
	if stats.ErrorRatePct <= 0 {
		fail("expected a positive error rate, got %v", stats.ErrorRatePct)
	}
	if len(stats.Top5IPs) != 5 {
		fail("expected 5 top IPs, got %d", len(stats.Top5IPs))
	}
	if len(stats.Top5Endpoints) != len(paths) {
		fail("expected %d top endpoints, got %d", len(paths), len(stats.Top5Endpoints))
	}
	if len(stats.RequestsOverTime) != 4 {
		fail("expected 4 hourly buckets, got %d", len(stats.RequestsOverTime))
	}
	var bucketSum int64
	for _, bucket := range stats.RequestsOverTime {
		bucketSum += bucket.Count
	}
	// Every accepted line carries a valid epoch, so the buckets cover the
	// whole table.
	if bucketSum != stats.Total {
		fail("bucket counts sum to %d, want %d", bucketSum, stats.Total)
	}
	fmt.Printf("Stats OK: total=%d unique_ips=%d error_rate_pct=%v\n", stats.Total, stats.UniqueIPs, stats.ErrorRatePct)
	fmt.Println()

	// Step 3: search
	fmt.Println("Checking /search...")
	search := fetchSearch(client, baseURL, "SHUTTLE")
	if search.Count != 50 {
		fail("expected search count capped at 50, got %d", search.Count)
	}
	for _, record := range search.Results {
		if !strings.Contains(strings.ToLower(record["request"]), "shuttle") {
			fail("search returned non-matching record: %v", record)
		}
	}
	empty := fetchSearch(client, baseURL, "")
	if empty.Count != 0 {
		fail("expected empty query to match nothing, got %d", empty.Count)
	}
	fmt.Println("Search OK: cap and case-insensitivity verified")
	fmt.Println()

	// Step 4: analyze
	if wantAnalyze {
		fmt.Println("Checking /analyze...")
		verdict := fetchAnalyze(client, baseURL)
		if verdict.RiskLevel == "" {
			fail("analyze returned an empty risk level")
		}
		if len(verdict.PatternsDetected) == 0 {
			fail("analyze returned no patterns (placeholder expected at minimum)")
		}
		fmt.Printf("Analyze OK: risk_level=%q patterns=%v\n", verdict.RiskLevel, verdict.PatternsDetected)
		fmt.Println()
	}

	// Step 5: re-upload a tiny file and confirm full replacement
	fmt.Println("Re-uploading a 2-line file to verify table replacement...")
	small := "10.0.0.1\t-\t804571304\tGET\t/a\t200\t100\n" +
		"10.0.0.2\t-\t804571305\tGET\t/b\t404\t0\n"
	second := uploadLogs(client, baseURL, small)
	if second.AcceptedCount != 2 {
		fail("expected 2 accepted lines on re-upload, got %d", second.AcceptedCount)
	}
	replaced := fetchStats(client, baseURL)
	if replaced.Total != 2 {
		fail("expected total 2 after replacement, got %d", replaced.Total)
	}
	if replaced.ErrorRatePct != 50.0 {
		fail("expected error rate 50 after replacement, got %v", replaced.ErrorRatePct)
	}
	fmt.Println("Replacement OK: old table fully superseded")
	fmt.Println()

	fmt.Println("Scenario completed successfully")
}

type uploadResponse struct {
	Message       string `json:"message"`
	AcceptedCount int    `json:"accepted_count"`
}

type ipCountEntry struct {
	IP    string `json:"ip"`
	Count int64  `json:"count"`
}

type endpointCountEntry struct {
	Endpoint string `json:"endpoint"`
	Count    int64  `json:"count"`
}

type timeBucketEntry struct {
	Time  string `json:"time"`
	Count int64  `json:"count"`
}

type statsResponse struct {
	Total            int64                `json:"total"`
	UniqueIPs        int64                `json:"unique_ips"`
	ErrorRatePct     float64              `json:"error_rate_pct"`
	Top5IPs          []ipCountEntry       `json:"top_5_ips"`
	Top5Endpoints    []endpointCountEntry `json:"top_5_endpoints"`
	RequestsOverTime []timeBucketEntry    `json:"requests_over_time"`
}

type searchResponse struct {
	Count   int                 `json:"count"`
	Results []map[string]string `json:"results"`
}

type analyzeResponse struct {
	PatternsDetected []string `json:"patterns_detected"`
	RiskLevel        string   `json:"risk_level"`
	Summary          string   `json:"summary"`
}

// generateTSV builds a deterministic access log. Lines cycle hosts and
// paths; every 10th line is a 500, every 7th a 404, and every
// malformedEvery-th line has too few columns.
func generateTSV(lines int) string {
	baseEpoch := int64(804571200) // 01/Jul/1995:04:00:00 UTC
	var builder strings.Builder
	builder.Grow(lines * 64)

	for i := 0; i < lines; i++ {
		if i%malformedEvery == malformedEvery-1 {
			builder.WriteString("truncated\tline\n")
			continue
		}

		host := hosts[i%len(hosts)]
		path := paths[i%len(paths)]
		status := 200
		switch {
		case i%10 == 0:
			status = 500
		case i%7 == 0:
			status = 404
		}
		// Spread lines across 4 hourly buckets.
		epoch := baseEpoch + int64(i%4)*3600 + int64(i%60)
		fmt.Fprintf(&builder, "%s\t-\t%d\tGET\t%s\t%d\t%d\n", host, epoch, path, status, 1000+i%4000)
	}
	return builder.String()
}

func uploadLogs(client *http.Client, baseURL, body string) uploadResponse {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/upload", strings.NewReader(body))
	if err != nil {
		fail("failed to create upload request: %v", err)
	}
	req.Header.Set("Content-Type", "text/tab-separated-values")

	var response uploadResponse
	doJSON(client, req, &response)
	return response
}

func fetchStats(client *http.Client, baseURL string) statsResponse {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/stats", nil)
	if err != nil {
		fail("failed to create stats request: %v", err)
	}

	var response statsResponse
	doJSON(client, req, &response)
	return response
}

func fetchSearch(client *http.Client, baseURL, query string) searchResponse {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/search?q="+url.QueryEscape(query), nil)
	if err != nil {
		fail("failed to create search request: %v", err)
	}

	var response searchResponse
	doJSON(client, req, &response)
	return response
}

func fetchAnalyze(client *http.Client, baseURL string) analyzeResponse {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/analyze", nil)
	if err != nil {
		fail("failed to create analyze request: %v", err)
	}

	var response analyzeResponse
	doJSON(client, req, &response)
	return response
}

func doJSON(client *http.Client, req *http.Request, out any) {
	resp, err := client.Do(req)
	if err != nil {
		fail("HTTP request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fail("%s %s returned HTTP %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("failed to decode %s response: %v", req.URL.Path, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
