package analyzers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"log-intel/internal/shared/loggers"
	"log-intel/internal/stores"
)

const analysisSystemPrompt = "You are a Cyber Security Analyst. Analyze these log lines. " +
	"Return a VALID JSON object with keys: 'patterns_detected' (list of strings like 'SQL Injection'), " +
	"'risk_level', and 'summary'. Do NOT use markdown code blocks. Just return the raw JSON string."

// AnalysisResult is the security verdict for one sampled set of log lines.
type AnalysisResult struct {
	PatternsDetected []string `json:"patterns_detected"`
	RiskLevel        string   `json:"risk_level"`
	Summary          string   `json:"summary"`
}

// AnalysisService samples suspicious records from the current table and
// asks the LLM collaborator for a verdict.
//
// Every collaborator failure (missing key, rate limit, network, all
// models failing, malformed model output) degrades to a placeholder
// result; the only error Analyze returns is the empty-table case.
//
//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	Analyze(ctx context.Context) (*AnalysisResult, error)
}

type analysisService struct {
	tableStore stores.LogTableStore
	sampler    SuspiciousSampler
	llmClient  LLMClient
	limiter    *rate.Limiter

	sampleSize int
	sampleSeed int64
}

func NewAnalysisService(
	tableStore stores.LogTableStore,
	sampler SuspiciousSampler,
	llmClient LLMClient,
	limiter *rate.Limiter,
	sampleSize int,
	sampleSeed int64,
) AnalysisService {
	return &analysisService{
		tableStore: tableStore,
		sampler:    sampler,
		llmClient:  llmClient,
		limiter:    limiter,
		sampleSize: sampleSize,
		sampleSeed: sampleSeed,
	}
}

func (s *analysisService) Analyze(ctx context.Context) (*AnalysisResult, error) {
	table := s.tableStore.Current()
	if table.Len() == 0 {
		return nil, errNoLogsLoaded()
	}

	lines := s.sampler.Sample(table, s.sampleSize, s.sampleSeed)
	if len(lines) == 0 {
		// Nothing suspicious at all; report the quiet table rather than
		// spending an LLM call.
		metricAnalysisTotal.WithLabelValues(outcomeOk).Inc()
		return &AnalysisResult{
			PatternsDetected: []string{},
			RiskLevel:        "Low",
			Summary:          "No suspicious log lines found in the current table.",
		}, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return s.degraded(ctx, fmt.Errorf("analysis rate limit: %w", err)), nil
	}

	prompt := analysisSystemPrompt + "\n\nLogs to analyze:\n" + strings.Join(lines, "\n")

	text, err := s.llmClient.GenerateAnalysis(ctx, prompt)
	if err != nil {
		return s.degraded(ctx, err), nil
	}

	result, err := parseAnalysisText(text)
	if err != nil {
		return s.degraded(ctx, err), nil
	}

	metricAnalysisTotal.WithLabelValues(outcomeOk).Inc()
	return result, nil
}

// degraded converts any collaborator failure into the placeholder result.
func (s *analysisService) degraded(ctx context.Context, cause error) *AnalysisResult {
	loggers.Ctx(ctx).Warn().Err(cause).Msg("llm analysis degraded to placeholder result")
	metricAnalysisTotal.WithLabelValues(outcomeDegraded).Inc()

	return &AnalysisResult{
		PatternsDetected: []string{"Manual Review Required"},
		RiskLevel:        "Unknown",
		Summary:          fmt.Sprintf("AI analysis failed. Please check API Key. Details: %s", cause),
	}
}

// parseAnalysisText strips optional markdown fences and decodes the
// model's JSON verdict.
func parseAnalysisText(text string) (*AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("llm returned malformed analysis: %w", err)
	}
	return &result, nil
}
