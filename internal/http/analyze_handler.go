package http

import (
	"net/http"

	"log-intel/internal/analyzers"
)

// AnalyzeResponse is the security verdict (or the degraded placeholder)
// for the sampled suspicious log lines.
type AnalyzeResponse struct {
	PatternsDetected []string `json:"patterns_detected"`
	RiskLevel        string   `json:"risk_level"`
	Summary          string   `json:"summary"`
}

type analyzeHandler struct {
	analysisService analyzers.AnalysisService
}

func NewAnalyzeHandler(analysisService analyzers.AnalysisService) AppHttpHandler {
	return &analyzeHandler{analysisService: analysisService}
}

// Handle processes POST /analyze requests. Fails only when no logs are
// loaded; collaborator failures surface as a degraded 200 result.
func (h *analyzeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.analysisService.Analyze(r.Context())
	if err != nil {
		return err
	}

	return writeJSONResponse(w, http.StatusOK, AnalyzeResponse{
		PatternsDetected: result.PatternsDetected,
		RiskLevel:        result.RiskLevel,
		Summary:          result.Summary,
	})
}
