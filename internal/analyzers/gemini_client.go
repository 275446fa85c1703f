package analyzers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"log-intel/internal/shared/loggers"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

var errNoCandidates = errors.New("gemini response has no candidates")

// LLMClient generates a free-text analysis for a prompt.
//
//go:generate mockgen -source=gemini_client.go -destination=./mocks/llm_client_mock.go -package=mocks
type LLMClient interface {
	GenerateAnalysis(ctx context.Context, prompt string) (string, error)
}

// geminiClient calls the Gemini generateContent REST API. Model names are
// tried in order until one succeeds, so a retired model name does not
// take the endpoint down.
type geminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	models     []string
}

func NewGeminiClient(apiKey string, models []string, timeout time.Duration) LLMClient {
	return &geminiClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
		models:     models,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateAnalysis(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini api key is not configured")
	}

	var lastErr error
	for _, model := range c.models {
		text, err := c.generateWithModel(ctx, model, prompt)
		if err != nil {
			loggers.Ctx(ctx).Debug().
				Err(err).
				Str(loggers.FieldLlmModel, model).
				Msg("gemini model call failed, trying next")
			lastErr = err
			continue
		}
		metricLlmCallsTotal.WithLabelValues(model, outcomeOk).Inc()
		return text, nil
	}

	return "", fmt.Errorf("all gemini models failed: %w", lastErr)
}

func (c *geminiClient) generateWithModel(ctx context.Context, model string, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metricLlmCallsTotal.WithLabelValues(model, outcomeDegraded).Inc()
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		metricLlmCallsTotal.WithLabelValues(model, outcomeDegraded).Inc()
		return "", fmt.Errorf("gemini model %s returned status %d", model, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("gemini model %s returned invalid json: %w", model, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errNoCandidates
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
