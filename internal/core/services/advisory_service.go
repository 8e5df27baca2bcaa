package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/avis-project/avis_backend/internal/core/ports/services"
)

// Fallback strings returned when the advisory text service cannot be
// reached. Consumers treat advisory output as optional, so these are
// plain values, not errors.
const (
	summaryNoKeyFallback    = "AI Summary unavailable (No API Key)."
	summaryOfflineFallback  = "Summary temporarily unavailable (Offline)."
	analysisNoKeyFallback   = "AI Analysis unavailable."
	analysisOfflineFallback = "Analysis unavailable (Offline)."
)

// advisoryService is the HTTP client for the external advisory text
// service. Description and manifesto fields are opaque payloads to the
// core; this client hands them over and returns whatever comes back, or a
// fallback string when the service is unreachable. It never returns an
// error: advisory output must not block voting or tallying.
type advisoryService struct {
	BaseService
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAdvisoryService creates the advisory text service client.
func NewAdvisoryService(baseURL, apiKey string, timeout time.Duration) portssvc.AdvisorySvcFacade {
	return &advisoryService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var _ portssvc.AdvisorySvcFacade = (*advisoryService)(nil)

func (s *advisoryService) SimpleSummary(ctx context.Context, text string) string {
	if s.baseURL == "" || s.apiKey == "" {
		return summaryNoKeyFallback
	}
	prompt := fmt.Sprintf("Provide a very simple, easy-to-read summary of the following text for a voter with reading difficulties. Keep it under 50 words: %q", text)
	result, err := s.generate(ctx, prompt)
	if err != nil {
		s.LogDebug(ctx, "Advisory summary skipped, service unreachable")
		return summaryOfflineFallback
	}
	return result
}

func (s *advisoryService) ManifestoAnalysis(ctx context.Context, candidateName, party, manifesto string) string {
	if s.baseURL == "" || s.apiKey == "" {
		return analysisNoKeyFallback
	}
	prompt := fmt.Sprintf("Analyze the following manifesto for candidate %s (%s). Highlight 3 key bullet points affecting the daily life of a citizen. Text: %q", candidateName, party, manifesto)
	result, err := s.generate(ctx, prompt)
	if err != nil {
		s.LogDebug(ctx, "Advisory analysis skipped, service unreachable")
		return analysisOfflineFallback
	}
	return result
}

type advisoryRequest struct {
	Prompt string `json:"prompt"`
}

type advisoryResponse struct {
	Text string `json:"text"`
}

func (s *advisoryService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(advisoryRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build advisory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisory service returned status %d", resp.StatusCode)
	}

	var parsed advisoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode advisory response: %w", err)
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("advisory service returned empty text")
	}
	return parsed.Text, nil
}
