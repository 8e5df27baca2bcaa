package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avis-project/avis_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AdvisoryServiceTestSuite struct {
	suite.Suite
}

func (suite *AdvisoryServiceTestSuite) TestSimpleSummary_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.Equal(http.MethodPost, r.Method)
		suite.Equal("/v1/generate", r.URL.Path)
		suite.Equal("Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Prompt string `json:"prompt"`
		}
		suite.NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Contains(body.Prompt, "long manifesto text")

		json.NewEncoder(w).Encode(map[string]string{"text": "A short summary."})
	}))
	defer server.Close()

	svc := services.NewAdvisoryService(server.URL, "test-key", 2*time.Second)

	got := svc.SimpleSummary(context.Background(), "long manifesto text")

	suite.Equal("A short summary.", got)
}

func (suite *AdvisoryServiceTestSuite) TestSimpleSummary_NoKeyFallback() {
	svc := services.NewAdvisoryService("", "", 2*time.Second)

	got := svc.SimpleSummary(context.Background(), "anything")

	suite.Equal("AI Summary unavailable (No API Key).", got)
}

func (suite *AdvisoryServiceTestSuite) TestSimpleSummary_OfflineFallback() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := services.NewAdvisoryService(server.URL, "test-key", 2*time.Second)

	got := svc.SimpleSummary(context.Background(), "anything")

	suite.Equal("Summary temporarily unavailable (Offline).", got)
}

func (suite *AdvisoryServiceTestSuite) TestManifestoAnalysis_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Prompt string `json:"prompt"`
		}
		suite.NoError(json.NewDecoder(r.Body).Decode(&body))
		suite.Contains(body.Prompt, "Sarah Jenkins")
		suite.Contains(body.Prompt, "Progressive Alliance")

		json.NewEncoder(w).Encode(map[string]string{"text": "Three key points."})
	}))
	defer server.Close()

	svc := services.NewAdvisoryService(server.URL, "test-key", 2*time.Second)

	got := svc.ManifestoAnalysis(context.Background(), "Sarah Jenkins", "Progressive Alliance", "Green energy for all.")

	suite.Equal("Three key points.", got)
}

func (suite *AdvisoryServiceTestSuite) TestManifestoAnalysis_NoKeyFallback() {
	svc := services.NewAdvisoryService("", "", 2*time.Second)

	got := svc.ManifestoAnalysis(context.Background(), "Sarah Jenkins", "Progressive Alliance", "Green energy for all.")

	suite.Equal("AI Analysis unavailable.", got)
}

func (suite *AdvisoryServiceTestSuite) TestManifestoAnalysis_OfflineFallback() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := services.NewAdvisoryService(server.URL, "test-key", 2*time.Second)

	got := svc.ManifestoAnalysis(context.Background(), "Sarah Jenkins", "Progressive Alliance", "Green energy for all.")

	suite.Equal("Analysis unavailable (Offline).", got)
}

// --- Run Test Suite ---
func TestAdvisoryService(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceTestSuite))
}
