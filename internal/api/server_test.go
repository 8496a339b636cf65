package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
	"github.com/UtsavYadav1/WellSure/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubConfig struct {
	cfg domain.Config
}

func (s *stubConfig) GetConfig() *domain.Config               { return &s.cfg }
func (s *stubConfig) GetServerConfig() *domain.ServerConfig   { return &s.cfg.Server }
func (s *stubConfig) GetEngineConfig() *domain.EngineConfig   { return &s.cfg.Engine }
func (s *stubConfig) GetLoggingConfig() *domain.LoggingConfig { return &s.cfg.Logging }
func (s *stubConfig) Reload() error                           { return nil }
func (s *stubConfig) Validate() error                         { return nil }
func (s *stubConfig) IsProduction() bool                      { return false }
func (s *stubConfig) IsDevelopment() bool                     { return true }

func testConfig() *stubConfig {
	return &stubConfig{cfg: domain.Config{
		Environment: "test",
		Server: domain.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			RequestTimeout:  5 * time.Second,
			MaxSymptomBytes: 256,
		},
		Engine:  domain.EngineConfig{MaxFollowUpQuestions: 4, CacheEnabled: true, CacheSize: 16},
		Logging: domain.LoggingConfig{Level: "info", Format: "json"},
	}}
}

func newTestServer(t *testing.T, cfg *stubConfig) *Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	cache, err := service.NewAnalysisCache(cfg.cfg.Engine.CacheSize)
	require.NoError(t, err)
	analyzer := service.NewAnalyzer(logger, lexicon.Default(), service.WithCache(cache))

	server, err := NewServer(cfg, analyzer, logger)
	require.NoError(t, err)
	return server
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error domain.APIError `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) domain.APIError {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(len(lexicon.Default().Profiles())), body["diseases"])
	assert.Contains(t, body, "cache")
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestServer_ListDiseases(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodGet, "/api/v1/diseases", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Diseases []DiseaseInfo `json:"diseases"`
		Count    int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, len(body.Diseases), body.Count)
	require.NotEmpty(t, body.Diseases)

	for _, d := range body.Diseases {
		if d.Name == domain.Urticaria {
			assert.Equal(t, "Dermatologist", d.Specialist)
		}
		assert.Positive(t, d.PrimaryCount+d.SupportingCount, d.Name)
	}
}

func TestServer_Analyze(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		Symptoms: "ring shaped rash with scaly border and itching",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.FungalInfection, resp.Analysis.Disease)
	assert.Equal(t, domain.MEDIUM, resp.Analysis.ConfidenceLevel)
	assert.Equal(t, domain.FungalInfection, resp.PredictedDisease)
	assert.True(t, resp.ShowFollowUp)
	require.NotEmpty(t, resp.FollowUpQuestions)
	assert.Equal(t, "fungal_ring", resp.FollowUpQuestions[0].ID)
}

func TestServer_Analyze_ProposedDisease(t *testing.T) {
	s := newTestServer(t, testConfig())

	tests := []struct {
		proposed      domain.Disease
		want          domain.Disease
		firstQuestion string
	}{
		{domain.Pneumonia, domain.Pneumonia, "pneumonia_mucus"},
		{domain.Migraine, domain.ViralFever, "viral_fever"},
	}

	for _, tt := range tests {
		w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
			Symptoms:        "high fever cough chest pain while breathing chills",
			ProposedDisease: tt.proposed,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.ViralFever, resp.Analysis.Disease)
		assert.Equal(t, tt.want, resp.PredictedDisease, "proposed %s", tt.proposed)

		// Clarification questions follow the selected prediction.
		require.True(t, resp.ShowFollowUp)
		require.NotEmpty(t, resp.FollowUpQuestions)
		assert.Equal(t, tt.firstQuestion, resp.FollowUpQuestions[0].ID, "proposed %s", tt.proposed)
	}
}

func TestServer_Analyze_Emergency(t *testing.T) {
	s := newTestServer(t, testConfig())

	age := 70
	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		Symptoms:     "chest pain radiating to left arm and cold sweat",
		Demographics: domain.Demographics{Age: &age, Gender: domain.StrPtr("male")},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Analysis.IsEmergency)
	assert.Equal(t, domain.HIGH, resp.Analysis.ConfidenceLevel)
	assert.Equal(t, 1.0, resp.Analysis.ConfidenceScore)
	assert.Nil(t, resp.Analysis.DemographicAdjustment)
	assert.False(t, resp.ShowFollowUp)
	assert.NotNil(t, resp.FollowUpQuestions)
	assert.Empty(t, resp.FollowUpQuestions)
}

func TestServer_Analyze_Demographics(t *testing.T) {
	s := newTestServer(t, testConfig())

	age := 70
	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{
		Symptoms:     "knee pain joint stiffness cracking sound elderly",
		Demographics: domain.Demographics{Age: &age},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.Osteoarthritis, resp.Analysis.Disease)
	assert.Equal(t, 0.39, resp.Analysis.ConfidenceScore)
	require.NotNil(t, resp.Analysis.DemographicAdjustment)
	assert.Equal(t, 0.1, *resp.Analysis.DemographicAdjustment)
}

func TestServer_Analyze_Validation(t *testing.T) {
	s := newTestServer(t, testConfig())

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.CodeMalformedRequest, decodeError(t, w).Code)
	})

	t.Run("oversized symptoms", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{Symptoms: strings.Repeat("a", 257)})
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, domain.CodeSymptomsTooLong, apiErr.Code)
		assert.Equal(t, "symptoms", apiErr.Field)
	})

	t.Run("negative age", func(t *testing.T) {
		age := -1
		w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{Symptoms: "fever", Demographics: domain.Demographics{Age: &age}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, domain.CodeInvalidField, apiErr.Code)
		assert.Equal(t, "age", apiErr.Field)
	})

	t.Run("empty symptoms degrade to fallback", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", AnalyzeRequest{})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalyzeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.GeneralPhysicianConsultation, resp.Analysis.Disease)
		assert.Equal(t, domain.LOW, resp.Analysis.ConfidenceLevel)
	})
}

func TestServer_FollowUpQuestions(t *testing.T) {
	s := newTestServer(t, testConfig())

	tests := []struct {
		name      string
		req       FollowUpQuestionsRequest
		wantShow  bool
		wantCount int
	}{
		{"Low confidence", FollowUpQuestionsRequest{Disease: domain.Migraine, ConfidenceLevel: "LOW"}, true, 4},
		{"Limited", FollowUpQuestionsRequest{Disease: domain.Migraine, ConfidenceLevel: "MEDIUM", MaxQuestions: 2}, true, 2},
		{"High confidence", FollowUpQuestionsRequest{Disease: domain.Migraine, ConfidenceLevel: "HIGH"}, false, 0},
		{"Second round", FollowUpQuestionsRequest{Disease: domain.Migraine, ConfidenceLevel: "LOW", IsFollowUp: true}, false, 0},
		{"Unknown disease uses general bank", FollowUpQuestionsRequest{Disease: "Mystery", ConfidenceLevel: "LOW"}, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/v1/followup/questions", tt.req)
			require.Equal(t, http.StatusOK, w.Code)

			var resp FollowUpQuestionsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantShow, resp.ShowFollowUp)
			assert.Len(t, resp.Questions, tt.wantCount)
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/followup/questions", FollowUpQuestionsRequest{Disease: domain.Migraine, ConfidenceLevel: "low"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "confidence_level", decodeError(t, w).Field)
	})

	t.Run("missing disease", func(t *testing.T) {
		w := doJSON(t, s, http.MethodPost, "/api/v1/followup/questions", map[string]string{"confidence_level": "LOW"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.CodeMalformedRequest, decodeError(t, w).Code)
	})
}

func TestServer_FollowUp(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/v1/followup", map[string]any{
		"symptoms": "pimples",
		"answers": map[string]string{
			"acne_pimples":    "yes",
			"acne_blackheads": "yes",
			"acne_oily":       "yes",
		},
		"original_disease":    "Acne",
		"original_confidence": "LOW",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var outcome domain.FollowUpOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcome))
	assert.Equal(t, domain.Acne, outcome.Analysis.Disease)
	assert.Equal(t, domain.MEDIUM, outcome.Analysis.ConfidenceLevel)
	assert.True(t, outcome.Capped)
	assert.False(t, outcome.ShowFollowUp)
	assert.Equal(t, []string{"blackheads", "whiteheads", "oily skin", "pimples"}, outcome.NewlyConfirmed)
}

func TestServer_FollowUp_Validation(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodPost, "/api/v1/followup", map[string]any{"symptoms": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "symptoms", decodeError(t, w).Field)

	w = doJSON(t, s, http.MethodPost, "/api/v1/followup", map[string]any{"symptoms": "pimples", "original_confidence": "SURE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "original_confidence", decodeError(t, w).Field)
}

func TestServer_NotFound(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := doJSON(t, s, http.MethodGet, "/api/v1/variants", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.CodeRouteNotFound, decodeError(t, w).Code)
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.cfg.RateLimit = domain.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2}
	s := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, doJSON(t, s, http.MethodGet, "/health", nil).Code)
	}
	w := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, domain.CodeRateLimited, decodeError(t, w).Code)
}

func TestNewServer_InvalidRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.cfg.RateLimit = domain.RateLimitConfig{Enabled: true}

	logger, _ := test.NewNullLogger()
	_, err := NewServer(cfg, service.NewAnalyzer(logger, lexicon.Default()), logger)
	assert.Error(t, err)
}

func TestServer_StartStops(t *testing.T) {
	s := newTestServer(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
