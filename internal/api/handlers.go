package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/middleware"
	"github.com/UtsavYadav1/WellSure/internal/service"
)

const maxAge = 150

// AnalyzeRequest is the body of POST /api/v1/analyze
type AnalyzeRequest struct {
	Symptoms        string         `json:"symptoms"`
	ProposedDisease domain.Disease `json:"proposed_disease,omitempty"`
	domain.Demographics
}

// AnalyzeResponse is the body returned by POST /api/v1/analyze
type AnalyzeResponse struct {
	Analysis          domain.AnalysisResult     `json:"analysis"`
	PredictedDisease  domain.Disease            `json:"predicted_disease"`
	ShowFollowUp      bool                      `json:"show_followup"`
	FollowUpQuestions []domain.FollowUpQuestion `json:"followup_questions"`
}

// FollowUpQuestionsRequest is the body of POST /api/v1/followup/questions
type FollowUpQuestionsRequest struct {
	Disease         domain.Disease `json:"disease" binding:"required"`
	ConfidenceLevel string         `json:"confidence_level" binding:"required"`
	IsFollowUp      bool           `json:"is_followup"`
	MaxQuestions    int            `json:"max_questions,omitempty"`
}

// FollowUpQuestionsResponse lists the questions to show, if any.
type FollowUpQuestionsResponse struct {
	ShowFollowUp bool                      `json:"show_followup"`
	Questions    []domain.FollowUpQuestion `json:"questions"`
}

// DiseaseInfo summarizes one knowledge base profile.
type DiseaseInfo struct {
	Name            domain.Disease `json:"name"`
	Specialist      string         `json:"specialist"`
	PrimaryCount    int            `json:"primary_count"`
	SupportingCount int            `json:"supporting_count"`
	ExclusionCount  int            `json:"exclusion_count"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   Version,
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
		"diseases":  len(s.analyzer.Profiles()),
	}
	if a, ok := s.analyzer.(*service.Analyzer); ok {
		if stats, enabled := a.CacheStats(); enabled {
			body["cache"] = stats
		}
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleListDiseases(c *gin.Context) {
	profiles := s.analyzer.Profiles()
	diseases := make([]DiseaseInfo, 0, len(profiles))
	for _, p := range profiles {
		diseases = append(diseases, DiseaseInfo{
			Name:            p.Disease,
			Specialist:      s.analyzer.Specialist(p.Disease),
			PrimaryCount:    len(p.Primary),
			SupportingCount: len(p.Supporting),
			ExclusionCount:  len(p.Exclusions),
		})
	}
	c.JSON(http.StatusOK, gin.H{"diseases": diseases, "count": len(diseases)})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMalformed(c, err)
		return
	}
	if err := s.validateInput(req.Symptoms, req.Demographics); err != nil {
		s.abortValidation(c, err)
		return
	}
	if err := c.Request.Context().Err(); err != nil {
		s.abortContext(c, err)
		return
	}

	result := s.analyzer.RunAnalysis(c.Request.Context(), req.Symptoms)
	result = s.analyzer.ApplyDemographicContext(result, req.Demographics)

	predicted := result.Disease
	if req.ProposedDisease != "" {
		predicted = s.analyzer.SelectPrediction(result, req.ProposedDisease)
	}

	resp := AnalyzeResponse{
		Analysis:          result,
		PredictedDisease:  predicted,
		ShowFollowUp:      s.analyzer.ShouldShowFollowUp(result.ConfidenceLevel, false),
		FollowUpQuestions: []domain.FollowUpQuestion{},
	}
	if resp.ShowFollowUp {
		resp.FollowUpQuestions = s.analyzer.FollowUpQuestions(predicted, 0)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFollowUpQuestions(c *gin.Context) {
	var req FollowUpQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMalformed(c, err)
		return
	}

	level, err := domain.ParseConfidenceLevel(req.ConfidenceLevel)
	if err != nil {
		s.abortValidation(c, domain.NewValidationError("confidence_level", "Must be HIGH, MEDIUM or LOW", req.ConfidenceLevel))
		return
	}
	if req.MaxQuestions < 0 {
		s.abortValidation(c, domain.NewValidationError("max_questions", "Must not be negative", req.MaxQuestions))
		return
	}

	resp := FollowUpQuestionsResponse{
		ShowFollowUp: s.analyzer.ShouldShowFollowUp(level, req.IsFollowUp),
		Questions:    []domain.FollowUpQuestion{},
	}
	if resp.ShowFollowUp {
		resp.Questions = s.analyzer.FollowUpQuestions(req.Disease, req.MaxQuestions)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleFollowUp(c *gin.Context) {
	var req domain.FollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMalformed(c, err)
		return
	}
	if err := s.validateInput(req.Symptoms, req.Demographics); err != nil {
		s.abortValidation(c, err)
		return
	}

	outcome, err := s.analyzer.RunFollowUp(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			s.abortValidation(c, vErr)
			return
		}
		s.abortContext(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (s *Server) validateInput(symptoms string, demographics domain.Demographics) *domain.ValidationError {
	if limit := s.configManager.GetServerConfig().MaxSymptomBytes; limit > 0 && len(symptoms) > limit {
		return domain.NewSymptomsTooLongError(len(symptoms), limit)
	}
	if demographics.Age != nil && (*demographics.Age < 0 || *demographics.Age > maxAge) {
		return domain.NewValidationError("age", fmt.Sprintf("Must be between 0 and %d", maxAge), *demographics.Age)
	}
	return nil
}

func abortMalformed(c *gin.Context, err error) {
	middleware.AbortWithError(c, domain.NewAPIError(domain.CodeMalformedRequest, "malformed request body: "+err.Error()))
}

func (s *Server) abortValidation(c *gin.Context, err *domain.ValidationError) {
	middleware.AbortWithError(c, err.APIError())
}

func (s *Server) abortContext(c *gin.Context, err error) {
	s.logger.WithError(err).WithField("correlation_id", c.GetString(middleware.CorrelationIDKey)).Warn("Request abandoned")
	middleware.AbortWithError(c, domain.NewAPIError(domain.CodeAnalysisUnavailable, "request cancelled or timed out"))
}
