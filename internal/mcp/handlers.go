package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/logging"
)

// AnalyzeSymptomsParams defines parameters for the analyze_symptoms tool
type AnalyzeSymptomsParams struct {
	Symptoms        string  `json:"symptoms" jsonschema:"free-text symptom description in English, Hindi or Hinglish"`
	Age             *int    `json:"age,omitempty" jsonschema:"patient age in years"`
	Gender          *string `json:"gender,omitempty" jsonschema:"patient gender such as female, male, f or m"`
	ProposedDisease string  `json:"proposed_disease,omitempty" jsonschema:"disease suggested by an external model, honored only if the rules allow it"`
}

// AnalyzeSymptomsResult defines the result of the analyze_symptoms tool
type AnalyzeSymptomsResult struct {
	Analysis          domain.AnalysisResult     `json:"analysis"`
	PredictedDisease  domain.Disease            `json:"predicted_disease"`
	ShowFollowUp      bool                      `json:"show_followup"`
	FollowUpQuestions []domain.FollowUpQuestion `json:"followup_questions"`
	Disclaimer        string                    `json:"disclaimer"`
}

// ApplyDemographicsParams defines parameters for the apply_demographics tool
type ApplyDemographicsParams struct {
	Disease         string  `json:"disease" jsonschema:"disease returned by analyze_symptoms"`
	ConfidenceScore float64 `json:"confidence_score" jsonschema:"unadjusted confidence score between 0 and 1"`
	Reason          string  `json:"reason,omitempty" jsonschema:"reason text to extend with demographic context"`
	IsEmergency     bool    `json:"is_emergency,omitempty" jsonschema:"emergency results are never adjusted"`
	Age             *int    `json:"age,omitempty" jsonschema:"patient age in years"`
	Gender          *string `json:"gender,omitempty" jsonschema:"patient gender"`
}

// FollowUpQuestionsParams defines parameters for the get_followup_questions tool
type FollowUpQuestionsParams struct {
	Disease         string `json:"disease" jsonschema:"disease to ask clarification questions about"`
	ConfidenceLevel string `json:"confidence_level" jsonschema:"HIGH, MEDIUM or LOW"`
	IsFollowUp      bool   `json:"is_followup,omitempty" jsonschema:"true if a follow-up round already happened"`
	MaxQuestions    int    `json:"max_questions,omitempty" jsonschema:"maximum number of questions, server default when omitted"`
}

// FollowUpQuestionsResult defines the result of the get_followup_questions tool
type FollowUpQuestionsResult struct {
	ShowFollowUp bool                      `json:"show_followup"`
	Questions    []domain.FollowUpQuestion `json:"questions"`
}

// SubmitFollowUpParams defines parameters for the submit_followup_answers tool
type SubmitFollowUpParams struct {
	Symptoms           string            `json:"symptoms" jsonschema:"the original symptom text"`
	Answers            map[string]string `json:"answers" jsonschema:"question id to yes or no"`
	OriginalDisease    string            `json:"original_disease,omitempty" jsonschema:"disease of the first analysis"`
	OriginalConfidence string            `json:"original_confidence,omitempty" jsonschema:"confidence level of the first analysis"`
	Age                *int              `json:"age,omitempty" jsonschema:"patient age in years"`
	Gender             *string           `json:"gender,omitempty" jsonschema:"patient gender"`
}

// SpecialistParams defines parameters for the get_specialist tool
type SpecialistParams struct {
	Disease string `json:"disease" jsonschema:"disease to route"`
}

// SpecialistResult defines the result of the get_specialist tool
type SpecialistResult struct {
	Disease    string `json:"disease"`
	Specialist string `json:"specialist"`
	Known      bool   `json:"known"`
}

// Disclaimer accompanies every analysis returned to a model.
const Disclaimer = "This is decision support, not a diagnosis. Seek emergency care for red flag symptoms and consult a doctor."

const (
	maxAge = 150

	// emergencyScore is the only score an emergency may carry.
	emergencyScore = 1.0
)

// handleAnalyzeSymptoms handles the analyze_symptoms tool invocation
func (s *LiteServer) handleAnalyzeSymptoms(ctx context.Context, _ *mcp.CallToolRequest, params AnalyzeSymptomsParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "analyze_symptoms").WithFields(logging.Fingerprint(params.Symptoms)).Info("Tool invoked")

	if err := s.validateSymptoms(params.Symptoms); err != nil {
		return s.createErrorResult("Invalid parameters", err), nil, nil
	}
	if err := validateAge(params.Age); err != nil {
		return s.createErrorResult("Invalid parameters", err), nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	demographics := domain.Demographics{Age: params.Age, Gender: params.Gender}
	analysis := s.analyzer.RunAnalysis(ctx, params.Symptoms)
	analysis = s.analyzer.ApplyDemographicContext(analysis, demographics)

	predicted := analysis.Disease
	if params.ProposedDisease != "" {
		predicted = s.analyzer.SelectPrediction(analysis, domain.Disease(params.ProposedDisease))
	}

	result := AnalyzeSymptomsResult{
		Analysis:          analysis,
		PredictedDisease:  predicted,
		ShowFollowUp:      s.analyzer.ShouldShowFollowUp(analysis.ConfidenceLevel, false),
		FollowUpQuestions: []domain.FollowUpQuestion{},
		Disclaimer:        Disclaimer,
	}
	if result.ShowFollowUp {
		result.FollowUpQuestions = s.analyzer.FollowUpQuestions(predicted, 0)
	}

	summary := fmt.Sprintf("%s (%s confidence, score %.2f)", analysis.Disease, analysis.ConfidenceLevel, analysis.ConfidenceScore)
	if analysis.IsEmergency {
		summary = fmt.Sprintf("EMERGENCY: %s Route to %s immediately.", analysis.Reason, analysis.RecommendedSpecialist)
	}
	return s.createJSONResult(summary, result)
}

// handleApplyDemographics handles the apply_demographics tool invocation
func (s *LiteServer) handleApplyDemographics(_ context.Context, _ *mcp.CallToolRequest, params ApplyDemographicsParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "apply_demographics").Info("Tool invoked")

	if params.Disease == "" {
		return s.createErrorResult("Missing required parameter", errors.New("disease is required")), nil, nil
	}
	if params.ConfidenceScore < 0 || params.ConfidenceScore > 1 {
		return s.createErrorResult("Invalid parameters", errors.New("confidence_score must be between 0 and 1")), nil, nil
	}
	if err := validateAge(params.Age); err != nil {
		return s.createErrorResult("Invalid parameters", err), nil, nil
	}

	disease := domain.Disease(params.Disease)
	input := domain.AnalysisResult{
		Disease:           disease,
		ConfidenceScore:   params.ConfidenceScore,
		ConfidenceLevel:   domain.LevelForScore(params.ConfidenceScore),
		Reason:            params.Reason,
		IsEmergency:       params.IsEmergency,
		AllowedDiseases:   []domain.Disease{disease},
		MatchedPrimary:    []string{},
		MatchedSupporting: []string{},
		MissingPrimary:    []string{},
	}
	if params.IsEmergency {
		input.ConfidenceScore = emergencyScore
		input.ConfidenceLevel = domain.HIGH
	}

	adjusted := s.analyzer.ApplyDemographicContext(input, domain.Demographics{Age: params.Age, Gender: params.Gender})
	adjusted.RecommendedSpecialist = s.analyzer.Specialist(adjusted.Disease)

	summary := fmt.Sprintf("%s: %s confidence, score %.2f", adjusted.Disease, adjusted.ConfidenceLevel, adjusted.ConfidenceScore)
	return s.createJSONResult(summary, adjusted)
}

// handleFollowUpQuestions handles the get_followup_questions tool invocation
func (s *LiteServer) handleFollowUpQuestions(_ context.Context, _ *mcp.CallToolRequest, params FollowUpQuestionsParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "get_followup_questions").Info("Tool invoked")

	level, err := domain.ParseConfidenceLevel(strings.ToUpper(strings.TrimSpace(params.ConfidenceLevel)))
	if err != nil {
		return s.createErrorResult("Invalid parameters", fmt.Errorf("confidence_level: %w", err)), nil, nil
	}
	if params.MaxQuestions < 0 {
		return s.createErrorResult("Invalid parameters", errors.New("max_questions must not be negative")), nil, nil
	}

	result := FollowUpQuestionsResult{
		ShowFollowUp: s.analyzer.ShouldShowFollowUp(level, params.IsFollowUp),
		Questions:    []domain.FollowUpQuestion{},
	}
	if result.ShowFollowUp {
		result.Questions = s.analyzer.FollowUpQuestions(domain.Disease(params.Disease), params.MaxQuestions)
	}

	return s.createJSONResult(fmt.Sprintf("%d follow-up question(s)", len(result.Questions)), result)
}

// handleSubmitFollowUp handles the submit_followup_answers tool invocation
func (s *LiteServer) handleSubmitFollowUp(ctx context.Context, _ *mcp.CallToolRequest, params SubmitFollowUpParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "submit_followup_answers").WithFields(logging.Fingerprint(params.Symptoms)).Info("Tool invoked")

	if err := s.validateSymptoms(params.Symptoms); err != nil {
		return s.createErrorResult("Invalid parameters", err), nil, nil
	}
	if err := validateAge(params.Age); err != nil {
		return s.createErrorResult("Invalid parameters", err), nil, nil
	}

	outcome, err := s.analyzer.RunFollowUp(ctx, domain.FollowUpRequest{
		Symptoms:           params.Symptoms,
		Answers:            params.Answers,
		OriginalDisease:    domain.Disease(params.OriginalDisease),
		OriginalConfidence: domain.ConfidenceLevel(strings.ToUpper(strings.TrimSpace(params.OriginalConfidence))),
		Demographics:       domain.Demographics{Age: params.Age, Gender: params.Gender},
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return s.createErrorResult("Invalid parameters", vErr), nil, nil
		}
		return nil, nil, err
	}

	a := outcome.Analysis
	summary := fmt.Sprintf("%s (%s confidence, score %.2f) after %d confirmed symptom(s)", a.Disease, a.ConfidenceLevel, a.ConfidenceScore, len(outcome.NewlyConfirmed))
	return s.createJSONResult(summary, outcome)
}

// handleGetSpecialist handles the get_specialist tool invocation
func (s *LiteServer) handleGetSpecialist(_ context.Context, _ *mcp.CallToolRequest, params SpecialistParams) (*mcp.CallToolResult, any, error) {
	s.logger.WithField("tool", "get_specialist").Info("Tool invoked")

	if params.Disease == "" {
		return s.createErrorResult("Missing required parameter", errors.New("disease is required")), nil, nil
	}

	disease := domain.Disease(params.Disease)
	result := SpecialistResult{
		Disease:    params.Disease,
		Specialist: s.analyzer.Specialist(disease),
		Known:      disease.IsValid(),
	}
	return s.createJSONResult(fmt.Sprintf("%s -> %s", result.Disease, result.Specialist), result)
}

func (s *LiteServer) validateSymptoms(symptoms string) error {
	if limit := s.config.MaxSymptomBytes; limit > 0 && len(symptoms) > limit {
		return domain.NewSymptomsTooLongError(len(symptoms), limit)
	}
	return nil
}

func validateAge(age *int) error {
	if age != nil && (*age < 0 || *age > maxAge) {
		return fmt.Errorf("age must be between 0 and %d", maxAge)
	}
	return nil
}

// createJSONResult returns a one-line summary followed by the JSON payload.
func (s *LiteServer) createJSONResult(summary string, payload any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: summary},
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

// createErrorResult creates a standardized error result for tool calls
func (s *LiteServer) createErrorResult(message string, err error) *mcp.CallToolResult {
	errorText := fmt.Sprintf("Error: %s", message)
	if err != nil {
		errorText += fmt.Sprintf(" - %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: errorText},
		},
		IsError: true,
	}
}
