package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
	"github.com/UtsavYadav1/WellSure/internal/logging"
)

const (
	emergencyScore    = 1.0
	shortInputScore   = 0.20
	noMatchScore      = 0.25
	shortInputMaxToks = 3

	noMatchReason = "Symptoms are non-specific and do not form a strong clinical pattern."
)

// Analyzer runs the full triage pipeline: normalization, red flag screen,
// short input check and rule matching. It holds no mutable state apart from
// the optional result cache and is safe for concurrent use.
type Analyzer struct {
	logger       *logrus.Logger
	lex          *lexicon.Lexicon
	normalizer   *Normalizer
	detector     *EmergencyDetector
	matcher      *RuleMatcher
	demographics *DemographicAdjuster
	followUp     *FollowUpOrchestrator

	cache        *AnalysisCache
	maxQuestions int
}

// AnalyzerOption configures an Analyzer
type AnalyzerOption func(*Analyzer)

// WithCache memoizes RunAnalysis results.
func WithCache(cache *AnalysisCache) AnalyzerOption {
	return func(a *Analyzer) {
		a.cache = cache
	}
}

// WithMaxFollowUpQuestions sets the default number of questions offered.
func WithMaxFollowUpQuestions(n int) AnalyzerOption {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxQuestions = n
		}
	}
}

// NewAnalyzer creates a new symptom analyzer
func NewAnalyzer(logger *logrus.Logger, lex *lexicon.Lexicon, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		logger:       logger,
		lex:          lex,
		normalizer:   NewNormalizer(lex),
		detector:     NewEmergencyDetector(),
		matcher:      NewRuleMatcher(logger, lex),
		demographics: NewDemographicAdjuster(lex),
		followUp:     NewFollowUpOrchestrator(lex),
		maxQuestions: DefaultMaxFollowUpQuestions,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ domain.SymptomAnalyzer = (*Analyzer)(nil)

// RunAnalysis never fails: unusable input degrades to a LOW confidence
// general physician fallback.
func (a *Analyzer) RunAnalysis(ctx context.Context, symptoms string) domain.AnalysisResult {
	startTime := time.Now()

	if a.cache != nil {
		if cached, ok := a.cache.Get(symptoms); ok {
			a.logger.WithFields(logging.Fingerprint(symptoms)).Debug("Analysis served from cache")
			return cached
		}
	}

	normalized := a.normalizer.Normalize(symptoms)
	result := a.analyzeNormalized(symptoms, normalized)

	if a.cache != nil {
		a.cache.Add(symptoms, result)
	}

	a.logger.WithFields(logging.Fingerprint(symptoms)).
		WithFields(result.LogFields()).
		WithField("processing_time", time.Since(startTime)).
		Info("Symptom analysis completed")

	return result
}

func (a *Analyzer) analyzeNormalized(raw, normalized string) domain.AnalysisResult {
	// Step 1: red flags override everything else
	if finding := a.detector.Detect(normalized); finding.IsEmergency {
		result := emergencyResult(finding)
		mustHoldEmergencyInvariant(result)
		return result
	}

	// Step 2: very short, vague input
	if a.isNonSpecificShortInput(normalized) {
		reason := fmt.Sprintf("'%s' is too non-specific for a confident diagnosis. Please describe more symptoms or consult a General Physician.", strings.TrimSpace(raw))
		return fallbackResult(shortInputScore, reason)
	}

	// Step 3: rule matching
	allowed, best := a.matcher.Score(normalized)
	if best == nil {
		return fallbackResult(noMatchScore, noMatchReason)
	}

	names := make([]domain.Disease, len(allowed))
	for i, c := range allowed {
		names[i] = c.Disease
	}

	return domain.AnalysisResult{
		Disease:               best.Disease,
		ConfidenceScore:       best.Score,
		ConfidenceLevel:       best.Level,
		Reason:                fmt.Sprintf("Matched %d disease(s) based on clinical rules. Primary match indicates %s confidence.", len(names), best.Level),
		AllowedDiseases:       names,
		MatchedPrimary:        best.MatchedPrimary,
		MatchedSupporting:     best.MatchedSupporting,
		MissingPrimary:        best.MissingPrimary,
		RecommendedSpecialist: a.lex.Specialist(best.Disease),
	}
}

func (a *Analyzer) isNonSpecificShortInput(normalized string) bool {
	if len(strings.Fields(normalized)) > shortInputMaxToks {
		return false
	}
	for _, term := range a.lex.NonSpecificTerms() {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

func emergencyResult(finding domain.EmergencyFinding) domain.AnalysisResult {
	return domain.AnalysisResult{
		Disease:               domain.EmergencyAlert,
		ConfidenceScore:       emergencyScore,
		ConfidenceLevel:       domain.HIGH,
		Reason:                finding.Reason,
		ForcedSpecialist:      domain.StrPtr(finding.ForcedSpecialist),
		IsEmergency:           true,
		AllowedDiseases:       []domain.Disease{},
		MatchedPrimary:        []string{},
		MatchedSupporting:     []string{},
		MissingPrimary:        []string{},
		RecommendedSpecialist: finding.ForcedSpecialist,
	}
}

func fallbackResult(score float64, reason string) domain.AnalysisResult {
	return domain.AnalysisResult{
		Disease:               domain.GeneralPhysicianConsultation,
		ConfidenceScore:       score,
		ConfidenceLevel:       domain.LOW,
		Reason:                reason,
		ForcedSpecialist:      domain.StrPtr(domain.GeneralPhysician),
		AllowedDiseases:       []domain.Disease{domain.GeneralPhysicianConsultation},
		MatchedPrimary:        []string{},
		MatchedSupporting:     []string{},
		MissingPrimary:        []string{},
		RecommendedSpecialist: domain.GeneralPhysician,
	}
}

// mustHoldEmergencyInvariant panics when an emergency is not reported at full
// confidence. Downgrading an emergency is a safety defect, not a runtime error.
func mustHoldEmergencyInvariant(result domain.AnalysisResult) {
	if result.IsEmergency && (result.ConfidenceLevel != domain.HIGH || result.ConfidenceScore != emergencyScore) {
		panic(fmt.Sprintf("emergency result downgraded to %s/%v", result.ConfidenceLevel, result.ConfidenceScore))
	}
}

// ApplyDemographicContext adjusts confidence using optional age and gender.
func (a *Analyzer) ApplyDemographicContext(result domain.AnalysisResult, demographics domain.Demographics) domain.AnalysisResult {
	adjusted := a.demographics.Adjust(result, demographics.Age, demographics.Gender)
	mustHoldEmergencyInvariant(adjusted)
	if adjusted.DemographicAdjustment != nil {
		a.logger.WithFields(logrus.Fields{
			"disease":    adjusted.Disease.String(),
			"adjustment": *adjusted.DemographicAdjustment,
			"new_level":  adjusted.ConfidenceLevel.String(),
		}).Debug("Applied demographic context")
	}
	return adjusted
}

// ShouldShowFollowUp reports whether clarification questions should be offered.
func (a *Analyzer) ShouldShowFollowUp(level domain.ConfidenceLevel, isFollowUp bool) bool {
	return a.followUp.ShouldShowFollowUp(level, isFollowUp)
}

// FollowUpQuestions returns the clarification questions for a disease. A
// non-positive maxQuestions uses the configured default.
func (a *Analyzer) FollowUpQuestions(disease domain.Disease, maxQuestions int) []domain.FollowUpQuestion {
	if maxQuestions <= 0 {
		maxQuestions = a.maxQuestions
	}
	return a.followUp.Questions(disease, maxQuestions)
}

// RunFollowUp re-analyzes the original symptoms extended with the phrases
// confirmed by yes answers. A single round can raise LOW confidence at most
// to MEDIUM; emergencies are reported as-is.
func (a *Analyzer) RunFollowUp(ctx context.Context, req domain.FollowUpRequest) (domain.FollowUpOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.FollowUpOutcome{}, fmt.Errorf("follow-up cancelled: %w", err)
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		return domain.FollowUpOutcome{}, domain.NewValidationError("symptoms", "Original symptoms are required", req.Symptoms)
	}

	original := req.OriginalConfidence
	if original == "" {
		original = domain.LOW
	}
	if !original.IsValid() {
		return domain.FollowUpOutcome{}, domain.NewValidationError("original_confidence", "Must be HIGH, MEDIUM or LOW", req.OriginalConfidence)
	}

	keywords, confirmed := a.followUp.AnswersToSymptoms(req.Answers)
	augmented := req.Symptoms
	if keywords != "" {
		augmented = req.Symptoms + ", " + keywords
	}

	analysis := a.RunAnalysis(ctx, augmented)
	analysis = a.ApplyDemographicContext(analysis, req.Demographics)

	outcome := domain.FollowUpOutcome{
		AugmentedSymptoms: augmented,
		NewlyConfirmed:    confirmed,
		Questions:         []domain.FollowUpQuestion{},
	}

	if !analysis.IsEmergency {
		if req.OriginalDisease != "" {
			capped := a.followUp.CapConfidence(original, analysis.ConfidenceLevel)
			if capped != analysis.ConfidenceLevel {
				analysis.ConfidenceLevel = capped
				outcome.Capped = true
			}
		}
		if len(confirmed) > 0 {
			analysis.Reason = FollowUpReason
		}
	}

	outcome.Analysis = analysis
	outcome.ShowFollowUp = a.ShouldShowFollowUp(analysis.ConfidenceLevel, true)

	a.logger.WithFields(logrus.Fields{
		"original_disease":    req.OriginalDisease.String(),
		"original_confidence": original.String(),
		"newly_confirmed":     len(confirmed),
		"capped":              outcome.Capped,
		"disease":             analysis.Disease.String(),
		"confidence_level":    analysis.ConfidenceLevel.String(),
	}).Info("Follow-up analysis completed")

	return outcome, nil
}

// SelectPrediction honors a proposed disease only if the rules allowed it.
func (a *Analyzer) SelectPrediction(result domain.AnalysisResult, proposed domain.Disease) domain.Disease {
	return SelectPrediction(result, proposed)
}

// Specialist routes a disease to a specialist.
func (a *Analyzer) Specialist(disease domain.Disease) string {
	return a.lex.Specialist(disease)
}

// Profiles lists the disease profiles in ranking order.
func (a *Analyzer) Profiles() []domain.DiseaseProfile {
	return a.lex.Profiles()
}

// CacheStats returns cache statistics, or false when caching is disabled.
func (a *Analyzer) CacheStats() (CacheStats, bool) {
	if a.cache == nil {
		return CacheStats{}, false
	}
	return a.cache.Stats(), true
}
