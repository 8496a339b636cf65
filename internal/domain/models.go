package domain

import (
	"strings"
)

// Knowledge Base Models

// DiseaseProfile is the symptom signature of one disease. Phrase order is fixed
// and drives the order of matched and missing symptoms in results.
type DiseaseProfile struct {
	Disease    Disease  `json:"disease"`
	Primary    []string `json:"primary"`
	Supporting []string `json:"supporting"`
	Exclusions []string `json:"exclusions"`
}

// IsMatchable reports whether the profile can ever be accepted.
func (p DiseaseProfile) IsMatchable() bool {
	return len(p.Primary)+len(p.Supporting) > 0
}

// FollowUpQuestion is a yes/no clarification question offered after a
// low or medium confidence analysis.
type FollowUpQuestion struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// QuestionTypeYesNo is the only question type in the banks.
const QuestionTypeYesNo = "yes_no"

// Analysis Models

// EmergencyFinding is the outcome of the red flag screen.
type EmergencyFinding struct {
	IsEmergency      bool   `json:"is_emergency"`
	ForcedSpecialist string `json:"forced_specialist,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Rule             string `json:"rule,omitempty"`
}

// Candidate is a disease accepted by the rule matcher together with the
// evidence that produced its score.
type Candidate struct {
	Disease           Disease         `json:"disease"`
	Score             float64         `json:"score"`
	Level             ConfidenceLevel `json:"confidence_level"`
	MatchedPrimary    []string        `json:"matched_primary"`
	MatchedSupporting []string        `json:"matched_supporting"`
	MissingPrimary    []string        `json:"missing_primary"`
}

// AnalysisResult is the only interchange contract of the engine. It is a
// value type: adjustments return a new result and leave the input untouched.
type AnalysisResult struct {
	Disease               Disease         `json:"disease"`
	ConfidenceScore       float64         `json:"confidence_score"`
	ConfidenceLevel       ConfidenceLevel `json:"confidence_level"`
	Reason                string          `json:"reason"`
	ForcedSpecialist      *string         `json:"forced_specialist"`
	IsEmergency           bool            `json:"is_emergency"`
	AllowedDiseases       []Disease       `json:"allowed_diseases"`
	MatchedPrimary        []string        `json:"matched_primary"`
	MatchedSupporting     []string        `json:"matched_supporting"`
	MissingPrimary        []string        `json:"missing_primary"`
	DemographicAdjustment *float64        `json:"demographic_adjustment,omitempty"`
	RecommendedSpecialist string          `json:"recommended_specialist,omitempty"`
}

// IsFallback reports whether the result is the general physician fallback.
func (r AnalysisResult) IsFallback() bool {
	return strings.Contains(string(r.Disease), GeneralPhysician)
}

// IsAllowed reports whether the disease is part of the rule-validated set.
func (r AnalysisResult) IsAllowed(d Disease) bool {
	for _, allowed := range r.AllowedDiseases {
		if allowed == d {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can never share slices between results.
func (r AnalysisResult) Clone() AnalysisResult {
	out := r
	out.AllowedDiseases = append([]Disease{}, r.AllowedDiseases...)
	out.MatchedPrimary = append([]string{}, r.MatchedPrimary...)
	out.MatchedSupporting = append([]string{}, r.MatchedSupporting...)
	out.MissingPrimary = append([]string{}, r.MissingPrimary...)
	if r.ForcedSpecialist != nil {
		s := *r.ForcedSpecialist
		out.ForcedSpecialist = &s
	}
	if r.DemographicAdjustment != nil {
		v := *r.DemographicAdjustment
		out.DemographicAdjustment = &v
	}
	return out
}

// LogFields returns structured logging fields for audit trails. Symptom text
// never appears here.
func (r AnalysisResult) LogFields() map[string]any {
	fields := map[string]any{
		"disease":          string(r.Disease),
		"confidence_score": r.ConfidenceScore,
		"confidence_level": r.ConfidenceLevel.String(),
		"is_emergency":     r.IsEmergency,
		"allowed_count":    len(r.AllowedDiseases),
	}
	if r.ForcedSpecialist != nil {
		fields["forced_specialist"] = *r.ForcedSpecialist
	}
	if r.DemographicAdjustment != nil {
		fields["demographic_adjustment"] = *r.DemographicAdjustment
	}
	return fields
}

// Demographics carries the optional patient context. Nil fields are unknown.
type Demographics struct {
	Age    *int    `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// IsEmpty reports whether no demographic context was supplied.
func (d Demographics) IsEmpty() bool {
	return d.Age == nil && d.Gender == nil
}

// Follow-up Models

// FollowUpRequest is one follow-up round as collected by the caller.
type FollowUpRequest struct {
	Symptoms           string            `json:"symptoms"`
	Answers            map[string]string `json:"answers"`
	OriginalDisease    Disease           `json:"original_disease"`
	OriginalConfidence ConfidenceLevel   `json:"original_confidence"`
	Demographics
}

// FollowUpOutcome is the re-analysis produced by a follow-up round.
type FollowUpOutcome struct {
	Analysis          AnalysisResult     `json:"analysis"`
	AugmentedSymptoms string             `json:"augmented_symptoms"`
	NewlyConfirmed    []string           `json:"newly_confirmed"`
	Capped            bool               `json:"capped"`
	ShowFollowUp      bool               `json:"show_followup"`
	Questions         []FollowUpQuestion `json:"followup_questions"`
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
