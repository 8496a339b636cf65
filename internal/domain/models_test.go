package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResult_CloneIsDeep(t *testing.T) {
	adj := 0.1
	original := AnalysisResult{
		Disease:               Osteoarthritis,
		ConfidenceScore:       0.6,
		ConfidenceLevel:       MEDIUM,
		ForcedSpecialist:      StrPtr("Rheumatologist"),
		AllowedDiseases:       []Disease{Osteoarthritis, Arthritis},
		MatchedPrimary:        []string{"joint pain"},
		DemographicAdjustment: &adj,
	}

	clone := original.Clone()
	clone.AllowedDiseases[0] = Migraine
	clone.MatchedPrimary[0] = "changed"
	*clone.ForcedSpecialist = "Neurologist"
	*clone.DemographicAdjustment = 0.5

	assert.Equal(t, Osteoarthritis, original.AllowedDiseases[0])
	assert.Equal(t, "joint pain", original.MatchedPrimary[0])
	assert.Equal(t, "Rheumatologist", *original.ForcedSpecialist)
	assert.Equal(t, 0.1, *original.DemographicAdjustment)
}

func TestAnalysisResult_JSONContract(t *testing.T) {
	result := AnalysisResult{
		Disease:           FungalInfection,
		ConfidenceScore:   0.43,
		ConfidenceLevel:   MEDIUM,
		Reason:            "Matched 2 disease(s) based on clinical rules. Primary match indicates MEDIUM confidence.",
		AllowedDiseases:   []Disease{FungalInfection, Ringworm},
		MatchedPrimary:    []string{"ring shaped rash"},
		MatchedSupporting: []string{},
		MissingPrimary:    []string{},
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{
		"disease", "confidence_score", "confidence_level", "reason", "forced_specialist",
		"is_emergency", "allowed_diseases", "matched_primary", "matched_supporting", "missing_primary",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Nil(t, decoded["forced_specialist"])
	assert.NotContains(t, decoded, "demographic_adjustment")
}

func TestAnalysisResult_Helpers(t *testing.T) {
	fallback := AnalysisResult{Disease: GeneralPhysicianConsultation, AllowedDiseases: []Disease{GeneralPhysicianConsultation}}
	assert.True(t, fallback.IsFallback())
	assert.True(t, fallback.IsAllowed(GeneralPhysicianConsultation))
	assert.False(t, fallback.IsAllowed(Migraine))

	matched := AnalysisResult{Disease: Migraine}
	assert.False(t, matched.IsFallback())
	assert.Equal(t, "Migraine", matched.LogFields()["disease"])
}

func TestDiseaseProfile_IsMatchable(t *testing.T) {
	assert.True(t, DiseaseProfile{Disease: Acne, Primary: []string{"pimples"}}.IsMatchable())
	assert.True(t, DiseaseProfile{Disease: Acne, Supporting: []string{"oily skin"}}.IsMatchable())
	assert.False(t, DiseaseProfile{Disease: Acne, Exclusions: []string{"fever"}}.IsMatchable())
}

func TestDemographics_IsEmpty(t *testing.T) {
	age := 40
	assert.True(t, Demographics{}.IsEmpty())
	assert.False(t, Demographics{Age: &age}.IsEmpty())
	assert.False(t, Demographics{Gender: StrPtr("f")}.IsEmpty())
}
