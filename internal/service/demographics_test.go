package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

const matchedReason = "Matched 2 disease(s) based on clinical rules. Primary match indicates LOW confidence."

func intPtr(v int) *int { return &v }

func matchResult(disease domain.Disease, score float64) domain.AnalysisResult {
	return domain.AnalysisResult{
		Disease:         disease,
		ConfidenceScore: score,
		ConfidenceLevel: domain.LevelForScore(score),
		Reason:          matchedReason,
		AllowedDiseases: []domain.Disease{disease},
	}
}

func TestDemographicAdjuster_Adjust(t *testing.T) {
	a := NewDemographicAdjuster(lexicon.Default())

	tests := []struct {
		name       string
		disease    domain.Disease
		score      float64
		age        *int
		gender     *string
		wantScore  float64
		wantLevel  domain.ConfidenceLevel
		wantAdj    *float64
		wantReason string
	}{
		{
			name:       "Elderly osteoarthritis",
			disease:    domain.Osteoarthritis,
			score:      0.29333333333333333,
			age:        intPtr(70),
			wantScore:  0.39,
			wantLevel:  domain.LOW,
			wantAdj:    floatPtr(0.1),
			wantReason: matchedReason + " [Demographic context: age ≥65 increases likelihood of Osteoarthritis]",
		},
		{
			name:       "No association still rounds",
			disease:    domain.Acne,
			score:      0.29333333333333333,
			age:        intPtr(12),
			wantScore:  0.29,
			wantLevel:  domain.LOW,
			wantReason: matchedReason,
		},
		{
			name:       "Age gap 31-44 has no bracket",
			disease:    domain.Osteoarthritis,
			score:      0.29333333333333333,
			age:        intPtr(40),
			wantScore:  0.29,
			wantLevel:  domain.LOW,
			wantReason: matchedReason,
		},
		{
			name:       "Female urinary tract infection",
			disease:    domain.UrinaryTractInfection,
			score:      0.175,
			gender:     domain.StrPtr("female"),
			wantScore:  0.29,
			wantLevel:  domain.LOW,
			wantAdj:    floatPtr(0.12),
			wantReason: matchedReason + " [Demographic context: Urinary Tract Infection is more common in females]",
		},
		{
			name:       "Gender is trimmed and case-insensitive",
			disease:    domain.KidneyStones,
			score:      0.5,
			gender:     domain.StrPtr("  M "),
			wantScore:  0.58,
			wantLevel:  domain.MEDIUM,
			wantAdj:    floatPtr(0.08),
			wantReason: matchedReason + " [Demographic context: Kidney Stones is more common in males]",
		},
		{
			name:       "Pediatric suppression combined with gender",
			disease:    domain.PCOS,
			score:      0.5,
			age:        intPtr(14),
			gender:     domain.StrPtr("f"),
			wantScore:  0.55,
			wantLevel:  domain.MEDIUM,
			wantAdj:    floatPtr(0.05),
			wantReason: matchedReason + " [Demographic context: PCOS is rare in pediatric patients; PCOS is more common in females]",
		},
		{
			name:       "Total shift is clamped",
			disease:    domain.PCOS,
			score:      0.7,
			age:        intPtr(50),
			gender:     domain.StrPtr("female"),
			wantScore:  0.85,
			wantLevel:  domain.HIGH,
			wantAdj:    floatPtr(0.15),
			wantReason: matchedReason + " [Demographic context: age 45-64 is typical for PCOS; PCOS is more common in females]",
		},
		{
			name:       "Score floor",
			disease:    domain.Osteoarthritis,
			score:      0.05,
			age:        intPtr(10),
			wantScore:  0,
			wantLevel:  domain.LOW,
			wantAdj:    floatPtr(-0.1),
			wantReason: matchedReason + " [Demographic context: Osteoarthritis is rare in pediatric patients]",
		},
		{
			name:       "Score ceiling",
			disease:    domain.Hypertension,
			score:      0.95,
			age:        intPtr(80),
			wantScore:  1,
			wantLevel:  domain.HIGH,
			wantAdj:    floatPtr(0.1),
			wantReason: matchedReason + " [Demographic context: age ≥65 increases likelihood of Hypertension]",
		},
		{
			name:       "Level uses the unrounded score",
			disease:    domain.Acne,
			score:      0.3451,
			age:        intPtr(22),
			wantScore:  0.4,
			wantLevel:  domain.LOW,
			wantAdj:    floatPtr(0.05),
			wantReason: matchedReason + " [Demographic context: age 18-30 aligns with typical Acne demographics]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := matchResult(tt.disease, tt.score)
			got := a.Adjust(input, tt.age, tt.gender)

			assert.Equal(t, tt.disease, got.Disease)
			assert.Equal(t, tt.wantScore, got.ConfidenceScore)
			assert.Equal(t, tt.wantLevel, got.ConfidenceLevel)
			assert.Equal(t, tt.wantReason, got.Reason)
			if tt.wantAdj == nil {
				assert.Nil(t, got.DemographicAdjustment)
			} else {
				require.NotNil(t, got.DemographicAdjustment)
				assert.Equal(t, *tt.wantAdj, *got.DemographicAdjustment)
				assert.LessOrEqual(t, *got.DemographicAdjustment, maxDemographicShift)
				assert.GreaterOrEqual(t, *got.DemographicAdjustment, -maxDemographicShift)
			}

			// the input is never modified
			assert.Equal(t, matchedReason, input.Reason)
			assert.Equal(t, tt.score, input.ConfidenceScore)
		})
	}
}

func TestDemographicAdjuster_Guards(t *testing.T) {
	a := NewDemographicAdjuster(lexicon.Default())
	age := intPtr(70)

	unrounded := matchResult(domain.Osteoarthritis, 0.29333333333333333)
	assert.Equal(t, unrounded, a.Adjust(unrounded, nil, nil))

	emergency := emergencyResult(domain.EmergencyFinding{IsEmergency: true, ForcedSpecialist: "Cardiologist", Reason: "Red Flag"})
	assert.Equal(t, emergency, a.Adjust(emergency, age, domain.StrPtr("male")))

	fallback := fallbackResult(noMatchScore, noMatchReason)
	assert.Equal(t, fallback, a.Adjust(fallback, age, domain.StrPtr("female")))
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0.42, roundScore(0.425))
	assert.Equal(t, 0.43, roundScore(0.42999999999999994))
	assert.Equal(t, 0.8, roundScore(0.7999999999999999))
	assert.Equal(t, -0.05, roundScore(-0.05000000000000002))
}

func floatPtr(v float64) *float64 { return &v }
