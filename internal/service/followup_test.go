package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

func TestFollowUp_ShouldShow(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	tests := []struct {
		level      domain.ConfidenceLevel
		isFollowUp bool
		expected   bool
	}{
		{domain.HIGH, false, false},
		{domain.HIGH, true, false},
		{domain.MEDIUM, false, true},
		{domain.MEDIUM, true, false},
		{domain.LOW, false, true},
		{domain.LOW, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, f.ShouldShowFollowUp(tt.level, tt.isFollowUp), "%s/%v", tt.level, tt.isFollowUp)
	}
}

func TestFollowUp_Questions(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	qs := f.Questions(domain.Migraine, 0)
	require.Len(t, qs, 4)
	assert.Equal(t, "migraine_one_side", qs[0].ID)

	assert.Len(t, f.Questions(domain.Migraine, 2), 2)

	fallback := f.Questions(domain.GeneralPhysicianConsultation, 4)
	require.Len(t, fallback, 3)
	assert.Equal(t, []string{"viral_fatigue", "viral_fever", "gastritis_nausea"},
		[]string{fallback[0].ID, fallback[1].ID, fallback[2].ID})

	// callers own the returned slice
	qs[0].Text = "changed"
	assert.NotEqual(t, "changed", f.Questions(domain.Migraine, 0)[0].Text)
}

func TestFollowUp_AnswersToSymptoms(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	keywords, confirmed := f.AnswersToSymptoms(map[string]string{
		"psoriasis_silvery": "yes",
		"psoriasis_chronic": " Y ",
		"fungal_itch":       "no",
		"symptoms":          "yes",
		"unknown_question":  "yes",
	})

	assert.Equal(t, "chronic scaly rash, silvery scales, thick plaques", keywords)
	assert.Equal(t, []string{"chronic scaly rash", "silvery scales", "thick plaques"}, confirmed)
}

func TestFollowUp_AnswersDeduplicate(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	keywords, confirmed := f.AnswersToSymptoms(map[string]string{
		"fungal_ring":       "yes",
		"fungal_itch":       "YES",
		"urticaria_hives":   "yes",
		"psoriasis_chronic": "maybe",
	})

	symptoms, ok := lexicon.Default().QuestionSymptoms("urticaria_hives")
	require.True(t, ok)

	assert.Equal(t, "itching, ring shaped rash, scaly border, "+symptoms, keywords)
	assert.Equal(t, "itching", confirmed[0])
	seen := map[string]bool{}
	for _, s := range confirmed {
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestFollowUp_AllNo(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	keywords, confirmed := f.AnswersToSymptoms(map[string]string{
		"fungal_ring": "no",
		"fungal_itch": "n",
	})
	assert.Equal(t, "", keywords)
	assert.Empty(t, confirmed)

	keywords, confirmed = f.AnswersToSymptoms(nil)
	assert.Equal(t, "", keywords)
	assert.NotNil(t, confirmed)
	assert.Empty(t, confirmed)
}

func TestFollowUp_CapConfidence(t *testing.T) {
	f := NewFollowUpOrchestrator(lexicon.Default())

	assert.Equal(t, domain.MEDIUM, f.CapConfidence(domain.LOW, domain.HIGH))
	assert.Equal(t, domain.HIGH, f.CapConfidence(domain.MEDIUM, domain.HIGH))
	assert.Equal(t, domain.MEDIUM, f.CapConfidence(domain.LOW, domain.MEDIUM))
	assert.Equal(t, domain.LOW, f.CapConfidence(domain.HIGH, domain.LOW))
}
