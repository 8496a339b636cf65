package service

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

func TestEmergencyDetector_Detect(t *testing.T) {
	d := NewEmergencyDetector()

	tests := []struct {
		name       string
		text       string
		rule       string
		specialist string
	}{
		{"Radiating chest pain", "chest pain radiating to left arm", "cardiac", "Cardiologist"},
		{"Chest pain with breathlessness", "chest pain shortness of breath", "cardiac", "Cardiologist"},
		{"Severe chest tightness", "severe chest tightness", "cardiac", "Cardiologist"},
		{"Chest pain with cold sweat", "chest pressure and cold sweat", "cardiac", "Cardiologist"},
		{"Palpitations with breathlessness", "palpitations and shortness of breath", "cardiac", "Cardiologist"},
		{"Stroke signs", "sudden weakness one side slurred speech", "stroke", "Neurologist"},
		{"Facial droop", "facial droop", "stroke", "Neurologist"},
		{"Blue lips", "blue lips", "respiratory_distress", "Pulmonologist"},
		{"Wheezing with cyanosis", "wheezing cyanosis", "respiratory_distress", "Pulmonologist"},
		{"Gasping for breath", "shortness of breath and gasping", "respiratory_distress", "Pulmonologist"},
		{"Fainting", "unconscious fainting", "loss_of_consciousness", domain.GeneralPhysician},
		{"Meningitis triad", "stiff neck high fever fever headache", "meningitis", "Neurologist"},
		{"Cardiac outranks unconsciousness", "chest pain radiating unconscious", "cardiac", "Cardiologist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding := d.Detect(tt.text)
			assert.True(t, finding.IsEmergency)
			assert.Equal(t, tt.rule, finding.Rule)
			assert.Equal(t, tt.specialist, finding.ForcedSpecialist)
			assert.True(t, strings.HasPrefix(finding.Reason, "Red Flag: "))
		})
	}
}

func TestEmergencyDetector_NoFalsePositives(t *testing.T) {
	d := NewEmergencyDetector()

	for _, text := range []string{
		"",
		"chest pain",
		"chest pain chest discomfort cough with mucus high fever fever",
		"chest pain shortness of breath cough",
		"palpitations shortness of breath cough",
		"facial rash",
		"stiff neck fever",
		"shortness of breath wheezing",
		"headache nausea sensitivity to light",
	} {
		t.Run(text, func(t *testing.T) {
			finding := d.Detect(text)
			assert.False(t, finding.IsEmergency)
			assert.Empty(t, finding.Reason)
		})
	}
}

func TestEmergencyDetector_Reasons(t *testing.T) {
	d := NewEmergencyDetector()

	assert.Equal(t, "Red Flag: Potential Cardiac Emergency detected (Chest pain with warning signs).",
		d.Detect("crushing chest pain").Reason)
	assert.Equal(t, "Red Flag: Potential Stroke signs detected.",
		d.Detect("slurred speech").Reason)
	assert.Equal(t, "Red Flag: Severe Respiratory Distress (Breathlessness with critical signs).",
		d.Detect("blue lips").Reason)
	assert.Equal(t, "Red Flag: Loss of consciousness.",
		d.Detect("collapsed").Reason)
	assert.Equal(t, "Red Flag: Potential Meningitis - Requires immediate medical attention.",
		d.Detect("neck stiffness fever headache").Reason)
}

// Every combination of red flag fragments and ordinary symptoms must come
// back as HIGH with score 1.0 whenever an emergency is reported.
func TestAnalyzer_EmergencyAlwaysHigh(t *testing.T) {
	logger, _ := test.NewNullLogger()
	analyzer := NewAnalyzer(logger, lexicon.Default())

	fragments := []string{
		"chest pain", "left arm", "radiating", "jaw pain", "cold sweat", "nausea",
		"shortness of breath", "cough", "palpitations", "blue lips", "slurred speech",
		"sudden weakness", "one side", "fainting", "stiff neck", "high fever",
		"headache", "wheezing", "cyanosis", "itchy rash", "joint pain", "dizzy",
	}

	emergencies := 0
	for i := range fragments {
		for j := range fragments {
			for k := range fragments {
				input := fragments[i] + " " + fragments[j] + " and " + fragments[k]
				result := analyzer.RunAnalysis(context.Background(), input)
				if !result.IsEmergency {
					assert.NotEqual(t, domain.EmergencyAlert, result.Disease, input)
					continue
				}
				emergencies++
				assert.Equal(t, domain.HIGH, result.ConfidenceLevel, input)
				assert.Equal(t, 1.0, result.ConfidenceScore, input)
				assert.Equal(t, domain.EmergencyAlert, result.Disease, input)
				assert.Empty(t, result.AllowedDiseases, input)
				if assert.NotNil(t, result.ForcedSpecialist, input) {
					assert.NotEmpty(t, *result.ForcedSpecialist, input)
				}
			}
		}
	}
	assert.Greater(t, emergencies, 0)
}

func TestMustHoldEmergencyInvariant(t *testing.T) {
	assert.NotPanics(t, func() {
		mustHoldEmergencyInvariant(emergencyResult(domain.EmergencyFinding{IsEmergency: true, ForcedSpecialist: "Cardiologist"}))
	})
	assert.NotPanics(t, func() {
		mustHoldEmergencyInvariant(fallbackResult(noMatchScore, noMatchReason))
	})
	assert.Panics(t, func() {
		result := emergencyResult(domain.EmergencyFinding{IsEmergency: true})
		result.ConfidenceLevel = domain.MEDIUM
		mustHoldEmergencyInvariant(result)
	})
	assert.Panics(t, func() {
		result := emergencyResult(domain.EmergencyFinding{IsEmergency: true})
		result.ConfidenceScore = 0.9
		mustHoldEmergencyInvariant(result)
	})
}
