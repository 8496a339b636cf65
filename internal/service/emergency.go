package service

import (
	"strings"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// redFlagRule is one emergency pattern. Rules are evaluated in slice order
// and the first match wins.
type redFlagRule struct {
	name       string
	specialist string
	reason     string
	match      func(text string) bool
}

// EmergencyDetector screens normalized text for red-flag symptom
// combinations before any disease matching happens.
type EmergencyDetector struct {
	rules []redFlagRule
}

// NewEmergencyDetector creates a detector with the built-in red-flag rules
func NewEmergencyDetector() *EmergencyDetector {
	return &EmergencyDetector{rules: redFlagRules()}
}

// Detect returns the first red flag found in normalized text.
func (d *EmergencyDetector) Detect(normalized string) domain.EmergencyFinding {
	for _, rule := range d.rules {
		if rule.match(normalized) {
			return domain.EmergencyFinding{
				IsEmergency:      true,
				ForcedSpecialist: rule.specialist,
				Reason:           rule.reason,
				Rule:             rule.name,
			}
		}
	}
	return domain.EmergencyFinding{}
}

func redFlagRules() []redFlagRule {
	return []redFlagRule{
		{
			name:       "cardiac",
			specialist: "Cardiologist",
			reason:     "Red Flag: Potential Cardiac Emergency detected (Chest pain with warning signs).",
			match:      isCardiacEmergency,
		},
		{
			name:       "stroke",
			specialist: "Neurologist",
			reason:     "Red Flag: Potential Stroke signs detected.",
			match:      isStroke,
		},
		{
			name:       "respiratory_distress",
			specialist: "Pulmonologist",
			reason:     "Red Flag: Severe Respiratory Distress (Breathlessness with critical signs).",
			match:      isRespiratoryDistress,
		},
		{
			name:       "loss_of_consciousness",
			specialist: domain.GeneralPhysician,
			reason:     "Red Flag: Loss of consciousness.",
			match: func(t string) bool {
				return has(t, "unconscious") || has(t, "fainting") || has(t, "collapsed")
			},
		},
		{
			name:       "meningitis",
			specialist: "Neurologist",
			reason:     "Red Flag: Potential Meningitis - Requires immediate medical attention.",
			match: func(t string) bool {
				return (has(t, "stiff neck") || has(t, "neck stiffness")) &&
					(has(t, "high fever") || has(t, "fever")) &&
					(has(t, "sensitivity to light") || has(t, "headache"))
			},
		},
	}
}

func has(text, sub string) bool {
	return strings.Contains(text, sub)
}

// isCardiacEmergency treats chest pain alone as non-urgent: it needs a
// cardiac warning sign, and breathlessness only counts when there is no
// productive respiratory picture.
func isCardiacEmergency(t string) bool {
	productive := has(t, "cough") || has(t, "mucus") || has(t, "phlegm") || has(t, "wheezing")

	if has(t, "palpitations") && (has(t, "breath") || has(t, "unconscious")) && !productive {
		return true
	}

	chestPain := has(t, "chest") && (has(t, "pain") || has(t, "pressure") || has(t, "tightness"))
	if !chestPain {
		return false
	}

	painOrSpreading := has(t, "pain") || has(t, "spreading")
	switch {
	case has(t, "left arm") || (has(t, "arm") && painOrSpreading) || has(t, "radiating"):
		return true
	case has(t, "jaw") && painOrSpreading:
		return true
	case has(t, "back") && has(t, "pain") && has(t, "spreading"):
		return true
	case has(t, "crushing") || has(t, "squeezing") || has(t, "severe"):
		return true
	case has(t, "cold sweat") || has(t, "sweating") || (has(t, "sweat") && has(t, "nausea")):
		return true
	case has(t, "nausea") && (has(t, "arm") || has(t, "jaw") || has(t, "dizz")):
		return true
	case has(t, "sudden") && (has(t, "weakness") || has(t, "dizz")):
		return true
	case (has(t, "shortness of breath") || has(t, "breathless")) && !productive:
		return true
	}
	return false
}

func isStroke(t string) bool {
	gate := (has(t, "weakness") && has(t, "sudden")) || has(t, "slurred") || has(t, "droop") || has(t, "facial")
	if !gate {
		return false
	}
	return has(t, "slurred speech") || has(t, "facial droop") || (has(t, "one side") && has(t, "weak"))
}

func isRespiratoryDistress(t string) bool {
	blueLips := has(t, "blue") && has(t, "lips")
	if blueLips || (has(t, "wheezing") && has(t, "cyanosis")) {
		return true
	}
	if !has(t, "shortness of breath") {
		return false
	}
	return (has(t, "chest") && has(t, "pain") && has(t, "radiating")) ||
		has(t, "cyanosis") ||
		has(t, "unconscious") ||
		has(t, "collapse") ||
		has(t, "gasping") ||
		(has(t, "cannot") && has(t, "breath"))
}
