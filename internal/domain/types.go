// Package domain contains the core entities of the symptom triage engine:
// confidence levels, the closed set of diseases known to the knowledge base,
// analysis results and the configuration model shared by the outer surfaces.
//
// The engine is a decision-support aid. Results are never a diagnosis and
// emergencies always escalate to a specialist.
package domain

import (
	"errors"
)

// ConfidenceLevel is the discretized bucket derived from a confidence score.
type ConfidenceLevel string

const (
	HIGH   ConfidenceLevel = "HIGH"
	MEDIUM ConfidenceLevel = "MEDIUM"
	LOW    ConfidenceLevel = "LOW"
)

// Score thresholds for the confidence buckets.
const (
	HighThreshold   = 0.75
	MediumThreshold = 0.40
)

// Validation errors for triage data integrity
var (
	ErrInvalidConfidence = errors.New("invalid confidence level")
	ErrUnknownDisease    = errors.New("unknown disease")
)

// LevelForScore maps a continuous score onto the fixed confidence thresholds.
func LevelForScore(score float64) ConfidenceLevel {
	switch {
	case score >= HighThreshold:
		return HIGH
	case score >= MediumThreshold:
		return MEDIUM
	default:
		return LOW
	}
}

// IsValid validates the confidence level.
func (cl ConfidenceLevel) IsValid() bool {
	switch cl {
	case HIGH, MEDIUM, LOW:
		return true
	default:
		return false
	}
}

// String returns the string representation of the confidence level.
func (cl ConfidenceLevel) String() string {
	return string(cl)
}

// Rank orders levels so that LOW < MEDIUM < HIGH. Unknown levels rank below LOW.
func (cl ConfidenceLevel) Rank() int {
	switch cl {
	case HIGH:
		return 3
	case MEDIUM:
		return 2
	case LOW:
		return 1
	default:
		return 0
	}
}

// ParseConfidenceLevel accepts the canonical upper-case names only.
func ParseConfidenceLevel(s string) (ConfidenceLevel, error) {
	cl := ConfidenceLevel(s)
	if !cl.IsValid() {
		return "", ErrInvalidConfidence
	}
	return cl, nil
}

// Disease identifies an entry of the knowledge base. The set is closed:
// anything not declared below is rejected by IsValid.
type Disease string

const (
	Psoriasis             Disease = "Psoriasis"
	ChickenPox            Disease = "Chicken pox"
	Impetigo              Disease = "Impetigo"
	Allergy               Disease = "Allergy"
	FungalInfection       Disease = "Fungal infection"
	GERD                  Disease = "GERD"
	Pneumonia             Disease = "Pneumonia"
	BronchialAsthma       Disease = "Bronchial Asthma"
	Eczema                Disease = "Eczema"
	ContactDermatitis     Disease = "Contact Dermatitis"
	Rosacea               Disease = "Rosacea"
	Shingles              Disease = "Shingles"
	Acne                  Disease = "Acne"
	Urticaria             Disease = "Urticaria"
	Conjunctivitis        Disease = "Conjunctivitis"
	SeborrheicDermatitis  Disease = "Seborrheic Dermatitis"
	Ringworm              Disease = "Ringworm"
	COPD                  Disease = "COPD"
	Sinusitis             Disease = "Sinusitis"
	Tonsillitis           Disease = "Tonsillitis"
	PostViralCough        Disease = "Post-viral Cough"
	CommonCold            Disease = "Common Cold"
	Pharyngitis           Disease = "Pharyngitis"
	IBS                   Disease = "IBS"
	Gastritis             Disease = "Gastritis"
	FoodPoisoning         Disease = "Food Poisoning"
	PepticUlcer           Disease = "Peptic Ulcer"
	Gastroenteritis       Disease = "Gastroenteritis"
	TensionHeadache       Disease = "Tension Headache"
	Migraine              Disease = "Migraine"
	CervicalRadiculopathy Disease = "Cervical Radiculopathy"
	Vertigo               Disease = "Vertigo"
	PCOS                  Disease = "PCOS"
	Hypothyroidism        Disease = "Hypothyroidism"
	Hyperthyroidism       Disease = "Hyperthyroidism"
	Diabetes              Disease = "Diabetes"
	ViralFever            Disease = "Viral Fever"
	Flu                   Disease = "Flu"
	Dengue                Disease = "Dengue"
	Typhoid               Disease = "Typhoid"
	Malaria               Disease = "Malaria"
	Tuberculosis          Disease = "Tuberculosis"
	COVID19               Disease = "COVID-19"
	HepatitisA            Disease = "Hepatitis A"
	HepatitisB            Disease = "Hepatitis B"
	HepatitisC            Disease = "Hepatitis C"
	Jaundice              Disease = "Jaundice"
	Meningitis            Disease = "Meningitis"
	Anemia                Disease = "Anemia"
	Angina                Disease = "Angina"
	Palpitations          Disease = "Palpitations"
	Hypertension          Disease = "Hypertension"
	UrinaryTractInfection Disease = "Urinary Tract Infection"
	KidneyStones          Disease = "Kidney Stones"
	DiaperRash            Disease = "Diaper Rash"
	OtitisMedia           Disease = "Otitis Media"
	HandFootMouthDisease  Disease = "Hand Foot Mouth Disease"
	Arthritis             Disease = "Arthritis"
	MuscleStrain          Disease = "Muscle Strain"
	Sciatica              Disease = "Sciatica"
	Osteoarthritis        Disease = "Osteoarthritis"
)

// Sentinel outcomes. They are valid result values but never knowledge base keys.
const (
	GeneralPhysicianConsultation Disease = "General Physician Consultation"
	EmergencyAlert               Disease = "EMERGENCY ALERT"
)

// GeneralPhysician is the default specialist for fallbacks and unrouted diseases.
const GeneralPhysician = "General Physician"

var knownDiseases = func() map[Disease]struct{} {
	all := []Disease{
		Psoriasis, ChickenPox, Impetigo, Allergy, FungalInfection, GERD, Pneumonia,
		BronchialAsthma, Eczema, ContactDermatitis, Rosacea, Shingles, Acne, Urticaria,
		Conjunctivitis, SeborrheicDermatitis, Ringworm, COPD, Sinusitis, Tonsillitis,
		PostViralCough, CommonCold, Pharyngitis, IBS, Gastritis, FoodPoisoning, PepticUlcer,
		Gastroenteritis, TensionHeadache, Migraine, CervicalRadiculopathy, Vertigo, PCOS,
		Hypothyroidism, Hyperthyroidism, Diabetes, ViralFever, Flu, Dengue, Typhoid, Malaria,
		Tuberculosis, COVID19, HepatitisA, HepatitisB, HepatitisC, Jaundice, Meningitis,
		Anemia, Angina, Palpitations, Hypertension, UrinaryTractInfection, KidneyStones,
		DiaperRash, OtitisMedia, HandFootMouthDisease, Arthritis, MuscleStrain, Sciatica,
		Osteoarthritis,
	}
	m := make(map[Disease]struct{}, len(all))
	for _, d := range all {
		m[d] = struct{}{}
	}
	return m
}()

// IsValid reports whether the disease belongs to the knowledge base.
func (d Disease) IsValid() bool {
	_, ok := knownDiseases[d]
	return ok
}

// IsSentinel reports whether the disease is one of the non-profile outcomes.
func (d Disease) IsSentinel() bool {
	return d == GeneralPhysicianConsultation || d == EmergencyAlert
}

// String returns the display name of the disease.
func (d Disease) String() string {
	return string(d)
}

// LogFields returns structured logging fields for audit trails.
func (d Disease) LogFields() map[string]any {
	return map[string]any{
		"disease":     string(d),
		"is_known":    d.IsValid(),
		"is_sentinel": d.IsSentinel(),
	}
}

// KnownDiseaseCount returns the size of the closed disease set.
func KnownDiseaseCount() int {
	return len(knownDiseases)
}
