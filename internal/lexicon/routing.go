package lexicon

import (
	"math"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// SpecialistRoute lists the diseases a specialist handles. A disease routed by
// several specialists resolves to the first route that lists it.
type SpecialistRoute struct {
	Specialist string
	Diseases   []domain.Disease
}

// DemographicRule shifts the score of the listed diseases. Reason is a
// format string receiving the disease name.
type DemographicRule struct {
	Diseases []domain.Disease
	Delta    float64
	Reason   string
}

// AgeBracket is an inclusive age range. Brackets are checked in order and the
// first one containing the age wins.
type AgeBracket struct {
	Name  string
	Min   int
	Max   int
	Rules []DemographicRule
}

// Contains reports whether age falls inside the bracket.
func (b AgeBracket) Contains(age int) bool {
	return age >= b.Min && age <= b.Max
}

// GenderRule applies per-disease deltas when the gender matches one of Keys.
type GenderRule struct {
	Keys   []string
	Deltas []DiseaseDelta
	Reason string
}

// DiseaseDelta is a single disease adjustment.
type DiseaseDelta struct {
	Disease domain.Disease
	Delta   float64
}

func specialistRoutes() []SpecialistRoute {
	return []SpecialistRoute{
		{
			Specialist: "Dermatologist",
			Diseases: []domain.Disease{
				domain.FungalInfection, domain.Acne, domain.Psoriasis, domain.Impetigo, domain.ChickenPox,
				domain.Eczema, domain.ContactDermatitis, domain.Rosacea, domain.Shingles, domain.Urticaria,
				domain.DiaperRash, domain.SeborrheicDermatitis, domain.Ringworm, domain.Conjunctivitis,
			},
		},
		{Specialist: "Allergist/Immunologist", Diseases: []domain.Disease{domain.Allergy, domain.Urticaria}},
		{
			Specialist: "Gastroenterologist",
			Diseases: []domain.Disease{
				domain.GERD, domain.Gastroenteritis, domain.Jaundice, domain.HepatitisA, domain.HepatitisB,
				domain.HepatitisC, domain.IBS, domain.Gastritis, domain.FoodPoisoning, domain.PepticUlcer,
			},
		},
		{
			Specialist: "Endocrinologist",
			Diseases:   []domain.Disease{domain.Diabetes, domain.Hypothyroidism, domain.Hyperthyroidism, domain.PCOS},
		},
		{
			Specialist: "Pulmonologist",
			Diseases: []domain.Disease{
				domain.BronchialAsthma, domain.Pneumonia, domain.Tuberculosis, domain.COPD, domain.PostViralCough,
			},
		},
		{Specialist: "Cardiologist", Diseases: []domain.Disease{domain.Hypertension, domain.Angina, domain.Palpitations}},
		{
			Specialist: "Neurologist",
			Diseases: []domain.Disease{
				domain.Migraine, domain.TensionHeadache, domain.CervicalRadiculopathy, domain.Vertigo, domain.Meningitis,
			},
		},
		{
			Specialist: "Infectious Disease Specialist",
			Diseases: []domain.Disease{
				domain.Malaria, domain.Dengue, domain.Typhoid, domain.ViralFever, domain.Flu, domain.COVID19, domain.Tuberculosis,
			},
		},
		{Specialist: "Rheumatologist", Diseases: []domain.Disease{domain.Osteoarthritis, domain.Arthritis, domain.Sciatica}},
		{Specialist: "Urologist", Diseases: []domain.Disease{domain.UrinaryTractInfection, domain.KidneyStones}},
		{
			Specialist: "ENT Specialist",
			Diseases:   []domain.Disease{domain.Sinusitis, domain.Tonsillitis, domain.Pharyngitis, domain.OtitisMedia},
		},
		{Specialist: "Orthopedic", Diseases: []domain.Disease{domain.MuscleStrain, domain.Sciatica, domain.Arthritis}},
		{
			Specialist: "Pediatrician",
			Diseases:   []domain.Disease{domain.DiaperRash, domain.OtitisMedia, domain.HandFootMouthDisease},
		},
		{Specialist: "Gynecologist", Diseases: []domain.Disease{domain.PCOS}},
		{
			Specialist: domain.GeneralPhysician,
			Diseases: []domain.Disease{
				domain.CommonCold, domain.ViralFever, domain.Flu, domain.Gastroenteritis, domain.FoodPoisoning, domain.Anemia,
			},
		},
		{Specialist: "Ophthalmologist", Diseases: []domain.Disease{domain.Conjunctivitis}},
		{Specialist: "Hematologist", Diseases: []domain.Disease{domain.Anemia}},
	}
}

// ageBrackets leave 31-44 uncovered on purpose: no association is claimed there.
func ageBrackets() []AgeBracket {
	return []AgeBracket{
		{
			Name: "elderly",
			Min:  65,
			Max:  math.MaxInt,
			Rules: []DemographicRule{{
				Diseases: []domain.Disease{
					domain.Osteoarthritis, domain.COPD, domain.Hypertension, domain.Diabetes, domain.Hypothyroidism,
				},
				Delta:  0.10,
				Reason: "age ≥65 increases likelihood of %s",
			}},
		},
		{
			Name: "middle_aged",
			Min:  45,
			Max:  64,
			Rules: []DemographicRule{{
				Diseases: []domain.Disease{
					domain.Osteoarthritis, domain.Hypertension, domain.PCOS, domain.Hypothyroidism, domain.Diabetes, domain.Migraine,
				},
				Delta:  0.08,
				Reason: "age 45-64 is typical for %s",
			}},
		},
		{
			Name: "young_adult",
			Min:  18,
			Max:  30,
			Rules: []DemographicRule{{
				Diseases: []domain.Disease{domain.Acne, domain.PCOS, domain.Migraine, domain.ViralFever, domain.CommonCold},
				Delta:    0.05,
				Reason:   "age 18-30 aligns with typical %s demographics",
			}},
		},
		{
			Name: "pediatric",
			Min:  math.MinInt,
			Max:  17,
			Rules: []DemographicRule{
				{
					Diseases: []domain.Disease{
						domain.Dengue, domain.ViralFever, domain.CommonCold, domain.Tonsillitis, domain.Conjunctivitis, domain.ChickenPox,
					},
					Delta:  0.07,
					Reason: "pediatric age increases %s likelihood",
				},
				{
					Diseases: []domain.Disease{domain.Osteoarthritis, domain.COPD, domain.PCOS},
					Delta:    -0.10,
					Reason:   "%s is rare in pediatric patients",
				},
			},
		},
	}
}

func genderRules() []GenderRule {
	return []GenderRule{
		{
			Keys: []string{"female", "f"},
			Deltas: []DiseaseDelta{
				{domain.UrinaryTractInfection, 0.12},
				{domain.PCOS, 0.15},
				{domain.Migraine, 0.08},
				{domain.Hypothyroidism, 0.08},
				{domain.Hyperthyroidism, 0.06},
				{domain.Urticaria, 0.05},
			},
			Reason: "%s is more common in females",
		},
		{
			Keys: []string{"male", "m"},
			Deltas: []DiseaseDelta{
				{domain.COPD, 0.06},
				{domain.KidneyStones, 0.08},
			},
			Reason: "%s is more common in males",
		},
	}
}

// nonSpecificTerms mark input too vague to match on when it is also very short.
func nonSpecificTerms() []string {
	return []string{
		"fatigue", "tired", "tiredness", "weakness", "weak", "fever",
		"headache", "pain", "ache", "nausea", "dizziness", "dizzy",
		"unwell", "sick", "malaise", "not feeling well", "feeling sick",
	}
}

// reservedAnswerKeys are request fields that can travel inside an answer map
// but never denote a question.
func reservedAnswerKeys() []string {
	return []string{"symptoms", "is_followup", "age", "gender", "original_disease", "original_confidence"}
}
