package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

// maxDemographicShift bounds the total demographic adjustment either way.
const maxDemographicShift = 0.15

// DemographicAdjuster nudges the confidence of a rule match using age and
// gender associations. It never changes the predicted disease.
type DemographicAdjuster struct {
	lex *lexicon.Lexicon
}

// NewDemographicAdjuster creates a new demographic adjuster
func NewDemographicAdjuster(lex *lexicon.Lexicon) *DemographicAdjuster {
	return &DemographicAdjuster{lex: lex}
}

// Adjust returns an adjusted copy of result. Emergencies, general physician
// fallbacks and requests without demographics come back unchanged.
func (a *DemographicAdjuster) Adjust(result domain.AnalysisResult, age *int, gender *string) domain.AnalysisResult {
	if age == nil && gender == nil {
		return result
	}
	if result.IsEmergency || result.IsFallback() {
		return result
	}

	disease := result.Disease
	adjustment := 0.0
	var reasons []string

	if age != nil {
		for _, bracket := range a.lex.AgeBrackets() {
			if !bracket.Contains(*age) {
				continue
			}
			for _, rule := range bracket.Rules {
				if containsDisease(rule.Diseases, disease) {
					adjustment += rule.Delta
					reasons = append(reasons, fmt.Sprintf(rule.Reason, disease))
				}
			}
			break
		}
	}

	if gender != nil {
		g := strings.ToLower(strings.TrimSpace(*gender))
		for _, rule := range a.lex.GenderRules() {
			if !contains(rule.Keys, g) {
				continue
			}
			for _, d := range rule.Deltas {
				if d.Disease == disease {
					adjustment += d.Delta
					reasons = append(reasons, fmt.Sprintf(rule.Reason, disease))
					break
				}
			}
			break
		}
	}

	adjustment = clamp(adjustment, -maxDemographicShift, maxDemographicShift)
	newScore := clamp(result.ConfidenceScore+adjustment, 0, 1)

	out := result.Clone()
	out.ConfidenceScore = roundScore(newScore)
	out.ConfidenceLevel = domain.LevelForScore(newScore)

	if len(reasons) > 0 {
		out.Reason = result.Reason + " [Demographic context: " + strings.Join(reasons, "; ") + "]"
		rounded := roundScore(adjustment)
		out.DemographicAdjustment = &rounded
	}
	return out
}

func containsDisease(list []domain.Disease, d domain.Disease) bool {
	for _, v := range list {
		if v == d {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundScore rounds to two decimals from the exact binary value, ties to
// even, so 0.425 (stored just below) becomes 0.42.
func roundScore(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
