package service

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

const (
	primaryWeight    = 0.7
	supportingWeight = 0.3

	// maxAllowedDiseases bounds the rule-validated set handed to callers.
	maxAllowedDiseases = 2
	// maxMissingPrimary bounds the missing symptom list shown to users.
	maxMissingPrimary = 3
	// minSupportingMatches accepts a profile without any primary match.
	minSupportingMatches = 2
)

// RuleMatcher scores normalized symptom text against every disease profile.
// Scoring is deterministic: a weighted ratio of matched primary and
// supporting symptoms, ranked with profile order as the tie break.
type RuleMatcher struct {
	logger *logrus.Logger
	lex    *lexicon.Lexicon
}

// NewRuleMatcher creates a new rule matcher
func NewRuleMatcher(logger *logrus.Logger, lex *lexicon.Lexicon) *RuleMatcher {
	return &RuleMatcher{
		logger: logger,
		lex:    lex,
	}
}

// Score evaluates all profiles and returns the top ranked candidates and the
// best one. best is nil when no profile was accepted.
func (m *RuleMatcher) Score(normalized string) ([]domain.Candidate, *domain.Candidate) {
	profiles := m.lex.Profiles()
	candidates := make([]domain.Candidate, 0, len(profiles))

	for _, profile := range profiles {
		candidate, ok := m.evaluateProfile(profile, normalized)
		if ok {
			candidates = append(candidates, candidate)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	m.logger.WithFields(logrus.Fields{
		"profiles_evaluated": len(profiles),
		"accepted":           len(candidates),
	}).Debug("Completed rule matching")

	if len(candidates) > maxAllowedDiseases {
		candidates = candidates[:maxAllowedDiseases]
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates, &candidates[0]
}

func (m *RuleMatcher) evaluateProfile(profile domain.DiseaseProfile, text string) (domain.Candidate, bool) {
	for _, excl := range profile.Exclusions {
		if strings.Contains(text, excl) {
			return domain.Candidate{}, false
		}
	}

	matchedPrimary := m.matchAll(profile.Primary, text)
	matchedSupporting := m.matchAll(profile.Supporting, text)

	if len(matchedPrimary) == 0 && len(matchedSupporting) < minSupportingMatches {
		return domain.Candidate{}, false
	}

	score := weightedScore(len(matchedPrimary), len(profile.Primary), len(matchedSupporting), len(profile.Supporting))

	missing := make([]string, 0, maxMissingPrimary)
	for _, p := range profile.Primary {
		if len(missing) == maxMissingPrimary {
			break
		}
		if !contains(matchedPrimary, p) {
			missing = append(missing, p)
		}
	}

	return domain.Candidate{
		Disease:           profile.Disease,
		Score:             score,
		Level:             domain.LevelForScore(score),
		MatchedPrimary:    matchedPrimary,
		MatchedSupporting: matchedSupporting,
		MissingPrimary:    missing,
	}, true
}

func (m *RuleMatcher) matchAll(phrases []string, text string) []string {
	matched := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if m.matchSymptom(p, text) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchSymptom accepts the canonical phrase or any of its variants as a
// substring of the text.
func (m *RuleMatcher) matchSymptom(canonical, text string) bool {
	if strings.Contains(text, canonical) {
		return true
	}
	for _, variant := range m.lex.SymptomVariants(canonical) {
		if strings.Contains(text, variant) {
			return true
		}
	}
	return false
}

// weightedScore keeps each product as a separate rounding step so results do
// not depend on fused multiply-add availability.
func weightedScore(primaryHits, primaryTotal, supportingHits, supportingTotal int) float64 {
	var pRatio, sRatio float64
	if primaryTotal > 0 {
		pRatio = float64(primaryHits) / float64(primaryTotal)
	}
	if supportingTotal > 0 {
		sRatio = float64(supportingHits) / float64(supportingTotal)
	}
	return float64(pRatio*primaryWeight) + float64(sRatio*supportingWeight)
}

// SelectPrediction honors an external proposal only when the rules allowed
// it; otherwise the top rule match stands.
func SelectPrediction(result domain.AnalysisResult, proposed domain.Disease) domain.Disease {
	if proposed != "" && result.IsAllowed(proposed) {
		return proposed
	}
	if len(result.AllowedDiseases) > 0 {
		return result.AllowedDiseases[0]
	}
	return result.Disease
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
