package service

import (
	"sort"
	"strings"

	"github.com/UtsavYadav1/WellSure/internal/domain"
	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

// DefaultMaxFollowUpQuestions is used when callers pass a non-positive limit.
const DefaultMaxFollowUpQuestions = 4

// FollowUpReason replaces the analysis reason when a follow-up round
// confirmed new symptoms.
const FollowUpReason = "Follow-up answers confirmed additional symptoms, improving diagnosis confidence."

// FollowUpOrchestrator turns yes/no answers to clarification questions into
// extra symptom text and limits how far one round can raise confidence.
type FollowUpOrchestrator struct {
	lex *lexicon.Lexicon
}

// NewFollowUpOrchestrator creates a new follow-up orchestrator
func NewFollowUpOrchestrator(lex *lexicon.Lexicon) *FollowUpOrchestrator {
	return &FollowUpOrchestrator{lex: lex}
}

// ShouldShowFollowUp is false for HIGH confidence and for a round that is
// already a follow-up.
func (f *FollowUpOrchestrator) ShouldShowFollowUp(level domain.ConfidenceLevel, isFollowUp bool) bool {
	if level == domain.HIGH {
		return false
	}
	return !isFollowUp
}

// Questions returns up to limit questions for the disease, falling back to
// the generic bank.
func (f *FollowUpOrchestrator) Questions(disease domain.Disease, limit int) []domain.FollowUpQuestion {
	if limit <= 0 {
		limit = DefaultMaxFollowUpQuestions
	}
	bank, _ := f.lex.FollowUpBank(disease)
	if len(bank) > limit {
		bank = bank[:limit]
	}
	return append([]domain.FollowUpQuestion{}, bank...)
}

// AnswersToSymptoms maps affirmative answers onto profile phrases. It returns
// the phrases joined with ", " and the de-duplicated list of confirmed
// symptoms. Answer ids are processed in sorted order.
func (f *FollowUpOrchestrator) AnswersToSymptoms(answers map[string]string) (string, []string) {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var additions []string
	confirmed := []string{}
	for _, id := range ids {
		if f.lex.IsReservedAnswerKey(id) || !isAffirmative(answers[id]) {
			continue
		}
		keywords, ok := f.lex.QuestionSymptoms(id)
		if !ok {
			continue
		}
		additions = append(additions, keywords)
		for _, s := range strings.Split(keywords, ", ") {
			s = strings.TrimSpace(s)
			if s != "" && !contains(confirmed, s) {
				confirmed = append(confirmed, s)
			}
		}
	}
	return strings.Join(additions, ", "), confirmed
}

// CapConfidence stops a single round from jumping LOW straight to HIGH.
func (f *FollowUpOrchestrator) CapConfidence(original, recomputed domain.ConfidenceLevel) domain.ConfidenceLevel {
	if original == domain.LOW && recomputed == domain.HIGH {
		return domain.MEDIUM
	}
	return recomputed
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
