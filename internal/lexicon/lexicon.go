// Package lexicon holds the static medical knowledge the triage engine runs on:
// disease profiles, alias tables, follow-up question banks, specialist
// routing and demographic associations. Tables are built once and are
// read-only afterwards, so a Lexicon is safe for concurrent use.
package lexicon

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// CompiledFix is a PhraseFix with its case-insensitive pattern compiled.
type CompiledFix struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Lexicon is the validated, indexed view over the knowledge tables.
type Lexicon struct {
	profiles     []domain.DiseaseProfile
	profileIndex map[domain.Disease]int

	phraseFixes      []CompiledFix
	plurals          map[string]string
	globalAliases    []GlobalAlias
	symptomAliases   map[string][]string
	aliasCanonicals  []string
	questionSymptoms map[string]string
	banks            map[domain.Disease][]domain.FollowUpQuestion
	bankOrder        []domain.Disease
	defaultBank      []domain.FollowUpQuestion

	routes          []SpecialistRoute
	specialistIndex map[domain.Disease]string
	ageBrackets     []AgeBracket
	genderRules     []GenderRule

	nonSpecific []string
	reserved    map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide lexicon. It panics if the built-in tables
// fail validation, which can only happen through a bad edit to this package.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := New()
		if err != nil {
			panic(fmt.Sprintf("lexicon: %v", err))
		}
		if err := lex.Validate(); err != nil {
			panic(fmt.Sprintf("lexicon: invalid tables: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// New builds a lexicon from the built-in tables. Only regex compilation can
// fail here; consistency checks live in Validate.
func New() (*Lexicon, error) {
	lex := &Lexicon{
		profiles:         diseaseProfiles(),
		profileIndex:     make(map[domain.Disease]int),
		plurals:          make(map[string]string),
		symptomAliases:   make(map[string][]string),
		questionSymptoms: make(map[string]string),
		banks:            make(map[domain.Disease][]domain.FollowUpQuestion),
		defaultBank:      defaultFollowUp(),
		routes:           specialistRoutes(),
		specialistIndex:  make(map[domain.Disease]string),
		ageBrackets:      ageBrackets(),
		genderRules:      genderRules(),
		nonSpecific:      nonSpecificTerms(),
		reserved:         make(map[string]struct{}),
	}

	for i, p := range lex.profiles {
		if _, seen := lex.profileIndex[p.Disease]; !seen {
			lex.profileIndex[p.Disease] = i
		}
	}

	for _, fix := range phraseFixes() {
		re, err := regexp.Compile("(?i)" + fix.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile phrase fix %q: %w", fix.Pattern, err)
		}
		lex.phraseFixes = append(lex.phraseFixes, CompiledFix{Pattern: re, Replacement: fix.Replacement})
	}

	for _, w := range plurals() {
		lex.plurals[w.Plural] = w.Singular
	}

	aliases := globalAliases()
	sort.SliceStable(aliases, func(i, j int) bool {
		return utf8.RuneCountInString(aliases[i].Alias) > utf8.RuneCountInString(aliases[j].Alias)
	})
	lex.globalAliases = aliases

	for _, a := range symptomAliases() {
		if _, seen := lex.symptomAliases[a.Canonical]; !seen {
			lex.aliasCanonicals = append(lex.aliasCanonicals, a.Canonical)
		}
		lex.symptomAliases[a.Canonical] = a.Variants
	}

	for _, q := range questionSymptoms() {
		lex.questionSymptoms[q.QuestionID] = q.Symptoms
	}

	for _, b := range followUpBanks() {
		if _, seen := lex.banks[b.Disease]; !seen {
			lex.bankOrder = append(lex.bankOrder, b.Disease)
		}
		lex.banks[b.Disease] = b.Questions
	}

	for _, r := range lex.routes {
		for _, d := range r.Diseases {
			if _, seen := lex.specialistIndex[d]; !seen {
				lex.specialistIndex[d] = r.Specialist
			}
		}
	}

	for _, k := range reservedAnswerKeys() {
		lex.reserved[k] = struct{}{}
	}

	return lex, nil
}

// Validate checks cross-table consistency and joins every problem found.
func (l *Lexicon) Validate() error {
	var errs []error

	seen := make(map[domain.Disease]bool, len(l.profiles))
	for i, p := range l.profiles {
		if !p.Disease.IsValid() {
			errs = append(errs, fmt.Errorf("profile %d: unknown disease %q", i, p.Disease))
		}
		if seen[p.Disease] {
			errs = append(errs, fmt.Errorf("profile %d: duplicate disease %q", i, p.Disease))
		}
		seen[p.Disease] = true
		if !p.IsMatchable() {
			errs = append(errs, fmt.Errorf("profile %q has no primary or supporting symptoms", p.Disease))
		}
	}

	requireProfile := func(where string, d domain.Disease) {
		if !seen[d] {
			errs = append(errs, fmt.Errorf("%s references %q: %w", where, d, domain.ErrUnknownDisease))
		}
	}

	for _, d := range l.bankOrder {
		requireProfile("follow-up bank", d)
		for _, q := range l.banks[d] {
			if _, ok := l.questionSymptoms[q.ID]; !ok {
				errs = append(errs, fmt.Errorf("follow-up bank %q: question %q has no symptom mapping", d, q.ID))
			}
		}
	}
	for _, q := range l.defaultBank {
		if _, ok := l.questionSymptoms[q.ID]; !ok {
			errs = append(errs, fmt.Errorf("default bank: question %q has no symptom mapping", q.ID))
		}
	}

	for _, r := range l.routes {
		for _, d := range r.Diseases {
			requireProfile("specialist "+r.Specialist, d)
		}
	}
	for _, b := range l.ageBrackets {
		for _, rule := range b.Rules {
			for _, d := range rule.Diseases {
				requireProfile("age bracket "+b.Name, d)
			}
		}
	}
	for _, g := range l.genderRules {
		for _, delta := range g.Deltas {
			requireProfile("gender rule "+strings.Join(g.Keys, "/"), delta.Disease)
		}
	}

	for _, c := range l.aliasCanonicals {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, errors.New("symptom alias with empty canonical phrase"))
		}
	}

	return errors.Join(errs...)
}

// Profiles returns the disease profiles in ranking tie-break order.
func (l *Lexicon) Profiles() []domain.DiseaseProfile {
	return l.profiles
}

// Profile looks up a single disease profile.
func (l *Lexicon) Profile(d domain.Disease) (domain.DiseaseProfile, bool) {
	i, ok := l.profileIndex[d]
	if !ok {
		return domain.DiseaseProfile{}, false
	}
	return l.profiles[i], true
}

// PhraseFixes returns the compound-phrase rewrites in application order.
func (l *Lexicon) PhraseFixes() []CompiledFix {
	return l.phraseFixes
}

// Singular folds a plural token, returning the token unchanged when unknown.
func (l *Lexicon) Singular(token string) string {
	if s, ok := l.plurals[token]; ok {
		return s
	}
	return token
}

// GlobalAliases returns the alias rewrites longest first.
func (l *Lexicon) GlobalAliases() []GlobalAlias {
	return l.globalAliases
}

// SymptomVariants returns the accepted variants of a canonical phrase.
func (l *Lexicon) SymptomVariants(canonical string) []string {
	return l.symptomAliases[canonical]
}

// QuestionSymptoms returns the profile phrases confirmed by a yes answer.
func (l *Lexicon) QuestionSymptoms(questionID string) (string, bool) {
	s, ok := l.questionSymptoms[questionID]
	return s, ok
}

// FollowUpBank returns the disease bank, or the default bank when the
// disease has none. The second value reports whether a disease bank was found.
func (l *Lexicon) FollowUpBank(d domain.Disease) ([]domain.FollowUpQuestion, bool) {
	if qs, ok := l.banks[d]; ok {
		return qs, true
	}
	return l.defaultBank, false
}

// Specialist routes a disease, defaulting to a general physician.
func (l *Lexicon) Specialist(d domain.Disease) string {
	if s, ok := l.specialistIndex[d]; ok {
		return s
	}
	return domain.GeneralPhysician
}

// SpecialistRoutes returns the routing table in lookup order.
func (l *Lexicon) SpecialistRoutes() []SpecialistRoute {
	return l.routes
}

// AgeBrackets returns the age brackets in lookup order.
func (l *Lexicon) AgeBrackets() []AgeBracket {
	return l.ageBrackets
}

// GenderRules returns the gender association rules.
func (l *Lexicon) GenderRules() []GenderRule {
	return l.genderRules
}

// NonSpecificTerms returns the vague terms used by the short-input check.
func (l *Lexicon) NonSpecificTerms() []string {
	return l.nonSpecific
}

// IsReservedAnswerKey reports whether key is a request field rather than a
// question id.
func (l *Lexicon) IsReservedAnswerKey(key string) bool {
	_, ok := l.reserved[key]
	return ok
}
