package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/UtsavYadav1/WellSure/internal/lexicon"
)

// shortAliasRunes is the longest alias still replaced as a raw substring.
// Longer aliases only replace whole words.
const shortAliasRunes = 3

// Normalizer rewrites free-text symptom descriptions (English, Hinglish and
// common misspellings) into the canonical phrases used by disease profiles.
type Normalizer struct {
	lex *lexicon.Lexicon
}

// NewNormalizer creates a normalizer over the given lexicon
func NewNormalizer(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{lex: lex}
}

// Normalize is pure and never fails; empty input yields an empty string.
func (n *Normalizer) Normalize(raw string) string {
	text := strings.TrimSpace(strings.ToLower(norm.NFKC.String(raw)))

	// Step 1: compound phrases that the alias table cannot express
	for _, fix := range n.lex.PhraseFixes() {
		text = fix.Pattern.ReplaceAllLiteralString(text, fix.Replacement)
	}

	// Step 2: plural folding per token
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = n.lex.Singular(tok)
	}
	text = strings.Join(tokens, " ")

	// Step 3: aliases, longest first; later aliases see earlier output
	for _, a := range n.lex.GlobalAliases() {
		if utf8.RuneCountInString(a.Alias) > shortAliasRunes {
			text = replaceWholeWord(text, a.Alias, a.Canonical)
		} else {
			text = strings.ReplaceAll(text, a.Alias, a.Canonical)
		}
	}

	return text
}

// replaceWholeWord replaces non-overlapping occurrences of word that sit on
// word boundaries at both ends. Letters and numbers of any script count as
// word characters, so boundaries hold for Devanagari as well as Latin text.
func replaceWholeWord(text, word, replacement string) string {
	if word == "" || !strings.Contains(text, word) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		end := i + len(word)
		if strings.HasPrefix(text[i:], word) && atBoundary(text, i) && atBoundary(text, end) {
			b.WriteString(replacement)
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// atBoundary reports whether byte offset pos of s lies between a word and a
// non-word character. The ends of the string count as non-word.
func atBoundary(s string, pos int) bool {
	before := false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:pos])
		before = isWordRune(r)
	}
	after := false
	if pos < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
