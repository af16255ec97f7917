// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexical

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopwords is the fixed set of title words never counted. It is never
// written after initialization.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "in": {}, "to": {}, "a": {}, "for": {},
	"on": {}, "with": {}, "by": {}, "is": {}, "an": {}, "from": {}, "as": {},
	"that": {}, "at": {}, "are": {}, "be": {}, "this": {}, "we": {}, "or": {},
	"which": {}, "it": {}, "was": {}, "have": {}, "has": {},
}

// IsStopword reports whether token is in the fixed stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// Tokenizer splits titles into normalized tokens. A Tokenizer is not
// safe for concurrent use; create one per goroutine.
type Tokenizer struct {
	lower cases.Caser
}

// NewTokenizer returns a Tokenizer using Unicode lowercasing.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{lower: cases.Lower(language.Und)}
}

// Tokenize lowercases title, replaces every rune other than an ASCII
// letter, ASCII digit, or whitespace with a space, splits on whitespace,
// and drops single-character tokens and stopwords. Token order follows
// the title.
func (t *Tokenizer) Tokenize(title string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, t.lower.String(title))

	fields := strings.Fields(cleaned)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) <= 1 || IsStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Tokenize is a convenience wrapper over a fresh Tokenizer.
func Tokenize(title string) []string {
	return NewTokenizer().Tokenize(title)
}
