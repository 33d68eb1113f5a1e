// Package textproc provides the lexical building blocks of the
// relevance engine: tokenisation, stop-word filtering, n-gram
// extraction and sentence splitting. Everything here is pure and
// deterministic; malformed input yields empty results, never errors.
package textproc

import (
	"regexp"
	"strings"
)

// MinTokenLength is the minimum length of a token in characters.
const MinTokenLength = 3

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z]+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// stopwords is the fixed English stop-word set removed during
// tokenisation.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {},
	"they": {}, "them": {}, "their": {},
}

// IsStopword returns true if the lower-cased word is a stop word.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// Words extracts all alphabetic word runs from text, lower-cased,
// without any length or stop-word filtering.
func Words(text string) []string {
	matches := wordPattern.FindAllString(strings.ToLower(text), -1)
	if matches == nil {
		return nil
	}
	return matches
}

// Tokenize extracts lower-case alphabetic tokens of at least
// MinTokenLength characters with stop words removed. Empty or
// malformed input yields an empty sequence.
func Tokenize(text string) []string {
	words := Words(text)

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < MinTokenLength {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// NGrams extracts space-joined n-grams of adjacent words. A gram is
// emitted only when every member word is a non-stop-word of at least
// MinTokenLength characters; adjacency is judged on the original word
// sequence.
func NGrams(text string, n int) []string {
	if n < 1 {
		return nil
	}

	words := Words(text)
	if len(words) < n {
		return nil
	}

	var grams []string
	for i := 0; i+n <= len(words); i++ {
		ok := true
		for _, w := range words[i : i+n] {
			if len(w) < MinTokenLength || IsStopword(w) {
				ok = false
				break
			}
		}
		if ok {
			grams = append(grams, strings.Join(words[i:i+n], " "))
		}
	}
	return grams
}

// Sentences splits text on sentence-terminating punctuation and
// returns the trimmed non-empty fragments in order.
func Sentences(text string) []string {
	parts := sentencePattern.Split(text, -1)

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// UniqueRatio returns the lexical diversity of text: the number of
// distinct words divided by the total word count. Empty input yields 0.
func UniqueRatio(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}
