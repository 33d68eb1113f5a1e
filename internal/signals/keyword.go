package signals

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/textproc"
)

// MaxKeywordDensity caps the keyword density signal so that short,
// keyword-stuffed fragments cannot dominate the ranking.
const MaxKeywordDensity = 0.3

// titleMatchWeight doubles keyword hits found in a unit title.
const titleMatchWeight = 2.0

// KeywordMatch scores content and title against the profile keywords.
// Each keyword contributes its whole-word occurrence count in the
// content plus twice its count in the title, scaled by the keyword's
// profile weight. The sum is divided by the total weight of keywords
// that matched at least once; no match at all scores 0.
func KeywordMatch(profile domain.RelevanceProfile, title, content string) float64 {
	var sum, matchedWeight float64

	for _, kw := range profile.Keywords {
		contentHits := countWholeWord(content, kw)
		titleHits := countWholeWord(title, kw)
		if contentHits == 0 && titleHits == 0 {
			continue
		}

		weight := profile.Weight(kw)
		sum += weight * (float64(contentHits) + titleMatchWeight*float64(titleHits))
		matchedWeight += weight
	}

	if matchedWeight == 0 {
		return 0
	}
	return sum / matchedWeight
}

// KeywordDensity returns the fraction of content words that are
// profile keywords, capped at MaxKeywordDensity.
func KeywordDensity(profile domain.RelevanceProfile, content string) float64 {
	words := textproc.Words(content)
	if len(words) == 0 {
		return 0
	}

	var hits int
	for _, w := range words {
		if _, ok := profile.Weights[w]; ok {
			hits++
		}
	}

	density := float64(hits) / float64(len(words))
	if density > MaxKeywordDensity {
		return MaxKeywordDensity
	}
	return density
}

// countWholeWord counts case-insensitive occurrences of keyword in
// text, respecting word boundaries so that "art" never matches inside
// "particular". Multi-word keywords match as whole phrases.
func countWholeWord(text, keyword string) int {
	if text == "" || keyword == "" {
		return 0
	}

	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		// Quoted patterns only fail on pathological input; treat
		// the keyword as a plain substring instead.
		return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
	}
	return len(re.FindAllStringIndex(text, -1))
}
