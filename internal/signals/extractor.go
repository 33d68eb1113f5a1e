package signals

import (
	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// Extractor computes the per-unit signal maps for one analysis run.
// The profile is read-only; extraction is deterministic for a given
// batch.
type Extractor struct {
	profile domain.RelevanceProfile
}

// NewExtractor creates an extractor bound to a relevance profile.
func NewExtractor(profile domain.RelevanceProfile) *Extractor {
	return &Extractor{profile: profile}
}

// SectionSignals computes the section-level signals for a batch:
// lexical similarity against the profile query, weighted keyword
// match and content quality. Lexical similarity is batch-scoped
// because its vocabulary spans all section contents.
func (e *Extractor) SectionSignals(sections []domain.Section) []map[string]float64 {
	contents := make([]string, len(sections))
	for i, s := range sections {
		contents[i] = s.Content
	}
	lexical := LexicalSimilarity(contents, e.profile.Query())

	out := make([]map[string]float64, len(sections))
	for i, s := range sections {
		out[i] = map[string]float64{
			domain.SignalLexical: lexical[i],
			domain.SignalKeyword: KeywordMatch(e.profile, s.Title, s.Content),
			domain.SignalQuality: ContentQuality(s.Content),
		}
	}
	return out
}

// SubSectionSignals computes the sub-section-level signals for a
// batch: keyword density, specificity and actionability.
func (e *Extractor) SubSectionSignals(subs []domain.SubSection) []map[string]float64 {
	out := make([]map[string]float64, len(subs))
	for i, sub := range subs {
		out[i] = map[string]float64{
			domain.SignalDensity:       KeywordDensity(e.profile, sub.Content),
			domain.SignalSpecificity:   Specificity(e.profile, sub.Content),
			domain.SignalActionability: Actionability(sub.Content),
		}
	}
	return out
}
