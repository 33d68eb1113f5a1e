package domain

import "time"

// Signal names used in per-unit score breakdowns.
const (
	// SignalLexical is the vector-cosine similarity against the
	// profile query.
	SignalLexical = "lexical_similarity"

	// SignalKeyword is the weighted whole-word keyword match score.
	SignalKeyword = "keyword_match"

	// SignalQuality is the content quality score (length adequacy
	// plus lexical diversity).
	SignalQuality = "content_quality"

	// SignalDensity is the keyword density score used for
	// sub-section scoring.
	SignalDensity = "keyword_density"

	// SignalSpecificity is the context/specificity score.
	SignalSpecificity = "specificity"

	// SignalActionability is the action-verb score used for
	// sub-section scoring.
	SignalActionability = "actionability"
)

// ScoredSection wraps a Section with its raw signal scores, fused
// score and rank.
type ScoredSection struct {
	// Section is the scored unit.
	Section Section

	// Signals holds the per-signal breakdown after batch min-max
	// normalisation, each value in [0,1]. Raw signal magnitudes are
	// not carried through; only their batch-relative positions are.
	Signals map[string]float64

	// Score is the fused relevance score.
	Score float64

	// Rank is 1-based and dense; rank 1 is the most relevant
	// section of the run. Ties are broken by document order.
	Rank int
}

// ScoredSubSection wraps a SubSection with its raw signal scores,
// fused score and rank. Only sub-sections whose parent section placed
// within the configured top-N sections are ever scored.
type ScoredSubSection struct {
	// SubSection is the scored unit.
	SubSection SubSection

	// Signals holds the per-signal breakdown after batch min-max
	// normalisation, each value in [0,1]. Raw signal magnitudes are
	// not carried through; only their batch-relative positions are.
	Signals map[string]float64

	// Score is the fused relevance score.
	Score float64

	// Rank is 1-based and dense within the sub-section ranking.
	Rank int
}

// RunMetrics summarises a completed analysis run.
type RunMetrics struct {
	// DocumentsRequested is the number of documents submitted.
	DocumentsRequested int

	// DocumentsProcessed is the number of documents segmented and scored.
	DocumentsProcessed int

	// DocumentsSkipped counts documents dropped for being empty or
	// failing to process. The run continues past skipped documents.
	DocumentsSkipped int

	// SectionsAnalysed is the total number of sections scored.
	SectionsAnalysed int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// WithinTimeBudget reports whether the run finished inside the
	// configured wall-clock budget.
	WithinTimeBudget bool

	// WithinMemoryBudget reports whether the run stayed inside the
	// configured memory ceiling at every cooperative check.
	WithinMemoryBudget bool
}

// AnalysisResult is the output of one analysis run: the stack-ranked
// sections, the stack-ranked sub-sections drawn from the top-N parent
// sections, and run metrics.
type AnalysisResult struct {
	// Sections is the ranked section list, truncated to top-K,
	// ordered by rank ascending.
	Sections []ScoredSection

	// SubSections is the ranked sub-section list, truncated to its
	// own top-K, ordered by rank ascending.
	SubSections []ScoredSubSection

	// Metrics describes the run itself.
	Metrics RunMetrics
}
