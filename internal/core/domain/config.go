package domain

import (
	"fmt"
	"math"
	"time"
)

// Weight-sum tolerance for configuration validation.
const weightSumEpsilon = 1e-9

// SectionWeights are the fusion weights for section-level scoring.
// The canonical section policy combines lexical similarity, weighted
// keyword match and content quality.
type SectionWeights struct {
	// Lexical weights the vector-cosine similarity signal.
	Lexical float64

	// Keyword weights the weighted keyword match signal.
	Keyword float64

	// Quality weights the content quality signal.
	Quality float64
}

// Sum returns the total of all section weights.
func (w SectionWeights) Sum() float64 {
	return w.Lexical + w.Keyword + w.Quality
}

// SubSectionWeights are the fusion weights for sub-section scoring.
type SubSectionWeights struct {
	// Density weights the keyword density signal.
	Density float64

	// Specificity weights the context/specificity signal.
	Specificity float64

	// Actionability weights the action-verb signal.
	Actionability float64
}

// Sum returns the total of all sub-section weights.
func (w SubSectionWeights) Sum() float64 {
	return w.Density + w.Specificity + w.Actionability
}

// AnalysisConfig is the configuration surface consumed by the
// relevance engine. It is supplied by an external config adapter;
// DefaultAnalysisConfig provides the built-in values.
type AnalysisConfig struct {
	// MinSectionLength is the minimum section content length in
	// characters. Undersized heading-bounded runs keep accumulating
	// instead of closing, so no paragraph is ever dropped.
	MinSectionLength int

	// MaxSectionLength is the section content length ceiling in
	// characters. Accumulation past the ceiling force-closes the
	// current section.
	MaxSectionLength int

	// SentenceGroupSize is the number of sentences per sub-section.
	SentenceGroupSize int

	// TopK is the number of ranked sections returned, and
	// independently the number of ranked sub-sections returned.
	TopK int

	// TopN is the number of top-ranked sections whose sub-sections
	// are eligible for sub-section ranking.
	TopN int

	// WallClockBudget aborts the run when exceeded.
	WallClockBudget time.Duration

	// MemoryBudgetBytes is the resident memory ceiling.
	MemoryBudgetBytes uint64

	// Section holds the section fusion weights.
	Section SectionWeights

	// SubSection holds the sub-section fusion weights.
	SubSection SubSectionWeights
}

// DefaultAnalysisConfig returns the built-in configuration.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MinSectionLength:  100,
		MaxSectionLength:  2000,
		SentenceGroupSize: 3,
		TopK:              10,
		TopN:              5,
		WallClockBudget:   60 * time.Second,
		MemoryBudgetBytes: 900 * 1024 * 1024,
		Section: SectionWeights{
			Lexical: 0.4,
			Keyword: 0.4,
			Quality: 0.2,
		},
		SubSection: SubSectionWeights{
			Density:       0.35,
			Specificity:   0.35,
			Actionability: 0.30,
		},
	}
}

// Validate checks the configuration invariants. Both fusion policies
// must have weights summing to exactly 1.0 so that fused scores stay
// within [0,1].
func (c AnalysisConfig) Validate() error {
	if c.MinSectionLength < 0 {
		return fmt.Errorf("%w: negative min section length", ErrInvalidConfig)
	}
	if c.MaxSectionLength <= 0 {
		return fmt.Errorf("%w: max section length must be positive", ErrInvalidConfig)
	}
	if c.MinSectionLength >= c.MaxSectionLength {
		return fmt.Errorf("%w: min section length %d must be below max %d",
			ErrInvalidConfig, c.MinSectionLength, c.MaxSectionLength)
	}
	if c.SentenceGroupSize < 1 {
		return fmt.Errorf("%w: sentence group size must be at least 1", ErrInvalidConfig)
	}
	if c.TopK < 0 || c.TopN < 0 {
		return fmt.Errorf("%w: top-k and top-n must be non-negative", ErrInvalidConfig)
	}
	if c.WallClockBudget <= 0 {
		return fmt.Errorf("%w: wall-clock budget must be positive", ErrInvalidConfig)
	}
	if math.Abs(c.Section.Sum()-1.0) > weightSumEpsilon {
		return fmt.Errorf("%w: section fusion weights sum to %g, want 1.0",
			ErrInvalidConfig, c.Section.Sum())
	}
	if math.Abs(c.SubSection.Sum()-1.0) > weightSumEpsilon {
		return fmt.Errorf("%w: sub-section fusion weights sum to %g, want 1.0",
			ErrInvalidConfig, c.SubSection.Sum())
	}
	return nil
}
