// Package ranking assigns deterministic stack ranks to scored units.
// Sorting is stable so equal scores keep their original document
// order; ranks are contiguous 1-based integers with no gaps and no
// shared ranks for ties.
package ranking

import (
	"sort"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// Sections ranks a batch of sections by fused score descending. The
// scores and signals slices are index-aligned with the sections.
// Empty input yields an empty ranked list, never an error.
func Sections(sections []domain.Section, scores []float64, signals []map[string]float64) []domain.ScoredSection {
	scored := make([]domain.ScoredSection, len(sections))
	for i, s := range sections {
		scored[i] = domain.ScoredSection{
			Section: s,
			Signals: signals[i],
			Score:   scores[i],
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// SubSections ranks a batch of sub-sections by fused score descending.
func SubSections(subs []domain.SubSection, scores []float64, signals []map[string]float64) []domain.ScoredSubSection {
	scored := make([]domain.ScoredSubSection, len(subs))
	for i, s := range subs {
		scored[i] = domain.ScoredSubSection{
			SubSection: s,
			Signals:    signals[i],
			Score:      scores[i],
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// TopSections truncates a ranked section list to its first k entries.
// Non-positive k yields an empty list.
func TopSections(scored []domain.ScoredSection, k int) []domain.ScoredSection {
	if k <= 0 || len(scored) == 0 {
		return nil
	}
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

// TopSubSections truncates a ranked sub-section list to its first k
// entries.
func TopSubSections(scored []domain.ScoredSubSection, k int) []domain.ScoredSubSection {
	if k <= 0 || len(scored) == 0 {
		return nil
	}
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}

// TopParentIDs returns the section IDs of the n best-ranked sections.
// Sub-sections whose parent is outside this set are excluded from
// sub-section ranking entirely.
func TopParentIDs(scored []domain.ScoredSection, n int) map[int]struct{} {
	ids := make(map[int]struct{})
	for _, s := range TopSections(scored, n) {
		ids[s.Section.ID] = struct{}{}
	}
	return ids
}
