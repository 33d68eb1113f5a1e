// Package fusion rescales raw signal values across a batch and
// combines them into a single score per unit using fixed linear
// weights. Fused scores are not re-normalised afterwards; with
// weights summing to 1.0 they stay within [0,1] by construction.
package fusion

import (
	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// degenerateValue is assigned to every unit when a signal has no
// spread across the batch, keeping ties neutral instead of collapsing
// them to the extremes.
const degenerateValue = 0.5

// Normalise min-max rescales values into [0,1] across the batch.
// When all values are equal every unit receives degenerateValue.
func Normalise(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if max == min {
		for i := range out {
			out[i] = degenerateValue
		}
		return out
	}

	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}

// normaliseSignal rescales one named signal across a batch of signal
// maps, returning the per-unit normalised values.
func normaliseSignal(batch []map[string]float64, name string) []float64 {
	raw := make([]float64, len(batch))
	for i, m := range batch {
		raw[i] = m[name]
	}
	return Normalise(raw)
}

// FuseSections normalises each section signal across the batch and
// combines them with the section fusion weights. The returned scores
// and per-unit normalised signal maps are index-aligned with the
// input.
func FuseSections(batch []map[string]float64, weights domain.SectionWeights) ([]float64, []map[string]float64) {
	lexical := normaliseSignal(batch, domain.SignalLexical)
	keyword := normaliseSignal(batch, domain.SignalKeyword)
	quality := normaliseSignal(batch, domain.SignalQuality)

	scores := make([]float64, len(batch))
	normalised := make([]map[string]float64, len(batch))
	for i := range batch {
		normalised[i] = map[string]float64{
			domain.SignalLexical: lexical[i],
			domain.SignalKeyword: keyword[i],
			domain.SignalQuality: quality[i],
		}
		scores[i] = weights.Lexical*lexical[i] +
			weights.Keyword*keyword[i] +
			weights.Quality*quality[i]
	}
	return scores, normalised
}

// FuseSubSections normalises each sub-section signal across the batch
// and combines them with the sub-section fusion weights.
func FuseSubSections(batch []map[string]float64, weights domain.SubSectionWeights) ([]float64, []map[string]float64) {
	density := normaliseSignal(batch, domain.SignalDensity)
	specificity := normaliseSignal(batch, domain.SignalSpecificity)
	actionability := normaliseSignal(batch, domain.SignalActionability)

	scores := make([]float64, len(batch))
	normalised := make([]map[string]float64, len(batch))
	for i := range batch {
		normalised[i] = map[string]float64{
			domain.SignalDensity:       density[i],
			domain.SignalSpecificity:   specificity[i],
			domain.SignalActionability: actionability[i],
		}
		scores[i] = weights.Density*density[i] +
			weights.Specificity*specificity[i] +
			weights.Actionability*actionability[i]
	}
	return scores, normalised
}
