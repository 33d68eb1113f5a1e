// Package signals implements the independent relevance scorers: vector
// cosine lexical similarity, weighted keyword match and density,
// context specificity, actionability and content quality. Each scorer
// is pure; batch-level rescaling happens downstream in fusion.
package signals

import (
	"math"

	"github.com/custodia-labs/docrank-cli/internal/textproc"
)

// vector is a sparse term-frequency vector.
type vector map[string]float64

// terms extracts the unigram, bigram and trigram features of a text.
func terms(text string) []string {
	out := textproc.Tokenize(text)
	out = append(out, textproc.NGrams(text, 2)...)
	out = append(out, textproc.NGrams(text, 3)...)
	return out
}

// termFrequency builds a raw term-count vector for a text.
func termFrequency(text string) vector {
	v := make(vector)
	for _, t := range terms(text) {
		v[t]++
	}
	return v
}

// LexicalSimilarity scores each content against a synthetic query by
// TF-IDF weighted cosine similarity over a shared unigram-to-trigram
// vocabulary. Document frequencies are computed over the contents plus
// the query. Degenerate inputs, an empty query or empty contents,
// yield 0 rather than an error.
func LexicalSimilarity(contents []string, query string) []float64 {
	scores := make([]float64, len(contents))
	if len(contents) == 0 {
		return scores
	}

	vectors := make([]vector, 0, len(contents)+1)
	for _, c := range contents {
		vectors = append(vectors, termFrequency(c))
	}
	queryVec := termFrequency(query)
	vectors = append(vectors, queryVec)

	df := make(map[string]int)
	for _, v := range vectors {
		for t := range v {
			df[t]++
		}
	}
	if len(df) == 0 {
		return scores
	}

	// Smoothed inverse document frequency so unseen terms never
	// divide by zero and every weight stays positive.
	n := float64(len(vectors))
	idf := make(map[string]float64, len(df))
	for t, count := range df {
		idf[t] = math.Log((n+1)/(float64(count)+1)) + 1
	}

	weighted := func(v vector) vector {
		w := make(vector, len(v))
		for t, tf := range v {
			w[t] = tf * idf[t]
		}
		return w
	}

	q := weighted(queryVec)
	for i := range contents {
		scores[i] = cosine(weighted(vectors[i]), q)
	}
	return scores
}

// cosine returns the cosine similarity of two sparse vectors, or 0
// when either vector has zero magnitude.
func cosine(a, b vector) float64 {
	var dot, normA, normB float64
	for t, av := range a {
		normA += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
