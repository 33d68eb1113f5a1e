// Package profile converts a persona description and a job-to-be-done
// into a weighted keyword set used by the relevance signal extractors.
package profile

import (
	"sort"
	"strings"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/textproc"
)

// Weight bands per keyword source. On collision the later source in
// build order wins outright, so job-derived keywords are authoritative.
const (
	roleWeight       = 2.0
	keywordWeight    = 2.0
	experienceWeight = 1.5
	domainWeight     = 2.5
	goalWeight       = 3.0
	jobWeight        = 3.5
)

// Build derives a relevance profile from a persona and a job
// description. Keywords are lower-cased and deduplicated; sources are
// applied in ascending authority order (role, explicit keywords,
// experience level, domain, goals, job text) with last-write-wins
// weights.
func Build(persona domain.Persona, job domain.JobToBeDone) domain.RelevanceProfile {
	weights := make(map[string]float64)

	for _, kw := range matchTable(roleKeywords, persona.Role) {
		put(weights, kw, roleWeight)
	}
	for _, kw := range persona.Keywords {
		put(weights, kw, keywordWeight)
	}
	for _, kw := range matchTable(experienceKeywords, persona.ExperienceLevel) {
		put(weights, kw, experienceWeight)
	}
	for _, kw := range expandDomain(persona.Domain) {
		put(weights, kw, domainWeight)
	}
	for _, goal := range persona.Goals {
		put(weights, goal, goalWeight)
	}
	for _, kw := range jobKeywords(job.Description) {
		put(weights, kw, jobWeight)
	}

	return domain.NewRelevanceProfile(persona, job, weights)
}

// put records a keyword with the given weight, overwriting any weight
// assigned by an earlier source.
func put(weights map[string]float64, keyword string, weight float64) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return
	}
	weights[keyword] = weight
}

// matchTable returns the keywords of every table category whose name
// occurs as a substring of the given value, case-insensitively.
// Categories are scanned in sorted order so results are deterministic.
func matchTable(table map[string][]string, value string) []string {
	value = strings.ToLower(value)
	if value == "" {
		return nil
	}

	categories := make([]string, 0, len(table))
	for c := range table {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var keywords []string
	for _, c := range categories {
		if strings.Contains(value, c) {
			keywords = append(keywords, table[c]...)
		}
	}
	return keywords
}

// expandDomain maps a domain string through the domain table, falling
// back to the domain string itself when no category matches.
func expandDomain(dom string) []string {
	if strings.TrimSpace(dom) == "" {
		return nil
	}
	if keywords := matchTable(domainKeywords, dom); keywords != nil {
		return keywords
	}
	return []string{strings.ToLower(dom)}
}

// jobKeywords tokenizes the job description and adds adjacent-word
// bigrams and trigrams formed from consecutive non-stop-word tokens.
func jobKeywords(description string) []string {
	keywords := textproc.Tokenize(description)
	keywords = append(keywords, textproc.NGrams(description, 2)...)
	keywords = append(keywords, textproc.NGrams(description, 3)...)
	return keywords
}
