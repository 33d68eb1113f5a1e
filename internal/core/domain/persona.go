package domain

import (
	"sort"
	"strings"
)

// Persona is a structured description of the intended reader.
type Persona struct {
	// Role is the reader's job role, e.g. "Travel Planner".
	Role string

	// ExperienceLevel qualifies the role, e.g. "junior", "senior", "lead".
	ExperienceLevel string

	// Domain is the subject area, e.g. "Healthcare".
	Domain string

	// Goals are explicit objectives stated by the persona.
	Goals []string

	// Keywords are optional explicit keywords supplied by the caller.
	Keywords []string

	// ContextPreferences are content shapes the persona favours,
	// e.g. "step-by-step guides" or "recommendations".
	ContextPreferences []string
}

// JobToBeDone describes the task the reader is trying to accomplish.
type JobToBeDone struct {
	// Description is the free-text task statement.
	Description string

	// FocusAreas are optional task aspects to emphasise.
	FocusAreas []string
}

// RelevanceProfile is a weighted keyword set derived from a persona
// and a job description. It is built once per analysis run and is
// read-only afterwards.
type RelevanceProfile struct {
	// Persona is the persona the profile was built from.
	Persona Persona

	// Job is the job description the profile was built from.
	Job JobToBeDone

	// Keywords is the deduplicated keyword set, lower-cased and
	// sorted so that repeated runs on identical input produce
	// identical profiles.
	Keywords []string

	// Weights maps each keyword to its importance weight.
	Weights map[string]float64
}

// Weight returns the importance weight for a keyword, or 1.0 when
// the keyword is not part of the profile.
func (p RelevanceProfile) Weight(keyword string) float64 {
	if w, ok := p.Weights[strings.ToLower(keyword)]; ok {
		return w
	}
	return 1.0
}

// Query renders the profile as a synthetic query string for
// vector-based similarity scoring.
func (p RelevanceProfile) Query() string {
	return strings.Join(p.Keywords, " ")
}

// NewRelevanceProfile assembles a profile from a weights map.
// Keywords are derived from the map keys and sorted.
func NewRelevanceProfile(persona Persona, job JobToBeDone, weights map[string]float64) RelevanceProfile {
	keywords := make([]string, 0, len(weights))
	for k := range weights {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	return RelevanceProfile{
		Persona:  persona,
		Job:      job,
		Keywords: keywords,
		Weights:  weights,
	}
}
