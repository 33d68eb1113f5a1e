package signals

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// Fixed increments for the specificity signal.
const (
	patternIncrement    = 0.2
	preferenceIncrement = 0.1
	focusAreaIncrement  = 0.15
	actionIncrement     = 0.1
)

// specificityPatterns recognise concrete, detail-bearing content:
// quantities with time units, money or percentages, group sizes,
// instruction markers and dietary terms.
var specificityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*(days?|hours?|minutes?)`),
	regexp.MustCompile(`(?i)\$\d+|\d+\s*%`),
	regexp.MustCompile(`(?i)\b\d+\s*(people|person|guests?)\b`),
	regexp.MustCompile(`(?i)\b(step\s*\d+|instruction|procedure|method)\b`),
	regexp.MustCompile(`(?i)\b(gluten-free|vegetarian|vegan|dietary)\b`),
}

// actionVerbs mark content the reader can act on directly.
var actionVerbs = []string{
	"plan", "create", "prepare", "organize", "implement", "design",
	"choose", "select", "include", "consider", "recommend", "suggest",
}

// Specificity scores how concrete and tailored the content is: 0.2
// per recognised specificity pattern, 0.1 per persona context
// preference found verbatim and 0.15 per job focus area found
// verbatim, capped at 1.0.
func Specificity(profile domain.RelevanceProfile, content string) float64 {
	var score float64

	for _, pattern := range specificityPatterns {
		if pattern.MatchString(content) {
			score += patternIncrement
		}
	}

	lower := strings.ToLower(content)
	for _, pref := range profile.Persona.ContextPreferences {
		if pref != "" && strings.Contains(lower, strings.ToLower(pref)) {
			score += preferenceIncrement
		}
	}
	for _, area := range profile.Job.FocusAreas {
		if area != "" && strings.Contains(lower, strings.ToLower(area)) {
			score += focusAreaIncrement
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// Actionability scores content by the number of distinct recognised
// action verbs it contains, 0.1 per verb, capped at 1.0.
func Actionability(content string) float64 {
	lower := strings.ToLower(content)

	var count int
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			count++
		}
	}

	score := float64(count) * actionIncrement
	if score > 1.0 {
		return 1.0
	}
	return score
}
