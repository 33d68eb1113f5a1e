package profile

import (
	"sort"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// templates are the built-in persona presets selectable by name.
var templates = map[string]domain.Persona{
	"researcher": {
		Role:               "Academic Researcher",
		ExperienceLevel:    "PhD",
		Domain:             "Research",
		Goals:              []string{"literature review", "research methodology", "citation analysis", "theoretical frameworks"},
		Keywords:           []string{"study", "analysis", "methodology", "findings", "hypothesis", "experiment", "theory"},
		ContextPreferences: []string{"abstract", "introduction", "methodology", "results", "conclusion", "references"},
	},
	"student": {
		Role:               "Student",
		ExperienceLevel:    "Undergraduate",
		Domain:             "Education",
		Goals:              []string{"exam preparation", "concept understanding", "assignment completion", "study materials"},
		Keywords:           []string{"definition", "example", "explanation", "formula", "concept", "principle", "theory"},
		ContextPreferences: []string{"examples", "exercises", "summaries", "key concepts", "definitions"},
	},
	"financial_analyst": {
		Role:               "Financial Analyst",
		ExperienceLevel:    "Senior",
		Domain:             "Finance",
		Goals:              []string{"financial analysis", "risk assessment", "investment decisions", "market trends"},
		Keywords:           []string{"revenue", "profit", "loss", "assets", "liabilities", "cash flow", "roi", "valuation"},
		ContextPreferences: []string{"financial statements", "executive summary", "market analysis", "risk factors"},
	},
	"sales": {
		Role:               "Sales Professional",
		ExperienceLevel:    "Senior",
		Domain:             "Sales & Marketing",
		Goals:              []string{"lead generation", "client presentations", "competitive analysis", "market insights"},
		Keywords:           []string{"customer", "market", "competition", "price", "value proposition", "benefits"},
		ContextPreferences: []string{"executive summary", "market overview", "competitive landscape", "recommendations"},
	},
	"journalist": {
		Role:               "Journalist",
		ExperienceLevel:    "Senior",
		Domain:             "Media & Communications",
		Goals:              []string{"story development", "fact checking", "source verification", "trend analysis"},
		Keywords:           []string{"news", "events", "people", "timeline", "impact", "quotes", "sources"},
		ContextPreferences: []string{"headlines", "key facts", "quotes", "timeline", "impact analysis"},
	},
	"entrepreneur": {
		Role:               "Entrepreneur",
		ExperienceLevel:    "Experienced",
		Domain:             "Business",
		Goals:              []string{"market opportunity", "business strategy", "competitive analysis", "investment planning"},
		Keywords:           []string{"market", "opportunity", "strategy", "innovation", "growth", "scalability", "funding"},
		ContextPreferences: []string{"market analysis", "business model", "financial projections", "risk assessment"},
	},
	"policy_maker": {
		Role:               "Policy Maker",
		ExperienceLevel:    "Senior",
		Domain:             "Government & Policy",
		Goals:              []string{"policy analysis", "impact assessment", "stakeholder analysis", "regulatory compliance"},
		Keywords:           []string{"regulation", "policy", "compliance", "impact", "stakeholders", "governance"},
		ContextPreferences: []string{"executive summary", "policy implications", "stakeholder impact", "recommendations"},
	},
	"medical": {
		Role:               "Medical Professional",
		ExperienceLevel:    "Attending Physician",
		Domain:             "Healthcare",
		Goals:              []string{"clinical guidelines", "treatment protocols", "patient care", "medical research"},
		Keywords:           []string{"patient", "treatment", "diagnosis", "clinical", "therapy", "outcomes", "safety"},
		ContextPreferences: []string{"clinical findings", "treatment recommendations", "patient outcomes", "safety data"},
	},
	"legal": {
		Role:               "Legal Professional",
		ExperienceLevel:    "Senior Associate",
		Domain:             "Legal",
		Goals:              []string{"case research", "legal precedents", "contract analysis", "compliance review"},
		Keywords:           []string{"law", "regulation", "contract", "liability", "compliance", "precedent", "jurisdiction"},
		ContextPreferences: []string{"legal analysis", "precedents", "regulatory requirements", "risk assessment"},
	},
	"technical_writer": {
		Role:               "Technical Writer",
		ExperienceLevel:    "Senior",
		Domain:             "Documentation",
		Goals:              []string{"documentation creation", "technical accuracy", "user guidance", "process documentation"},
		Keywords:           []string{"procedure", "instruction", "specification", "guidelines", "standards", "process"},
		ContextPreferences: []string{"procedures", "specifications", "examples", "best practices", "troubleshooting"},
	},
}

// Template returns the built-in persona preset with the given name.
func Template(name string) (domain.Persona, bool) {
	p, ok := templates[name]
	return p, ok
}

// TemplateNames returns the names of all built-in persona presets in
// sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
