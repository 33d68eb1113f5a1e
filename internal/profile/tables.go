package profile

// Keyword expansion tables. Each table maps a normalised category
// fragment to the keywords it contributes; matching is case-insensitive
// substring so that e.g. "Senior Data Scientist" hits "data scientist".

// roleKeywords expands a persona role into characteristic keywords.
var roleKeywords = map[string][]string{
	"data scientist":          {"machine learning", "statistics", "python", "analytics", "modeling", "algorithms"},
	"software engineer":       {"programming", "development", "coding", "architecture", "frameworks", "apis"},
	"product manager":         {"strategy", "roadmap", "requirements", "stakeholder", "market", "user experience"},
	"researcher":              {"methodology", "analysis", "findings", "literature", "study", "experimental"},
	"business analyst":        {"requirements", "process", "workflow", "optimization", "metrics", "kpi"},
	"healthcare professional": {"clinical", "patient", "treatment", "diagnosis", "medical", "therapeutic"},
	"travel":                  {"destination", "itinerary", "accommodation", "activities"},
	"hr":                      {"forms", "onboarding", "compliance", "documentation"},
	"food":                    {"menu", "ingredients", "recipes", "dietary"},
	"contractor":              {"menu", "ingredients", "recipes", "dietary"},
}

// experienceKeywords expands an experience level into keywords that
// bias towards the depth of material the reader wants.
var experienceKeywords = map[string][]string{
	"junior": {"introduction", "basics", "fundamentals", "getting started", "tutorial"},
	"senior": {"advanced", "expert", "best practices", "optimization", "scalability", "architecture"},
	"lead":   {"strategy", "management", "team", "leadership", "governance", "standards"},
}

// domainKeywords expands a subject domain into characteristic keywords.
// Domains with no entry fall back to the domain string itself.
var domainKeywords = map[string][]string{
	"healthcare":    {"medical", "clinical", "patient", "treatment", "diagnosis", "therapeutic"},
	"finance":       {"financial", "investment", "risk", "trading", "portfolio", "banking"},
	"technology":    {"software", "system", "platform", "digital", "innovation", "automation"},
	"manufacturing": {"production", "quality", "supply chain", "operations", "efficiency"},
	"retail":        {"customer", "sales", "inventory", "marketing", "ecommerce", "consumer"},
	"education":     {"learning", "curriculum", "assessment", "student", "pedagogy", "academic"},
}
