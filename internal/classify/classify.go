// Package classify derives activity categories and work-type predicates
// from free-text descriptions.
package classify

import "strings"

// Category is the fixed taxonomy a description resolves to.
type Category string

const (
	CategoryMeeting       Category = "Meeting"
	CategoryPresentation  Category = "Presentation"
	CategoryDevelopment   Category = "Development"
	CategoryAnalysis      Category = "Analysis"
	CategoryDocumentation Category = "Documentation"
	CategoryInternal      Category = "Internal"
	CategoryOther         Category = "Other"
)

// keywordRule pairs a category with its trigger substrings. Rules are
// evaluated in declared order; the first category with a match wins, so
// the slice order is load-bearing and must not be turned into a map.
type keywordRule struct {
	category Category
	keywords []string
}

var keywordRules = []keywordRule{
	{CategoryMeeting, []string{"meeting", "sync", "standup", "call", "catchup", "check-in", "1:1", "planning"}},
	{CategoryPresentation, []string{"deck", "slide", "presentation", "demo", "showcase"}},
	{CategoryDevelopment, []string{"code", "script", "pipeline", "etl", "debug", "fix", "implement", "deploy", "pr review"}},
	{CategoryAnalysis, []string{"analysis", "investigate", "insight", "research", "audit", "explore"}},
	{CategoryDocumentation, []string{"doc", "documentation", "spec", "wiki", "readme", "guide"}},
	{CategoryInternal, []string{"follow up", "alignment", "admin", "email", "slack", "chat", "prep"}},
}

var strategicCategories = map[Category]bool{
	CategoryDevelopment:   true,
	CategoryAnalysis:      true,
	CategoryDocumentation: true,
	CategoryPresentation:  true,
}

var unplannedKeywords = []string{"ad-hoc", "urgent", "broken", "incident", "fire", "quick fix"}

// ClassifyActivity maps a free-text description to a Category by
// case-insensitive substring match. Any input, including the empty
// string, resolves to exactly one category; no keyword hit means Other.
func ClassifyActivity(description string) Category {
	lower := strings.ToLower(description)

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}

	return CategoryOther
}

// IsStrategic reports whether a category counts as higher-value work.
func IsStrategic(category Category) bool {
	return strategicCategories[category]
}

// IsPlanned reports whether an activity looks pre-scheduled rather than
// reactive. Descriptions carrying an unplanned keyword, and anything in a
// support project, count as unplanned.
func IsPlanned(description, project string) bool {
	lower := strings.ToLower(description)
	for _, keyword := range unplannedKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}

	if strings.Contains(strings.ToLower(project), "support") {
		return false
	}

	return true
}
