// Package scoring provides deterministic role classification and readiness
// scoring for employee profiles. Everything in this package is pure: the same
// inputs always produce the same indicators, and no I/O occurs.
package scoring

import "strings"

// RoleCategory is the coarse bucket derived from a role title string
type RoleCategory string

// Role categories used to select comparison skill keywords
const (
	CategoryHR      RoleCategory = "HR"
	CategoryData    RoleCategory = "DATA"
	CategoryGeneric RoleCategory = "GENERIC"
)

// coreSkills maps each category to its fixed core-skill keyword set.
// The table is an explicit enumerated mapping; GENERIC intentionally has no
// keywords, so generic roles score on experience alone.
var coreSkills = map[RoleCategory][]string{
	CategoryHR:      {"Recruitment", "HRMS", "Compliance", "Employee Relations", "Policy"},
	CategoryData:    {"Python", "ML", "AI", "SQL", "Statistics", "NLP"},
	CategoryGeneric: {},
}

// ClassifyRole maps a free-text role title to a RoleCategory.
// Matching is case-insensitive substring matching with a fixed rule order:
// "HR" anywhere wins first, then "DATA" or "SCIENTIST", otherwise GENERIC.
// The result is total and idempotent and is never overridden downstream.
func ClassifyRole(role string) RoleCategory {
	r := strings.ToUpper(role)
	if strings.Contains(r, "HR") {
		return CategoryHR
	}
	if strings.Contains(r, "DATA") || strings.Contains(r, "SCIENTIST") {
		return CategoryData
	}
	return CategoryGeneric
}

// CoreSkills returns the core-skill keywords for a category.
// Unknown categories behave like GENERIC.
func CoreSkills(category RoleCategory) []string {
	return coreSkills[category]
}
