package roster

import (
	"strconv"
	"strings"

	"github.com/jonathan/career-insights/internal/types"
)

// ManualFields carries manually entered form values for the fallback path
// when no roster is uploaded or the roster row cannot be resolved.
type ManualFields struct {
	EmployeeID     string
	Name           string
	Role           string
	TargetRole     string
	Experience     string
	Skills         string
	Certifications string
}

// ResolveRecord builds an EmployeeProfile from a roster row.
// Missing optional columns resolve to empty strings, not errors.
func ResolveRecord(rec Record) types.EmployeeProfile {
	return types.EmployeeProfile{
		EmployeeID:      rec[ColEmployeeID],
		Name:            rec[ColName],
		CurrentRole:     rec[ColRole],
		TargetRole:      rec[ColTargetRole],
		ExperienceYears: CoerceExperience(rec[ColExperience]),
		Skills:          ParseSkills(rec[ColSkills]),
		Certifications:  rec[ColCertifications],
	}
}

// ResolveManual builds an EmployeeProfile from manually entered field values
func ResolveManual(f ManualFields) types.EmployeeProfile {
	return types.EmployeeProfile{
		EmployeeID:      strings.TrimSpace(f.EmployeeID),
		Name:            strings.TrimSpace(f.Name),
		CurrentRole:     strings.TrimSpace(f.Role),
		TargetRole:      strings.TrimSpace(f.TargetRole),
		ExperienceYears: CoerceExperience(f.Experience),
		Skills:          ParseSkills(f.Skills),
		Certifications:  strings.TrimSpace(f.Certifications),
	}
}

// ParseSkills splits a comma-separated skills string into trimmed tokens.
// Empty tokens are dropped, order is preserved, duplicates are retained.
func ParseSkills(skills string) []string {
	var out []string
	for _, token := range strings.Split(skills, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			out = append(out, token)
		}
	}
	return out
}

// CoerceExperience converts an experience value to an integer clamped to
// [MinExperienceYears, MaxExperienceYears]. Unparseable input resolves to
// the minimum rather than an error; fractional years are truncated.
func CoerceExperience(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return types.MinExperienceYears
	}

	years, err := strconv.Atoi(value)
	if err != nil {
		// Tabular sources sometimes carry "5.0"; truncate toward zero.
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return types.MinExperienceYears
		}
		years = int(f)
	}

	if years < types.MinExperienceYears {
		return types.MinExperienceYears
	}
	if years > types.MaxExperienceYears {
		return types.MaxExperienceYears
	}
	return years
}
