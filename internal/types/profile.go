// Package types provides type definitions for structured data used throughout the career-insights system.
package types

// Experience bounds applied when resolving a profile
const (
	// MinExperienceYears is the lower bound for experience coercion
	MinExperienceYears = 0
	// MaxExperienceYears is the upper bound for experience coercion
	MaxExperienceYears = 40
)

// EmployeeProfile is the normalized input for one analysis run.
// It is created once per request and never mutated afterwards.
type EmployeeProfile struct {
	EmployeeID      string   `json:"employee_id,omitempty"`
	Name            string   `json:"name"`
	CurrentRole     string   `json:"current_role"`
	TargetRole      string   `json:"target_role"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Certifications  string   `json:"certifications,omitempty"`
}

// ConfidenceLevel is the employee's self-declared overall skill confidence
type ConfidenceLevel string

// Confidence levels, in ascending order of self-assessed mastery
const (
	ConfidenceFoundational ConfidenceLevel = "Foundational"
	ConfidenceWorking      ConfidenceLevel = "Working Professional"
	ConfidenceAdvanced     ConfidenceLevel = "Advanced"
	ConfidenceExpert       ConfidenceLevel = "Expert"
)

// Valid reports whether the value is one of the known confidence levels
func (c ConfidenceLevel) Valid() bool {
	switch c {
	case ConfidenceFoundational, ConfidenceWorking, ConfidenceAdvanced, ConfidenceExpert:
		return true
	}
	return false
}

// ResponsibilityLevel is the employee's self-declared ownership scope
type ResponsibilityLevel string

// Responsibility levels, from guided execution to full system ownership
const (
	ResponsibilityExecution    ResponsibilityLevel = "Execution-focused (guided work)"
	ResponsibilityIndependent  ResponsibilityLevel = "Independent contributor"
	ResponsibilityFeatureOwner ResponsibilityLevel = "Feature / module owner"
	ResponsibilitySystemOwner  ResponsibilityLevel = "End-to-end system owner"
)

// Valid reports whether the value is one of the known responsibility levels
func (r ResponsibilityLevel) Valid() bool {
	switch r {
	case ResponsibilityExecution, ResponsibilityIndependent, ResponsibilityFeatureOwner, ResponsibilitySystemOwner:
		return true
	}
	return false
}

// SelfAssessment carries the user-supplied self-assessment fields.
// Computed values never override these.
type SelfAssessment struct {
	Confidence     ConfidenceLevel     `json:"confidence_level"`
	Responsibility ResponsibilityLevel `json:"responsibility_level"`
}

// ApprovalStatus gates whether a downloadable document may be produced
type ApprovalStatus string

// Approval states settable by the HR view
const (
	StatusDraft    ApprovalStatus = "Draft"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// Valid reports whether the value is one of the known approval states
func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusRejected:
		return true
	}
	return false
}
