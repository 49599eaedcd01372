package prompts

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-insights/internal/types"
)

// SectionMarker is the heading prefix the model is instructed to use.
// The insight segmenter splits the response on this marker, so the composer
// must never omit the heading list below.
const SectionMarker = "###"

// Promotion framing labels. The model may use exactly one of these in the
// promotion readiness statement, nothing else.
const (
	LabelPromotionReady     = "Promotion Ready"
	LabelConditionallyReady = "Conditionally Ready"
	LabelProgressing        = "Progressing Toward Readiness"
)

// MandatedSections is the ordered heading list the response must follow
var MandatedSections = []string{
	"Executive Career Overview",
	"Skills & Capability Assessment",
	"Role-Relevant Certification Strategy",
	"Career Progression Path",
	"Career Readiness vs Promotion Eligibility",
	"Promotion Readiness Statement",
	"Peer Benchmark Summary",
	"Career Improvement Roadmap (0-6, 6-12, 12-24 months)",
	"HR Approval Notes",
	"Career Summary & Improvement Path",
}

// Compose renders the employee profile, self-assessment, and internal
// indicators into the analysis prompt. Skills and certifications are passed
// through verbatim with no filtering or truthfulness validation. The
// indicators appear only inside the internal-context block, labeled as
// not for display; the constraint block and the mandated section list are
// always present.
func Compose(profile types.EmployeeProfile, assessment types.SelfAssessment, indicators types.ReadinessIndicators) string {
	var b strings.Builder

	b.WriteString("You are a Senior Enterprise HR Career Intelligence Agent.\n\n")
	b.WriteString("This report is reviewed by:\n")
	b.WriteString("- HR Business Partners\n")
	b.WriteString("- Promotion Committees\n")
	b.WriteString("- Leadership\n\n")

	b.WriteString("EMPLOYEE IDENTIFICATION\n")
	fmt.Fprintf(&b, "Employee ID: %s\n", profile.EmployeeID)
	fmt.Fprintf(&b, "Employee Name: %s\n\n", profile.Name)

	b.WriteString("ROLE CONTEXT\n")
	fmt.Fprintf(&b, "Current Role: %s\n", profile.CurrentRole)
	fmt.Fprintf(&b, "Target Role: %s\n", profile.TargetRole)
	fmt.Fprintf(&b, "Experience: %d years\n\n", profile.ExperienceYears)

	b.WriteString("SKILLS (Self-Declared):\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Join(profile.Skills, ", "))

	b.WriteString("CERTIFICATIONS:\n")
	fmt.Fprintf(&b, "%s\n\n", profile.Certifications)

	b.WriteString("SELF-ASSESSMENT\n")
	fmt.Fprintf(&b, "Confidence Level: %s\n", assessment.Confidence)
	fmt.Fprintf(&b, "Responsibility Scope: %s\n\n", assessment.Responsibility)

	b.WriteString("INTERNAL CONTEXT (DO NOT EXPOSE NUMERIC SCORES)\n")
	fmt.Fprintf(&b, "Career Readiness Indicator: %d\n", indicators.CareerReadiness)
	fmt.Fprintf(&b, "Promotion Indicator: %d\n", indicators.PromotionIndicator)
	fmt.Fprintf(&b, "Peer Positioning: Top %d%%\n\n", indicators.PeerPercentile)

	b.WriteString("STRICT RULES\n")
	b.WriteString(MustGet("strict-rules"))
	b.WriteString("\n\n")

	b.WriteString("MANDATORY SECTIONS\n")
	for _, section := range MandatedSections {
		fmt.Fprintf(&b, "%s %s\n", SectionMarker, section)
		if section == "Promotion Readiness Statement" {
			fmt.Fprintf(&b, "(Only: %s / %s / %s)\n", LabelPromotionReady, LabelConditionallyReady, LabelProgressing)
		}
	}

	b.WriteString("\nWrite like a Senior HR Partner preparing a promotion review.\n")

	return b.String()
}
