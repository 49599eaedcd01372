package report

import (
	"fmt"

	"github.com/jonathan/career-insights/internal/types"
)

// sectionsPerPage is how many insight sections share one document page
const sectionsPerPage = 3

// SummaryRow is one key-value pair of the cover table
type SummaryRow struct {
	Key   string
	Value string
}

// Document is the paginated report structure handed to the format renderers:
// a cover page with the summary table, one page per group of insight
// sections, and a final page with the chart images.
type Document struct {
	Title   string
	Summary []SummaryRow
	Pages   [][]types.Section
	Charts  []ChartImage
}

// Assemble combines the profile, indicator labels, approval status, insights,
// and charts into a Document. It refuses to assemble unless the run is
// Approved; Draft and Rejected always return an ApprovalError so a document
// artifact can never exist for an unapproved run.
//
// Indicators are rendered through their qualitative labels only; the raw
// numbers never reach the document.
func Assemble(profile types.EmployeeProfile, labels IndicatorLabels, status types.ApprovalStatus, insights types.InsightDocument, charts []ChartImage) (*Document, error) {
	if status != types.StatusApproved {
		return nil, &ApprovalError{Status: string(status)}
	}
	if insights.Empty() {
		return nil, &RenderError{Format: "document", Message: "no insight sections to assemble"}
	}

	doc := &Document{
		Title: "Career Intelligence Report",
		Summary: []SummaryRow{
			{Key: "Employee ID", Value: profile.EmployeeID},
			{Key: "Employee Name", Value: profile.Name},
			{Key: "Current Role", Value: profile.CurrentRole},
			{Key: "Target Role", Value: profile.TargetRole},
			{Key: "Experience", Value: fmt.Sprintf("%d years", profile.ExperienceYears)},
			{Key: "Readiness Trajectory", Value: labels.Readiness},
			{Key: "Promotion Outlook", Value: labels.Promotion},
			{Key: "Peer Positioning", Value: labels.Peer},
			{Key: "Approval Status", Value: string(status)},
		},
		Charts: charts,
	}

	// Sections flow onto pages in model order; titles pass through verbatim.
	for start := 0; start < len(insights.Sections); start += sectionsPerPage {
		end := start + sectionsPerPage
		if end > len(insights.Sections) {
			end = len(insights.Sections)
		}
		doc.Pages = append(doc.Pages, insights.Sections[start:end])
	}

	return doc, nil
}
