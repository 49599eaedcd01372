// Package report assembles approved analysis results into paginated PDF and
// DOCX artifacts.
package report

import "fmt"

// ApprovalError indicates an attempt to produce a document for a run whose
// approval status is not Approved. The attempt is always rejected; output is
// never silently downgraded.
type ApprovalError struct {
	Status string
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("report generation requires HR approval; current status: %s", e.Status)
}

// RenderError represents a failure while producing the document artifact
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s render error: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s render error: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
