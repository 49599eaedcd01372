// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the resolved profile
func (p *Printer) PrintProfile(profile *types.EmployeeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Employee:   %s (%s)\n", profile.Name, profile.EmployeeID))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", profile.CurrentRole))
	sb.WriteString(fmt.Sprintf("Target:     %s\n", profile.TargetRole))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("RESOLVED PROFILE", sb.String())
}

// PrintResult outputs the run outcome: category, qualitative labels, and the
// section titles returned by the model. Raw indicator numbers are internal
// and are not printed.
func (p *Printer) PrintResult(result *analysis.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role Category:   %s\n", result.Category))
	sb.WriteString(fmt.Sprintf("Readiness:       %s\n", result.Labels.Readiness))
	sb.WriteString(fmt.Sprintf("Promotion:       %s\n", result.Labels.Promotion))
	sb.WriteString(fmt.Sprintf("Peer Position:   %s\n", result.Labels.Peer))
	sb.WriteString(fmt.Sprintf("Approval:        %s\n", result.Approval))

	if !result.Insights.Empty() {
		sb.WriteString("\nSections:\n")
		for _, section := range result.Insights.Sections {
			title := section.Title
			if title == "" {
				title = "(untitled)"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
	}

	p.printBox("ANALYSIS RESULT", sb.String())
}
