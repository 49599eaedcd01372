// Package insights parses raw model responses into ordered, titled sections.
package insights

import (
	"strings"

	"github.com/jonathan/career-insights/internal/prompts"
	"github.com/jonathan/career-insights/internal/types"
)

// Segment splits raw model text into an InsightDocument on the fixed heading
// marker. Each fragment's first line is the section title (trimmed); the
// remaining non-blank lines form the body. Empty or whitespace-only fragments
// are discarded. Section order is preserved exactly; titles are never
// validated, deduplicated, or reordered against the mandated list.
//
// If the marker never appears the whole text becomes a single untitled
// section. This is a graceful degradation, never an error.
func Segment(raw string) types.InsightDocument {
	var doc types.InsightDocument

	if !strings.Contains(raw, prompts.SectionMarker) {
		body := bodyLines(strings.Split(raw, "\n"))
		if len(body) == 0 {
			return doc
		}
		doc.Sections = append(doc.Sections, types.Section{Title: "", Body: body})
		return doc
	}

	for _, fragment := range strings.Split(raw, prompts.SectionMarker) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		lines := strings.Split(fragment, "\n")
		title := strings.TrimSpace(lines[0])
		body := bodyLines(lines[1:])

		doc.Sections = append(doc.Sections, types.Section{Title: title, Body: body})
	}

	return doc
}

// bodyLines trims each line and drops the blank ones, preserving order
func bodyLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
