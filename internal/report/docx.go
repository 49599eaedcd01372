package report

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"
)

// RenderDOCX writes the assembled document as a word-processor artifact:
// heading, cover summary paragraphs, titled insight sections, and embedded
// chart images. Pagination is left to the word processor.
func RenderDOCX(doc *Document, w io.Writer) error {
	d := docx.New().WithDefaultTheme()

	title := d.AddParagraph()
	title.AddText(doc.Title).Size("36").Bold()

	for _, row := range doc.Summary {
		p := d.AddParagraph()
		p.AddText(row.Key + ": ").Bold()
		p.AddText(row.Value)
	}

	for _, page := range doc.Pages {
		for _, section := range page {
			heading := section.Title
			if heading == "" {
				heading = "Career Insights"
			}
			h := d.AddParagraph()
			h.AddText(heading).Size("28").Bold().Color("1F4FD8")

			for _, line := range section.Body {
				d.AddParagraph().AddText(line)
			}
			d.AddParagraph()
		}
	}

	if len(doc.Charts) > 0 {
		h := d.AddParagraph()
		h.AddText("Career Positioning Snapshot").Size("28").Bold()

		for i, img := range doc.Charts {
			p := d.AddParagraph()
			if _, err := p.AddInlineDrawing(img.PNG); err != nil {
				return &RenderError{Format: "docx", Message: fmt.Sprintf("embed chart %d", i), Cause: err}
			}
		}
	}

	if _, err := d.WriteTo(w); err != nil {
		return &RenderError{Format: "docx", Message: "write failed", Cause: err}
	}
	return nil
}
