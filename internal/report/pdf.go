package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Cover table column widths in millimeters
const (
	pdfKeyColWidth   = 60.0
	pdfValueColWidth = 120.0
)

// RenderPDF writes the assembled document as a paginated A4 PDF.
// The artifact is write-once and session-scoped; nothing is persisted here.
func RenderPDF(doc *Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)

	// Cover page: title plus the key-value summary table
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 14, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, row := range doc.Summary {
		fill := i == 0
		pdf.SetFillColor(245, 245, 245)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(pdfKeyColWidth, 9, row.Key, "1", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(pdfValueColWidth, 9, row.Value, "1", 1, "L", fill, 0, "")
	}

	// Insight pages: one page per logical group of sections
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, section := range page {
			pdf.SetFont("Helvetica", "B", 13)
			pdf.SetTextColor(31, 79, 216)
			title := section.Title
			if title == "" {
				title = "Career Insights"
			}
			pdf.MultiCell(0, 8, title, "", "L", false)
			pdf.SetTextColor(0, 0, 0)

			pdf.SetFont("Helvetica", "", 11)
			for _, line := range section.Body {
				pdf.MultiCell(0, 6, line, "", "L", false)
			}
			pdf.Ln(6)
		}
	}

	// Final page: chart images
	if len(doc.Charts) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, "Career Positioning Snapshot", "", 1, "L", false, 0, "")
		pdf.Ln(4)

		for i, img := range doc.Charts {
			name := fmt.Sprintf("chart_%d", i)
			opts := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.PNG))
			pdf.ImageOptions(name, 30, pdf.GetY(), 150, 0, true, opts, 0, "")
			pdf.Ln(6)
		}
	}

	if pdf.Err() {
		return &RenderError{Format: "pdf", Message: "document build failed", Cause: pdf.Error()}
	}
	if err := pdf.Output(w); err != nil {
		return &RenderError{Format: "pdf", Message: "write failed", Cause: err}
	}
	return nil
}
