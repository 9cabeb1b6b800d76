package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer turns normalized question bank text into a printable document.
type PDFRenderer struct{}

// NewPDFRenderer constructs a question bank renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays the bank text out as flowing paragraphs under a document title.
// The text is expected to be normalized already: title on the first line and
// a blank line between questions.
func (r *PDFRenderer) Render(text, docTitle string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("pdf requires non-empty text")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(docTitle, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Core fonts are cp1252 only; unsupported runes degrade to best-effort
	// substitutes instead of corrupting the document.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lines := strings.Split(text, "\n")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, tr(lines[0]), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
