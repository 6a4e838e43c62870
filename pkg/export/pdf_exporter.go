package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Document describes a PDF table report.
type Document struct {
	Title    string
	Subtitle string
	Data     Dataset
	// Widths are relative column weights. Empty means equal columns.
	Widths []float64
}

// PDFExporter renders documents into a tabular PDF.
type PDFExporter struct {
	orientation string
}

// NewPDFExporter constructs a PDF exporter; landscape pages suit wide agendas.
func NewPDFExporter(landscape bool) *PDFExporter {
	orientation := "P"
	if landscape {
		orientation = "L"
	}
	return &PDFExporter{orientation: orientation}
}

// Render creates a PDF document with an optional heading and the table body.
// Text is UTF-8 and gets translated to the core font code page so accented
// names print correctly.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	headers := doc.Data.Headers
	if len(headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	if len(doc.Widths) > 0 && len(doc.Widths) != len(headers) {
		return nil, fmt.Errorf("pdf widths: got %d, want %d", len(doc.Widths), len(headers))
	}

	pdf := gofpdf.New(e.orientation, "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := columnWidths(pageWidth-left-right, len(headers), doc.Widths)

	if doc.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	}
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 6, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	if doc.Title != "" || doc.Subtitle != "" {
		pdf.Ln(4)
	}

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 8, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	writeHeader()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range doc.Data.Rows {
		if pdf.GetY()+7 > pageHeight-bottom {
			pdf.AddPage()
			writeHeader()
		}
		for i, header := range headers {
			pdf.CellFormat(widths[i], 7, tr(row[header]), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(total float64, columns int, weights []float64) []float64 {
	widths := make([]float64, columns)
	var sum float64
	for _, w := range weights {
		sum += w
	}
	for i := range widths {
		if sum <= 0 {
			widths[i] = total / float64(columns)
			continue
		}
		widths[i] = total * weights[i] / sum
	}
	return widths
}
