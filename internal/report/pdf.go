package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/mdelacruz/gobraze/internal/catalog"
)

// WritePDF writes the tables as a printable PDF report, one table per page,
// with each row laid out as labeled lines.
func WritePDF(tables []catalog.Table, title, path string) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	// Core fonts are cp1252; map what we can, drop the rest.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Quick-reference tables from MIL-SD-248D and MIL-S-23284A guidance")
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)

	for _, tbl := range tables {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(tbl.Title))
		pdf.Ln(11)

		for _, row := range tbl.Rows {
			for c, col := range tbl.Columns {
				pdf.SetFont("Helvetica", "B", 9)
				pdf.Cell(42, 5, tr(col))
				pdf.SetFont("Helvetica", "", 9)
				pdf.MultiCell(0, 5, tr(row[c]), "", "L", false)
			}
			pdf.Ln(4)
		}
	}

	return pdf.OutputFileAndClose(path)
}
