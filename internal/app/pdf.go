package app

import (
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hyperifyio/calibsum/internal/aggregate"
)

// writeSummaryPDF renders the final run report as a one-page PDF artifact.
func writeSummaryPDF(outPath, inputPath string, t aggregate.Totals, elapsed time.Duration) error {
	p := message.NewPrinter(language.English)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Calibration run summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		p.Sprintf("Input: %s", inputPath),
		p.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)),
		p.Sprintf("Parsed lines: %d", t.Lines),
		p.Sprintf("Incorrect lines: %d", t.Incorrect),
		p.Sprintf("Total amount: %d", t.Sum),
		p.Sprintf("Elapsed: %s", elapsed.Round(time.Millisecond)),
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	return pdf.OutputFileAndClose(outPath)
}
