package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF writes a compact PDF rendition of the shadow study to w. It
// carries the same numbers as the HTML report without the charts.
func RenderPDF(w io.Writer, p Params) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.Letterhead.Company)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, p.Letterhead.Tagline)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Seasonal Shadow Projection Study")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Site: %s, %s", FormatDMS(p.Site.LatitudeDeg, true), FormatDMS(p.Site.LongitudeDeg, false)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Obstacle height: %.2f m", p.Obstacle.HeightM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", p.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	// Results table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(58, 7, "Season", "1", 0, "L", false, 0, "")
	pdf.CellFormat(22, 7, "Day", "1", 0, "C", false, 0, "")
	pdf.CellFormat(36, 7, "Declination", "1", 0, "C", false, 0, "")
	pdf.CellFormat(36, 7, "Elevation", "1", 0, "C", false, 0, "")
	pdf.CellFormat(38, 7, "Shadow", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range p.Shadows {
		shadow := "infinite"
		if !s.Shadow.Infinite {
			shadow = fmt.Sprintf("%.2f m", s.Shadow.Meters)
		}
		pdf.CellFormat(58, 7, s.Season.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%d", s.Season.DayOfYear), "1", 0, "C", false, 0, "")
		pdf.CellFormat(36, 7, fmt.Sprintf("%.1f deg", s.DeclinationDeg), "1", 0, "C", false, 0, "")
		pdf.CellFormat(36, 7, fmt.Sprintf("%.1f deg", s.ElevationDeg), "1", 0, "C", false, 0, "")
		pdf.CellFormat(38, 7, shadow, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5,
		"Methodology: Cooper (1969) declination, degrees form; elevation from "+
			"sin(a) = sin(lat)sin(decl) + cos(lat)cos(decl)cos(w) at solar noon (w = 0); "+
			"shadow length L = H/tan(a), unbounded when a <= 0.",
		"", "L", false)
	pdf.Ln(4)
	pdf.MultiCell(0, 5, p.Letterhead.Footer, "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF report: %w", err)
	}
	return nil
}
