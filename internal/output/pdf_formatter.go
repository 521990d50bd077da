// PDF report: landscape pages mirroring the console report's sections, one
// table per section with a header bar, grid cells, and a bold totals row.
package output

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// PDFFormatter renders the analysis as a multi-page landscape PDF.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(analysis *domain.LossAnalysis) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AliasNbPages("{nb}")

	drawTitlePage(pdf, analysis)

	pdf.AddPage()
	drawSectionTitle(pdf, "Adjusted Earnings Factor (AEF)")
	drawAEFTable(pdf, analysis.Breakdown)

	pdf.AddPage()
	drawSectionTitle(pdf, "Past Losses (DOI - DOR)")
	drawScheduleTable(pdf, analysis.Past, analysis.Summary.Past)

	pdf.AddPage()
	drawSectionTitle(pdf, "Future Losses (DOR - Retirement)")
	drawScheduleTable(pdf, analysis.Future, analysis.Summary.Future)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSectionTitle(pdf *fpdf.Fpdf, title string) {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 7, "Page "+strconv.Itoa(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(marginT + 14)
}

func drawTitlePage(pdf *fpdf.Fpdf, analysis *domain.LossAnalysis) {
	pdf.AddPage()
	drawSectionTitle(pdf, "Lost-Earnings Analysis")

	rows := [][2]string{
		{"Statistical Death Date", FormatDate(analysis.StatisticalDeathDate)},
		{"Statistical Retirement Date", FormatDate(analysis.StatisticalRetirementDate)},
		{"Retirement Year", strconv.Itoa(analysis.RetirementYear)},
		{"WorkLife Factor", analysis.WorklifeFactor.StringFixed(4)},
		{"Final AEF", FormatPercentage(analysis.AdjustmentFactor.Mul(hundred).Round(2))},
		{"Report-Year Past Fraction", analysis.PastFraction.StringFixed(6)},
		{"Report-Year Future Fraction", analysis.FutureFraction.StringFixed(6)},
	}
	if analysis.ClaimantName != "" {
		rows = append([][2]string{{"Claimant", analysis.ClaimantName}}, rows...)
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(70, 7, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, r[1], "1", 1, "L", false, 0, "")
	}

	if len(analysis.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		for _, warning := range analysis.Warnings {
			pdf.CellFormat(0, 6, "Warning: "+warning, "", 1, "L", false, 0, "")
		}
	}
}

func drawAEFTable(pdf *fpdf.Fpdf, breakdown domain.AEFBreakdown) {
	headers := []string{"Factor", "Percentage", "Decimal", "Formula"}
	widths := []float64{60, 30, 30, 90}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6.5, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	for i, step := range breakdown.Steps {
		last := i == len(breakdown.Steps)-1
		if last {
			pdf.SetFont("Helvetica", "B", 9)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(widths[0], 6, step.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, FormatPercentage(step.Percentage), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, step.Decimal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, step.Formula, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4,
		"Factors apply in order to a running multiplier starting at 1.0. "+
			"The Personal Consumption step subtracts from the running value, so factor order matters when it is present.",
		"", "L", false)
}

func drawScheduleTable(pdf *fpdf.Fpdf, s domain.Schedule, totals domain.ScheduleTotals) {
	headers := []string{
		"Year", "Portion (%)", "Age", "Pre-Injury ($)", "Offset ($)",
		"Nominal Loss ($)", "AEF (%)", "Adjusted Loss ($)",
	}
	widths := []float64{16, 22, 16, 32, 32, 32, 20, 34}
	if s.IncludesPV {
		headers = append(headers, "PV Loss ($)")
		widths = append(widths, 32)
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6.5, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range s.Rows {
		cells := []string{
			strconv.Itoa(r.Year),
			r.PortionPercent().StringFixed(2),
			r.Age.StringFixed(2),
			r.PreInjury.StringFixed(2),
			r.Offset.StringFixed(2),
			r.NominalLoss.StringFixed(2),
			r.FactorPercent().StringFixed(2),
			r.AdjustedLoss.StringFixed(2),
		}
		if s.IncludesPV {
			pv := ""
			if r.PVLoss != nil {
				pv = r.PVLoss.StringFixed(2)
			}
			cells = append(cells, pv)
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 5.5, cell, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	totalCells := []string{
		"Total", "", "",
		totals.PreInjury.StringFixed(2),
		totals.Offset.StringFixed(2),
		totals.NominalLoss.StringFixed(2),
		"",
		totals.AdjustedLoss.StringFixed(2),
	}
	if s.IncludesPV {
		pv := ""
		if totals.PVLoss != nil {
			pv = totals.PVLoss.StringFixed(2)
		}
		totalCells = append(totalCells, pv)
	}
	for i, cell := range totalCells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
