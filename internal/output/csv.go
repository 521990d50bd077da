package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// CSVExporter writes both annual tables and the totals summary as one CSV:
// schedule rows first (tagged Past/Future), then the two totals rows.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(analysis *domain.LossAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	includePV := analysis.Past.IncludesPV || analysis.Future.IncludesPV
	header := []string{
		"Schedule", "Calendar Year", "Portion of Year (%)", "Age (yrs)",
		"Pre-Injury Earnings ($)", "Mitigating/Offset Earnings ($)",
		"Nominal Loss ($)", "AEF (%)", "AEF-Adjusted Loss ($)",
	}
	if includePV {
		header = append(header, "PV Loss ($)")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, s := range []domain.Schedule{analysis.Past, analysis.Future} {
		for _, r := range s.Rows {
			row := []string{
				s.Label,
				strconv.Itoa(r.Year),
				r.PortionPercent().StringFixed(2),
				r.Age.StringFixed(2),
				r.PreInjury.StringFixed(2),
				r.Offset.StringFixed(2),
				r.NominalLoss.StringFixed(2),
				r.FactorPercent().StringFixed(2),
				r.AdjustedLoss.StringFixed(2),
			}
			if includePV {
				pv := ""
				if r.PVLoss != nil {
					pv = r.PVLoss.StringFixed(2)
				}
				row = append(row, pv)
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	totalsHeader := []string{
		"Totals", "", "", "",
		"Pre-Injury Earnings ($)", "Mitigating/Offset Earnings ($)",
		"Nominal Loss ($)", "", "AEF-Adjusted Loss ($)",
	}
	if includePV {
		totalsHeader = append(totalsHeader, "PV Loss ($)")
	}
	if err := w.Write(totalsHeader); err != nil {
		return nil, err
	}
	for _, t := range []domain.ScheduleTotals{analysis.Summary.Past, analysis.Summary.Future} {
		row := []string{
			t.Label, "", "", "",
			t.PreInjury.StringFixed(2),
			t.Offset.StringFixed(2),
			t.NominalLoss.StringFixed(2),
			"",
			t.AdjustedLoss.StringFixed(2),
		}
		if includePV {
			pv := ""
			if t.PVLoss != nil {
				pv = t.PVLoss.StringFixed(2)
			}
			row = append(row, pv)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
