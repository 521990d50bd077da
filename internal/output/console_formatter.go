package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// ConsoleFormatter renders the analysis as a plain-text report: key dates,
// the AEF disclosure ledger, both annual tables, and the quick totals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(analysis *domain.LossAnalysis) ([]byte, error) {
	buf := &bytes.Buffer{}

	title := "LOST-EARNINGS ANALYSIS"
	fmt.Fprintf(buf, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	if analysis.ClaimantName != "" {
		fmt.Fprintf(buf, "Claimant:                    %s\n", analysis.ClaimantName)
	}
	fmt.Fprintf(buf, "Statistical Death Date:      %s\n", FormatDate(analysis.StatisticalDeathDate))
	fmt.Fprintf(buf, "Statistical Retirement Date: %s (Year: %d)\n",
		FormatDate(analysis.StatisticalRetirementDate), analysis.RetirementYear)
	fmt.Fprintf(buf, "WorkLife Factor:             %s\n", analysis.WorklifeFactor.StringFixed(4))
	fmt.Fprintf(buf, "Final AEF:                   %s\n", FormatPercentage(analysis.AdjustmentFactor.Mul(hundred).Round(2)))

	for _, warning := range analysis.Warnings {
		fmt.Fprintf(buf, "WARNING: %s\n", warning)
	}

	fmt.Fprintf(buf, "\nADJUSTED EARNINGS FACTOR (AEF)\n")
	tw := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Factor\tPercentage\tDecimal\tFormula")
	for _, step := range analysis.Breakdown.Steps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			step.Label, FormatPercentage(step.Percentage), step.Decimal.StringFixed(2), step.Formula)
	}
	tw.Flush()
	fmt.Fprintf(buf, "Note: factors apply in order to a running multiplier starting at 1.0;\n")
	fmt.Fprintf(buf, "the Personal Consumption step subtracts from the running value, so\n")
	fmt.Fprintf(buf, "factor order matters when it is present.\n")

	c.writeSchedule(buf, "PAST LOSSES (DOI -> DOR)", analysis.Past, analysis.Summary.Past)
	c.writeSchedule(buf, "FUTURE LOSSES (DOR -> RETIREMENT)", analysis.Future, analysis.Summary.Future)

	fmt.Fprintf(buf, "\nQUICK TOTALS\n")
	tw = tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Period\tPre-Injury\tOffset\tNominal Loss\tAdjusted Loss\tPV Loss")
	for _, t := range []domain.ScheduleTotals{analysis.Summary.Past, analysis.Summary.Future} {
		pv := "-"
		if t.PVLoss != nil {
			pv = FormatCurrency(*t.PVLoss)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Label, FormatCurrency(t.PreInjury), FormatCurrency(t.Offset),
			FormatCurrency(t.NominalLoss), FormatCurrency(t.AdjustedLoss), pv)
	}
	tw.Flush()

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeSchedule(buf *bytes.Buffer, title string, s domain.Schedule, totals domain.ScheduleTotals) {
	fmt.Fprintf(buf, "\n%s\n", title)
	tw := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)

	header := "Year\tPortion\tAge\tPre-Injury\tOffset\tNominal Loss\tAEF\tAdjusted Loss"
	if s.IncludesPV {
		header += "\tPV Loss"
	}
	fmt.Fprintln(tw, header)

	for _, r := range s.Rows {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
			r.Year,
			FormatPercentage(r.PortionPercent()),
			r.Age.StringFixed(2),
			FormatCurrency(r.PreInjury),
			FormatCurrency(r.Offset),
			FormatCurrency(r.NominalLoss),
			FormatPercentage(r.FactorPercent()),
			FormatCurrency(r.AdjustedLoss))
		if s.IncludesPV && r.PVLoss != nil {
			line += "\t" + FormatCurrency(*r.PVLoss)
		}
		fmt.Fprintln(tw, line)
	}

	totalLine := fmt.Sprintf("Total\t\t\t%s\t%s\t%s\t\t%s",
		FormatCurrency(totals.PreInjury), FormatCurrency(totals.Offset),
		FormatCurrency(totals.NominalLoss), FormatCurrency(totals.AdjustedLoss))
	if s.IncludesPV && totals.PVLoss != nil {
		totalLine += "\t" + FormatCurrency(*totals.PVLoss)
	}
	fmt.Fprintln(tw, totalLine)
	tw.Flush()
}
