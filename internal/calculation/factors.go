package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComposeFactors combines an ordered factor list into a single adjustment
// value, rounded to 6 decimal places, and returns the step-by-step trace the
// AEF disclosure ledger is built from. The update rule depends on the label:
//
//	Personal Consumption  a = a * (a - v)
//	Fringe Benefits       a = a * (1 + v)
//	anything else         a = a * (1 - v)
//
// The Personal Consumption rule subtracts from the running accumulator, not
// from 1, so factor order changes the result; it is also permitted to drive
// the accumulator negative. An empty list composes to exactly 1.
func ComposeFactors(factors []domain.Factor) (decimal.Decimal, []domain.AEFStep) {
	a := one
	steps := make([]domain.AEFStep, 0, len(factors))
	for _, f := range factors {
		var formula string
		switch f.Label {
		case domain.FactorPersonalConsumption:
			reduced := a.Sub(f.Value)
			formula = fmt.Sprintf("(%s - %s) = %s",
				a.StringFixed(3), f.Value.StringFixed(3), reduced.StringFixed(3))
			a = a.Mul(reduced)
		case domain.FactorFringeBenefits:
			mult := one.Add(f.Value)
			formula = fmt.Sprintf("(1 + %s) = %s", f.Value.StringFixed(3), mult.StringFixed(3))
			a = a.Mul(mult)
		default:
			mult := one.Sub(f.Value)
			formula = fmt.Sprintf("(1 - %s) = %s", f.Value.StringFixed(3), mult.StringFixed(3))
			a = a.Mul(mult)
		}
		steps = append(steps, domain.AEFStep{
			Label:      f.Label,
			Percentage: f.Value.Mul(hundred).Round(2),
			Decimal:    f.Value,
			Formula:    formula,
			Result:     a,
		})
	}
	return a.Round(6), steps
}

// BuildBreakdown frames a composition trace as the disclosure ledger: a
// gross-earnings base row, one row per applied factor, and the final AEF
// row. The final value is the same accumulator the schedules are adjusted
// by, so the ledger cannot drift from the computation it documents.
func BuildBreakdown(steps []domain.AEFStep, final decimal.Decimal) domain.AEFBreakdown {
	ledger := make([]domain.AEFStep, 0, len(steps)+2)
	ledger = append(ledger, domain.AEFStep{
		Label:      "Gross Earnings Base",
		Percentage: hundred,
		Decimal:    one,
		Formula:    "Base = 1.0",
		Result:     one,
	})
	ledger = append(ledger, steps...)
	ledger = append(ledger, domain.AEFStep{
		Label:      "Final AEF",
		Percentage: final.Mul(hundred).Round(2),
		Decimal:    final,
		Formula:    "Product of all factor adjustments",
		Result:     final,
	})
	return domain.AEFBreakdown{Steps: ledger, FinalAEF: final}
}
