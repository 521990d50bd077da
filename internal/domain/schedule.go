package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRow is one calendar year's computed record. Rows hold raw decimal
// values; display rounding to cents and percentage views are formatter
// concerns.
type ScheduleRow struct {
	Year             int             `json:"year"`
	Portion          decimal.Decimal `json:"portion"` // fraction of year covered, (0, 1]
	Age              decimal.Decimal `json:"age"`     // years at July 1 of Year
	PreInjury        decimal.Decimal `json:"pre_injury_earnings"`
	Offset           decimal.Decimal `json:"offset_earnings"` // prorated by Portion
	NominalLoss      decimal.Decimal `json:"nominal_loss"`
	AdjustmentFactor decimal.Decimal `json:"adjustment_factor"`
	AdjustedLoss     decimal.Decimal `json:"adjusted_loss"`

	// PVLoss is present only when present-value discounting is enabled for
	// the schedule; a nil pointer means the column does not exist.
	PVLoss *decimal.Decimal `json:"pv_loss,omitempty"`
}

// PortionPercent returns the portion of year as a percentage, 2 decimals.
func (r ScheduleRow) PortionPercent() decimal.Decimal {
	return r.Portion.Mul(decimal.NewFromInt(100)).Round(2)
}

// FactorPercent returns the adjustment factor as a percentage, 2 decimals.
func (r ScheduleRow) FactorPercent() decimal.Decimal {
	return r.AdjustmentFactor.Mul(decimal.NewFromInt(100)).Round(2)
}

// Schedule is an ordered annual loss table, one row per calendar year.
type Schedule struct {
	Label      string        `json:"label"` // "Past" or "Future"
	Rows       []ScheduleRow `json:"rows"`
	IncludesPV bool          `json:"includes_pv"`
}

// ScheduleTotals sums every monetary column of a schedule.
type ScheduleTotals struct {
	Label        string           `json:"label"`
	PreInjury    decimal.Decimal  `json:"pre_injury_earnings"`
	Offset       decimal.Decimal  `json:"offset_earnings"`
	NominalLoss  decimal.Decimal  `json:"nominal_loss"`
	AdjustedLoss decimal.Decimal  `json:"adjusted_loss"`
	PVLoss       *decimal.Decimal `json:"pv_loss,omitempty"`
}

// Totals sums the schedule's monetary columns.
func (s Schedule) Totals() ScheduleTotals {
	t := ScheduleTotals{Label: s.Label}
	var pv decimal.Decimal
	for _, r := range s.Rows {
		t.PreInjury = t.PreInjury.Add(r.PreInjury)
		t.Offset = t.Offset.Add(r.Offset)
		t.NominalLoss = t.NominalLoss.Add(r.NominalLoss)
		t.AdjustedLoss = t.AdjustedLoss.Add(r.AdjustedLoss)
		if r.PVLoss != nil {
			pv = pv.Add(*r.PVLoss)
		}
	}
	if s.IncludesPV {
		t.PVLoss = &pv
	}
	return t
}

// LossSummary is the two-row Past/Future totals table.
type LossSummary struct {
	Past   ScheduleTotals `json:"past"`
	Future ScheduleTotals `json:"future"`
}

// AEFStep records one applied step in the adjustment-factor composition
// ledger: the factor, its algebraic formula, and the running accumulator.
type AEFStep struct {
	Label      string          `json:"label"`
	Percentage decimal.Decimal `json:"percentage"` // factor value * 100
	Decimal    decimal.Decimal `json:"decimal"`    // raw factor value
	Formula    string          `json:"formula"`    // e.g. "(1 - 0.120) = 0.880"
	Result     decimal.Decimal `json:"result"`     // accumulator after this step
}

// AEFBreakdown is the disclosure ledger for the adjusted earnings factor.
// It is pure formatting over the composer's trace, so its final value is the
// same accumulator the schedules were adjusted by.
type AEFBreakdown struct {
	Steps    []AEFStep       `json:"steps"`
	FinalAEF decimal.Decimal `json:"final_aef"`
}

// LossAnalysis is the complete output of one computation: both schedules,
// the stitched summary, the composed factor with its ledger, and the
// derived statistical dates.
type LossAnalysis struct {
	ClaimantName              string          `json:"claimant_name,omitempty"`
	StatisticalDeathDate      time.Time       `json:"statistical_death_date"`
	StatisticalRetirementDate time.Time       `json:"statistical_retirement_date"`
	RetirementYear            int             `json:"retirement_year"`
	WorklifeFactor            decimal.Decimal `json:"worklife_factor"`
	AdjustmentFactor          decimal.Decimal `json:"adjustment_factor"`
	Breakdown                 AEFBreakdown    `json:"aef_breakdown"`
	Past                      Schedule        `json:"past"`
	Future                    Schedule        `json:"future"`
	Summary                   LossSummary     `json:"summary"`
	PastFraction              decimal.Decimal `json:"past_fraction"`
	FutureFraction            decimal.Decimal `json:"future_fraction"`
	Warnings                  []string        `json:"warnings,omitempty"`
}
