package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
	"github.com/lexecon/lost-earnings-calculator/pkg/dateutil"
)

// LossEngine orchestrates a complete lost-earnings analysis: validation,
// statistical date derivation, the past and future schedules, the
// report-year split, and the summary totals. It is stateless across runs.
type LossEngine struct {
	Logger Logger
}

// NewLossEngine creates a new loss engine
func NewLossEngine() *LossEngine {
	return &LossEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *LossEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunAnalysis computes the full past/future loss analysis for one case.
func (e *LossEngine) RunAnalysis(ctx context.Context, c *domain.CaseFile) (*domain.LossAnalysis, error) {
	cl := c.Claimant

	if cl.InjuryDate.After(cl.ReportDate) {
		return nil, domain.NewValidationError("report_date",
			fmt.Sprintf("report date (%s) cannot be before injury date (%s)",
				cl.ReportDate.Format("2006-01-02"), cl.InjuryDate.Format("2006-01-02")))
	}

	worklife, warnings, err := e.resolveWorklifeFactor(c)
	if err != nil {
		return nil, err
	}

	// Statistical dates are anchored at the injury date.
	deathDate := dateutil.ProjectDate(cl.InjuryDate, cl.LifeExpectancy)
	retirementDate := dateutil.ProjectDate(cl.InjuryDate, cl.WorklifeExpectancy)
	retirementYear := retirementDate.Year()

	if cl.ReportDate.Year() > retirementYear {
		return nil, domain.NewValidationError("report_date",
			fmt.Sprintf("report year %d is after the statistical retirement year %d",
				cl.ReportDate.Year(), retirementYear))
	}

	// The worklife adjustment leads the factor chain so the composed value
	// and the disclosure ledger share one trace.
	factors := make([]domain.Factor, 0, len(c.Factors)+1)
	factors = append(factors, domain.Factor{
		Label: domain.FactorWorklifeAdjustment,
		Value: one.Sub(worklife),
	})
	factors = append(factors, c.Factors...)

	aef, steps := ComposeFactors(factors)
	breakdown := BuildBreakdown(steps, aef)

	past := GenerateSchedule("Past", domain.ScheduleParameters{
		BirthDate:       cl.BirthDate,
		PeriodStart:     cl.InjuryDate,
		PeriodEndYear:   cl.ReportDate.Year(),
		PreInjuryBase:   c.Earnings.PreInjury.Base,
		PreInjuryGrowth: c.Earnings.PreInjury.Growth,
		OffsetBase:      c.Earnings.OffsetPast.Base,
		OffsetGrowth:    c.Earnings.OffsetPast.Growth,
		Factors:         factors,
		DiscountRate:    c.Discounting.DiscountRate,
		PresentValue:    c.Discounting.PresentValue,
	})

	// The future schedule re-anchors the pre-injury wage by compounding
	// growth from the injury year through the report year. The future
	// offset base is taken as supplied; it is a separate projected career
	// path, not a continuation of the past offset.
	elapsed := decimal.NewFromInt(int64(cl.ReportDate.Year() - cl.InjuryDate.Year()))
	futureBase := c.Earnings.PreInjury.Base.Mul(one.Add(c.Earnings.PreInjury.Growth).Pow(elapsed))

	future := GenerateSchedule("Future", domain.ScheduleParameters{
		BirthDate:       cl.BirthDate,
		PeriodStart:     dateutil.BeginningOfYear(cl.ReportDate),
		PeriodEndYear:   retirementYear,
		PreInjuryBase:   futureBase,
		PreInjuryGrowth: c.Earnings.PreInjury.Growth,
		OffsetBase:      c.Earnings.OffsetFuture.Base,
		OffsetGrowth:    c.Earnings.OffsetFuture.Growth,
		Factors:         factors,
		DiscountRate:    c.Discounting.DiscountRate,
		PresentValue:    c.Discounting.PresentValue,
	})

	pastFraction, futureFraction := SplitReportYear(cl.ReportDate)
	scaleBoundaryRow(&past.Rows[len(past.Rows)-1], pastFraction)
	scaleBoundaryRow(&future.Rows[0], futureFraction)

	e.Logger.Debugf("report year %d split: past %s / future %s",
		cl.ReportDate.Year(), pastFraction.StringFixed(6), futureFraction.StringFixed(6))

	analysis := &domain.LossAnalysis{
		ClaimantName:              cl.Name,
		StatisticalDeathDate:      deathDate,
		StatisticalRetirementDate: retirementDate,
		RetirementYear:            retirementYear,
		WorklifeFactor:            worklife,
		AdjustmentFactor:          aef,
		Breakdown:                 breakdown,
		Past:                      past,
		Future:                    future,
		Summary: domain.LossSummary{
			Past:   past.Totals(),
			Future: future.Totals(),
		},
		PastFraction:   pastFraction,
		FutureFraction: futureFraction,
		Warnings:       warnings,
	}
	return analysis, nil
}

// SplitReportYear divides the report year between the past and future
// schedules. The report day itself belongs to the past period, and the two
// fractions always sum to one.
func SplitReportYear(reportDate time.Time) (pastFraction, futureFraction decimal.Decimal) {
	daysInYear := decimal.NewFromInt(int64(dateutil.DaysInYear(reportDate.Year())))
	pastDays := decimal.NewFromInt(int64(reportDate.YearDay()))
	futureDays := daysInYear.Sub(pastDays)
	return pastDays.Div(daysInYear), futureDays.Div(daysInYear)
}

// scaleBoundaryRow rescales a report-year boundary row by its period
// fraction: the portion-of-year and every monetary column. The adjustment
// factor is year-independent and stays untouched.
func scaleBoundaryRow(row *domain.ScheduleRow, fraction decimal.Decimal) {
	row.Portion = row.Portion.Mul(fraction)
	row.PreInjury = row.PreInjury.Mul(fraction)
	row.Offset = row.Offset.Mul(fraction)
	row.NominalLoss = row.NominalLoss.Mul(fraction)
	row.AdjustedLoss = row.AdjustedLoss.Mul(fraction)
	if row.PVLoss != nil {
		pv := row.PVLoss.Mul(fraction)
		row.PVLoss = &pv
	}
}

// resolveWorklifeFactor returns the worklife ratio for the case: the
// explicit worklife_factor when supplied, otherwise WLE / YFS. A ratio of
// one or more is logically suspect but not fatal; it is flagged as a
// warning on the analysis.
func (e *LossEngine) resolveWorklifeFactor(c *domain.CaseFile) (decimal.Decimal, []string, error) {
	var worklife decimal.Decimal
	if c.WorklifeFactor.IsPositive() {
		worklife = c.WorklifeFactor
	} else {
		if c.Claimant.YearsToFinalSeparation <= 0 {
			return decimal.Zero, nil, domain.NewValidationError("years_to_final_separation",
				"must be greater than zero to derive the worklife ratio")
		}
		worklife = decimal.NewFromFloat(c.Claimant.WorklifeExpectancy).
			Div(decimal.NewFromFloat(c.Claimant.YearsToFinalSeparation))
	}

	var warnings []string
	if worklife.GreaterThanOrEqual(one) {
		msg := fmt.Sprintf("worklife ratio %s is >= 1.0; verify WLE and YFS", worklife.StringFixed(4))
		warnings = append(warnings, msg)
		e.Logger.Warnf("%s", msg)
	}
	return worklife, warnings, nil
}
