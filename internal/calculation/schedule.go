package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
	"github.com/lexecon/lost-earnings-calculator/pkg/dateutil"
)

// GenerateSchedule produces one annual loss table covering the period
// start's calendar year through the period end year inclusive.
//
// The first row's portion-of-year is the fraction of the start year
// remaining from (and including) the start date; every other row covers the
// full year. Earnings compound from the period start with a zero-based year
// index as the exponent, the offset column is prorated by portion, and the
// present-value column exists only when discounting is enabled.
func GenerateSchedule(label string, params domain.ScheduleParameters) domain.Schedule {
	startYear := params.PeriodStart.Year()
	schedule := domain.Schedule{Label: label, IncludesPV: params.PresentValue}
	if params.PeriodEndYear < startYear {
		return schedule
	}

	aef, _ := ComposeFactors(params.Factors)

	days := decimal.NewFromInt(int64(dateutil.DaysInYear(startYear)))
	startDay := decimal.NewFromInt(int64(params.PeriodStart.YearDay()))
	firstPortion := days.Sub(startDay.Sub(one)).Div(days)

	preGrowth := one.Add(params.PreInjuryGrowth)
	offGrowth := one.Add(params.OffsetGrowth)
	discount := one.Add(params.DiscountRate)

	schedule.Rows = make([]domain.ScheduleRow, 0, params.PeriodEndYear-startYear+1)
	for year := startYear; year <= params.PeriodEndYear; year++ {
		t := decimal.NewFromInt(int64(year - startYear))

		portion := one
		if year == startYear {
			portion = firstPortion
		}

		pre := params.PreInjuryBase.Mul(preGrowth.Pow(t))
		off := params.OffsetBase.Mul(offGrowth.Pow(t))
		nominal := pre.Sub(off).Mul(portion)
		adjusted := nominal.Mul(aef)

		row := domain.ScheduleRow{
			Year:             year,
			Portion:          portion,
			Age:              decimal.NewFromFloat(dateutil.AgeAtMidYear(params.BirthDate, year)).Round(2),
			PreInjury:        pre,
			Offset:           off.Mul(portion),
			NominalLoss:      nominal,
			AdjustmentFactor: aef,
			AdjustedLoss:     adjusted,
		}
		if params.PresentValue {
			pv := adjusted.Div(discount.Pow(t))
			row.PVLoss = &pv
		}
		schedule.Rows = append(schedule.Rows, row)
	}
	return schedule
}
