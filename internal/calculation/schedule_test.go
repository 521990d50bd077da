package calculation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

func baseParams() domain.ScheduleParameters {
	return domain.ScheduleParameters{
		BirthDate:       time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodStart:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEndYear:   2030,
		PreInjuryBase:   dec("70000"),
		PreInjuryGrowth: dec("0.03"),
		OffsetBase:      dec("30000"),
		OffsetGrowth:    dec("0.015"),
		DiscountRate:    dec("0.04"),
		PresentValue:    true,
	}
}

func TestGenerateScheduleRowCount(t *testing.T) {
	s := GenerateSchedule("Past", baseParams())
	require.Len(t, s.Rows, 2030-2023+1)

	for i, r := range s.Rows {
		assert.Equal(t, 2023+i, r.Year, "years must increase by exactly one per row")
	}
}

func TestGenerateScheduleEmptyRange(t *testing.T) {
	p := baseParams()
	p.PeriodEndYear = 2022
	s := GenerateSchedule("Past", p)
	assert.Empty(t, s.Rows)
}

func TestGenerateScheduleCompoundGrowth(t *testing.T) {
	s := GenerateSchedule("Past", baseParams())

	for i := 0; i < len(s.Rows)-1; i++ {
		ratio := s.Rows[i+1].PreInjury.Div(s.Rows[i].PreInjury)
		assert.InDelta(t, 1.03, ratio.InexactFloat64(), 1e-9,
			"pre-injury earnings must grow by exactly the growth rate year over year")
	}

	// Year 0 is the unscaled base.
	assert.True(t, s.Rows[0].PreInjury.Equal(dec("70000")))
}

func TestGenerateScheduleFirstRowPortion(t *testing.T) {
	p := baseParams()
	p.PeriodStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p.PeriodEndYear = 2028
	s := GenerateSchedule("Past", p)
	require.Len(t, s.Rows, 4)

	// June 1 is day 152 of 2025: (365 - 151) / 365 remains.
	assert.InDelta(t, 214.0/365.0, s.Rows[0].Portion.InexactFloat64(), 1e-12)
	for _, r := range s.Rows[1:] {
		assert.True(t, r.Portion.Equal(decimal.NewFromInt(1)), "interior rows must cover the full year")
	}
}

func TestGenerateScheduleLeapYearStart(t *testing.T) {
	p := baseParams()
	p.PeriodStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) // day 61 of a leap year
	p.PeriodEndYear = 2024
	s := GenerateSchedule("Past", p)
	require.Len(t, s.Rows, 1)
	assert.InDelta(t, 306.0/366.0, s.Rows[0].Portion.InexactFloat64(), 1e-12)
}

func TestGenerateScheduleOffsetProratedNominalLoss(t *testing.T) {
	p := baseParams()
	p.PeriodStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p.PeriodEndYear = 2025
	s := GenerateSchedule("Past", p)
	require.Len(t, s.Rows, 1)

	row := s.Rows[0]
	portion := row.Portion

	// Offset column is prorated; pre-injury earnings are shown unscaled.
	assert.True(t, row.Offset.Equal(dec("30000").Mul(portion)), "got %s", row.Offset)
	assert.True(t, row.PreInjury.Equal(dec("70000")))
	assert.True(t, row.NominalLoss.Equal(dec("40000").Mul(portion)), "got %s", row.NominalLoss)
}

func TestGenerateScheduleAdjustmentFactorConstantAcrossRows(t *testing.T) {
	p := baseParams()
	p.Factors = []domain.Factor{
		{Label: domain.FactorUnemployment, Value: dec("0.035")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.12")},
	}
	s := GenerateSchedule("Past", p)

	want, _ := ComposeFactors(p.Factors)
	for _, r := range s.Rows {
		assert.True(t, r.AdjustmentFactor.Equal(want), "composed factor must be identical on every row")
		assert.True(t, r.AdjustedLoss.Equal(r.NominalLoss.Mul(want)))
	}
}

func TestGenerateScheduleNoFactorsMeansNoAdjustment(t *testing.T) {
	s := GenerateSchedule("Past", baseParams())
	for _, r := range s.Rows {
		assert.True(t, r.AdjustmentFactor.Equal(decimal.NewFromInt(1)))
		assert.True(t, r.AdjustedLoss.Equal(r.NominalLoss))
	}
}

func TestGenerateSchedulePresentValueColumn(t *testing.T) {
	s := GenerateSchedule("Future", baseParams())
	require.True(t, s.IncludesPV)
	for i, r := range s.Rows {
		require.NotNil(t, r.PVLoss, "row %d", i)
	}

	// PV in year 0 equals the adjusted loss; later years are discounted.
	assert.True(t, s.Rows[0].PVLoss.Equal(s.Rows[0].AdjustedLoss))
	want := s.Rows[2].AdjustedLoss.Div(dec("1.04").Pow(decimal.NewFromInt(2)))
	assert.True(t, s.Rows[2].PVLoss.Equal(want))
}

func TestGenerateSchedulePVColumnAbsentWhenDisabled(t *testing.T) {
	p := baseParams()
	p.PresentValue = false
	s := GenerateSchedule("Past", p)
	require.False(t, s.IncludesPV)

	for _, r := range s.Rows {
		assert.Nil(t, r.PVLoss)
	}

	// Absence must survive serialization: no pv_loss key at all.
	b, err := json.Marshal(s.Rows[0])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "pv_loss")

	totals := s.Totals()
	assert.Nil(t, totals.PVLoss)
}

func TestGenerateScheduleAgeAtMidYear(t *testing.T) {
	s := GenerateSchedule("Past", baseParams())
	// Born 1980-01-01: about 43.5 at July 1, 2023.
	assert.InDelta(t, 43.5, s.Rows[0].Age.InexactFloat64(), 0.01)
	assert.InDelta(t, 44.5, s.Rows[1].Age.InexactFloat64(), 0.01)
}

func TestScheduleTotalsSumMonetaryColumns(t *testing.T) {
	s := GenerateSchedule("Past", baseParams())
	totals := s.Totals()

	var nominal decimal.Decimal
	for _, r := range s.Rows {
		nominal = nominal.Add(r.NominalLoss)
	}
	assert.True(t, totals.NominalLoss.Equal(nominal))
	require.NotNil(t, totals.PVLoss)
	assert.True(t, totals.PVLoss.LessThan(totals.AdjustedLoss), "discounting must shrink the PV total")
}
