package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComposeFactorsEmptyListIsIdentity(t *testing.T) {
	aef, steps := ComposeFactors(nil)
	assert.True(t, aef.Equal(decimal.NewFromInt(1)), "empty list must compose to exactly 1.0, got %s", aef)
	assert.Empty(t, steps)
}

func TestComposeFactorsIsPure(t *testing.T) {
	factors := []domain.Factor{
		{Label: domain.FactorFringeBenefits, Value: dec("0.06")},
		{Label: domain.FactorUnemployment, Value: dec("0.035")},
		{Label: domain.FactorPersonalConsumption, Value: dec("0.25")},
	}

	first, _ := ComposeFactors(factors)
	second, _ := ComposeFactors(factors)
	assert.Equal(t, first.String(), second.String(), "composer must be a pure function")
}

func TestComposeFactorsHandComputed(t *testing.T) {
	// 1 * (1 - 0.035) * (1 - 0.12) = 0.8492
	aef, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorUnemployment, Value: dec("0.035")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.12")},
	})
	assert.True(t, aef.Equal(dec("0.8492")), "got %s", aef)

	// Fringe benefits enhance: 1 * (1 + 0.1) = 1.1
	aef, _ = ComposeFactors([]domain.Factor{
		{Label: domain.FactorFringeBenefits, Value: dec("0.1")},
	})
	assert.True(t, aef.Equal(dec("1.1")), "got %s", aef)

	// Unknown labels default to the reduce-by rule.
	aef, _ = ComposeFactors([]domain.Factor{
		{Label: "Household Services", Value: dec("0.2")},
	})
	assert.True(t, aef.Equal(dec("0.8")), "got %s", aef)
}

func TestComposeFactorsMultiplicativeOrdersCoincide(t *testing.T) {
	// Fringe then Tax: 1.0 * 1.1 = 1.1, then * 0.8 = 0.88.
	// Tax then Fringe: 1.0 * 0.8 = 0.8, then * 1.1 = 0.88.
	// Pure multiplications commute; this pair is expected to coincide.
	fringeFirst, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorFringeBenefits, Value: dec("0.1")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.2")},
	})
	taxFirst, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorTaxOffsets, Value: dec("0.2")},
		{Label: domain.FactorFringeBenefits, Value: dec("0.1")},
	})
	assert.True(t, fringeFirst.Equal(dec("0.88")), "got %s", fringeFirst)
	assert.True(t, taxFirst.Equal(dec("0.88")), "got %s", taxFirst)
}

func TestComposeFactorsPersonalConsumptionIsOrderSensitive(t *testing.T) {
	// PC first: a = 1*(1-0.25) = 0.75, then * (1-0.2) = 0.6.
	pcFirst, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorPersonalConsumption, Value: dec("0.25")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.2")},
	})
	// Tax first: a = 0.8, then a*(a-0.25) = 0.8*0.55 = 0.44.
	taxFirst, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorTaxOffsets, Value: dec("0.2")},
		{Label: domain.FactorPersonalConsumption, Value: dec("0.25")},
	})

	assert.True(t, pcFirst.Equal(dec("0.6")), "got %s", pcFirst)
	assert.True(t, taxFirst.Equal(dec("0.44")), "got %s", taxFirst)
	assert.False(t, pcFirst.Equal(taxFirst), "personal consumption must not commute with multiplicative factors")
}

func TestComposeFactorsPersonalConsumptionMayGoNegative(t *testing.T) {
	// a = 0.5 after tax; 0.5 * (0.5 - 0.6) = -0.05. The rule is reproduced
	// exactly, negative intermediates included.
	aef, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorTaxOffsets, Value: dec("0.5")},
		{Label: domain.FactorPersonalConsumption, Value: dec("0.6")},
	})
	assert.True(t, aef.Equal(dec("-0.05")), "got %s", aef)
}

func TestComposeFactorsRoundsToSixPlaces(t *testing.T) {
	aef, _ := ComposeFactors([]domain.Factor{
		{Label: domain.FactorUnemployment, Value: dec("0.0333333")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.1234567")},
	})
	assert.Equal(t, int32(6), -aef.Exponent(), "final value should carry 6 decimal places, got %s", aef)
}

func TestComposeFactorsTraceFormulas(t *testing.T) {
	_, steps := ComposeFactors([]domain.Factor{
		{Label: domain.FactorTaxOffsets, Value: dec("0.12")},
		{Label: domain.FactorFringeBenefits, Value: dec("0.06")},
		{Label: domain.FactorPersonalConsumption, Value: dec("0.25")},
	})
	require.Len(t, steps, 3)

	assert.Equal(t, "(1 - 0.120) = 0.880", steps[0].Formula)
	assert.Equal(t, "(1 + 0.060) = 1.060", steps[1].Formula)
	// PC subtracts from the running accumulator 0.88 * 1.06 = 0.9328.
	assert.Equal(t, "(0.933 - 0.250) = 0.683", steps[2].Formula)

	assert.True(t, steps[0].Percentage.Equal(dec("12")), "got %s", steps[0].Percentage)
	assert.True(t, steps[0].Result.Equal(dec("0.88")), "got %s", steps[0].Result)
}

func TestBuildBreakdownMatchesComposedValue(t *testing.T) {
	factors := []domain.Factor{
		{Label: domain.FactorWorklifeAdjustment, Value: dec("0.09")},
		{Label: domain.FactorFringeBenefits, Value: dec("0.06")},
		{Label: domain.FactorUnemployment, Value: dec("0.035")},
		{Label: domain.FactorTaxOffsets, Value: dec("0.12")},
		{Label: domain.FactorPersonalConsumption, Value: dec("0.25")},
	}

	aef, steps := ComposeFactors(factors)
	breakdown := BuildBreakdown(steps, aef)

	require.Len(t, breakdown.Steps, len(factors)+2)
	assert.Equal(t, "Gross Earnings Base", breakdown.Steps[0].Label)
	assert.Equal(t, "Final AEF", breakdown.Steps[len(breakdown.Steps)-1].Label)

	// The ledger must stay numerically consistent with the composer.
	assert.True(t, breakdown.FinalAEF.Equal(aef))
	assert.True(t, breakdown.Steps[len(breakdown.Steps)-1].Result.Equal(aef))
}
