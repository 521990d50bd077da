package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factor label vocabulary. Any label outside this set receives the default
// "reduce by" treatment when the adjustment factor is composed.
const (
	FactorFringeBenefits      = "Fringe Benefits"
	FactorUnemployment        = "Unemployment"
	FactorTaxOffsets          = "Tax / Offsets"
	FactorPersonalConsumption = "Personal Consumption"
	FactorWorklifeAdjustment  = "WorkLife Adjustment"
)

// Factor is a named percentage adjustment applied when composing the
// adjusted earnings factor. Order within a factor list is significant.
type Factor struct {
	Label string          `yaml:"label" json:"label"`
	Value decimal.Decimal `yaml:"value" json:"value"` // decimal fraction, e.g. 0.035 = 3.5%
}

// Claimant holds the claimant's dates and expectancy figures.
type Claimant struct {
	Name                   string    `yaml:"name,omitempty" json:"name,omitempty"`
	BirthDate              time.Time `yaml:"birth_date" json:"birth_date"`
	InjuryDate             time.Time `yaml:"injury_date" json:"injury_date"`
	ReportDate             time.Time `yaml:"report_date" json:"report_date"`
	LifeExpectancy         float64   `yaml:"life_expectancy" json:"life_expectancy"`                     // years from injury date
	WorklifeExpectancy     float64   `yaml:"worklife_expectancy" json:"worklife_expectancy"`             // years from injury date
	YearsToFinalSeparation float64   `yaml:"years_to_final_separation" json:"years_to_final_separation"` // years from injury date
}

// WagePath is an annual base wage with a compound growth rate.
type WagePath struct {
	Base   decimal.Decimal `yaml:"base" json:"base"`
	Growth decimal.Decimal `yaml:"growth" json:"growth"` // fraction per year
}

// EarningsBasis groups the three wage paths used by the stitcher: the
// but-for pre-injury path and the two mitigation/offset paths.
type EarningsBasis struct {
	PreInjury    WagePath `yaml:"pre_injury" json:"pre_injury"`
	OffsetPast   WagePath `yaml:"offset_past" json:"offset_past"`
	OffsetFuture WagePath `yaml:"offset_future" json:"offset_future"`
}

// Discounting controls the optional present-value column.
type Discounting struct {
	PresentValue bool            `yaml:"present_value" json:"present_value"`
	DiscountRate decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
}

// CaseFile is the complete validated input for one loss analysis. It is
// constructed fresh per computation; the engine holds no state across runs.
type CaseFile struct {
	Claimant    Claimant      `yaml:"claimant" json:"claimant"`
	Earnings    EarningsBasis `yaml:"earnings" json:"earnings"`
	Discounting Discounting   `yaml:"discounting" json:"discounting"`
	Factors     []Factor      `yaml:"factors,omitempty" json:"factors,omitempty"`

	// WorklifeFactor, when positive, is the externally supplied worklife
	// ratio. When zero it is derived as WLE / YFS.
	WorklifeFactor decimal.Decimal `yaml:"worklife_factor,omitempty" json:"worklife_factor,omitempty"`
}

// ScheduleParameters is the full input to one schedule generation.
type ScheduleParameters struct {
	BirthDate       time.Time
	PeriodStart     time.Time
	PeriodEndYear   int // inclusive
	PreInjuryBase   decimal.Decimal
	PreInjuryGrowth decimal.Decimal
	OffsetBase      decimal.Decimal
	OffsetGrowth    decimal.Decimal
	Factors         []Factor
	DiscountRate    decimal.Decimal
	PresentValue    bool
}
