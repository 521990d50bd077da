package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2100, false},
		{1996, true},
		{2025, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.leap, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
	assert.Equal(t, 366, DaysInYear(2000))
	assert.Equal(t, 365, DaysInYear(1900))
}

func TestProjectDateWholeYears(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	got := ProjectDate(base, 45.0)
	assert.Equal(t, time.Date(2068, 1, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestProjectDateFractionalYears(t *testing.T) {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	got := ProjectDate(base, 78.5)
	// 78 whole years then int(0.5 * 365.25) = 182 days from 2101-01-01.
	want := time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 182)
	assert.Equal(t, want, got)
}

func TestProjectDateZeroYears(t *testing.T) {
	base := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, base, ProjectDate(base, 0))
}

func TestProjectDateLeapDayFallback(t *testing.T) {
	base := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	// Target year 2025 is not a leap year: fall back to Feb 28.
	got := ProjectDate(base, 1.0)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got)

	// Target year 2028 is a leap year: Feb 29 survives.
	got = ProjectDate(base, 4.0)
	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestAgeAtMidYear(t *testing.T) {
	birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

	// July 1, 2023 is 15887 days after Jan 1, 1980.
	days := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC).Sub(birth).Hours() / 24
	want := days / 365.25

	got := AgeAtMidYear(birth, 2023)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 43.5, got, 0.01)
}

func TestYearsUntilDate(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2.0, YearsUntilDate(from, to), 0.01)
}

func TestBeginningOfYear(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), BeginningOfYear(d))
}
