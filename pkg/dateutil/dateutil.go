package dateutil

import (
	"time"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// ProjectDate adds a (possibly fractional) number of years to a base date.
// The whole-year part advances the calendar year keeping month and day; a
// February 29 landing in a non-leap year falls back to February 28. The
// fractional remainder is converted to days at 365.25 days per year.
// ProjectDate never fails: if the projected month/day cannot be formed it
// returns the base date unchanged so callers always receive a usable date.
func ProjectDate(base time.Time, years float64) time.Time {
	wholeYears := int(years)
	fraction := years - float64(wholeYears)

	targetYear := base.Year() + wholeYears
	day := base.Day()
	if base.Month() == time.February && day == 29 && !IsLeapYear(targetYear) {
		day = 28
	}

	projected := time.Date(targetYear, base.Month(), day, 0, 0, 0, 0, base.Location())
	if projected.Month() != base.Month() {
		return base
	}

	daysToAdd := int(fraction * 365.25)
	return projected.AddDate(0, 0, daysToAdd)
}

// AgeAtMidYear calculates the age in years at July 1 of the given calendar
// year, using 365.25-day years. A fixed mid-year reference keeps the age
// column stable regardless of where a loss period starts or ends.
func AgeAtMidYear(birthDate time.Time, year int) float64 {
	midYear := time.Date(year, 7, 1, 0, 0, 0, 0, birthDate.Location())
	return midYear.Sub(birthDate).Hours() / 24 / 365.25
}

// YearsUntilDate calculates the number of years between two dates
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / 365.25
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}
