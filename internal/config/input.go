package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lexecon/lost-earnings-calculator/internal/domain"
)

// InputParser handles parsing of case input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case file from YAML
func (ip *InputParser) LoadFromFile(filename string) (*domain.CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a YAML case file
func (ip *InputParser) Parse(data []byte) (*domain.CaseFile, error) {
	var c domain.CaseFile
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateCase(&c); err != nil {
		return nil, fmt.Errorf("case validation failed: %w", err)
	}
	return &c, nil
}

// ValidateCase validates the loaded case file. Range and type validation
// belongs here, at the collaborator boundary; the engine assumes a
// validated parameter set.
func (ip *InputParser) ValidateCase(c *domain.CaseFile) error {
	cl := &c.Claimant
	if cl.BirthDate.IsZero() {
		return domain.NewValidationError("birth_date", "is required")
	}
	if cl.InjuryDate.IsZero() {
		return domain.NewValidationError("injury_date", "is required")
	}
	if cl.ReportDate.IsZero() {
		return domain.NewValidationError("report_date", "is required")
	}
	if cl.InjuryDate.Before(cl.BirthDate) {
		return domain.NewValidationError("injury_date", "cannot be before birth date")
	}
	if cl.LifeExpectancy < 0 {
		return domain.NewValidationError("life_expectancy", "cannot be negative")
	}
	if cl.WorklifeExpectancy < 0 {
		return domain.NewValidationError("worklife_expectancy", "cannot be negative")
	}
	if cl.YearsToFinalSeparation < 0 {
		return domain.NewValidationError("years_to_final_separation", "cannot be negative")
	}

	if err := ip.validateWagePath("pre_injury", c.Earnings.PreInjury); err != nil {
		return err
	}
	if err := ip.validateWagePath("offset_past", c.Earnings.OffsetPast); err != nil {
		return err
	}
	if err := ip.validateWagePath("offset_future", c.Earnings.OffsetFuture); err != nil {
		return err
	}

	if c.Discounting.DiscountRate.IsNegative() {
		return domain.NewValidationError("discount_rate", "cannot be negative")
	}
	if c.WorklifeFactor.IsNegative() {
		return domain.NewValidationError("worklife_factor", "cannot be negative")
	}

	for i, f := range c.Factors {
		if f.Label == "" {
			return domain.NewValidationError(fmt.Sprintf("factors[%d].label", i), "is required")
		}
		if f.Value.IsNegative() || f.Value.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return domain.NewValidationError(fmt.Sprintf("factors[%d].value", i),
				"must be a fraction in [0, 1)")
		}
	}
	return nil
}

func (ip *InputParser) validateWagePath(field string, w domain.WagePath) error {
	if w.Base.IsNegative() {
		return domain.NewValidationError(field+".base", "cannot be negative")
	}
	if w.Growth.IsNegative() {
		return domain.NewValidationError(field+".growth", "cannot be negative")
	}
	return nil
}
