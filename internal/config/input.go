// Package config handles case-file parsing and application settings.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// InputParser handles parsing of case configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case configuration from a YAML file, applies defaults
// and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CaseConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg domain.CaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&cfg)
	if err := ip.ValidateCase(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills the optional fields a case may omit.
func (ip *InputParser) ApplyDefaults(cfg *domain.CaseConfig) {
	if cfg.Person.ActiveStatus == "" {
		cfg.Person.ActiveStatus = domain.StatusActive
	}
	if cfg.Person.EducationLevel == "" {
		cfg.Person.EducationLevel = domain.EducationHSDiploma
	}
	if cfg.Person.Sex == "" {
		cfg.Person.Sex = domain.SexTotal
	}
}

// ValidateCase validates a case configuration field by field. Every failure
// is a domain.InvalidConfigError naming the offending field.
func (ip *InputParser) ValidateCase(cfg *domain.CaseConfig) error {
	if cfg.CaseID == "" {
		return domain.NewInvalidConfigError("case_id", "case id is required")
	}
	if err := ip.validatePerson(&cfg.Person); err != nil {
		return err
	}
	if err := ip.validateOccupation(&cfg.Occupation); err != nil {
		return err
	}
	return ip.validateAssumptions(&cfg.Assumptions)
}

func (ip *InputParser) validatePerson(p *domain.Person) error {
	if p.FirstName == "" {
		return domain.NewInvalidConfigError("person.first_name", "first name is required")
	}
	if p.LastName == "" {
		return domain.NewInvalidConfigError("person.last_name", "last name is required")
	}
	if !validSex(p.Sex) {
		return domain.NewInvalidConfigError("person.sex", fmt.Sprintf("unknown sex %q", p.Sex))
	}
	if !validEducation(p.EducationLevel) {
		return domain.NewInvalidConfigError("person.education_level", fmt.Sprintf("unknown education level %q", p.EducationLevel))
	}
	if p.ActiveStatus != domain.StatusActive && p.ActiveStatus != domain.StatusInactive {
		return domain.NewInvalidConfigError("person.active_status", fmt.Sprintf("unknown active status %q", p.ActiveStatus))
	}
	if p.BirthDate.IsZero() {
		return domain.NewInvalidConfigError("person.dob", "birth date is required")
	}
	if p.DeathDate.IsZero() {
		return domain.NewInvalidConfigError("person.dod", "date of death is required")
	}
	if p.BirthDate.After(p.DeathDate) {
		return domain.NewInvalidConfigError("person.dob", "birth date must not be after the date of death")
	}
	return nil
}

func (ip *InputParser) validateOccupation(o *domain.Occupation) error {
	if o.SOCCode == "" {
		return domain.NewInvalidConfigError("occupation.soc_code", "SOC code is required")
	}
	if !o.BaseSalary.IsPositive() {
		return domain.NewInvalidConfigError("occupation.base_salary_usd", "base salary must be greater than zero")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	if a.LifeExpectancyYears != nil && a.LifeExpectancyYears.IsNegative() {
		return domain.NewInvalidConfigError("assumptions.life_expectancy_override_years", "override must not be negative")
	}
	if a.WorkLifeYears != nil && a.WorkLifeYears.IsNegative() {
		return domain.NewInvalidConfigError("assumptions.worklife_override_years", "override must not be negative")
	}
	if a.WageGrowthRate != nil && a.WageGrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return domain.NewInvalidConfigError("assumptions.annual_growth_rate_override", "rate must be greater than -100%")
	}
	if a.DiscountRate != nil && a.DiscountRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return domain.NewInvalidConfigError("assumptions.discount_rate_override", "rate must be greater than -100%")
	}
	if a.WorkLifeTable != "" && !validSex(domain.Sex(a.WorkLifeTable)) {
		return domain.NewInvalidConfigError("assumptions.worklife_table", fmt.Sprintf("unknown worklife table %q", a.WorkLifeTable))
	}
	if a.RetirementAgeHint != nil && !a.RetirementAgeHint.IsPositive() {
		return domain.NewInvalidConfigError("assumptions.retirement_age_hint", "retirement age hint must be positive")
	}
	return nil
}

func validSex(s domain.Sex) bool {
	for _, v := range domain.ValidSexes {
		if s == v {
			return true
		}
	}
	return false
}

func validEducation(e domain.EducationLevel) bool {
	for _, v := range domain.ValidEducationLevels {
		if e == v {
			return true
		}
	}
	return false
}
