package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sex identifies which mortality and work-life table series applies.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
	SexTotal  Sex = "total"
)

// ValidSexes lists the table series shipped with the calculator.
var ValidSexes = []Sex{SexFemale, SexMale, SexTotal}

// EducationLevel is the highest educational attainment of the decedent,
// keyed to the work-life participation tables.
type EducationLevel string

const (
	EducationLessThanHS  EducationLevel = "less_than_hs"
	EducationHSDiploma   EducationLevel = "hs_diploma"
	EducationSomeCollege EducationLevel = "some_college"
	EducationBachelors   EducationLevel = "bachelors"
	EducationGraduate    EducationLevel = "graduate"
)

// ValidEducationLevels lists the education keys present in the work-life tables.
var ValidEducationLevels = []EducationLevel{
	EducationLessThanHS,
	EducationHSDiploma,
	EducationSomeCollege,
	EducationBachelors,
	EducationGraduate,
}

// ActiveStatus indicates whether the decedent was participating in the labor
// force at the evaluation date.
type ActiveStatus string

const (
	StatusActive   ActiveStatus = "active"
	StatusInactive ActiveStatus = "inactive"
)

// Person holds the decedent's demographic profile.
type Person struct {
	FirstName      string         `yaml:"first_name" json:"first_name"`
	LastName       string         `yaml:"last_name" json:"last_name"`
	Sex            Sex            `yaml:"sex" json:"sex"`
	BirthDate      time.Time      `yaml:"dob" json:"dob"`
	DeathDate      time.Time      `yaml:"dod" json:"dod"` // doubles as the evaluation date
	EducationLevel EducationLevel `yaml:"education_level" json:"education_level"`
	ActiveStatus   ActiveStatus   `yaml:"active_status" json:"active_status"`
}

// Occupation holds the decedent's occupational profile at the evaluation date.
type Occupation struct {
	SOCCode    string          `yaml:"soc_code" json:"soc_code"`
	Title      string          `yaml:"title" json:"title"`
	County     string          `yaml:"county" json:"county"`
	State      string          `yaml:"state" json:"state"`
	BaseSalary decimal.Decimal `yaml:"base_salary_usd" json:"base_salary_usd"`
}

// Assumptions carries the optional per-case overrides. A nil pointer means
// "resolve from the reference tables"; a set pointer bypasses the lookup but
// is still recorded in the audit log with a synthetic citation.
type Assumptions struct {
	RetirementAgeHint   *decimal.Decimal `yaml:"retirement_age_hint,omitempty" json:"retirement_age_hint,omitempty"`
	LifeExpectancyYears *decimal.Decimal `yaml:"life_expectancy_override_years,omitempty" json:"life_expectancy_override_years,omitempty"`
	WorkLifeYears       *decimal.Decimal `yaml:"worklife_override_years,omitempty" json:"worklife_override_years,omitempty"`
	WorkLifeTable       string           `yaml:"worklife_table,omitempty" json:"worklife_table,omitempty"`
	WageGrowthRate      *decimal.Decimal `yaml:"annual_growth_rate_override,omitempty" json:"annual_growth_rate_override,omitempty"`
	WageGrowthCategory  string           `yaml:"wage_growth_category,omitempty" json:"wage_growth_category,omitempty"`
	DiscountRate        *decimal.Decimal `yaml:"discount_rate_override,omitempty" json:"discount_rate_override,omitempty"`
	DiscountSeries      string           `yaml:"discount_series,omitempty" json:"discount_series,omitempty"`
}

// CaseConfig is the fully resolved input for a single case run. It is treated
// as immutable once handed to the calculation engine.
type CaseConfig struct {
	CaseID      string      `yaml:"case_id" json:"case_id"`
	Person      Person      `yaml:"person" json:"person"`
	Occupation  Occupation  `yaml:"occupation" json:"occupation"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
}
