package domain

import (
	"github.com/shopspring/decimal"
)

// Citation records the specific source table row (or override) a computed
// value was derived from.
type Citation struct {
	SourceLabel   string `yaml:"source_label" json:"source_label"`
	SourceLocator string `yaml:"source_locator" json:"source_locator"`
}

// OverrideCitation builds the synthetic citation used when a user-supplied
// override bypasses a table lookup.
func OverrideCitation(locator string) Citation {
	return Citation{SourceLabel: "user override", SourceLocator: locator}
}

// LifeExpectancyResult is the resolved remaining life expectancy together
// with the table rows and interpolation weights that produced it.
type LifeExpectancyResult struct {
	Years       decimal.Decimal `json:"years"`
	Overridden  bool            `json:"overridden"`
	LowerAge    int             `json:"lower_age"`
	UpperAge    int             `json:"upper_age"`
	LowerWeight decimal.Decimal `json:"lower_weight"`
	UpperWeight decimal.Decimal `json:"upper_weight"`
	Citations   []Citation      `json:"citations"`
}

// WorkLifeResult is the resolved remaining labor-force participation,
// always bounded above by the life expectancy it was derived from.
type WorkLifeResult struct {
	Years               decimal.Decimal `json:"years"`
	ParticipationFactor decimal.Decimal `json:"participation_factor"`
	Overridden          bool            `json:"overridden"`
	Clamped             bool            `json:"clamped"`
	Citations           []Citation      `json:"citations"`
}

// GrowthPoint is one year of the wage growth projection.
type GrowthPoint struct {
	YearIndex      int             `json:"year_index"`
	CalendarYear   int             `json:"calendar_year"`
	Rate           decimal.Decimal `json:"rate"`
	CarriedForward bool            `json:"carried_forward"`
}

// GrowthSchedule spans the projection horizon with one rate per year.
type GrowthSchedule []GrowthPoint

// EarningsEntry is one projected year of nominal earnings. FullYearValue is
// the salary for a complete year of work; Nominal incorporates the fraction
// of the year actually worked.
type EarningsEntry struct {
	YearIndex     int             `json:"year_index"`
	YearFraction  decimal.Decimal `json:"year_fraction"`
	FullYearValue decimal.Decimal `json:"full_year_value"`
	Nominal       decimal.Decimal `json:"nominal"`
}

// EarningsSchedule is the year-by-year nominal earnings projection.
type EarningsSchedule []EarningsEntry

// TotalNominal sums the undiscounted earnings across the schedule.
func (s EarningsSchedule) TotalNominal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s {
		total = total.Add(e.Nominal)
	}
	return total
}

// DiscountFactor pairs a projection year with its present-value multiplier.
type DiscountFactor struct {
	YearIndex int             `json:"year_index"`
	Factor    decimal.Decimal `json:"factor"`
}

// DiscountFactorSchedule aligns one factor with each earnings entry.
type DiscountFactorSchedule []DiscountFactor

// PresentValueEntry is one discounted year of the projection.
type PresentValueEntry struct {
	YearIndex    int             `json:"year_index"`
	Nominal      decimal.Decimal `json:"nominal"`
	Factor       decimal.Decimal `json:"factor"`
	PresentValue decimal.Decimal `json:"present_value"`
	Cumulative   decimal.Decimal `json:"cumulative"`
}

// PresentValueResult holds the per-year present values and the total
// economic loss.
type PresentValueResult struct {
	Entries   []PresentValueEntry `json:"entries"`
	TotalLoss decimal.Decimal     `json:"total_loss"`
}

// WagePoint is one year of the reconstructed historical wage series.
// YoYGrowth is nil for the oldest year, which has no predecessor.
type WagePoint struct {
	YearIndex int              `json:"year_index"`
	MeanWage  decimal.Decimal  `json:"mean_wage"`
	YoYGrowth *decimal.Decimal `json:"yoy_growth,omitempty"`
}

// WageHistory is the trailing mean-wage series rebuilt backward from the
// base salary, with the arithmetic average of its year-over-year rates.
type WageHistory struct {
	Points        []WagePoint     `json:"points"`
	AverageGrowth decimal.Decimal `json:"average_growth"`
}

// CaseResult aggregates every intermediate schedule plus the audit trail and
// the total loss figure. It is immutable once returned by the engine.
type CaseResult struct {
	CaseID          string                 `json:"case_id"`
	Config          CaseConfig             `json:"config"`
	AgeAtDeath      decimal.Decimal        `json:"age_at_death"`
	LifeExpectancy  LifeExpectancyResult   `json:"life_expectancy"`
	WorkLife        WorkLifeResult         `json:"worklife"`
	Growth          GrowthSchedule         `json:"growth_schedule"`
	WageHistory     WageHistory            `json:"wage_history"`
	Earnings        EarningsSchedule       `json:"earnings_schedule"`
	DiscountRate    decimal.Decimal        `json:"discount_rate"`
	DiscountFactors DiscountFactorSchedule `json:"discount_factors"`
	PresentValue    PresentValueResult     `json:"present_value"`
	Audit           []AuditEntry           `json:"audit"`
}
