package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ResolveWorkLife determines the remaining work-life horizon. An inactive
// decedent has a zero horizon. An override is clamped to the resolved life
// expectancy; otherwise the participation factor for the decedent's age
// bracket scales the life expectancy. Work-life never exceeds life expectancy.
func (ce *CalculationEngine) ResolveWorkLife(age decimal.Decimal, cfg *domain.CaseConfig, life domain.LifeExpectancyResult, audit *domain.AuditLog) (domain.WorkLifeResult, error) {
	if cfg.Person.ActiveStatus == domain.StatusInactive {
		audit.Record(StageWorkLife, "decedent not in the labor force", "0", "case configuration", "person/active_status")
		return domain.WorkLifeResult{
			Years:               decimal.Zero,
			ParticipationFactor: decimal.Zero,
		}, nil
	}

	if cfg.Assumptions.WorkLifeYears != nil {
		override := *cfg.Assumptions.WorkLifeYears
		if override.IsNegative() {
			return domain.WorkLifeResult{}, domain.NewInvalidConfigError("assumptions.worklife_override_years", "override must not be negative")
		}
		citation := domain.OverrideCitation("assumptions/worklife_override_years")
		audit.RecordCitation(StageWorkLife, "work-life years supplied by override", override.String(), citation)

		years := override
		clamped := false
		if years.GreaterThan(life.Years) {
			years = life.Years
			clamped = true
		}
		years, capped := applyRetirementCap(years, age, cfg.Assumptions.RetirementAgeHint, audit)
		return domain.WorkLifeResult{
			Years:      years,
			Overridden: true,
			Clamped:    clamped || capped,
			Citations:  []domain.Citation{citation},
		}, nil
	}

	series := cfg.Person.Sex
	if cfg.Assumptions.WorkLifeTable != "" {
		series = domain.Sex(cfg.Assumptions.WorkLifeTable)
	}

	lookupAge := int(age.Floor().IntPart())
	factor, citation, err := ce.tables.WorkLifeFactor(lookupAge, series, cfg.Person.EducationLevel)
	if err != nil {
		return domain.WorkLifeResult{}, err
	}
	audit.RecordCitation(StageWorkLife, "labor-force participation factor", factor.String(), citation)

	years := life.Years.Mul(factor)
	clamped := false
	if years.GreaterThan(life.Years) {
		years = life.Years
		clamped = true
	}
	years, capped := applyRetirementCap(years, age, cfg.Assumptions.RetirementAgeHint, audit)
	return domain.WorkLifeResult{
		Years:               years,
		ParticipationFactor: factor,
		Clamped:             clamped || capped,
		Citations:           []domain.Citation{citation},
	}, nil
}

// applyRetirementCap bounds the work-life horizon by the years remaining to
// the retirement age hint, when one is supplied.
func applyRetirementCap(years, age decimal.Decimal, hint *decimal.Decimal, audit *domain.AuditLog) (decimal.Decimal, bool) {
	if hint == nil {
		return years, false
	}
	remaining := hint.Sub(age)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if years.LessThanOrEqual(remaining) {
		return years, false
	}
	audit.Record(StageWorkLife, "work-life capped at retirement age hint", remaining.String(), "case configuration", "assumptions/retirement_age_hint")
	return remaining, true
}
