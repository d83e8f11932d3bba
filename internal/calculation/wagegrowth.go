package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ProjectWageGrowth produces one growth rate per projection year. A flat
// override yields a constant schedule with a single citation; otherwise each
// calendar year is looked up in the wage growth table, carrying the last
// covered year's rate forward (and citing it as carried forward) when the
// horizon outruns the table. A zero horizon is valid and returns an empty
// schedule.
func (ce *CalculationEngine) ProjectWageGrowth(baseYear, horizon int, override *decimal.Decimal, category string, audit *domain.AuditLog) (domain.GrowthSchedule, error) {
	if horizon <= 0 {
		return domain.GrowthSchedule{}, nil
	}

	if override != nil {
		if override.LessThanOrEqual(decimalOne.Neg()) {
			return nil, domain.NewInvalidConfigError("assumptions.annual_growth_rate_override", "rate must be greater than -100%")
		}
		citation := domain.OverrideCitation("assumptions/annual_growth_rate_override")
		audit.RecordCitation(StageWageGrowth, "flat wage growth rate supplied by override", override.String(), citation)
		schedule := make(domain.GrowthSchedule, horizon)
		for i := 0; i < horizon; i++ {
			schedule[i] = domain.GrowthPoint{
				YearIndex:    i,
				CalendarYear: baseYear + i,
				Rate:         *override,
			}
		}
		return schedule, nil
	}

	latest, err := ce.tables.LatestWageGrowthYear(category)
	if err != nil {
		return nil, err
	}

	schedule := make(domain.GrowthSchedule, 0, horizon)
	for i := 0; i < horizon; i++ {
		year := baseYear + i
		lookupYear := year
		carried := false
		if year > latest {
			lookupYear = latest
			carried = true
		}

		rate, citation, err := ce.tables.WageGrowth(lookupYear, category)
		if err != nil {
			return nil, err
		}

		description := fmt.Sprintf("wage growth rate for %d", year)
		if carried {
			description = fmt.Sprintf("wage growth rate for %d carried forward from %d", year, latest)
		}
		audit.RecordCitation(StageWageGrowth, description, rate.String(), citation)

		schedule = append(schedule, domain.GrowthPoint{
			YearIndex:      i,
			CalendarYear:   year,
			Rate:           rate,
			CarriedForward: carried,
		})
	}
	return schedule, nil
}
