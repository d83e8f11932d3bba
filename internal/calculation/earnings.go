package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ProjectEarnings builds the year-by-year nominal earnings schedule. Year 0
// earns the base salary exactly; each later year compounds the prior year by
// that year's growth rate. The fractional remainder of the work-life horizon
// becomes one prorated final entry when it exceeds the proration epsilon.
// Values are carried at full precision; rounding is deferred to rendering.
func ProjectEarnings(baseSalary decimal.Decimal, growth domain.GrowthSchedule, worklifeYears decimal.Decimal) domain.EarningsSchedule {
	if worklifeYears.LessThanOrEqual(decimal.Zero) {
		return domain.EarningsSchedule{}
	}

	whole := int(worklifeYears.Floor().IntPart())
	frac := worklifeYears.Sub(worklifeYears.Floor())

	schedule := make(domain.EarningsSchedule, 0, whole+1)
	current := baseSalary
	for t := 0; t < whole; t++ {
		if t > 0 {
			current = current.Mul(decimalOne.Add(rateAt(growth, t)))
		}
		schedule = append(schedule, domain.EarningsEntry{
			YearIndex:     t,
			YearFraction:  decimalOne,
			FullYearValue: current,
			Nominal:       current,
		})
	}

	if frac.GreaterThan(prorationEpsilon) {
		t := whole
		if t > 0 {
			current = current.Mul(decimalOne.Add(rateAt(growth, t)))
		}
		schedule = append(schedule, domain.EarningsEntry{
			YearIndex:     t,
			YearFraction:  frac,
			FullYearValue: current,
			Nominal:       current.Mul(frac),
		})
	}
	return schedule
}

// rateAt returns the growth rate for a year index, reusing the final rate
// when the schedule is shorter than the earnings horizon.
func rateAt(growth domain.GrowthSchedule, index int) decimal.Decimal {
	if index < len(growth) {
		return growth[index].Rate
	}
	if len(growth) > 0 {
		return growth[len(growth)-1].Rate
	}
	return decimal.Zero
}
