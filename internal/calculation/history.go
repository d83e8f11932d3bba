package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ReconstructWageHistory rebuilds the trailing mean-wage series backward from
// the base salary at a constant growth rate. The newest point equals the base
// salary; each older point is the next one deflated by the rate. The average
// of the year-over-year rates is reported alongside the series.
func ReconstructWageHistory(baseSalary, rate decimal.Decimal, years int) domain.WageHistory {
	if years <= 0 {
		return domain.WageHistory{AverageGrowth: decimal.Zero}
	}

	wages := make([]decimal.Decimal, years)
	wages[years-1] = baseSalary
	onePlus := decimalOne.Add(rate)
	for i := years - 2; i >= 0; i-- {
		wages[i] = wages[i+1].Div(onePlus)
	}

	points := make([]domain.WagePoint, years)
	sum := decimal.Zero
	for i, wage := range wages {
		point := domain.WagePoint{YearIndex: i, MeanWage: wage}
		if i > 0 && !wages[i-1].IsZero() {
			yoy := wage.Sub(wages[i-1]).Div(wages[i-1])
			point.YoYGrowth = &yoy
			sum = sum.Add(yoy)
		}
		points[i] = point
	}

	average := decimal.Zero
	if years > 1 {
		average = sum.Div(decimal.NewFromInt(int64(years - 1)))
	}
	return domain.WageHistory{Points: points, AverageGrowth: average}
}
