// Package dateutil provides date arithmetic shared across the calculator.
package dateutil

import (
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerYear = 24 * 365.25

// FractionalYearsBetween returns the elapsed years between two dates as a
// decimal with a 365.25-day year, rounded to 4 decimal places.
func FractionalYearsBetween(start, end time.Time) decimal.Decimal {
	years := decimal.NewFromFloat(end.Sub(start).Hours() / hoursPerYear)
	return years.Round(4)
}
