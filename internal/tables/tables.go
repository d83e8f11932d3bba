// Package tables provides the read-only reference data consumed by the
// calculation pipeline: mortality tables, work-life participation factors,
// wage growth series and discount-rate series. Every lookup returns the
// value together with a citation identifying the source row, so the audit
// log can name exactly where each assumption came from.
//
// Tables are loaded once per process and are immutable afterwards; a single
// instance is safe to share across concurrent case runs.
package tables

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// Provider is the abstract table-lookup capability the calculation engine
// depends on. The concrete storage format (embedded data, a data directory,
// a SQLite file) is an external concern behind this interface.
type Provider interface {
	// LifeExpectancy returns the remaining life expectancy at an exact
	// integer age for the given sex series.
	LifeExpectancy(age int, sex domain.Sex) (decimal.Decimal, domain.Citation, error)

	// MaxAge reports the highest age covered by the mortality table for
	// the given sex series.
	MaxAge(sex domain.Sex) int

	// WorkLifeFactor returns the labor-force participation adjustment
	// factor for an (age, sex, education) combination.
	WorkLifeFactor(age int, sex domain.Sex, education domain.EducationLevel) (decimal.Decimal, domain.Citation, error)

	// WageGrowth returns the annual wage growth rate for a calendar year
	// within an occupation category.
	WageGrowth(year int, category string) (decimal.Decimal, domain.Citation, error)

	// LatestWageGrowthYear reports the last calendar year the wage growth
	// table covers for a category, for carry-forward beyond coverage.
	LatestWageGrowthYear(category string) (int, error)

	// DiscountRate returns the annual rate of a named discount series.
	DiscountRate(series string) (decimal.Decimal, domain.Citation, error)
}

type worklifeBracket struct {
	minAge  int
	maxAge  int
	factors map[domain.Sex]map[domain.EducationLevel]decimal.Decimal
}

// ReferenceTables is the in-memory Provider implementation. Construct it
// with Load, LoadDir or LoadSQLite; never mutate it afterwards.
type ReferenceTables struct {
	mortalitySource string
	mortality       map[domain.Sex]map[int]decimal.Decimal
	maxAge          map[domain.Sex]int

	worklifeSource string
	worklife       []worklifeBracket

	wageSource     string
	wageGrowth     map[string]map[int]decimal.Decimal
	latestWageYear map[string]int

	discountSource string
	discount       map[string]decimal.Decimal
}

var _ Provider = (*ReferenceTables)(nil)

// LifeExpectancy implements Provider.
func (rt *ReferenceTables) LifeExpectancy(age int, sex domain.Sex) (decimal.Decimal, domain.Citation, error) {
	rows, ok := rt.mortality[sex]
	if !ok {
		return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("mortality", fmt.Sprintf("sex %q", sex))
	}
	ex, ok := rows[age]
	if !ok {
		return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("mortality", fmt.Sprintf("%s/age %d", sex, age))
	}
	citation := domain.Citation{
		SourceLabel:   rt.mortalitySource,
		SourceLocator: fmt.Sprintf("mortality/%s/%d", sex, age),
	}
	return ex, citation, nil
}

// MaxAge implements Provider.
func (rt *ReferenceTables) MaxAge(sex domain.Sex) int {
	return rt.maxAge[sex]
}

// WorkLifeFactor implements Provider.
func (rt *ReferenceTables) WorkLifeFactor(age int, sex domain.Sex, education domain.EducationLevel) (decimal.Decimal, domain.Citation, error) {
	for _, b := range rt.worklife {
		if age < b.minAge || age > b.maxAge {
			continue
		}
		bySex, ok := b.factors[sex]
		if !ok {
			return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("worklife", fmt.Sprintf("%d-%d/%s", b.minAge, b.maxAge, sex))
		}
		factor, ok := bySex[education]
		if !ok {
			return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("worklife", fmt.Sprintf("%d-%d/%s/%s", b.minAge, b.maxAge, sex, education))
		}
		citation := domain.Citation{
			SourceLabel:   rt.worklifeSource,
			SourceLocator: fmt.Sprintf("worklife/%d-%d/%s/%s", b.minAge, b.maxAge, sex, education),
		}
		return factor, citation, nil
	}
	return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("worklife", fmt.Sprintf("age %d", age))
}

// WageGrowth implements Provider.
func (rt *ReferenceTables) WageGrowth(year int, category string) (decimal.Decimal, domain.Citation, error) {
	byYear, ok := rt.wageGrowth[category]
	if !ok {
		return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("wage_growth", fmt.Sprintf("category %q", category))
	}
	rate, ok := byYear[year]
	if !ok {
		return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("wage_growth", fmt.Sprintf("%s/%d", category, year))
	}
	citation := domain.Citation{
		SourceLabel:   rt.wageSource,
		SourceLocator: fmt.Sprintf("wage_growth/%s/%d", category, year),
	}
	return rate, citation, nil
}

// LatestWageGrowthYear implements Provider.
func (rt *ReferenceTables) LatestWageGrowthYear(category string) (int, error) {
	year, ok := rt.latestWageYear[category]
	if !ok {
		return 0, domain.NewTableLookupError("wage_growth", fmt.Sprintf("category %q", category))
	}
	return year, nil
}

// DiscountRate implements Provider.
func (rt *ReferenceTables) DiscountRate(series string) (decimal.Decimal, domain.Citation, error) {
	rate, ok := rt.discount[series]
	if !ok {
		return decimal.Zero, domain.Citation{}, domain.NewTableLookupError("discount", fmt.Sprintf("series %q", series))
	}
	citation := domain.Citation{
		SourceLabel:   rt.discountSource,
		SourceLocator: fmt.Sprintf("discount/%s", series),
	}
	return rate, citation, nil
}
