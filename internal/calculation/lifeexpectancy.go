package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ResolveLifeExpectancy determines the remaining life expectancy at the
// decedent's fractional age. An override is taken verbatim; otherwise the two
// mortality rows bracketing the age are interpolated linearly and both rows
// are cited. At an exact integer age, or at the top of the table, a single
// row is cited.
func (ce *CalculationEngine) ResolveLifeExpectancy(age decimal.Decimal, sex domain.Sex, override *decimal.Decimal, audit *domain.AuditLog) (domain.LifeExpectancyResult, error) {
	if age.IsNegative() {
		return domain.LifeExpectancyResult{}, domain.NewInvalidAgeError(age.String(), "age must not be negative")
	}

	if override != nil {
		if override.IsNegative() {
			return domain.LifeExpectancyResult{}, domain.NewInvalidConfigError("assumptions.life_expectancy_override_years", "override must not be negative")
		}
		citation := domain.OverrideCitation("assumptions/life_expectancy_override_years")
		audit.RecordCitation(StageLifeExpectancy, "life expectancy supplied by override", override.String(), citation)
		return domain.LifeExpectancyResult{
			Years:       *override,
			Overridden:  true,
			LowerWeight: decimalOne,
			Citations:   []domain.Citation{citation},
		}, nil
	}

	lowerAge := int(age.Floor().IntPart())
	maxAge := ce.tables.MaxAge(sex)
	if lowerAge > maxAge {
		return domain.LifeExpectancyResult{}, domain.NewInvalidAgeError(age.String(), fmt.Sprintf("mortality table for %s ends at age %d", sex, maxAge))
	}

	frac := age.Sub(age.Floor())
	lowerEx, lowerCitation, err := ce.tables.LifeExpectancy(lowerAge, sex)
	if err != nil {
		return domain.LifeExpectancyResult{}, err
	}

	// Exact integer age, or no row above to interpolate toward.
	if frac.IsZero() || lowerAge == maxAge {
		audit.RecordCitation(StageLifeExpectancy, fmt.Sprintf("life expectancy at age %d", lowerAge), lowerEx.String(), lowerCitation)
		return domain.LifeExpectancyResult{
			Years:       lowerEx,
			LowerAge:    lowerAge,
			UpperAge:    lowerAge,
			LowerWeight: decimalOne,
			Citations:   []domain.Citation{lowerCitation},
		}, nil
	}

	upperAge := lowerAge + 1
	upperEx, upperCitation, err := ce.tables.LifeExpectancy(upperAge, sex)
	if err != nil {
		return domain.LifeExpectancyResult{}, err
	}

	lowerWeight := decimalOne.Sub(frac)
	years := lowerEx.Mul(lowerWeight).Add(upperEx.Mul(frac))

	audit.RecordCitation(StageLifeExpectancy, fmt.Sprintf("life expectancy lower bracket, age %d", lowerAge), lowerEx.String(), lowerCitation)
	audit.RecordCitation(StageLifeExpectancy, fmt.Sprintf("life expectancy upper bracket, age %d", upperAge), upperEx.String(), upperCitation)

	ce.logger.Debug("life expectancy interpolated",
		zap.String("op", "calculation.ResolveLifeExpectancy"),
		zap.String("age", age.StringFixed(4)),
		zap.String("years", years.StringFixed(4)),
	)

	return domain.LifeExpectancyResult{
		Years:       years,
		LowerAge:    lowerAge,
		UpperAge:    upperAge,
		LowerWeight: lowerWeight,
		UpperWeight: frac,
		Citations:   []domain.Citation{lowerCitation, upperCitation},
	}, nil
}
