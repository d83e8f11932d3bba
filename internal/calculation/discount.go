package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// ResolveDiscountRate picks the annual discount rate from the override or the
// named series and cites the source once.
func (ce *CalculationEngine) ResolveDiscountRate(override *decimal.Decimal, series string, audit *domain.AuditLog) (decimal.Decimal, error) {
	if override != nil {
		if override.LessThanOrEqual(decimalOne.Neg()) {
			return decimal.Zero, domain.NewInvalidConfigError("assumptions.discount_rate_override", "rate must be greater than -100%")
		}
		citation := domain.OverrideCitation("assumptions/discount_rate_override")
		audit.RecordCitation(StageDiscounting, "discount rate supplied by override", override.String(), citation)
		return *override, nil
	}

	rate, citation, err := ce.tables.DiscountRate(series)
	if err != nil {
		return decimal.Zero, err
	}
	audit.RecordCitation(StageDiscounting, "annual discount rate from series "+series, rate.String(), citation)
	return rate, nil
}

// ComputeDiscountFactors derives one factor per earnings entry using the
// entry's integer year index: factor = 1 / (1+rate)^index. The prorated
// final entry shares the index of the year it falls in, keeping every
// earnings entry paired with exactly one factor.
func ComputeDiscountFactors(rate decimal.Decimal, earnings domain.EarningsSchedule) domain.DiscountFactorSchedule {
	onePlus := decimalOne.Add(rate)
	factors := make(domain.DiscountFactorSchedule, 0, len(earnings))
	for _, entry := range earnings {
		factor := decimalOne.Div(onePlus.Pow(decimal.NewFromInt(int64(entry.YearIndex))))
		factors = append(factors, domain.DiscountFactor{
			YearIndex: entry.YearIndex,
			Factor:    factor,
		})
	}
	return factors
}

// ComputePresentValue pairs each earnings entry with its discount factor and
// accumulates the running and total present value.
func ComputePresentValue(earnings domain.EarningsSchedule, factors domain.DiscountFactorSchedule) domain.PresentValueResult {
	entries := make([]domain.PresentValueEntry, 0, len(earnings))
	cumulative := decimal.Zero
	for i, e := range earnings {
		factor := decimalOne
		if i < len(factors) {
			factor = factors[i].Factor
		}
		present := e.Nominal.Mul(factor)
		cumulative = cumulative.Add(present)
		entries = append(entries, domain.PresentValueEntry{
			YearIndex:    e.YearIndex,
			Nominal:      e.Nominal,
			Factor:       factor,
			PresentValue: present,
			Cumulative:   cumulative,
		})
	}
	return domain.PresentValueResult{Entries: entries, TotalLoss: cumulative}
}
