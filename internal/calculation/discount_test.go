package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

func TestResolveDiscountRateFromSeries(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	rate, err := engine.ResolveDiscountRate(nil, "treasury_1y_cmt", audit)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.037)))
	assert.Equal(t, 1, audit.Len(), "the series row is cited exactly once")
}

func TestResolveDiscountRateOverride(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	override := decimal.NewFromFloat(0.05)
	rate, err := engine.ResolveDiscountRate(&override, "treasury_1y_cmt", audit)
	require.NoError(t, err)
	assert.True(t, rate.Equal(override))
	assert.Equal(t, "user override", audit.Entries()[0].SourceLabel)
}

func TestResolveDiscountRateOverrideBelowFloor(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)

	override := decimal.NewFromInt(-1)
	_, err := engine.ResolveDiscountRate(&override, "treasury_1y_cmt", domain.NewAuditLog())
	var invalid *domain.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeDiscountFactors(t *testing.T) {
	earnings := domain.EarningsSchedule{
		{YearIndex: 0, Nominal: decimal.NewFromInt(100)},
		{YearIndex: 1, Nominal: decimal.NewFromInt(100)},
		{YearIndex: 2, Nominal: decimal.NewFromInt(100)},
	}

	factors := ComputeDiscountFactors(decimal.NewFromFloat(0.05), earnings)
	require.Len(t, factors, 3)

	assert.True(t, factors[0].Factor.Equal(decimalOne), "year zero is undiscounted")
	for i := 1; i < len(factors); i++ {
		assert.True(t, factors[i].Factor.LessThan(factors[i-1].Factor),
			"factors decrease strictly at a positive rate")
		assert.True(t, factors[i].Factor.IsPositive())
	}
}

func TestComputeDiscountFactorsZeroRate(t *testing.T) {
	earnings := domain.EarningsSchedule{
		{YearIndex: 0, Nominal: decimal.NewFromInt(100)},
		{YearIndex: 1, Nominal: decimal.NewFromInt(100)},
	}

	factors := ComputeDiscountFactors(decimal.Zero, earnings)
	for _, f := range factors {
		assert.True(t, f.Factor.Equal(decimalOne))
	}
}

func TestComputePresentValueCumulative(t *testing.T) {
	earnings := domain.EarningsSchedule{
		{YearIndex: 0, Nominal: decimal.NewFromInt(100)},
		{YearIndex: 1, Nominal: decimal.NewFromInt(200)},
	}
	factors := domain.DiscountFactorSchedule{
		{YearIndex: 0, Factor: decimalOne},
		{YearIndex: 1, Factor: decimal.NewFromFloat(0.5)},
	}

	pv := ComputePresentValue(earnings, factors)
	require.Len(t, pv.Entries, 2)

	assert.True(t, pv.Entries[0].PresentValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, pv.Entries[1].PresentValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, pv.Entries[0].Cumulative.Equal(decimal.NewFromInt(100)))
	assert.True(t, pv.Entries[1].Cumulative.Equal(decimal.NewFromInt(200)))
	assert.True(t, pv.TotalLoss.Equal(decimal.NewFromInt(200)))
}

func TestComputePresentValueEmpty(t *testing.T) {
	pv := ComputePresentValue(nil, nil)
	assert.Empty(t, pv.Entries)
	assert.True(t, pv.TotalLoss.IsZero())
}
