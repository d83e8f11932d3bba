package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

func TestProjectWageGrowthFromTable(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	growth, err := engine.ProjectWageGrowth(2022, 3, nil, "all_occupations", audit)
	require.NoError(t, err)
	require.Len(t, growth, 3)

	assert.Equal(t, 2022, growth[0].CalendarYear)
	assert.True(t, growth[0].Rate.Equal(decimal.NewFromFloat(0.030)))
	assert.True(t, growth[1].Rate.Equal(decimal.NewFromFloat(0.035)))
	assert.True(t, growth[2].Rate.Equal(decimal.NewFromFloat(0.040)))
	for _, p := range growth {
		assert.False(t, p.CarriedForward)
	}
	assert.Equal(t, 3, audit.Len(), "one citation per projected year")
}

func TestProjectWageGrowthCarryForward(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	// 2025 is the last covered year; 2026 and 2027 reuse its rate.
	growth, err := engine.ProjectWageGrowth(2025, 3, nil, "all_occupations", audit)
	require.NoError(t, err)
	require.Len(t, growth, 3)

	last := decimal.NewFromFloat(0.030)
	assert.False(t, growth[0].CarriedForward)
	assert.True(t, growth[1].CarriedForward)
	assert.True(t, growth[2].CarriedForward)
	assert.True(t, growth[1].Rate.Equal(last))
	assert.True(t, growth[2].Rate.Equal(last))
	assert.Equal(t, 2027, growth[2].CalendarYear)

	entries := audit.Entries()
	require.Len(t, entries, 3)
	assert.Contains(t, entries[1].Description, "carried forward from 2025")
	assert.Contains(t, entries[2].Description, "carried forward from 2025")
}

func TestProjectWageGrowthOverride(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	override := decimal.NewFromFloat(0.028)
	growth, err := engine.ProjectWageGrowth(2025, 5, &override, "all_occupations", audit)
	require.NoError(t, err)
	require.Len(t, growth, 5)

	for _, p := range growth {
		assert.True(t, p.Rate.Equal(override))
	}
	assert.Equal(t, 1, audit.Len(), "a flat override is cited once, not per year")
	assert.Equal(t, "user override", audit.Entries()[0].SourceLabel)
}

func TestProjectWageGrowthOverrideBelowFloor(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)

	for _, value := range []int64{-1, -2} {
		override := decimal.NewFromInt(value)
		_, err := engine.ProjectWageGrowth(2025, 5, &override, "all_occupations", domain.NewAuditLog())
		var invalid *domain.InvalidConfigError
		require.ErrorAs(t, err, &invalid, "override %d", value)
		assert.Equal(t, "assumptions.annual_growth_rate_override", invalid.Field)
	}
}

func TestProjectWageGrowthZeroHorizon(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	growth, err := engine.ProjectWageGrowth(2025, 0, nil, "all_occupations", audit)
	require.NoError(t, err)
	assert.Empty(t, growth)
	assert.Equal(t, 0, audit.Len())
}

func TestProjectWageGrowthUnknownCategory(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)

	_, err := engine.ProjectWageGrowth(2025, 3, nil, "underwater_basket_weaving", domain.NewAuditLog())
	var lookup *domain.TableLookupError
	assert.ErrorAs(t, err, &lookup)
}
