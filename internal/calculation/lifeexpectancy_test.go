package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

func TestResolveLifeExpectancyInterpolation(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	// ex(45)=35, ex(46)=34 on the fake table, so age 45.5 lands midway.
	life, err := engine.ResolveLifeExpectancy(decimal.NewFromFloat(45.5), domain.SexFemale, nil, audit)
	require.NoError(t, err)

	assert.True(t, life.Years.Equal(decimal.NewFromFloat(34.5)), "expected 34.5, got %s", life.Years)
	assert.Equal(t, 45, life.LowerAge)
	assert.Equal(t, 46, life.UpperAge)
	assert.True(t, life.LowerWeight.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, life.UpperWeight.Equal(decimal.NewFromFloat(0.5)))
	assert.False(t, life.Overridden)
	assert.Len(t, life.Citations, 2, "both bracketing rows should be cited")
	assert.Equal(t, 2, audit.Len())
}

func TestResolveLifeExpectancyIntegerAge(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	life, err := engine.ResolveLifeExpectancy(decimal.NewFromInt(45), domain.SexMale, nil, audit)
	require.NoError(t, err)

	assert.True(t, life.Years.Equal(decimal.NewFromInt(35)))
	assert.Equal(t, 45, life.LowerAge)
	assert.Equal(t, 45, life.UpperAge)
	assert.Len(t, life.Citations, 1, "an exact age cites one row")
	assert.Equal(t, 1, audit.Len())
}

func TestResolveLifeExpectancyAtTableMax(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	life, err := engine.ResolveLifeExpectancy(decimal.NewFromFloat(100.5), domain.SexTotal, nil, audit)
	require.NoError(t, err)

	assert.Equal(t, 100, life.LowerAge)
	assert.Equal(t, 100, life.UpperAge)
	assert.Len(t, life.Citations, 1, "no row above the table max to interpolate toward")
}

func TestResolveLifeExpectancyOverride(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()

	override := decimal.NewFromFloat(22.5)
	life, err := engine.ResolveLifeExpectancy(decimal.NewFromFloat(45.5), domain.SexFemale, &override, audit)
	require.NoError(t, err)

	assert.True(t, life.Years.Equal(override), "override is taken verbatim")
	assert.True(t, life.Overridden)
	require.Len(t, life.Citations, 1)
	assert.Equal(t, "user override", life.Citations[0].SourceLabel)
	assert.Equal(t, 1, audit.Len())
}

func TestResolveLifeExpectancyErrors(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)

	t.Run("negative age", func(t *testing.T) {
		_, err := engine.ResolveLifeExpectancy(decimal.NewFromInt(-1), domain.SexFemale, nil, domain.NewAuditLog())
		var invalidAge *domain.InvalidAgeError
		assert.ErrorAs(t, err, &invalidAge)
	})

	t.Run("age beyond table", func(t *testing.T) {
		_, err := engine.ResolveLifeExpectancy(decimal.NewFromInt(150), domain.SexFemale, nil, domain.NewAuditLog())
		var invalidAge *domain.InvalidAgeError
		assert.ErrorAs(t, err, &invalidAge)
	})

	t.Run("negative override", func(t *testing.T) {
		override := decimal.NewFromInt(-5)
		_, err := engine.ResolveLifeExpectancy(decimal.NewFromInt(45), domain.SexFemale, &override, domain.NewAuditLog())
		var invalid *domain.InvalidConfigError
		assert.ErrorAs(t, err, &invalid)
	})
}
