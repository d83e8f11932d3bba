package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

func TestResolveWorkLifeFromParticipationFactor(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()
	cfg := baseCase()

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, audit)
	require.NoError(t, err)

	assert.True(t, worklife.Years.Equal(decimal.NewFromFloat(17.5)), "35 years at factor 0.5, got %s", worklife.Years)
	assert.True(t, worklife.ParticipationFactor.Equal(decimal.NewFromFloat(0.5)))
	assert.False(t, worklife.Overridden)
	assert.False(t, worklife.Clamped)
	assert.Equal(t, 1, audit.Len())
}

func TestResolveWorkLifeInactive(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	audit := domain.NewAuditLog()
	cfg := baseCase()
	cfg.Person.ActiveStatus = domain.StatusInactive

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, audit)
	require.NoError(t, err)

	assert.True(t, worklife.Years.IsZero())
	assert.Equal(t, 1, audit.Len(), "the inactive status itself is recorded")
	entries := audit.Entries()
	assert.Equal(t, "person/active_status", entries[0].SourceLocator)
}

func TestResolveWorkLifeOverrideClamped(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	cfg := baseCase()
	override := decimal.NewFromInt(40)
	cfg.Assumptions.WorkLifeYears = &override

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
	require.NoError(t, err)

	assert.True(t, worklife.Years.Equal(life.Years), "override above life expectancy is clamped")
	assert.True(t, worklife.Overridden)
	assert.True(t, worklife.Clamped)
}

func TestResolveWorkLifeOverrideWithinBounds(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	cfg := baseCase()
	override := decimal.NewFromInt(12)
	cfg.Assumptions.WorkLifeYears = &override

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
	require.NoError(t, err)

	assert.True(t, worklife.Years.Equal(override))
	assert.False(t, worklife.Clamped)
}

func TestResolveWorkLifeNegativeOverride(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	cfg := baseCase()
	override := decimal.NewFromInt(-3)
	cfg.Assumptions.WorkLifeYears = &override

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	_, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
	var invalid *domain.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestResolveWorkLifeRetirementAgeHint(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)

	t.Run("cap binds", func(t *testing.T) {
		cfg := baseCase()
		hint := decimal.NewFromInt(55)
		cfg.Assumptions.RetirementAgeHint = &hint

		audit := domain.NewAuditLog()
		life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
		worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, audit)
		require.NoError(t, err)

		assert.True(t, worklife.Years.Equal(decimal.NewFromInt(10)), "ten years to the hinted retirement age, got %s", worklife.Years)
		assert.True(t, worklife.Clamped)
		assert.Equal(t, 2, audit.Len(), "the factor row and the cap are both recorded")
	})

	t.Run("cap slack", func(t *testing.T) {
		cfg := baseCase()
		hint := decimal.NewFromInt(70)
		cfg.Assumptions.RetirementAgeHint = &hint

		life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
		worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
		require.NoError(t, err)

		assert.True(t, worklife.Years.Equal(decimal.NewFromFloat(17.5)))
		assert.False(t, worklife.Clamped)
	})

	t.Run("hint below current age", func(t *testing.T) {
		cfg := baseCase()
		hint := decimal.NewFromInt(40)
		cfg.Assumptions.RetirementAgeHint = &hint

		life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
		worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
		require.NoError(t, err)

		assert.True(t, worklife.Years.IsZero())
	})
}

func TestResolveWorkLifeTableSelector(t *testing.T) {
	engine := NewCalculationEngine(newFakeTables(), nil)
	cfg := baseCase()
	cfg.Assumptions.WorkLifeTable = "total"

	life := domain.LifeExpectancyResult{Years: decimal.NewFromInt(35)}
	worklife, err := engine.ResolveWorkLife(decimal.NewFromInt(45), cfg, life, domain.NewAuditLog())
	require.NoError(t, err)
	require.Len(t, worklife.Citations, 1)
	assert.Contains(t, worklife.Citations[0].SourceLocator, "total", "selector replaces the sex series")
}
