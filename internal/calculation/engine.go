// Package calculation implements the forensic loss pipeline: life expectancy
// lookup, work-life adjustment, wage growth projection, earnings projection,
// discounting and present-value aggregation. The pipeline is strictly
// sequential; every stage feeds the per-run audit log with the table rows and
// overrides it consumed.
package calculation

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/tables"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/pkg/dateutil"
)

// Stage names used for audit entries, in pipeline order.
const (
	StageLifeExpectancy = "life_expectancy"
	StageWorkLife       = "worklife"
	StageWageGrowth     = "wage_growth"
	StageDiscounting    = "discounting"
)

// Defaults applied when the case supplies no explicit selector.
const (
	DefaultWageGrowthCategory = "all_occupations"
	DefaultDiscountSeries     = "treasury_1y_cmt"
	DefaultWageHistoryYears   = 7
)

var (
	decimalOne = decimal.NewFromInt(1)

	// prorationEpsilon is the threshold below which a fractional final
	// year is dropped instead of prorated.
	prorationEpsilon = decimal.New(1, -6)
)

// CalculationEngine orchestrates a single case run. It holds only immutable
// dependencies, so one engine is safe to share across concurrent runs; all
// per-run state lives in the values threaded through RunCase.
type CalculationEngine struct {
	tables tables.Provider
	logger *zap.Logger
}

// NewCalculationEngine creates an engine over the given table provider.
// A nil logger disables logging.
func NewCalculationEngine(provider tables.Provider, logger *zap.Logger) *CalculationEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculationEngine{tables: provider, logger: logger}
}

// RunCase executes the full pipeline for one case configuration and returns
// an immutable result. It either completes deterministically or fails with a
// typed error before any partial result escapes.
func (ce *CalculationEngine) RunCase(cfg *domain.CaseConfig) (*domain.CaseResult, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	age := dateutil.FractionalYearsBetween(cfg.Person.BirthDate, cfg.Person.DeathDate)
	audit := domain.NewAuditLog()

	life, err := ce.ResolveLifeExpectancy(age, cfg.Person.Sex, cfg.Assumptions.LifeExpectancyYears, audit)
	if err != nil {
		return nil, err
	}

	worklife, err := ce.ResolveWorkLife(age, cfg, life, audit)
	if err != nil {
		return nil, err
	}

	horizon := int(worklife.Years.Ceil().IntPart())
	category := cfg.Assumptions.WageGrowthCategory
	if category == "" {
		category = DefaultWageGrowthCategory
	}
	growth, err := ce.ProjectWageGrowth(cfg.Person.DeathDate.Year(), horizon, cfg.Assumptions.WageGrowthRate, category, audit)
	if err != nil {
		return nil, err
	}

	earnings := ProjectEarnings(cfg.Occupation.BaseSalary, growth, worklife.Years)

	// A zero-horizon case is valid: nothing to discount, total loss zero,
	// and no discount-rate citation because no rate was consumed.
	discountRate := decimal.Zero
	var factors domain.DiscountFactorSchedule
	if len(earnings) > 0 {
		series := cfg.Assumptions.DiscountSeries
		if series == "" {
			series = DefaultDiscountSeries
		}
		discountRate, err = ce.ResolveDiscountRate(cfg.Assumptions.DiscountRate, series, audit)
		if err != nil {
			return nil, err
		}
		factors = ComputeDiscountFactors(discountRate, earnings)
	}

	presentValue := ComputePresentValue(earnings, factors)
	history := ReconstructWageHistory(cfg.Occupation.BaseSalary, averageRate(growth), DefaultWageHistoryYears)

	ce.logger.Info("case run complete",
		zap.String("op", "calculation.RunCase"),
		zap.String("case_id", cfg.CaseID),
		zap.String("life_expectancy_years", life.Years.StringFixed(4)),
		zap.String("worklife_years", worklife.Years.StringFixed(4)),
		zap.String("total_loss", presentValue.TotalLoss.StringFixed(2)),
	)

	return &domain.CaseResult{
		CaseID:          cfg.CaseID,
		Config:          *cfg,
		AgeAtDeath:      age,
		LifeExpectancy:  life,
		WorkLife:        worklife,
		Growth:          growth,
		WageHistory:     history,
		Earnings:        earnings,
		DiscountRate:    discountRate,
		DiscountFactors: factors,
		PresentValue:    presentValue,
		Audit:           audit.Entries(),
	}, nil
}

// checkConfig guards the invariants the engine relies on. Full field-level
// validation happens in the config package before a case reaches the engine;
// these checks keep the pipeline safe when callers construct configs directly.
func checkConfig(cfg *domain.CaseConfig) error {
	if cfg == nil {
		return domain.NewInvalidConfigError("config", "case config is nil")
	}
	if cfg.Person.BirthDate.IsZero() {
		return domain.NewInvalidConfigError("person.dob", "birth date is required")
	}
	if cfg.Person.DeathDate.IsZero() {
		return domain.NewInvalidConfigError("person.dod", "evaluation date is required")
	}
	if cfg.Person.BirthDate.After(cfg.Person.DeathDate) {
		return domain.NewInvalidConfigError("person.dob", "birth date must not be after the evaluation date")
	}
	if !cfg.Occupation.BaseSalary.IsPositive() {
		return domain.NewInvalidConfigError("occupation.base_salary_usd", "base salary must be greater than zero")
	}
	return nil
}

// averageRate returns the arithmetic mean of the schedule's rates, zero for
// an empty schedule.
func averageRate(growth domain.GrowthSchedule) decimal.Decimal {
	if len(growth) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range growth {
		sum = sum.Add(p.Rate)
	}
	return sum.Div(decimal.NewFromInt(int64(len(growth))))
}
