package output

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// Summary is the high-level result shape written to summary.json and
// returned by the HTTP service.
type Summary struct {
	CaseID               string              `json:"case_id"`
	LifeExpectancyYears  decimal.Decimal     `json:"life_expectancy_years"`
	WorklifeRemainingYrs decimal.Decimal     `json:"worklife_remaining_years"`
	AvgWageGrowthPct     decimal.Decimal     `json:"avg_wage_growth_pct"`
	DiscountRatePct      decimal.Decimal     `json:"discount_rate_pct"`
	TotalEconomicLossUSD decimal.Decimal     `json:"total_economic_loss_usd"`
	UndiscountedTotalUSD decimal.Decimal     `json:"undiscounted_total_usd"`
	ProjectionYears      int                 `json:"projection_years"`
	Audit                []domain.AuditEntry `json:"audit"`
}

// BuildSummary condenses a CaseResult into its summary form. Monetary totals
// are rounded to cents here, at the rendering boundary.
func BuildSummary(r *domain.CaseResult) Summary {
	hundred := decimal.NewFromInt(100)
	return Summary{
		CaseID:               r.CaseID,
		LifeExpectancyYears:  r.LifeExpectancy.Years.Round(4),
		WorklifeRemainingYrs: r.WorkLife.Years.Round(4),
		AvgWageGrowthPct:     r.WageHistory.AverageGrowth.Mul(hundred).Round(4),
		DiscountRatePct:      r.DiscountRate.Mul(hundred).Round(4),
		TotalEconomicLossUSD: r.PresentValue.TotalLoss.Round(2),
		UndiscountedTotalUSD: r.Earnings.TotalNominal().Round(2),
		ProjectionYears:      len(r.Earnings),
		Audit:                r.Audit,
	}
}

// WriteSummary writes summary.json into the case directory and returns its
// path.
func (w *ReportWriter) WriteSummary(result *domain.CaseResult) (string, error) {
	caseDir := filepath.Join(w.BaseDir, result.CaseID)
	if err := os.MkdirAll(caseDir, 0o755); err != nil {
		return "", fmt.Errorf("create case directory: %w", err)
	}

	summary := BuildSummary(result)
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	path := filepath.Join(caseDir, "summary.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}
