// Package output renders a CaseResult into the workbook-style report sheets
// and the machine-readable summary. The pipeline itself never rounds;
// rounding to cents happens here.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// Sheet names, one CSV file per sheet, matching the workbook layout.
const (
	SheetDashboard       = "dashboard"
	SheetLifeExpectancy  = "life_expectancy"
	SheetWorklifeLookup  = "worklife_lookup"
	SheetWageGrowth      = "wage_growth"
	SheetProjections     = "projections"
	SheetDiscountFactors = "discount_factors"
	SheetPresentValue    = "present_value"
	SheetAuditLog        = "audit_log"
)

// ReportWriter writes case reports beneath a base directory, one
// subdirectory per case id.
type ReportWriter struct {
	BaseDir string
}

// NewReportWriter creates a writer rooted at the given directory.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{BaseDir: baseDir}
}

// WriteWorkbook renders every sheet for the result and returns the written
// file paths in sheet order.
func (w *ReportWriter) WriteWorkbook(result *domain.CaseResult) ([]string, error) {
	caseDir := filepath.Join(w.BaseDir, result.CaseID)
	if err := os.MkdirAll(caseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create case directory: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]string
	}{
		{SheetDashboard, dashboardRows(result)},
		{SheetLifeExpectancy, lifeExpectancyRows(result)},
		{SheetWorklifeLookup, worklifeRows(result)},
		{SheetWageGrowth, wageGrowthRows(result)},
		{SheetProjections, projectionRows(result)},
		{SheetDiscountFactors, discountFactorRows(result)},
		{SheetPresentValue, presentValueRows(result)},
		{SheetAuditLog, auditRows(result)},
	}

	paths := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		path := filepath.Join(caseDir, sheet.name+".csv")
		if err := writeSheet(path, sheet.rows); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeSheet(path string, rows [][]string) error {
	buf := &bytes.Buffer{}
	cw := csv.NewWriter(buf)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write sheet %s: %w", filepath.Base(path), err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write sheet %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write sheet %s: %w", filepath.Base(path), err)
	}
	return nil
}

func dashboardRows(r *domain.CaseResult) [][]string {
	p := r.Config.Person
	o := r.Config.Occupation
	return [][]string{
		{"Field", "Value"},
		{"Case ID", r.CaseID},
		{"First Name", p.FirstName},
		{"Last Name", p.LastName},
		{"Sex", string(p.Sex)},
		{"DOB", p.BirthDate.Format("2006-01-02")},
		{"DOD", p.DeathDate.Format("2006-01-02")},
		{"Occupation", o.Title},
		{"SOC Code", o.SOCCode},
		{"County", o.County},
		{"State", o.State},
		{"Base Salary (USD)", o.BaseSalary.StringFixed(2)},
		{"Age at Death (years)", r.AgeAtDeath.StringFixed(2)},
		{"Life Expectancy (years)", r.LifeExpectancy.Years.StringFixed(2)},
		{"Worklife Remaining (years)", r.WorkLife.Years.StringFixed(2)},
		{"Average Wage Growth (%)", toPercent(r.WageHistory.AverageGrowth)},
		{"Discount Rate (%)", toPercent(r.DiscountRate)},
		{"Total Economic Loss (USD)", r.PresentValue.TotalLoss.StringFixed(2)},
	}
}

func lifeExpectancyRows(r *domain.CaseResult) [][]string {
	rows := [][]string{
		{"LifeExpectancyYears", "Overridden", "LowerAge", "UpperAge", "LowerWeight", "UpperWeight"},
		{
			r.LifeExpectancy.Years.StringFixed(4),
			boolString(r.LifeExpectancy.Overridden),
			fmt.Sprintf("%d", r.LifeExpectancy.LowerAge),
			fmt.Sprintf("%d", r.LifeExpectancy.UpperAge),
			r.LifeExpectancy.LowerWeight.StringFixed(4),
			r.LifeExpectancy.UpperWeight.StringFixed(4),
		},
	}
	return rows
}

func worklifeRows(r *domain.CaseResult) [][]string {
	return [][]string{
		{"WorklifeYears", "ParticipationFactor", "Overridden", "Clamped"},
		{
			r.WorkLife.Years.StringFixed(4),
			r.WorkLife.ParticipationFactor.StringFixed(4),
			boolString(r.WorkLife.Overridden),
			boolString(r.WorkLife.Clamped),
		},
	}
}

func wageGrowthRows(r *domain.CaseResult) [][]string {
	rows := [][]string{{"YearIndex", "MeanWage", "YoYGrowth"}}
	for _, p := range r.WageHistory.Points {
		yoy := ""
		if p.YoYGrowth != nil {
			yoy = p.YoYGrowth.StringFixed(6)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.YearIndex),
			p.MeanWage.StringFixed(2),
			yoy,
		})
	}
	rows = append(rows, []string{"AverageGrowth", r.WageHistory.AverageGrowth.StringFixed(6), ""})
	return rows
}

func projectionRows(r *domain.CaseResult) [][]string {
	rows := [][]string{{"YearIndex", "CalendarYear", "GrowthRate", "FullYearValue", "PortionOfYear", "ActualValue"}}
	for _, e := range r.Earnings {
		year := ""
		rate := ""
		if e.YearIndex < len(r.Growth) {
			year = fmt.Sprintf("%d", r.Growth[e.YearIndex].CalendarYear)
			rate = r.Growth[e.YearIndex].Rate.StringFixed(6)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.YearIndex),
			year,
			rate,
			e.FullYearValue.StringFixed(2),
			e.YearFraction.StringFixed(6),
			e.Nominal.StringFixed(2),
		})
	}
	return rows
}

func discountFactorRows(r *domain.CaseResult) [][]string {
	rows := [][]string{{"YearIndex", "DiscountFactor"}}
	for _, f := range r.DiscountFactors {
		rows = append(rows, []string{
			fmt.Sprintf("%d", f.YearIndex),
			f.Factor.StringFixed(8),
		})
	}
	return rows
}

func presentValueRows(r *domain.CaseResult) [][]string {
	rows := [][]string{{"YearIndex", "Nominal", "DiscountFactor", "PresentValue", "CumulativePV"}}
	for _, e := range r.PresentValue.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.YearIndex),
			e.Nominal.StringFixed(2),
			e.Factor.StringFixed(8),
			e.PresentValue.StringFixed(2),
			e.Cumulative.StringFixed(2),
		})
	}
	rows = append(rows, []string{"Total", "", "", "", r.PresentValue.TotalLoss.StringFixed(2)})
	return rows
}

func auditRows(r *domain.CaseResult) [][]string {
	rows := [][]string{{"Stage", "Description", "Value", "SourceLabel", "SourceLocator"}}
	for _, e := range r.Audit {
		rows = append(rows, []string{e.Stage, e.Description, e.Value, e.SourceLabel, e.SourceLocator})
	}
	return rows
}

func toPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
