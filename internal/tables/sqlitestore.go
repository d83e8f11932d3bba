package tables

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

// LoadSQLite builds the reference tables from a SQLite database. The file is
// read in full during this call and closed before it returns; the resulting
// tables carry no open handle.
func LoadSQLite(path string) (*ReferenceTables, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open table db %s: %w", path, err)
	}
	defer func() {
		_ = db.Close()
	}()

	rt := &ReferenceTables{
		mortality:      make(map[domain.Sex]map[int]decimal.Decimal),
		maxAge:         make(map[domain.Sex]int),
		wageGrowth:     make(map[string]map[int]decimal.Decimal),
		latestWageYear: make(map[string]int),
		discount:       make(map[string]decimal.Decimal),
	}

	meta, err := readMeta(db)
	if err != nil {
		return nil, err
	}
	rt.mortalitySource = meta["mortality_source"]
	rt.worklifeSource = meta["worklife_source"]
	rt.wageSource = meta["wage_growth_source"]
	rt.discountSource = meta["discount_source"]

	if err := rt.readMortality(db); err != nil {
		return nil, err
	}
	if err := rt.readWorklife(db); err != nil {
		return nil, err
	}
	if err := rt.readWageGrowth(db); err != nil {
		return nil, err
	}
	if err := rt.readDiscount(db); err != nil {
		return nil, err
	}
	return rt, nil
}

// CreateSchema creates the reference-table schema in an empty database. Used
// by import tooling and tests that stage table data into SQLite.
func CreateSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS mortality (
		sex TEXT NOT NULL,
		age INTEGER NOT NULL,
		ex  TEXT NOT NULL,
		PRIMARY KEY (sex, age)
	);
	CREATE TABLE IF NOT EXISTS worklife (
		min_age   INTEGER NOT NULL,
		max_age   INTEGER NOT NULL,
		sex       TEXT NOT NULL,
		education TEXT NOT NULL,
		factor    TEXT NOT NULL,
		PRIMARY KEY (min_age, max_age, sex, education)
	);
	CREATE TABLE IF NOT EXISTS wage_growth (
		category TEXT NOT NULL,
		year     INTEGER NOT NULL,
		rate     TEXT NOT NULL,
		PRIMARY KEY (category, year)
	);
	CREATE TABLE IF NOT EXISTS discount (
		series TEXT PRIMARY KEY,
		rate   TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create table schema: %w", err)
	}
	return nil
}

func readMeta(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, fmt.Errorf("read meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan meta row: %w", err)
		}
		meta[key] = value
	}
	return meta, rows.Err()
}

func (rt *ReferenceTables) readMortality(db *sql.DB) error {
	rows, err := db.Query("SELECT sex, age, ex FROM mortality")
	if err != nil {
		return fmt.Errorf("read mortality: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var sex string
		var age int
		var exText string
		if err := rows.Scan(&sex, &age, &exText); err != nil {
			return fmt.Errorf("scan mortality row: %w", err)
		}
		ex, err := decimal.NewFromString(exText)
		if err != nil {
			return fmt.Errorf("mortality row %s/%d: %w", sex, age, err)
		}
		series, ok := rt.mortality[domain.Sex(sex)]
		if !ok {
			series = make(map[int]decimal.Decimal)
			rt.mortality[domain.Sex(sex)] = series
		}
		series[age] = ex
		if age > rt.maxAge[domain.Sex(sex)] {
			rt.maxAge[domain.Sex(sex)] = age
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("mortality table has no rows")
	}
	return nil
}

func (rt *ReferenceTables) readWorklife(db *sql.DB) error {
	rows, err := db.Query("SELECT min_age, max_age, sex, education, factor FROM worklife ORDER BY min_age")
	if err != nil {
		return fmt.Errorf("read worklife: %w", err)
	}
	defer rows.Close()

	byRange := make(map[[2]int]*worklifeBracket)
	var order [][2]int
	for rows.Next() {
		var minAge, maxAge int
		var sex, education, factorText string
		if err := rows.Scan(&minAge, &maxAge, &sex, &education, &factorText); err != nil {
			return fmt.Errorf("scan worklife row: %w", err)
		}
		factor, err := decimal.NewFromString(factorText)
		if err != nil {
			return fmt.Errorf("worklife row %d-%d/%s/%s: %w", minAge, maxAge, sex, education, err)
		}
		key := [2]int{minAge, maxAge}
		bracket, ok := byRange[key]
		if !ok {
			bracket = &worklifeBracket{
				minAge:  minAge,
				maxAge:  maxAge,
				factors: make(map[domain.Sex]map[domain.EducationLevel]decimal.Decimal),
			}
			byRange[key] = bracket
			order = append(order, key)
		}
		bySex, ok := bracket.factors[domain.Sex(sex)]
		if !ok {
			bySex = make(map[domain.EducationLevel]decimal.Decimal)
			bracket.factors[domain.Sex(sex)] = bySex
		}
		bySex[domain.EducationLevel(education)] = factor
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(order) == 0 {
		return fmt.Errorf("worklife table has no rows")
	}
	for _, key := range order {
		rt.worklife = append(rt.worklife, *byRange[key])
	}
	return nil
}

func (rt *ReferenceTables) readWageGrowth(db *sql.DB) error {
	rows, err := db.Query("SELECT category, year, rate FROM wage_growth")
	if err != nil {
		return fmt.Errorf("read wage growth: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, rateText string
		var year int
		if err := rows.Scan(&category, &year, &rateText); err != nil {
			return fmt.Errorf("scan wage growth row: %w", err)
		}
		rate, err := decimal.NewFromString(rateText)
		if err != nil {
			return fmt.Errorf("wage growth row %s/%d: %w", category, year, err)
		}
		byYear, ok := rt.wageGrowth[category]
		if !ok {
			byYear = make(map[int]decimal.Decimal)
			rt.wageGrowth[category] = byYear
		}
		byYear[year] = rate
		if year > rt.latestWageYear[category] {
			rt.latestWageYear[category] = year
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(rt.wageGrowth) == 0 {
		return fmt.Errorf("wage growth table has no rows")
	}
	return nil
}

func (rt *ReferenceTables) readDiscount(db *sql.DB) error {
	rows, err := db.Query("SELECT series, rate FROM discount")
	if err != nil {
		return fmt.Errorf("read discount: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var series, rateText string
		if err := rows.Scan(&series, &rateText); err != nil {
			return fmt.Errorf("scan discount row: %w", err)
		}
		rate, err := decimal.NewFromString(rateText)
		if err != nil {
			return fmt.Errorf("discount series %s: %w", series, err)
		}
		rt.discount[series] = rate
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(rt.discount) == 0 {
		return fmt.Errorf("discount table has no series")
	}
	return nil
}
