package tables

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
)

//go:embed data/*.yaml
var defaultData embed.FS

const (
	mortalityFile  = "mortality.yaml"
	worklifeFile   = "worklife.yaml"
	wageGrowthFile = "wage_growth.yaml"
	discountFile   = "discount.yaml"
)

type mortalityDoc struct {
	Source string `yaml:"source"`
	Rows   []struct {
		Age int             `yaml:"age"`
		Sex domain.Sex      `yaml:"sex"`
		Ex  decimal.Decimal `yaml:"ex"`
	} `yaml:"rows"`
}

type worklifeDoc struct {
	Source   string `yaml:"source"`
	Brackets []struct {
		MinAge  int                                                      `yaml:"min_age"`
		MaxAge  int                                                      `yaml:"max_age"`
		Factors map[domain.Sex]map[domain.EducationLevel]decimal.Decimal `yaml:"factors"`
	} `yaml:"brackets"`
}

type wageGrowthDoc struct {
	Source     string                             `yaml:"source"`
	Categories map[string]map[int]decimal.Decimal `yaml:"categories"`
}

type discountDoc struct {
	Source string                     `yaml:"source"`
	Series map[string]decimal.Decimal `yaml:"series"`
}

// Load builds the reference tables from the data bundled with the binary.
func Load() (*ReferenceTables, error) {
	return load(func(name string) ([]byte, error) {
		return defaultData.ReadFile("data/" + name)
	})
}

// LoadDir builds the reference tables from YAML files in an external
// directory, using the same file names as the bundled data.
func LoadDir(dir string) (*ReferenceTables, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(read func(name string) ([]byte, error)) (*ReferenceTables, error) {
	rt := &ReferenceTables{
		mortality:      make(map[domain.Sex]map[int]decimal.Decimal),
		maxAge:         make(map[domain.Sex]int),
		wageGrowth:     make(map[string]map[int]decimal.Decimal),
		latestWageYear: make(map[string]int),
		discount:       make(map[string]decimal.Decimal),
	}

	if err := rt.loadMortality(read); err != nil {
		return nil, err
	}
	if err := rt.loadWorklife(read); err != nil {
		return nil, err
	}
	if err := rt.loadWageGrowth(read); err != nil {
		return nil, err
	}
	if err := rt.loadDiscount(read); err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *ReferenceTables) loadMortality(read func(string) ([]byte, error)) error {
	data, err := read(mortalityFile)
	if err != nil {
		return fmt.Errorf("failed to read mortality table: %w", err)
	}
	var doc mortalityDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse mortality table: %w", err)
	}
	if len(doc.Rows) == 0 {
		return fmt.Errorf("mortality table has no rows")
	}
	rt.mortalitySource = doc.Source
	for _, row := range doc.Rows {
		if row.Ex.IsNegative() {
			return fmt.Errorf("mortality table row %s/%d has negative expectancy %s", row.Sex, row.Age, row.Ex)
		}
		rows, ok := rt.mortality[row.Sex]
		if !ok {
			rows = make(map[int]decimal.Decimal)
			rt.mortality[row.Sex] = rows
		}
		rows[row.Age] = row.Ex
		if row.Age > rt.maxAge[row.Sex] {
			rt.maxAge[row.Sex] = row.Age
		}
	}
	return nil
}

func (rt *ReferenceTables) loadWorklife(read func(string) ([]byte, error)) error {
	data, err := read(worklifeFile)
	if err != nil {
		return fmt.Errorf("failed to read worklife table: %w", err)
	}
	var doc worklifeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse worklife table: %w", err)
	}
	if len(doc.Brackets) == 0 {
		return fmt.Errorf("worklife table has no brackets")
	}
	rt.worklifeSource = doc.Source
	for _, b := range doc.Brackets {
		if b.MinAge > b.MaxAge {
			return fmt.Errorf("worklife bracket %d-%d is inverted", b.MinAge, b.MaxAge)
		}
		rt.worklife = append(rt.worklife, worklifeBracket{
			minAge:  b.MinAge,
			maxAge:  b.MaxAge,
			factors: b.Factors,
		})
	}
	return nil
}

func (rt *ReferenceTables) loadWageGrowth(read func(string) ([]byte, error)) error {
	data, err := read(wageGrowthFile)
	if err != nil {
		return fmt.Errorf("failed to read wage growth table: %w", err)
	}
	var doc wageGrowthDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse wage growth table: %w", err)
	}
	if len(doc.Categories) == 0 {
		return fmt.Errorf("wage growth table has no categories")
	}
	rt.wageSource = doc.Source
	for category, byYear := range doc.Categories {
		rt.wageGrowth[category] = byYear
		latest := 0
		for year := range byYear {
			if year > latest {
				latest = year
			}
		}
		rt.latestWageYear[category] = latest
	}
	return nil
}

func (rt *ReferenceTables) loadDiscount(read func(string) ([]byte, error)) error {
	data, err := read(discountFile)
	if err != nil {
		return fmt.Errorf("failed to read discount table: %w", err)
	}
	var doc discountDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse discount table: %w", err)
	}
	if len(doc.Series) == 0 {
		return fmt.Errorf("discount table has no series")
	}
	rt.discountSource = doc.Source
	rt.discount = doc.Series
	return nil
}
