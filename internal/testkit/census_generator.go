package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"incomedash/domain/census"

	"github.com/xuri/excelize/v2"
)

// GeneratorConfig configures the synthetic census generator
type GeneratorConfig struct {
	Rows        int     `json:"rows"`
	Seed        int64   `json:"seed"`
	MissingRate float64 `json:"missing_rate"` // share of blank optional numeric cells
}

// DefaultConfig returns sensible defaults for census data generation
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:        2000,
		Seed:        42,
		MissingRate: 0.02,
	}
}

// Dataset is a generated sheet: header plus string rows
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Headers of generated files, in source order
var Headers = []string{
	"ID",
	census.ColAge, census.ColGender, census.ColEducation, "class",
	"education_institute", census.ColMaritalStatus, "race",
	census.ColEmploymentStat, census.ColWagePerHour, census.ColWorkingWeekPerYear,
	census.ColIndustryCode, census.ColIndustryCodeMain, census.ColOccupationCode,
	census.ColTotalEmployed, census.ColVetBenefit, census.ColTaxStatus,
	census.ColGains, census.ColLosses, census.ColStocksStatus,
	census.ColCountryOfBirth, census.ColMigYear, census.ColImportanceOfRecord,
	census.ColIncomeAboveLimit,
}

var (
	educationLevels = []string{
		"Children", "High school graduate", "Some college but no degree",
		"Bachelors degree(BA AB BS)", "Masters degree(MA MS MEng MEd MSW MBA)",
		"Associates degree-occup /vocational", "10th grade", "Doctorate degree(PhD EdD)",
	}
	maritalStatuses = []string{
		"Never married", "Married-civilian spouse present", "Divorced", "Widowed", "Separated",
	}
	industries = []string{
		"Not in universe or children", "Retail trade", "Manufacturing-durable goods",
		"Education", "Construction", "Finance insurance and real estate", "Hospital services",
	}
	countries = []string{
		"US", "US", "US", "US", "Mexico", "Philippines", "Germany", "Canada", "India", "China",
	}
	races = []string{"White", "Black", "Asian or Pacific Islander", "Amer Indian Aleut or Eskimo", "Other"}
)

// Generate builds a deterministic synthetic dataset. Higher education, age and
// gains raise the chance of an "Above limit" label.
func Generate(cfg GeneratorConfig) (*Dataset, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("rows must be > 0, got %d", cfg.Rows)
	}
	if cfg.MissingRate < 0 || cfg.MissingRate >= 1 {
		return nil, fmt.Errorf("missing rate must be in [0,1), got %g", cfg.MissingRate)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	ds := &Dataset{Headers: Headers, Rows: make([][]string, 0, cfg.Rows)}

	for i := 0; i < cfg.Rows; i++ {
		age := 1 + rng.Intn(90)
		gender := census.GenderOptions[rng.Intn(len(census.GenderOptions))]
		eduIdx := rng.Intn(len(educationLevels))
		if age < 16 {
			eduIdx = 0
		}
		taxStatus := census.TaxStatusOptions[rng.Intn(len(census.TaxStatusOptions))]
		if age < 18 {
			taxStatus = "Nonfiler"
		}

		weeks := 0
		wage := 0
		employed := 0
		industryIdx := 0
		if age >= 16 && rng.Float64() < 0.7 {
			weeks = 10 + rng.Intn(43)
			wage = rng.Intn(3000)
			employed = 1 + rng.Intn(6)
			industryIdx = 1 + rng.Intn(len(industries)-1)
		}

		gains := 0
		if rng.Float64() < 0.05 {
			gains = rng.Intn(99999)
		}
		losses := 0
		if rng.Float64() < 0.03 {
			losses = rng.Intn(4000)
		}
		stocks := 0
		if rng.Float64() < 0.1 {
			stocks = rng.Intn(10000)
		}

		score := float64(eduIdx)*0.35 + float64(age)/40 + float64(gains)/20000 + float64(weeks)/40
		label := census.LabelBelow
		if score+rng.NormFloat64()*0.5 > 3.2 {
			label = census.LabelAbove
		}

		row := []string{
			fmt.Sprintf("ID_TZ%04d", i),
			strconv.Itoa(age),
			gender,
			educationLevels[eduIdx],
			"",
			"",
			maritalStatuses[rng.Intn(len(maritalStatuses))],
			races[rng.Intn(len(races))],
			strconv.Itoa(rng.Intn(3)),
			strconv.Itoa(wage),
			strconv.Itoa(weeks),
			strconv.Itoa(industryIdx * 7),
			industries[industryIdx],
			strconv.Itoa(rng.Intn(47)),
			strconv.Itoa(employed),
			strconv.Itoa(rng.Intn(3)),
			taxStatus,
			strconv.Itoa(gains),
			strconv.Itoa(losses),
			strconv.Itoa(stocks),
			countries[rng.Intn(len(countries))],
			strconv.Itoa(94 + rng.Intn(2)),
			fToStr(500+rng.Float64()*3000, 2),
			string(label),
		}

		// blank out optional numeric cells; age stays present
		for _, col := range []int{8, 13, 15, 21} {
			if rng.Float64() < cfg.MissingRate {
				row[col] = ""
			}
		}

		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// WriteCSV writes the dataset as CSV
func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	if err := w.WriteAll(ds.Rows); err != nil {
		return err
	}
	return w.Error()
}

// WriteXLSX writes the dataset to the first sheet of a workbook
func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(ds.Headers))
	for i, h := range ds.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range ds.Rows {
		cells := make([]interface{}, len(row))
		for c, v := range row {
			cells[c] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func fToStr(x float64, decimals int) string {
	p := math.Pow10(decimals)
	x = math.Round(x*p) / p
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
