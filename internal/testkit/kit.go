package testkit

import (
	"fmt"
	"path/filepath"

	"incomedash/adapters/excel"
	"incomedash/domain/census"
	"incomedash/internal/dataset"
)

// sampleRows is a five-row dataset: rows 0-2 are Male, Single and aged 20-30;
// row 3 is Female and row 4 is 45, so (18-35, Male, Single) matches exactly three.
var sampleRows = [][]string{
	{"ID_TZ0000", "25", "Male", "Bachelors degree(BA AB BS)", "", "", "Never married", "White", "2", "1200", "52", "33", "Retail trade", "19", "4", "2", "Single", "0", "0", "150", "US", "95", "1032.55", "Above limit"},
	{"ID_TZ0001", "20", "Male", "High school graduate", "", "", "Never married", "Black", "0", "0", "40", "4", "Construction", "34", "2", "2", "Single", "0", "0", "0", "Mexico", "94", "2210.10", "Below limit"},
	{"ID_TZ0002", "30", "Male", "High school graduate", "", "", "Divorced", "White", "0", "800", "30", "42", "Hospital services", "10", "1", "2", "Single", "0", "1500", "0", "US", "95", "1544.00", "Below limit"},
	{"ID_TZ0003", "28", "Female", "Masters degree(MA MS MEng MEd MSW MBA)", "", "", "Never married", "Asian or Pacific Islander", "2", "2000", "52", "43", "Education", "8", "6", "2", "Single", "5000", "0", "0", "India", "94", "980.25", "Above limit"},
	{"ID_TZ0004", "45", "Male", "Doctorate degree(PhD EdD)", "", "", "Married-civilian spouse present", "White", "0", "0", "52", "39", "Finance insurance and real estate", "2", "3", "2", "Single", "15024", "0", "3200", "Germany", "95", "1711.75", "Above limit"},
}

// SampleDataset returns the five-row fixture as a sheet
func SampleDataset() *Dataset {
	rows := make([][]string, len(sampleRows))
	for i, row := range sampleRows {
		rows[i] = append([]string(nil), row...)
	}
	return &Dataset{Headers: Headers, Rows: rows}
}

// WriteSampleCSV writes the five-row fixture into dir and returns its path
func WriteSampleCSV(dir string) (string, error) {
	path := filepath.Join(dir, "uploaded_data_history.csv")
	return path, WriteCSV(path, SampleDataset())
}

// SampleTable returns the five-row fixture as an in-memory table
func SampleTable() *census.Table {
	return TableFromDataset(SampleDataset())
}

// TableFromDataset decodes generated rows the way a loaded file is decoded.
// It panics on a dataset that lacks required columns.
func TableFromDataset(ds *Dataset) *census.Table {
	table, err := dataset.DecodeTable("testkit", excel.NewExcelData(ds.Headers, ds.Rows), 0)
	if err != nil {
		panic(fmt.Sprintf("testkit: %v", err))
	}
	return table
}

// Record is a shorthand for building census records in tests
func Record(age float64, gender, taxStatus string, label census.Label) census.Record {
	return census.Record{
		Age:              census.Num(age),
		Gender:           gender,
		TaxStatus:        taxStatus,
		IncomeAboveLimit: label,
	}
}
