package dataset

import (
	"math"
	"strconv"
	"strings"

	"incomedash/adapters/excel"
	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal/errors"
)

// missingMarkers are cell values read as missing in numeric columns
var missingMarkers = map[string]bool{
	"":    true,
	"na":  true,
	"n/a": true,
	"nan": true,
	"?":   true,
}

// DecodeTable converts raw sheet data into a census table.
// previewRows raw rows are kept for the data preview.
func DecodeTable(source string, data *excel.ExcelData, previewRows int) (*census.Table, error) {
	if missing := data.MissingColumns(census.RequiredColumns); len(missing) > 0 {
		return nil, errors.InvalidInputf(core.NewMissingColumnsError(missing), "dataset %s is missing required columns", source)
	}

	records := make([]census.Record, len(data.Rows))
	for i := range data.Rows {
		rec := &records[i]
		for _, col := range census.NumericColumns {
			rec.SetNumeric(col, parseNumeric(data.Value(i, col)))
		}
		for _, col := range census.CategoricalColumns {
			rec.SetCategory(col, data.Value(i, col))
		}
	}

	if previewRows > len(data.Rows) {
		previewRows = len(data.Rows)
	}
	preview := make([][]string, previewRows)
	for i := 0; i < previewRows; i++ {
		row := make([]string, len(data.Headers))
		copy(row, data.Rows[i])
		preview[i] = row
	}

	columns := make([]string, len(data.Headers))
	copy(columns, data.Headers)

	return &census.Table{
		Source:  source,
		Columns: columns,
		Records: records,
		Preview: preview,
	}, nil
}

func parseNumeric(cell string) census.Numeric {
	if missingMarkers[strings.ToLower(cell)] {
		return census.Numeric{}
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return census.Numeric{}
	}
	return census.Num(v)
}
