package excel

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadData_CSV(t *testing.T) {
	path := writeFile(t, "history.csv", "\ufeffage, gender ,tax_status\n 25 ,Male,Single\n\n40,Female\n")

	data, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "gender", "tax_status"}, data.Headers)
	require.Len(t, data.Rows, 2, "blank lines are skipped")
	assert.Equal(t, "25", data.Value(0, "age"))
	assert.Equal(t, "Single", data.Value(0, "tax_status"))
	assert.Equal(t, "", data.Value(1, "tax_status"), "short rows read as missing")
	assert.Equal(t, "", data.Value(0, "unknown"))
	assert.Equal(t, "", data.Value(5, "age"))
}

func TestReadData_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	data, err := NewDataReader(path).ReadData()
	assert.Nil(t, data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadData_NoRows(t *testing.T) {
	tests := map[string]string{
		"zero bytes":  "",
		"header only": "age,gender\n",
		"blank rows":  "age,gender\n , \n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "empty.csv", content)
			_, err := NewDataReader(path).ReadData()
			assert.ErrorIs(t, err, ErrNoDataRows)
		})
	}
}

func TestReadData_ZeroByteXLSX(t *testing.T) {
	path := writeFile(t, "empty.xlsx", "")
	_, err := NewDataReader(path).ReadData()
	assert.ErrorIs(t, err, ErrNoDataRows)
}

func TestReadData_MalformedCSV(t *testing.T) {
	path := writeFile(t, "bad.csv", "age,gender\n\"25,Male\n")

	_, err := NewDataReader(path).ReadData()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoDataRows))
	assert.True(t, strings.Contains(err.Error(), "failed to read CSV file"))
}

func TestReadData_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"age", "gender", "income_above_limit"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{33, "Female", "Below limit"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{51, "Male", "Above limit"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader := NewDataReader(path)
	assert.Equal(t, "xlsx", reader.FileType())

	data, err := reader.ReadData()
	require.NoError(t, err)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "33", data.Value(0, "age"))
	assert.Equal(t, "Above limit", data.Value(1, "income_above_limit"))
}

func TestMissingColumns(t *testing.T) {
	data := NewExcelData([]string{"age", "gender"}, [][]string{{"1", "Male"}})

	assert.Equal(t, []string{"tax_status"}, data.MissingColumns([]string{"age", "tax_status"}))
	assert.Nil(t, data.MissingColumns([]string{"gender"}))
	assert.True(t, data.HasColumn("age"))
}
