package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal/dataset"
	"incomedash/internal/errors"
	"incomedash/internal/testkit"
	"incomedash/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadsPresentFile(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)

	loader := dataset.NewLoader(path, 5)
	assert.Equal(t, ports.LoadStatusUnloaded, loader.Status())

	table, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, ports.LoadStatusLoaded, loader.Status())
	assert.False(t, table.IsEmpty())
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, testkit.Headers, table.Columns)
	assert.Len(t, table.Preview, 5)
	assert.False(t, table.LoadedAt.IsZero())

	first := table.Records[0]
	age, ok := first.Numeric(census.ColAge)
	assert.True(t, ok)
	assert.Equal(t, 25.0, age)
	assert.Equal(t, census.LabelAbove, first.IncomeAboveLimit)
	assert.Equal(t, "US", first.CountryOfBirth)
}

func TestLoader_MemoizesSameInstance(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)

	loader := dataset.NewLoader(path, 5)
	first, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second, "second load must not re-read the file")
}

func TestLoader_MissingFileIsDataUnavailable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uploaded_data_history.csv")
	loader := dataset.NewLoader(path, 5)

	table, err := loader.Load(context.Background())
	assert.Nil(t, table)
	require.Error(t, err)
	assert.True(t, core.IsDataUnavailable(err))
	assert.Equal(t, errors.CodeDataUnavailable, errors.GetCode(err))
	assert.Equal(t, ports.LoadStatusUnavailable, loader.Status())

	// the failure is terminal for the session even if the file shows up later
	_, werr := testkit.WriteSampleCSV(dir)
	require.NoError(t, werr)
	table, err = loader.Load(context.Background())
	assert.Nil(t, table)
	assert.True(t, core.IsDataUnavailable(err))
}

func TestLoader_EmptyFileIsDataUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"header only csv", "uploaded_data_history.csv", "age,gender,tax_status,income_above_limit\n"},
		{"header only csv with bom", "uploaded_data_history.csv", "\ufeffage,gender,tax_status,income_above_limit\r\n"},
		{"zero byte csv", "uploaded_data_history.csv", ""},
		{"zero byte xlsx", "uploaded_data_history.xlsx", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := dataset.NewLoader(path, 5).Load(context.Background())
			assert.True(t, core.IsDataUnavailable(err))
			assert.Equal(t, errors.CodeDataUnavailable, errors.GetCode(err))
			assert.Equal(t, 503, errors.HTTPStatus(err))
		})
	}
}

func TestLoader_MissingRequiredColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded_data_history.csv")
	require.NoError(t, os.WriteFile(path, []byte("age,gender\n30,Male\n"), 0o644))

	loader := dataset.NewLoader(path, 5)
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.False(t, core.IsDataUnavailable(err))
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrMissingColumns)
	assert.Contains(t, err.Error(), "tax_status")
	assert.Equal(t, ports.LoadStatusUnavailable, loader.Status())
}

func TestLoader_XLSXSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploaded_data_history.xlsx")
	require.NoError(t, testkit.WriteXLSX(path, testkit.SampleDataset()))

	table, err := dataset.NewLoader(path, 2).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())
	assert.Len(t, table.Preview, 2)
}

func TestLoader_CancelledContextDoesNotConsumeLoad(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)
	loader := dataset.NewLoader(path, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ports.LoadStatusUnloaded, loader.Status())

	table, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())
}
