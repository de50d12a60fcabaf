package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"incomedash/domain/core"
	"incomedash/internal/dashboard"
	"incomedash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runReport(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_FILE", "")
	t.Setenv("SCATTER_SAMPLE_LIMIT", "")
	t.Setenv("PORT", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReport_EDA(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)

	out, err := runReport(t, "eda", "--data", path)

	require.NoError(t, err)
	assert.Contains(t, out, dashboard.TitleEDA)
	assert.Contains(t, out, "5 rows")
	assert.Contains(t, out, dashboard.TitleKeyFeatures)
	assert.Contains(t, out, dashboard.TitleCorrelation)
	assert.Contains(t, out, "complete rows")
}

func TestReport_KPI(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)

	out, err := runReport(t, "kpi", "--data", path, "--age-min", "18", "--age-max", "35", "--gender", "Male", "--tax-status", "Single")

	require.NoError(t, err)
	assert.Contains(t, out, "age 18-35, Male, Single")
	assert.Contains(t, out, "3 rows")
	assert.Regexp(t, `Above Limit Count\s+1`, out)
	assert.Regexp(t, `Below Limit Count\s+2`, out)
}

func TestReport_KPIEmptyAndInvalid(t *testing.T) {
	path, err := testkit.WriteSampleCSV(t.TempDir())
	require.NoError(t, err)

	out, err := runReport(t, "kpi", "--data", path, "--gender", "Male", "--tax-status", "Nonfiler")
	require.NoError(t, err)
	assert.Contains(t, out, dashboard.NoticeNoMatches)

	_, err = runReport(t, "kpi", "--data", path, "--gender", "male")
	assert.True(t, core.IsInvalidFilter(err))
}

func TestReport_MissingFile(t *testing.T) {
	out, err := runReport(t, "eda", "--data", filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.True(t, core.IsDataUnavailable(err))
	assert.Contains(t, out, dashboard.NoticeUnavailable)
}
