package dashboard

import (
	"testing"

	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeEDA, false},
		{"eda", ModeEDA, false},
		{"EDA Dashboard", ModeEDA, false},
		{"KPI", ModeKPI, false},
		{" kpi dashboard ", ModeKPI, false},
		{"report", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "KPI Dashboard", ModeKPI.Label())
	assert.Equal(t, ModeEDA, Modes[0])
}

func generatedTable(t *testing.T, rows int) *census.Table {
	t.Helper()
	ds, err := testkit.Generate(testkit.GeneratorConfig{Rows: rows, Seed: 5, MissingRate: 0.05})
	require.NoError(t, err)
	return testkit.TableFromDataset(ds)
}

func TestRenderEDA(t *testing.T) {
	table := generatedTable(t, 300)
	table.Preview = [][]string{{"ID_TZ0000", "25"}}

	d := RenderEDA(table)

	assert.Equal(t, ModeEDA, d.Mode)
	assert.Equal(t, StateRendered, d.State)
	assert.Equal(t, 300, d.RowCount)
	require.NotNil(t, d.Preview)
	assert.Equal(t, table.Preview, d.Preview.Rows)
	assert.Len(t, d.Charts, 7)

	key, ok := d.Chart(TitleKeyFeatures)
	require.True(t, ok)
	assert.Equal(t, ChartBox, key.ChartType)
	require.Len(t, key.Boxes, 6)
	assert.Equal(t, census.ColAge, key.Boxes[0].Field)
	assert.Equal(t, 300, key.Boxes[0].Count)

	econ, ok := d.Chart(TitleEconomic)
	require.True(t, ok)
	assert.Len(t, econ.Boxes, 5)

	for _, title := range []string{TitleByGender, TitleByEducation, TitleByMarital} {
		chart, ok := d.Chart(title)
		require.True(t, ok, title)
		assert.Equal(t, ChartStackedBar, chart.ChartType)
		total := 0.0
		for _, s := range chart.Series {
			for _, p := range s.Data {
				total += p.Value
			}
		}
		assert.Equal(t, 300.0, total, title)
	}

	heat, ok := d.Chart(TitleCorrelation)
	require.True(t, ok)
	require.NotNil(t, heat.Correlation)
	n := len(heat.Correlation.Fields)
	assert.Equal(t, 14, n+len(heat.Correlation.Excluded))
	require.Len(t, heat.CellText, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, "1.00", heat.CellText[i][i])
		for j := 0; j < n; j++ {
			assert.Equal(t, heat.Correlation.Values[i][j], heat.Correlation.Values[j][i])
		}
	}

	pair, ok := d.Chart(TitleScatterMatrix)
	require.True(t, ok)
	require.NotNil(t, pair.Scatter)
	assert.Equal(t, scatterFields, pair.Scatter.Dimensions)
	assert.Equal(t, pair.Scatter.Complete, pair.Scatter.Plotted)
}

func TestRenderer_ScatterLimit(t *testing.T) {
	table := generatedTable(t, 200)

	d := NewRenderer(10).EDA(table)

	pair, ok := d.Chart(TitleScatterMatrix)
	require.True(t, ok)
	assert.Equal(t, 10, pair.Scatter.Plotted)
	assert.Greater(t, pair.Scatter.Complete, 10)
}

func TestRenderEDA_DoesNotMutateLabels(t *testing.T) {
	table := testkit.SampleTable()

	RenderEDA(table)

	for _, rec := range table.Records {
		assert.Contains(t, census.Labels, rec.IncomeAboveLimit)
	}
}

func TestRenderKPI_FiveRowExample(t *testing.T) {
	table := testkit.SampleTable()
	filters := census.FilterParams{AgeMin: 18, AgeMax: 35, Gender: "Male", TaxStatus: "Single"}

	d := RenderKPI(table, filters)

	assert.Equal(t, StateRendered, d.State)
	assert.Equal(t, 3, d.RowCount)
	assert.Empty(t, d.Notice)
	assert.Equal(t, &filters, d.Filters)
	require.NotNil(t, d.Controls)
	assert.Equal(t, 45, d.Controls.AgeMax)

	above, _ := d.Metric(MetricAbove)
	below, _ := d.Metric(MetricBelow)
	male, _ := d.Metric(MetricMale)
	female, _ := d.Metric(MetricFemale)
	assert.Equal(t, 1, above)
	assert.Equal(t, 2, below)
	assert.Equal(t, 3, above+below)
	assert.Equal(t, 3, male+female)
	assert.Equal(t, 0, female)

	pie, ok := d.Chart(TitleProportion)
	require.True(t, ok)
	require.Len(t, pie.Series, 1)
	assert.Equal(t, []ChartPoint{
		{Label: "Below limit", Value: 2},
		{Label: "Above limit", Value: 1},
	}, pie.Series[0].Data)

	countries, ok := d.Chart(TitleByCountry)
	require.True(t, ok)
	require.Len(t, countries.Countries, 2)
	assert.Equal(t, "US", countries.Countries[0].Country)
	assert.Equal(t, 2, countries.Countries[0].Total)

	industry, ok := d.Chart(TitleKPIIndustry)
	require.True(t, ok)
	assert.Equal(t, census.ColIndustryCodeMain, industry.XAxis)
	_, ok = d.Chart(TitleKPIEdu)
	assert.True(t, ok)
}

func TestRenderKPI_Empty(t *testing.T) {
	table := testkit.SampleTable()

	d := RenderKPI(table, census.FilterParams{AgeMin: 60, AgeMax: 60, Gender: "Male", TaxStatus: "Single"})

	assert.Equal(t, StateEmpty, d.State)
	assert.Equal(t, NoticeNoMatches, d.Notice)
	assert.Zero(t, d.RowCount)
	assert.Empty(t, d.Metrics)
	assert.Empty(t, d.Charts)
}

func TestRenderKPI_Recomputed(t *testing.T) {
	table := testkit.SampleTable()
	filters := census.FilterParams{AgeMin: 0, AgeMax: 90, Gender: "Male", TaxStatus: "Single"}
	r := NewRenderer(0)

	first := r.KPI(table, filters)
	second := r.KPI(table, filters)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
	assert.Equal(t, 4, first.RowCount)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, [][]string{{"1.00", "-0.12"}, {"0.35", "0.00"}}, cellText([][]float64{{1, -0.1234}, {0.3456, 0.001}}))
}
