package dashboard

import (
	"incomedash/domain/census"
	"incomedash/internal/analysis"
)

// Titles and metric labels of the KPI dashboard
const (
	TitleKPI         = "Income Level Indicator Dashboard"
	TitleProportion  = "Percentage Count of Income Limit"
	TitleByCountry   = "Income Disparity by Country of Birth"
	TitleKPIEdu      = "Count of Education Levels by Income Above Limit"
	TitleKPIIndustry = "Count of Industry Codes by Income Above Limit"

	MetricAbove  = "Above Limit Count"
	MetricBelow  = "Below Limit Count"
	MetricMale   = "Male Count"
	MetricFemale = "Female Count"

	NoticeNoMatches = "No data available for the selected filters. Please adjust your filters."
)

var kpiColors = []string{"blue", "lightblue"}

// RenderKPI renders the filtered KPI dashboard with default settings
func RenderKPI(table *census.Table, filters census.FilterParams) *Dashboard {
	return defaultRenderer.KPI(table, filters)
}

// KPI filters the table and renders the indicator dashboard. Filters are
// applied as given; validation is the caller's job. Nothing is cached
// between calls.
func (r *Renderer) KPI(table *census.Table, filters census.FilterParams) *Dashboard {
	view := analysis.Filter(table, filters)

	d := &Dashboard{
		Mode:     ModeKPI,
		Title:    TitleKPI,
		RowCount: view.Len(),
		Filters:  &filters,
		Controls: ControlsFor(table),
	}

	if view.IsEmpty() {
		d.State = StateEmpty
		d.Notice = NoticeNoMatches
		return d
	}
	d.State = StateRendered

	kpi := analysis.CountKPIs(view)
	d.Metrics = []Metric{
		{Label: MetricAbove, Value: kpi.AboveLimit},
		{Label: MetricBelow, Value: kpi.BelowLimit},
		{Label: MetricMale, Value: kpi.Male},
		{Label: MetricFemale, Value: kpi.Female},
	}

	d.Charts = append(d.Charts,
		proportionChart(view),
		ChartConfig{
			ChartType:  ChartChoropleth,
			Title:      TitleByCountry,
			XAxis:      census.ColCountryOfBirth,
			Countries:  analysis.CountryBreakdown(view),
			ShowLegend: true,
		},
		labelStackChart(TitleKPIEdu, view, census.ColEducation, kpiColors),
		labelStackChart(TitleKPIIndustry, view, census.ColIndustryCodeMain, kpiColors),
	)

	return d
}

// ControlsFor describes the filter widgets for a table
func ControlsFor(table *census.Table) *Controls {
	return &Controls{
		AgeMin:      0,
		AgeMax:      table.MaxAge(),
		Genders:     census.GenderOptions,
		TaxStatuses: census.TaxStatusOptions,
	}
}

// proportionChart is a donut of label counts, largest first
func proportionChart(view analysis.View) ChartConfig {
	counts := analysis.ValueCounts(view, census.ColIncomeAboveLimit)
	points := make([]ChartPoint, len(counts))
	for i, c := range counts {
		points[i] = ChartPoint{Label: c.Value, Value: float64(c.Count)}
	}
	return ChartConfig{
		ChartType:  ChartPie,
		Title:      TitleProportion,
		Series:     []ChartSeries{{Name: census.ColIncomeAboveLimit, Data: points}},
		Colors:     kpiColors,
		ShowLegend: true,
		Hole:       0.45,
	}
}
