package dashboard

import (
	"incomedash/domain/census"
	"incomedash/internal/analysis"
)

// Chart titles of the EDA dashboard
const (
	TitleEDA            = "Exploratory Data Analysis"
	TitleKeyFeatures    = "Box plots of Key Features"
	TitleEconomic       = "Box plots of Economic Factors"
	TitleByGender       = "Income Distribution by Gender"
	TitleByEducation    = "Income Distribution by Education"
	TitleByMarital      = "Income Distribution by Marital Status"
	TitleCorrelation    = "Correlation Heatmap"
	TitleScatterMatrix  = "Pair Plot"
	DefaultScatterLimit = 5000
)

var edaColors = []string{"red", "darkred"}

var (
	keyFeatureFields = []string{
		census.ColAge, census.ColWorkingWeekPerYear, census.ColIndustryCode,
		census.ColOccupationCode, census.ColTotalEmployed, census.ColMigYear,
	}
	economicFields = []string{
		census.ColLosses, census.ColImportanceOfRecord, census.ColGains,
		census.ColWagePerHour, census.ColStocksStatus,
	}
	correlationFields = []string{
		census.ColAge, census.ColEmploymentStat, census.ColWagePerHour, census.ColWorkingWeekPerYear,
		census.ColIndustryCode, census.ColOccupationCode, census.ColTotalEmployed, census.ColVetBenefit,
		census.ColGains, census.ColLosses, census.ColStocksStatus, census.ColMigYear,
		census.ColImportanceOfRecord, census.ColIncomeAboveLimit,
	}
	scatterFields = []string{
		census.ColEmploymentStat, census.ColWagePerHour, census.ColMigYear, census.ColImportanceOfRecord,
	}
)

// Renderer turns a loaded table into dashboards
type Renderer struct {
	// ScatterSampleLimit caps the pair plot points; 0 plots every complete row
	ScatterSampleLimit int
}

// NewRenderer creates a renderer with the given scatter cap
func NewRenderer(scatterSampleLimit int) *Renderer {
	return &Renderer{ScatterSampleLimit: scatterSampleLimit}
}

var defaultRenderer = NewRenderer(DefaultScatterLimit)

// RenderEDA renders the exploratory dashboard with default settings
func RenderEDA(table *census.Table) *Dashboard {
	return defaultRenderer.EDA(table)
}

// EDA renders the exploratory dashboard. The table must be non-empty.
func (r *Renderer) EDA(table *census.Table) *Dashboard {
	view := analysis.All(table)

	d := &Dashboard{
		Mode:     ModeEDA,
		State:    StateRendered,
		Title:    TitleEDA,
		RowCount: view.Len(),
		Preview:  &Preview{Columns: table.Columns, Rows: table.Preview},
	}

	d.Charts = append(d.Charts,
		boxChart(TitleKeyFeatures, analysis.SummarizeAll(view, keyFeatureFields)),
		boxChart(TitleEconomic, analysis.SummarizeAll(view, economicFields)),
		labelStackChart(TitleByGender, view, census.ColGender, edaColors),
		correlationChart(view),
		labelStackChart(TitleByEducation, view, census.ColEducation, edaColors),
		labelStackChart(TitleByMarital, view, census.ColMaritalStatus, edaColors),
		r.scatterChart(view),
	)

	return d
}

func boxChart(title string, boxes []analysis.BoxStats) ChartConfig {
	return ChartConfig{
		ChartType: ChartBox,
		Title:     title,
		Colors:    edaColors,
		Boxes:     boxes,
	}
}

func labelStackChart(title string, view analysis.View, column string, colors []string) ChartConfig {
	return ChartConfig{
		ChartType:  ChartStackedBar,
		Title:      title,
		XAxis:      column,
		YAxis:      "count",
		Series:     stackedSeries(analysis.LabelStacked(view, column)),
		Colors:     colors,
		ShowLegend: true,
	}
}

// correlationChart never fails: with fewer than two complete rows every
// field is listed as excluded and the matrix is empty.
func correlationChart(view analysis.View) ChartConfig {
	corr, _ := analysis.Correlate(view, correlationFields)
	return ChartConfig{
		ChartType:   ChartHeatmap,
		Title:       TitleCorrelation,
		Correlation: &corr,
		CellText:    cellText(corr.Values),
	}
}

func (r *Renderer) scatterChart(view analysis.View) ChartConfig {
	scatter := analysis.Scatter(view, scatterFields, census.ColIncomeAboveLimit, r.ScatterSampleLimit)
	return ChartConfig{
		ChartType:  ChartScatterMatrix,
		Title:      TitleScatterMatrix,
		Colors:     edaColors,
		ShowLegend: true,
		Scatter:    &scatter,
	}
}
