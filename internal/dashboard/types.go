package dashboard

import (
	"fmt"
	"math"
	"strings"

	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal/analysis"
)

// Mode selects which dashboard is rendered
type Mode string

const (
	ModeEDA Mode = "eda"
	ModeKPI Mode = "kpi"
)

// Modes lists the selectable dashboards; the first is the default
var Modes = []Mode{ModeEDA, ModeKPI}

// Label is the name shown in the mode selector
func (m Mode) Label() string {
	switch m {
	case ModeKPI:
		return "KPI Dashboard"
	default:
		return "EDA Dashboard"
	}
}

// ParseMode accepts eda, kpi or the selector labels, ignoring case.
// An empty value selects the default mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "eda", "eda dashboard":
		return ModeEDA, nil
	case "kpi", "kpi dashboard":
		return ModeKPI, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnknownMode, value)
	}
}

// State is the position of a dashboard in the render lifecycle
type State string

const (
	StateUnloaded    State = "unloaded"
	StateLoaded      State = "loaded"
	StateRendered    State = "rendered"
	StateEmpty       State = "empty"
	StateUnavailable State = "unavailable"
)

// Chart types emitted by the renderers
const (
	ChartBox           = "box"
	ChartStackedBar    = "stacked_bar"
	ChartHeatmap       = "heatmap"
	ChartScatterMatrix = "scatter_matrix"
	ChartPie           = "pie"
	ChartChoropleth    = "choropleth"
)

// ChartConfig defines how to render a chart. Series carries categorical
// data; the typed payloads carry what does not fit a label/value series.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	Hole       float64       `json:"hole,omitempty"`

	Boxes       []analysis.BoxStats         `json:"boxes,omitempty"`
	Correlation *analysis.CorrelationMatrix `json:"correlation,omitempty"`
	CellText    [][]string                  `json:"cellText,omitempty"`
	Scatter     *analysis.ScatterMatrix     `json:"scatter,omitempty"`
	Countries   []analysis.CountryIncome    `json:"countries,omitempty"`
}

// ChartSeries represents a data series in a chart
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint represents a single data point
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Metric is a single headline number
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Preview is the head of the raw table
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Controls describes the KPI filter widgets
type Controls struct {
	AgeMin      int      `json:"age_min"`
	AgeMax      int      `json:"age_max"`
	Genders     []string `json:"genders"`
	TaxStatuses []string `json:"tax_statuses"`
}

// Dashboard is one rendered view
type Dashboard struct {
	Mode     Mode                 `json:"mode"`
	State    State                `json:"state"`
	Title    string               `json:"title"`
	Notice   string               `json:"notice,omitempty"`
	Metrics  []Metric             `json:"metrics,omitempty"`
	Charts   []ChartConfig        `json:"charts,omitempty"`
	Preview  *Preview             `json:"preview,omitempty"`
	Filters  *census.FilterParams `json:"filters,omitempty"`
	Controls *Controls            `json:"controls,omitempty"`
	RowCount int                  `json:"row_count"`
}

// Chart returns the first chart with the given title
func (d *Dashboard) Chart(title string) (ChartConfig, bool) {
	for _, c := range d.Charts {
		if c.Title == title {
			return c, true
		}
	}
	return ChartConfig{}, false
}

// Metric returns the value of the named metric
func (d *Dashboard) Metric(label string) (int, bool) {
	for _, m := range d.Metrics {
		if m.Label == label {
			return m.Value, true
		}
	}
	return 0, false
}

func stackedSeries(s analysis.Stacked) []ChartSeries {
	series := make([]ChartSeries, 0, len(s.Series))
	for _, layer := range s.Series {
		points := make([]ChartPoint, len(s.Categories))
		for c, cat := range s.Categories {
			points[c] = ChartPoint{Label: cat, Value: float64(layer.Counts[c])}
		}
		series = append(series, ChartSeries{Name: layer.Name, Data: points})
	}
	return series
}

// roundTo2 rounds for display only
func roundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}

func cellText(values [][]float64) [][]string {
	text := make([][]string, len(values))
	for i, row := range values {
		text[i] = make([]string, len(row))
		for j, x := range row {
			text[i][j] = fmt.Sprintf("%.2f", roundTo2(x))
		}
	}
	return text
}
