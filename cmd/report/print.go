package main

import (
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"incomedash/internal/analysis"
	"incomedash/internal/dashboard"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// topPairs is how many of the strongest correlations are listed
const topPairs = 10

// printResult writes a rendered dashboard. A dashboard that came back with an
// error is printed first so its notice is visible, then the error is returned.
func printResult(w io.Writer, d *dashboard.Dashboard, err error) error {
	if d != nil {
		writeDashboard(w, d)
	}
	return err
}

func writeDashboard(w io.Writer, d *dashboard.Dashboard) {
	fmt.Fprintln(w, titleStyle.Render(d.Title))
	if d.Filters != nil {
		f := d.Filters
		fmt.Fprintf(w, "age %d-%d, %s, %s\n", f.AgeMin, f.AgeMax, f.Gender, f.TaxStatus)
	}
	if d.Notice != "" {
		fmt.Fprintln(w, noticeStyle.Render(d.Notice))
		return
	}
	fmt.Fprintf(w, "%d rows\n", d.RowCount)

	if len(d.Metrics) > 0 {
		section(w, "Metrics")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, m := range d.Metrics {
			fmt.Fprintf(tw, "%s\t%d\n", m.Label, m.Value)
		}
		tw.Flush()
	}

	for _, chart := range d.Charts {
		section(w, chart.Title)
		switch chart.ChartType {
		case dashboard.ChartBox:
			writeBoxes(w, chart.Boxes)
		case dashboard.ChartStackedBar, dashboard.ChartPie:
			writeSeries(w, chart.Series)
		case dashboard.ChartHeatmap:
			writeCorrelation(w, chart.Correlation)
		case dashboard.ChartScatterMatrix:
			s := chart.Scatter
			fmt.Fprintf(w, "%d complete rows, %d plotted, %d groups\n", s.Complete, s.Plotted, len(s.Groups))
		case dashboard.ChartChoropleth:
			writeCountries(w, chart.Countries)
		}
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render(title))
}

func writeBoxes(w io.Writer, boxes []analysis.BoxStats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "field\tn\tmin\tq1\tmedian\tq3\tmax\tmean\toutliers\t")
	for _, b := range boxes {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t\n",
			b.Field, b.Count, b.Min, b.Q1, b.Median, b.Q3, b.Max, b.Mean, b.Outliers)
	}
	tw.Flush()
}

func writeSeries(w io.Writer, series []dashboard.ChartSeries) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range series {
		for _, p := range s.Data {
			fmt.Fprintf(tw, "%s\t%s\t%.0f\n", p.Label, s.Name, p.Value)
		}
	}
	tw.Flush()
}

func writeCountries(w io.Writer, countries []analysis.CountryIncome) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "country\tabove\tbelow\ttotal")
	for _, c := range countries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", c.Country, c.Above, c.Below, c.Total)
	}
	tw.Flush()
}

// writeCorrelation lists the strongest off-diagonal pairs
func writeCorrelation(w io.Writer, corr *analysis.CorrelationMatrix) {
	if corr == nil {
		return
	}
	fmt.Fprintf(w, "%d complete rows, %d fields\n", corr.Rows, len(corr.Fields))
	if len(corr.Excluded) > 0 {
		fmt.Fprintf(w, "excluded: %v\n", corr.Excluded)
	}

	type pair struct {
		a, b string
		r    float64
	}
	var pairs []pair
	for i := range corr.Fields {
		for j := i + 1; j < len(corr.Fields); j++ {
			pairs = append(pairs, pair{corr.Fields[i], corr.Fields[j], corr.Values[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].r) > math.Abs(pairs[j].r)
	})
	if len(pairs) > topPairs {
		pairs = pairs[:topPairs]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%s\t%+.2f\n", p.a, p.b, p.r)
	}
	tw.Flush()
}
