package analysis

// ScatterGroup holds the points of one color group, column-wise:
// Columns[d][p] is dimension d of point p.
type ScatterGroup struct {
	Name    string      `json:"name"`
	Columns [][]float64 `json:"columns"`
}

// ScatterMatrix is the data behind a pair plot
type ScatterMatrix struct {
	Dimensions []string       `json:"dimensions"`
	Groups     []ScatterGroup `json:"groups"`
	Complete   int            `json:"complete"` // rows with every dimension and a color value
	Plotted    int            `json:"plotted"`
}

// Scatter collects complete rows for a pair plot, grouped by colorBy in
// first-seen order. When limit > 0 and more rows are complete, an evenly
// spaced subset of limit rows is kept.
func Scatter(v View, dimensions []string, colorBy string, limit int) ScatterMatrix {
	out := ScatterMatrix{Dimensions: dimensions}

	var rows []int
	for i := 0; i < v.Len(); i++ {
		rec := v.Record(i)
		if rec.Category(colorBy) == "" {
			continue
		}
		complete := true
		for _, d := range dimensions {
			if _, ok := rec.Numeric(d); !ok {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, i)
		}
	}
	out.Complete = len(rows)
	rows = strideSample(rows, limit)
	out.Plotted = len(rows)

	groupIndex := make(map[string]int)
	for _, i := range rows {
		rec := v.Record(i)
		name := rec.Category(colorBy)
		g, ok := groupIndex[name]
		if !ok {
			g = len(out.Groups)
			groupIndex[name] = g
			out.Groups = append(out.Groups, ScatterGroup{Name: name, Columns: make([][]float64, len(dimensions))})
		}
		for d, dim := range dimensions {
			x, _ := rec.Numeric(dim)
			out.Groups[g].Columns[d] = append(out.Groups[g].Columns[d], x)
		}
	}

	return out
}

// strideSample keeps limit evenly spaced items; limit <= 0 keeps everything
func strideSample(items []int, limit int) []int {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	step := float64(len(items)) / float64(limit)
	sampled := make([]int, limit)
	for k := range sampled {
		sampled[k] = items[int(float64(k)*step)]
	}
	return sampled
}
