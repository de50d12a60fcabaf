package analysis

import (
	"errors"
	"sort"

	"github.com/montanaflynn/stats"
)

// ErrNoValues means a column has no present values in the view
var ErrNoValues = errors.New("no values to summarize")

// BoxStats is the five-number summary behind one box of a box plot
type BoxStats struct {
	Field        string  `json:"field"`
	Count        int     `json:"count"`
	Missing      int     `json:"missing"`
	Min          float64 `json:"min"`
	Q1           float64 `json:"q1"`
	Median       float64 `json:"median"`
	Q3           float64 `json:"q3"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	LowerFence   float64 `json:"lower_fence"`
	UpperFence   float64 `json:"upper_fence"`
	LowerWhisker float64 `json:"lower_whisker"`
	UpperWhisker float64 `json:"upper_whisker"`
	Outliers     int     `json:"outliers"`
}

// IQR returns the interquartile range
func (b BoxStats) IQR() float64 {
	return b.Q3 - b.Q1
}

// Summarize computes box statistics for a numeric column, skipping missing values.
// Quartiles split the sorted values in halves around the median.
func Summarize(v View, column string) (BoxStats, error) {
	data := v.Numbers(column)
	box := BoxStats{Field: column, Count: len(data), Missing: v.Len() - len(data)}
	if len(data) == 0 {
		return box, ErrNoValues
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	box.Min = sorted[0]
	box.Max = sorted[len(sorted)-1]

	mean, err := stats.Mean(sorted)
	if err != nil {
		return box, err
	}
	box.Mean = mean

	if len(sorted) == 1 {
		box.Q1, box.Median, box.Q3 = sorted[0], sorted[0], sorted[0]
	} else {
		q, err := stats.Quartile(sorted)
		if err != nil {
			return box, err
		}
		box.Q1, box.Median, box.Q3 = q.Q1, q.Q2, q.Q3
	}

	iqr := box.IQR()
	box.LowerFence = box.Q1 - 1.5*iqr
	box.UpperFence = box.Q3 + 1.5*iqr

	box.LowerWhisker, box.UpperWhisker = box.Max, box.Min
	for _, x := range sorted {
		if x < box.LowerFence || x > box.UpperFence {
			box.Outliers++
			continue
		}
		if x < box.LowerWhisker {
			box.LowerWhisker = x
		}
		if x > box.UpperWhisker {
			box.UpperWhisker = x
		}
	}

	return box, nil
}

// SummarizeAll summarizes each column; columns without values get a zero box
// with Count 0 rather than an error.
func SummarizeAll(v View, columns []string) []BoxStats {
	boxes := make([]BoxStats, 0, len(columns))
	for _, col := range columns {
		box, err := Summarize(v, col)
		if err != nil && !errors.Is(err, ErrNoValues) {
			continue
		}
		boxes = append(boxes, box)
	}
	return boxes
}
