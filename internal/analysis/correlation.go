package analysis

import (
	"errors"

	"incomedash/domain/census"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewRows means fewer than two complete rows were left for correlation
var ErrTooFewRows = errors.New("correlation needs at least two complete rows")

// CorrelationMatrix is a symmetric Pearson matrix over Fields with 1 on the diagonal
type CorrelationMatrix struct {
	Fields   []string    `json:"fields"`
	Values   [][]float64 `json:"values"`
	Rows     int         `json:"rows"`
	Excluded []string    `json:"excluded,omitempty"`
}

// At returns the correlation between two fields of the matrix
func (c CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, f := range c.Fields {
		if f == a {
			i = k
		}
		if f == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return c.Values[i][j], true
}

// correlationValue reads a field for correlation. The label is coded
// Above limit=0, Below limit=1 here only; the record keeps its text label.
func correlationValue(rec *census.Record, field string) (float64, bool) {
	if field == census.ColIncomeAboveLimit {
		return rec.IncomeAboveLimit.CorrelationCode()
	}
	return rec.Numeric(field)
}

// Correlate computes pairwise Pearson correlation over the rows where every
// field is present. Fields with zero variance in those rows are reported in
// Excluded instead of the matrix.
func Correlate(v View, fields []string) (CorrelationMatrix, error) {
	out := CorrelationMatrix{}

	columns := make([][]float64, len(fields))
	row := make([]float64, len(fields))
	for i := 0; i < v.Len(); i++ {
		rec := v.Record(i)
		complete := true
		for f, field := range fields {
			x, ok := correlationValue(rec, field)
			if !ok {
				complete = false
				break
			}
			row[f] = x
		}
		if !complete {
			continue
		}
		for f := range fields {
			columns[f] = append(columns[f], row[f])
		}
		out.Rows++
	}

	if out.Rows < 2 {
		out.Excluded = append([]string(nil), fields...)
		return out, ErrTooFewRows
	}

	var kept [][]float64
	for f, field := range fields {
		if isConstant(columns[f]) {
			out.Excluded = append(out.Excluded, field)
			continue
		}
		out.Fields = append(out.Fields, field)
		kept = append(kept, columns[f])
	}
	if len(kept) == 0 {
		return out, nil
	}

	x := mat.NewDense(out.Rows, len(kept), nil)
	for c, col := range kept {
		x.SetCol(c, col)
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)

	k := len(kept)
	out.Values = make([][]float64, k)
	for i := 0; i < k; i++ {
		out.Values[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			if i == j {
				out.Values[i][j] = 1
				continue
			}
			out.Values[i][j] = corr.At(i, j)
		}
	}

	return out, nil
}

func isConstant(values []float64) bool {
	for _, x := range values[1:] {
		if x != values[0] {
			return false
		}
	}
	return true
}
