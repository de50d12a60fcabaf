package analysis

import (
	"incomedash/domain/census"
)

// View is a read-only, ordered subset of a table held as row indices into it.
// Building a view never copies or mutates records.
type View struct {
	table   *census.Table
	indices []int
}

// All returns a view over every record of the table
func All(table *census.Table) View {
	indices := make([]int, table.Len())
	for i := range indices {
		indices[i] = i
	}
	return View{table: table, indices: indices}
}

// Filter returns the rows matching every predicate of params, in table order.
// The result is recomputed on each call; nothing is cached.
func Filter(table *census.Table, params census.FilterParams) View {
	indices := make([]int, 0)
	for i := range table.Records {
		if params.Matches(&table.Records[i]) {
			indices = append(indices, i)
		}
	}
	return View{table: table, indices: indices}
}

// Len returns the number of rows in the view
func (v View) Len() int {
	return len(v.indices)
}

// IsEmpty reports whether no rows matched
func (v View) IsEmpty() bool {
	return len(v.indices) == 0
}

// Record returns the i-th record of the view
func (v View) Record(i int) *census.Record {
	return &v.table.Records[v.indices[i]]
}

// Indices returns a copy of the table row indices in view order
func (v View) Indices() []int {
	return append([]int(nil), v.indices...)
}

// Numbers collects the present values of a numeric column
func (v View) Numbers(column string) []float64 {
	values := make([]float64, 0, len(v.indices))
	for i := range v.indices {
		if x, ok := v.Record(i).Numeric(column); ok {
			values = append(values, x)
		}
	}
	return values
}
