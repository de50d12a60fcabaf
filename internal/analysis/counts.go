package analysis

import (
	"sort"

	"incomedash/domain/census"
)

// CategoryCount is the number of rows holding one value of a column
type CategoryCount struct {
	Value string  `json:"value"`
	Count int     `json:"count"`
	Share float64 `json:"share"` // percent of the view, 0-100
}

// CountWhere counts the rows whose column equals value
func CountWhere(v View, column, value string) int {
	n := 0
	for i := 0; i < v.Len(); i++ {
		if v.Record(i).Category(column) == value {
			n++
		}
	}
	return n
}

// CountBy counts rows per value of column, in first-seen order.
// Empty values are kept as their own category.
func CountBy(v View, column string) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for i := 0; i < v.Len(); i++ {
		key := v.Record(i).Category(column)
		pos, seen := index[key]
		if !seen {
			pos = len(counts)
			index[key] = pos
			counts = append(counts, CategoryCount{Value: key})
		}
		counts[pos].Count++
	}
	if total := v.Len(); total > 0 {
		for i := range counts {
			counts[i].Share = 100 * float64(counts[i].Count) / float64(total)
		}
	}
	return counts
}

// ValueCounts is CountBy sorted by count, largest first; ties keep first-seen order
func ValueCounts(v View, column string) []CategoryCount {
	counts := CountBy(v, column)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Stacked holds counts of rows per (category, stack) pair
type Stacked struct {
	Column     string        `json:"column"`
	StackBy    string        `json:"stack_by"`
	Categories []string      `json:"categories"`
	Series     []StackSeries `json:"series"`
}

// StackSeries is one stack layer: Counts[i] belongs to Categories[i]
type StackSeries struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// StackedCounts groups rows by column, then by stackBy. Categories and stack
// layers appear in first-seen order.
func StackedCounts(v View, column, stackBy string) Stacked {
	out := Stacked{Column: column, StackBy: stackBy}
	catIndex := make(map[string]int)
	seriesIndex := make(map[string]int)

	for i := 0; i < v.Len(); i++ {
		rec := v.Record(i)
		cat := rec.Category(column)
		layer := rec.Category(stackBy)

		c, ok := catIndex[cat]
		if !ok {
			c = len(out.Categories)
			catIndex[cat] = c
			out.Categories = append(out.Categories, cat)
			for s := range out.Series {
				out.Series[s].Counts = append(out.Series[s].Counts, 0)
			}
		}
		s, ok := seriesIndex[layer]
		if !ok {
			s = len(out.Series)
			seriesIndex[layer] = s
			out.Series = append(out.Series, StackSeries{Name: layer, Counts: make([]int, len(out.Categories))})
		}
		out.Series[s].Counts[c]++
	}
	return out
}

// Total returns the number of rows counted in a category across all layers
func (s Stacked) Total(category string) int {
	for c, name := range s.Categories {
		if name == category {
			total := 0
			for _, layer := range s.Series {
				total += layer.Counts[c]
			}
			return total
		}
	}
	return 0
}

// LabelStacked stacks the label over column
func LabelStacked(v View, column string) Stacked {
	return StackedCounts(v, column, census.ColIncomeAboveLimit)
}
