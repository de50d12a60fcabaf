package excel

// ExcelData is the raw content of a CSV or XLSX sheet: a header row and
// string cells, trimmed. Rows may be shorter than Headers.
type ExcelData struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewExcelData builds ExcelData and indexes the header names
func NewExcelData(headers []string, rows [][]string) *ExcelData {
	data := &ExcelData{Headers: headers, Rows: rows, index: make(map[string]int, len(headers))}
	for i, h := range headers {
		if _, dup := data.index[h]; !dup {
			data.index[h] = i
		}
	}
	return data
}

// HasColumn reports whether the header contains name
func (d *ExcelData) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Value returns the cell of row for column, "" when the column or cell is absent
func (d *ExcelData) Value(row int, column string) string {
	col, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.Rows) {
		return ""
	}
	cells := d.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// MissingColumns returns the names in required that the header lacks
func (d *ExcelData) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
