package ingest

import (
	"math"
	"strconv"
	"strings"

	"datareport/domain/core"
	"datareport/domain/table"
)

// numericThreshold is the share of non-empty cells that must parse as
// numbers for a column to be classified numeric.
const numericThreshold = 0.5

// BuildTable coerces raw string data into a typed table. Each column's type
// is decided once, here: numeric when more than half of its non-empty cells
// parse as numbers, categorical otherwise. Missing values become NaN in
// numeric columns and "" in categorical columns.
func BuildTable(raw *RawData) (*table.Table, error) {
	if len(raw.Rows) == 0 {
		return nil, core.ErrEmptyTable
	}

	t := &table.Table{Columns: make([]table.Column, 0, len(raw.Headers))}
	for i, name := range raw.Headers {
		cells := make([]string, len(raw.Rows))
		for r, row := range raw.Rows {
			if i < len(row) {
				cells[r] = row[i]
			}
		}
		t.Columns = append(t.Columns, coerceColumn(name, cells))
	}
	return t, nil
}

func coerceColumn(name string, cells []string) table.Column {
	nonEmpty := 0
	numeric := 0
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, ok := parseNumeric(cell); ok {
			numeric++
		}
	}

	if nonEmpty > 0 && float64(numeric)/float64(nonEmpty) > numericThreshold {
		numbers := make([]float64, len(cells))
		for i, cell := range cells {
			if v, ok := parseNumeric(cell); ok {
				numbers[i] = v
			} else {
				numbers[i] = math.NaN()
			}
		}
		return table.Column{Name: name, Type: table.TypeNumeric, Numbers: numbers}
	}

	labels := make([]string, len(cells))
	copy(labels, cells)
	return table.Column{Name: name, Type: table.TypeCategorical, Labels: labels}
}

// parseNumeric parses a cell as a float, tolerating common decorations:
// surrounding whitespace, thousands separators, a currency prefix, and a
// percent suffix.
func parseNumeric(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatCell renders a typed cell back to its display string, used for
// data previews.
func FormatCell(col table.Column, row int) string {
	if col.Type == table.TypeCategorical {
		return col.Labels[row]
	}
	v := col.Numbers[row]
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Preview returns up to n rows of the table as display strings, header
// excluded.
func Preview(t *table.Table, n int) [][]string {
	if n > t.RowCount() {
		n = t.RowCount()
	}
	rows := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(t.Columns))
		for c, col := range t.Columns {
			row[c] = FormatCell(col, r)
		}
		rows[r] = row
	}
	return rows
}
