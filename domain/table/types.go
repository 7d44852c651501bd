package table

import "math"

// ColumnType classifies a column for statistical analysis. The type is
// inferred once at load time and never re-derived from raw values.
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
)

// Column is one named, uniformly-typed column of a table. Exactly one of
// Numbers or Labels is populated, according to Type. Missing values are
// marked with NaN in numeric columns and "" in categorical columns.
type Column struct {
	Name    string
	Type    ColumnType
	Numbers []float64
	Labels  []string
}

// Len returns the number of rows in the column, missing values included.
func (c Column) Len() int {
	if c.Type == TypeNumeric {
		return len(c.Numbers)
	}
	return len(c.Labels)
}

// MissingCount counts missing cells in the column.
func (c Column) MissingCount() int {
	missing := 0
	if c.Type == TypeNumeric {
		for _, v := range c.Numbers {
			if math.IsNaN(v) {
				missing++
			}
		}
		return missing
	}
	for _, v := range c.Labels {
		if v == "" {
			missing++
		}
	}
	return missing
}

// NonMissingNumbers returns the column's numeric values with missing
// entries dropped. Returns nil for categorical columns.
func (c Column) NonMissingNumbers() []float64 {
	if c.Type != TypeNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Numbers))
	for _, v := range c.Numbers {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// NonMissingLabels returns the column's labels with missing entries dropped.
func (c Column) NonMissingLabels() []string {
	if c.Type != TypeCategorical {
		return nil
	}
	out := make([]string, 0, len(c.Labels))
	for _, v := range c.Labels {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Table is an ordered collection of named columns. Ingestion guarantees
// unique column names and uniform column lengths.
type Table struct {
	Columns []Column
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the numeric columns in table order.
func (t *Table) NumericColumns() []Column {
	var out []Column
	for _, c := range t.Columns {
		if c.Type == TypeNumeric {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns the categorical columns in table order.
func (t *Table) CategoricalColumns() []Column {
	var out []Column
	for _, c := range t.Columns {
		if c.Type == TypeCategorical {
			out = append(out, c)
		}
	}
	return out
}

// MissingTotal counts missing cells across the whole table.
func (t *Table) MissingTotal() int {
	total := 0
	for _, c := range t.Columns {
		total += c.MissingCount()
	}
	return total
}
