// Package testkit generates deterministic synthetic tables for tests.
package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"datareport/domain/table"
)

// NormalColumn generates a numeric column with approximately normal values.
func NormalColumn(name string, n int, mean, stdDev float64, seed int64) table.Column {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + stdDev*rng.NormFloat64()
	}
	return table.Column{Name: name, Type: table.TypeNumeric, Numbers: values}
}

// SkewedColumn generates a numeric column with a heavy right tail.
func SkewedColumn(name string, n int, seed int64) table.Column {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Exp(rng.NormFloat64())
	}
	return table.Column{Name: name, Type: table.TypeNumeric, Numbers: values}
}

// CategoricalColumn generates a categorical column cycling through the
// given categories with a mild frequency slope so counts differ.
func CategoricalColumn(name string, n int, categories []string, seed int64) table.Column {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]string, n)
	for i := range labels {
		// Bias toward earlier categories.
		idx := rng.Intn(len(categories) + 1)
		if idx >= len(categories) {
			idx = 0
		}
		labels[i] = categories[idx]
	}
	return table.Column{Name: name, Type: table.TypeCategorical, Labels: labels}
}

// WithMissing blanks every k-th value of a column, starting at index 0.
func WithMissing(col table.Column, k int) table.Column {
	if col.Type == table.TypeNumeric {
		out := make([]float64, len(col.Numbers))
		copy(out, col.Numbers)
		for i := 0; i < len(out); i += k {
			out[i] = math.NaN()
		}
		col.Numbers = out
		return col
	}
	out := make([]string, len(col.Labels))
	copy(out, col.Labels)
	for i := 0; i < len(out); i += k {
		out[i] = ""
	}
	col.Labels = out
	return col
}

// Dataset generates a table with the requested number of numeric and
// categorical columns, all without missing values.
func Dataset(rows, numericCols, categoricalCols int, seed int64) *table.Table {
	t := &table.Table{}
	for i := 0; i < numericCols; i++ {
		name := fmt.Sprintf("num_%d", i+1)
		t.Columns = append(t.Columns, NormalColumn(name, rows, float64(10*i), 1+float64(i), seed+int64(i)))
	}
	categories := []string{"alpha", "beta", "gamma", "delta"}
	for i := 0; i < categoricalCols; i++ {
		name := fmt.Sprintf("cat_%d", i+1)
		t.Columns = append(t.Columns, CategoricalColumn(name, rows, categories, seed+int64(100+i)))
	}
	return t
}
