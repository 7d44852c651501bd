package ingest

import (
	"math"
	"testing"

	"datareport/domain/core"
	"datareport/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imputable() *table.Table {
	return &table.Table{Columns: []table.Column{
		{Name: "n", Type: table.TypeNumeric, Numbers: []float64{2, 4, math.NaN(), 6, math.NaN()}},
		{Name: "c", Type: table.TypeCategorical, Labels: []string{"red", "blue", "", "red", ""}},
	}}
}

func TestParseImputeStrategy(t *testing.T) {
	s, err := ParseImputeStrategy("median")
	require.NoError(t, err)
	assert.Equal(t, ImputeMedian, s)

	s, err = ParseImputeStrategy("")
	require.NoError(t, err)
	assert.Equal(t, ImputeNone, s)

	_, err = ParseImputeStrategy("magic")
	assert.ErrorIs(t, err, core.ErrMalformedInput)
}

func TestImpute_Mean(t *testing.T) {
	tbl := imputable()
	require.NoError(t, Impute(tbl, ImputeMean, ""))

	n, _ := tbl.Column("n")
	assert.Equal(t, 0, n.MissingCount())
	assert.Equal(t, 4.0, n.Numbers[2])
	assert.Equal(t, 4.0, n.Numbers[4])

	// Mean is undefined for labels: the categorical column keeps its gaps.
	c, _ := tbl.Column("c")
	assert.Equal(t, 2, c.MissingCount())
}

func TestImpute_Median(t *testing.T) {
	tbl := imputable()
	require.NoError(t, Impute(tbl, ImputeMedian, ""))

	n, _ := tbl.Column("n")
	assert.Equal(t, 4.0, n.Numbers[2])
}

func TestImpute_Mode(t *testing.T) {
	tbl := imputable()
	require.NoError(t, Impute(tbl, ImputeMode, ""))

	c, _ := tbl.Column("c")
	assert.Equal(t, 0, c.MissingCount())
	assert.Equal(t, "red", c.Labels[2])
	assert.Equal(t, "red", c.Labels[4])

	// All numeric values are unique: ties break toward the smallest.
	n, _ := tbl.Column("n")
	assert.Equal(t, 2.0, n.Numbers[2])
}

func TestImpute_Custom(t *testing.T) {
	tbl := imputable()
	require.NoError(t, Impute(tbl, ImputeCustom, "0"))

	n, _ := tbl.Column("n")
	assert.Equal(t, 0.0, n.Numbers[2])
	c, _ := tbl.Column("c")
	assert.Equal(t, "0", c.Labels[2])
}

func TestImpute_CustomRejectsNonNumericFill(t *testing.T) {
	tbl := imputable()
	err := Impute(tbl, ImputeCustom, "unknown")
	assert.ErrorIs(t, err, core.ErrMalformedInput)
}

func TestImpute_None(t *testing.T) {
	tbl := imputable()
	require.NoError(t, Impute(tbl, ImputeNone, ""))
	n, _ := tbl.Column("n")
	assert.Equal(t, 2, n.MissingCount())
}
