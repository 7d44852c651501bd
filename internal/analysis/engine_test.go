package analysis

import (
	"math"
	"reflect"
	"testing"

	"datareport/domain/core"
	"datareport/domain/table"
	"datareport/internal/testkit"
)

func TestAnalyze_MissingPercentage(t *testing.T) {
	col := testkit.WithMissing(testkit.NormalColumn("value", 100, 50, 5, 1), 10)
	tbl := &table.Table{Columns: []table.Column{col}}

	result, err := NewEngine().Analyze(tbl, "value")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.MissingCount != 10 {
		t.Errorf("expected 10 missing values, got %d", result.MissingCount)
	}
	want := float64(result.MissingCount) / float64(tbl.RowCount()) * 100
	if result.MissingPercent != want {
		t.Errorf("missing percentage %f does not equal 100*missing/rows = %f", result.MissingPercent, want)
	}
	if result.Count != 90 {
		t.Errorf("expected 90 observed values, got %d", result.Count)
	}
}

func TestAnalyze_NumericColumn(t *testing.T) {
	tbl := testkit.Dataset(100, 3, 1, 42)

	result, err := NewEngine().Analyze(tbl, "num_1")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Type != table.TypeNumeric {
		t.Fatalf("expected numeric result, got %s", result.Type)
	}
	if result.Summary == nil {
		t.Fatal("expected a numeric summary")
	}
	if result.Summary.Min > result.Summary.Q25 || result.Summary.Q25 > result.Summary.Median ||
		result.Summary.Median > result.Summary.Q75 || result.Summary.Q75 > result.Summary.Max {
		t.Errorf("summary quantiles are not ordered: %+v", result.Summary)
	}
	if result.Moments == nil {
		t.Fatal("expected skewness and kurtosis")
	}
	if result.Normality == nil {
		t.Fatal("expected a normality test with 100 observed values")
	}
	if result.Normality.PValue < 0 || result.Normality.PValue > 1 {
		t.Errorf("normality p-value out of [0,1]: %f", result.Normality.PValue)
	}
	if result.Frequencies != nil {
		t.Error("numeric result should not carry a frequency summary")
	}
}

func TestAnalyze_NormalityRequiresEightSamples(t *testing.T) {
	build := func(n int) *table.Table {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i) * 1.7
		}
		return &table.Table{Columns: []table.Column{
			{Name: "v", Type: table.TypeNumeric, Numbers: values},
		}}
	}

	small, err := NewEngine().Analyze(build(7), "v")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if small.Normality != nil {
		t.Error("normality must be absent below 8 observed values, not zero-filled")
	}
	if small.Moments == nil {
		t.Error("skewness and kurtosis are still computed for small numeric samples")
	}

	large, err := NewEngine().Analyze(build(8), "v")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if large.Normality == nil {
		t.Fatal("normality must be present with 8 observed values")
	}
	if large.Normality.PValue < 0 || large.Normality.PValue > 1 {
		t.Errorf("normality p-value out of [0,1]: %f", large.Normality.PValue)
	}
}

func TestAnalyze_NormalityCountsObservedValuesOnly(t *testing.T) {
	// 10 rows but only 7 observed: below the test's sample floor.
	values := []float64{1, 2, 3, 4, 5, 6, 7, math.NaN(), math.NaN(), math.NaN()}
	tbl := &table.Table{Columns: []table.Column{
		{Name: "v", Type: table.TypeNumeric, Numbers: values},
	}}

	result, err := NewEngine().Analyze(tbl, "v")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.Normality != nil {
		t.Error("normality should be absent when fewer than 8 values are observed")
	}
}

func TestAnalyze_ConstantColumnMoments(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = 7.5
	}
	tbl := &table.Table{Columns: []table.Column{
		{Name: "flat", Type: table.TypeNumeric, Numbers: values},
	}}

	result, err := NewEngine().Analyze(tbl, "flat")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Moments == nil {
		t.Fatal("expected moments for a numeric column")
	}
	if result.Moments.Skewness != 0 {
		t.Errorf("constant sample skewness: got %f, want 0", result.Moments.Skewness)
	}
	// The standardized fourth moment of a constant sample is zero, so
	// its excess kurtosis bottoms out at -3.
	if result.Moments.Kurtosis != -3 {
		t.Errorf("constant sample kurtosis: got %f, want -3", result.Moments.Kurtosis)
	}
	if result.Normality != nil {
		t.Error("normality test is undefined for a zero-variance sample")
	}
}

func TestAnalyze_CategoricalColumn(t *testing.T) {
	tbl := &table.Table{Columns: []table.Column{
		{
			Name: "segment",
			Type: table.TypeCategorical,
			Labels: []string{
				"retail", "retail", "retail", "wholesale", "wholesale", "online", "",
			},
		},
	}}

	result, err := NewEngine().Analyze(tbl, "segment")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if result.Summary != nil || result.Normality != nil || result.Moments != nil {
		t.Error("categorical result must omit numeric-only metrics")
	}
	if result.Count != 6 {
		t.Errorf("expected 6 observed labels, got %d", result.Count)
	}
	if result.MissingCount != 1 {
		t.Errorf("expected 1 missing label, got %d", result.MissingCount)
	}
	wantOrder := []string{"retail", "wholesale", "online"}
	if len(result.Frequencies) != len(wantOrder) {
		t.Fatalf("expected %d frequency entries, got %d", len(wantOrder), len(result.Frequencies))
	}
	for i, want := range wantOrder {
		if result.Frequencies[i].Value != want {
			t.Errorf("frequency order mismatch at %d: got %q, want %q", i, result.Frequencies[i].Value, want)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	tbl := testkit.Dataset(60, 2, 1, 7)

	first, err := NewEngine().Analyze(tbl, "num_2")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	second, err := NewEngine().Analyze(tbl, "num_2")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of the same input produced different results")
	}
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	tbl := testkit.Dataset(10, 1, 0, 3)

	if _, err := NewEngine().Analyze(tbl, "ghost"); !core.IsColumnNotFound(err) {
		t.Errorf("expected column-not-found, got %v", err)
	}

	empty := &table.Table{Columns: []table.Column{
		{Name: "v", Type: table.TypeNumeric, Numbers: nil},
	}}
	if _, err := NewEngine().Analyze(empty, "v"); !core.IsEmptyTable(err) {
		t.Errorf("expected empty-table, got %v", err)
	}
}
