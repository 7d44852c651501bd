// Package analysis computes the descriptive and diagnostic statistics for a
// report's target column. The engine is a pure function of its inputs: no
// I/O, no hidden state, identical results for identical arguments.
package analysis

import (
	"fmt"
	"sort"

	"datareport/domain/core"
	"datareport/domain/report"
	"datareport/domain/table"

	"github.com/montanaflynn/stats"
)

// minNormalitySamples is the smallest sample size for which the omnibus
// normality test is defined. Below it the test is omitted from the result,
// not zero-filled.
const minNormalitySamples = 8

// Engine computes statistics for a single target column.
type Engine struct{}

// NewEngine creates a statistics engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ValidateTarget checks that the table is analyzable and the target column
// exists. The orchestrator calls this before any stage runs.
func ValidateTarget(t *table.Table, target string) error {
	if t.RowCount() == 0 {
		return core.ErrEmptyTable
	}
	if !t.HasColumn(target) {
		return core.NewColumnNotFoundError(target)
	}
	return nil
}

// Analyze computes the full metric set for the target column.
func (e *Engine) Analyze(t *table.Table, target string) (*report.StatisticsResult, error) {
	if err := ValidateTarget(t, target); err != nil {
		return nil, err
	}
	col, _ := t.Column(target)

	missing := col.MissingCount()
	result := &report.StatisticsResult{
		Column:         col.Name,
		Type:           col.Type,
		MissingCount:   missing,
		MissingPercent: float64(missing) / float64(t.RowCount()) * 100,
	}

	switch col.Type {
	case table.TypeNumeric:
		e.analyzeNumeric(col, result)
	case table.TypeCategorical:
		e.analyzeCategorical(col, result)
	default:
		return nil, fmt.Errorf("%w: unknown column type %q", core.ErrStatComputation, col.Type)
	}

	return result, nil
}

func (e *Engine) analyzeNumeric(col table.Column, result *report.StatisticsResult) {
	values := col.NonMissingNumbers()
	result.Count = len(values)
	if len(values) == 0 {
		return
	}

	mean, _ := stats.Mean(values)
	stdDev, _ := stats.StandardDeviation(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	q25, _ := stats.Percentile(values, 25)
	q75, _ := stats.Percentile(values, 75)

	result.Summary = &report.NumericSummary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q25:    q25,
		Median: median,
		Q75:    q75,
		Max:    max,
	}

	result.Moments = &report.Moments{
		Skewness: skewness(values, mean, stdDev),
		Kurtosis: excessKurtosis(values, mean, stdDev),
	}

	// The omnibus test is undefined for tiny samples; its absence is
	// recorded as a nil field, never a placeholder value.
	if len(values) >= minNormalitySamples {
		if nt, ok := dagostinoK2(values, mean, stdDev); ok {
			result.Normality = nt
		}
	}
}

func (e *Engine) analyzeCategorical(col table.Column, result *report.StatisticsResult) {
	labels := col.NonMissingLabels()
	result.Count = len(labels)

	freq := make(map[string]int, len(labels))
	for _, v := range labels {
		freq[v]++
	}

	counts := make([]report.ValueCount, 0, len(freq))
	for value, count := range freq {
		counts = append(counts, report.ValueCount{Value: value, Count: count})
	}
	// Descending by count, ties broken by value for stable output.
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	result.Frequencies = counts
}
