package report

import (
	"fmt"

	"datareport/domain/table"
)

// NumericSummary is the five-number-style descriptive summary of a numeric
// column, computed over non-missing values.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// NormalityTest holds the omnibus normality test outcome. A nil
// *NormalityTest on the result means the test was not computed, which is
// distinct from a zero statistic.
type NormalityTest struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
}

// Moments holds the third and fourth standardized moments. Kurtosis is the
// Fisher definition: excess kurtosis, zero for a normal distribution.
type Moments struct {
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// ValueCount is one entry of a categorical frequency summary.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// StatisticsResult is the metric set computed for one target column.
// It is computed once per run and immutable thereafter. Optional fields are
// nil when not applicable rather than zero-valued.
type StatisticsResult struct {
	Column         string           `json:"column"`
	Type           table.ColumnType `json:"type"`
	Count          int              `json:"count"` // non-missing observations
	MissingCount   int              `json:"missing_count"`
	MissingPercent float64          `json:"missing_percent"`

	Summary     *NumericSummary `json:"summary,omitempty"`     // numeric columns only
	Frequencies []ValueCount    `json:"frequencies,omitempty"` // categorical columns only

	Normality *NormalityTest `json:"normality,omitempty"` // numeric, >=8 non-missing values
	Moments   *Moments       `json:"moments,omitempty"`   // numeric columns only
}

// Entry is one key/value pair of the flattened result, in presentation
// order. Float values keep their native type so formatting stays with the
// presentation layer.
type Entry struct {
	Key   string
	Value any
}

// Entries flattens the result into an ordered key/value listing. Every
// populated metric appears exactly once; absent optional metrics produce no
// entries at all.
func (r *StatisticsResult) Entries() []Entry {
	entries := []Entry{
		{Key: "Target Column", Value: r.Column},
		{Key: "Column Type", Value: string(r.Type)},
		{Key: "Count", Value: r.Count},
	}
	if r.Summary != nil {
		s := r.Summary
		entries = append(entries,
			Entry{Key: "Mean", Value: s.Mean},
			Entry{Key: "Standard Deviation", Value: s.StdDev},
			Entry{Key: "Minimum", Value: s.Min},
			Entry{Key: "25th Percentile", Value: s.Q25},
			Entry{Key: "Median", Value: s.Median},
			Entry{Key: "75th Percentile", Value: s.Q75},
			Entry{Key: "Maximum", Value: s.Max},
		)
	}
	for _, f := range r.Frequencies {
		entries = append(entries, Entry{
			Key:   fmt.Sprintf("Frequency of %q", f.Value),
			Value: f.Count,
		})
	}
	if r.Normality != nil {
		entries = append(entries,
			Entry{Key: "Normality Statistic", Value: r.Normality.Statistic},
			Entry{Key: "Normality P-Value", Value: r.Normality.PValue},
		)
	}
	if r.Moments != nil {
		entries = append(entries,
			Entry{Key: "Skewness", Value: r.Moments.Skewness},
			Entry{Key: "Kurtosis", Value: r.Moments.Kurtosis},
		)
	}
	entries = append(entries,
		Entry{Key: "Missing Values", Value: r.MissingCount},
		Entry{Key: "Missing Percentage", Value: r.MissingPercent},
	)
	return entries
}
