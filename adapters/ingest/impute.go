package ingest

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"datareport/domain/core"
	"datareport/domain/table"

	"github.com/montanaflynn/stats"
)

// ImputeStrategy selects how missing values are filled before analysis.
type ImputeStrategy string

const (
	ImputeNone   ImputeStrategy = "none"
	ImputeMean   ImputeStrategy = "mean"
	ImputeMedian ImputeStrategy = "median"
	ImputeMode   ImputeStrategy = "mode"
	ImputeCustom ImputeStrategy = "custom"
)

// ParseImputeStrategy validates a strategy name.
func ParseImputeStrategy(s string) (ImputeStrategy, error) {
	switch ImputeStrategy(s) {
	case ImputeNone, ImputeMean, ImputeMedian, ImputeMode, ImputeCustom:
		return ImputeStrategy(s), nil
	case "":
		return ImputeNone, nil
	default:
		return "", fmt.Errorf("%w: unknown imputation strategy %q", core.ErrMalformedInput, s)
	}
}

// Impute fills missing values in place. Mean and median apply to numeric
// columns only; mode applies to both kinds; custom fills with a constant,
// parsed as a number for numeric columns. Columns a strategy does not apply
// to are left untouched.
func Impute(t *table.Table, strategy ImputeStrategy, custom string) error {
	if strategy == ImputeNone {
		return nil
	}
	for i := range t.Columns {
		col := &t.Columns[i]
		switch col.Type {
		case table.TypeNumeric:
			if err := imputeNumeric(col, strategy, custom); err != nil {
				return err
			}
		case table.TypeCategorical:
			imputeCategorical(col, strategy, custom)
		}
	}
	return nil
}

func imputeNumeric(col *table.Column, strategy ImputeStrategy, custom string) error {
	observed := col.NonMissingNumbers()
	if len(observed) == 0 && strategy != ImputeCustom {
		return nil
	}

	var fill float64
	switch strategy {
	case ImputeMean:
		fill, _ = stats.Mean(observed)
	case ImputeMedian:
		fill, _ = stats.Median(observed)
	case ImputeMode:
		fill = numericMode(observed)
	case ImputeCustom:
		v, err := strconv.ParseFloat(custom, 64)
		if err != nil {
			return fmt.Errorf("%w: custom value %q is not numeric", core.ErrMalformedInput, custom)
		}
		fill = v
	}

	for j, v := range col.Numbers {
		if math.IsNaN(v) {
			col.Numbers[j] = fill
		}
	}
	return nil
}

func imputeCategorical(col *table.Column, strategy ImputeStrategy, custom string) {
	var fill string
	switch strategy {
	case ImputeMode:
		fill = labelMode(col.NonMissingLabels())
	case ImputeCustom:
		fill = custom
	default:
		// Mean and median are undefined for categorical data.
		return
	}
	if fill == "" {
		return
	}
	for j, v := range col.Labels {
		if v == "" {
			col.Labels[j] = fill
		}
	}
}

func numericMode(values []float64) float64 {
	freq := make(map[float64]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	best := values[0]
	bestCount := 0
	for v, count := range freq {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}
	return best
}

func labelMode(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	freq := make(map[string]int, len(labels))
	for _, v := range labels {
		freq[v]++
	}
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys {
		if freq[k] > freq[best] {
			best = k
		}
	}
	return best
}
