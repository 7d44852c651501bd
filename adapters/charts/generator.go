// Package charts renders the report's diagnostic plots to in-memory PNG
// images. Chart selection is deterministic, driven only by column types and
// table shape; a failure in one chart never aborts the whole set.
package charts

import (
	"fmt"

	"datareport/domain/core"
	"datareport/domain/report"
	"datareport/domain/table"
	"datareport/internal"
)

// maxPairplotColumns bounds the scatter-matrix size; an all-pairs grid is
// quadratic in plot count.
const maxPairplotColumns = 5

// Generator renders chart artifacts for a table and target column.
type Generator struct {
	log *internal.Logger
}

// NewGenerator creates a chart generator.
func NewGenerator() *Generator {
	return &Generator{log: internal.NewComponentLogger("charts")}
}

// Render produces the chart set for the target column, in catalog order:
// distribution, correlation, pairplot, boxplot. Charts whose selection
// predicate does not hold are not requested; charts that fail to render are
// logged and omitted, so the returned set is a subset of the requested set.
func (g *Generator) Render(t *table.Table, target string) []report.ChartArtifact {
	col, ok := t.Column(target)
	if !ok {
		return nil
	}
	numeric := t.NumericColumns()

	var artifacts []report.ChartArtifact
	add := func(kind report.ChartKind, build func() (report.ChartArtifact, error)) {
		art, err := g.renderOne(kind, build)
		if err != nil {
			g.log.Warn("skipping %s chart: %v", kind, err)
			return
		}
		artifacts = append(artifacts, art)
	}

	add(report.ChartDistribution, func() (report.ChartArtifact, error) {
		return g.distribution(col)
	})
	if len(numeric) > 1 {
		add(report.ChartCorrelation, func() (report.ChartArtifact, error) {
			return g.correlationHeatmap(numeric)
		})
	}
	if len(numeric) > 1 && len(numeric) <= maxPairplotColumns {
		add(report.ChartPairplot, func() (report.ChartArtifact, error) {
			return g.pairplot(numeric)
		})
	}
	if col.Type == table.TypeNumeric {
		add(report.ChartBoxplot, func() (report.ChartArtifact, error) {
			return g.boxplot(col)
		})
	}

	return artifacts
}

// renderOne runs a single chart builder, converting panics from degenerate
// inputs into per-chart render errors.
func (g *Generator) renderOne(kind report.ChartKind, build func() (report.ChartArtifact, error)) (art report.ChartArtifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.NewChartRenderError(string(kind), fmt.Errorf("panic: %v", r))
		}
	}()
	art, err = build()
	if err != nil {
		err = core.NewChartRenderError(string(kind), err)
	}
	return art, err
}
