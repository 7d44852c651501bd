// Package ports declares the interfaces between the report orchestrator and
// the pipeline stages it coordinates.
package ports

import (
	"datareport/domain/report"
	"datareport/domain/table"
)

// Analyzer computes the statistics result set for a target column.
type Analyzer interface {
	Analyze(t *table.Table, target string) (*report.StatisticsResult, error)
}

// ChartRenderer produces the chart artifact set for a target column. A
// failed chart is omitted from the returned sequence rather than failing
// the call.
type ChartRenderer interface {
	Render(t *table.Table, target string) []report.ChartArtifact
}

// DocumentAssembler produces the ordered content block sequence from the
// pipeline's outputs.
type DocumentAssembler interface {
	Assemble(meta table.ReportMetadata, t *table.Table, target string, stats *report.StatisticsResult, artifacts []report.ChartArtifact) ([]report.Block, error)
}

// DocumentRenderer turns a block sequence into a binary document. It is the
// external rendering collaborator on the far side of the output boundary.
type DocumentRenderer interface {
	RenderDocument(title string, blocks []report.Block) ([]byte, error)
}
