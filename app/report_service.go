// Package app wires the report pipeline's stages into one synchronous run.
package app

import (
	"context"
	"fmt"

	"datareport/domain/report"
	"datareport/domain/table"
	"datareport/internal/analysis"
	"datareport/ports"
)

// ReportService is the thin coordination layer of the report pipeline: it
// validates the target column, invokes chart rendering, statistical
// analysis, and document assembly in order, and returns the assembled block
// sequence together with the intermediate results for on-screen display.
type ReportService struct {
	charts    ports.ChartRenderer
	analyzer  ports.Analyzer
	assembler ports.DocumentAssembler
}

// ReportResult is the complete output of one run. Blocks is handed to the
// rendering backend; Statistics and Artifacts are also exposed directly for
// interactive presentation, independent of document assembly.
type ReportResult struct {
	Blocks     []report.Block
	Statistics *report.StatisticsResult
	Artifacts  []report.ChartArtifact
}

// NewReportService creates a report service from its stage implementations.
func NewReportService(charts ports.ChartRenderer, analyzer ports.Analyzer, assembler ports.DocumentAssembler) *ReportService {
	return &ReportService{charts: charts, analyzer: analyzer, assembler: assembler}
}

// Run executes one report generation pass. Validation failures surface
// before any stage runs; any stage error aborts the run with the
// originating failure attached. Each run owns its inputs and outputs -
// there is no shared state between runs.
func (s *ReportService) Run(ctx context.Context, t *table.Table, target string, meta table.ReportMetadata) (*ReportResult, error) {
	// Fail fast before any chart is rendered or statistic computed.
	if err := analysis.ValidateTarget(t, target); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifacts := s.charts.Render(t, target)

	stats, err := s.analyzer.Analyze(t, target)
	if err != nil {
		return nil, fmt.Errorf("statistical analysis failed: %w", err)
	}

	blocks, err := s.assembler.Assemble(meta, t, target, stats, artifacts)
	if err != nil {
		return nil, fmt.Errorf("document assembly failed: %w", err)
	}

	return &ReportResult{
		Blocks:     blocks,
		Statistics: stats,
		Artifacts:  artifacts,
	}, nil
}
