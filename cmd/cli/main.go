// Command cli generates a data analysis report for a tabular file without
// the web UI: ingest, optional imputation, pipeline run, HTML output, and a
// statistics summary on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"datareport/adapters/charts"
	"datareport/adapters/ingest"
	"datareport/adapters/render"
	"datareport/app"
	"datareport/domain/table"
	"datareport/internal/analysis"
	"datareport/internal/assemble"
)

func main() {
	var (
		input    = flag.String("input", "", "path to the input file (.csv, .xlsx, .xls, .json)")
		target   = flag.String("target", "", "target column to analyze")
		output   = flag.String("out", "report.html", "output document path")
		title    = flag.String("title", "", "report title")
		by       = flag.String("by", "", "prepared-by line")
		audience = flag.String("for", "", "prepared-for line")
		version  = flag.String("version", "", "report version")
		purpose  = flag.String("purpose", "", "purpose of the analysis")
		impute   = flag.String("impute", "none", "missing-value strategy: none, mean, median, mode, custom")
		custom   = flag.String("custom-value", "", "fill value for the custom impute strategy")
	)
	flag.Parse()

	if *input == "" || *target == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer src.Close()

	t, err := ingest.NewReader(*input).ReadTable(src)
	if err != nil {
		log.Fatalf("Failed to ingest %s: %v", *input, err)
	}

	strategy, err := ingest.ParseImputeStrategy(*impute)
	if err != nil {
		log.Fatalf("Invalid imputation strategy: %v", err)
	}
	if err := ingest.Impute(t, strategy, *custom); err != nil {
		log.Fatalf("Imputation failed: %v", err)
	}

	meta := table.ReportMetadata{
		Title:       *title,
		PreparedBy:  *by,
		PreparedFor: *audience,
		Version:     *version,
		Purpose:     *purpose,
	}.Merge(table.DefaultMetadata())

	service := app.NewReportService(charts.NewGenerator(), analysis.NewEngine(), assemble.NewAssembler())
	result, err := service.Run(context.Background(), t, *target, meta)
	if err != nil {
		log.Fatalf("Report generation failed: %v", err)
	}

	doc, err := render.NewHTMLRenderer().RenderDocument(meta.Title, result.Blocks)
	if err != nil {
		log.Fatalf("Document rendering failed: %v", err)
	}
	if err := os.WriteFile(*output, doc, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}

	printSummary(result)
	fmt.Printf("\nReport written to %s (%d content blocks, %d charts)\n",
		*output, len(result.Blocks), len(result.Artifacts))
}

// printSummary mirrors the on-screen statistics panel.
func printSummary(result *app.ReportResult) {
	stats := result.Statistics
	fmt.Printf("Target column: %s (%s)\n", stats.Column, stats.Type)
	for _, entry := range stats.Entries() {
		switch v := entry.Value.(type) {
		case float64:
			fmt.Printf("  %-24s %.2f\n", entry.Key, v)
		default:
			fmt.Printf("  %-24s %v\n", entry.Key, v)
		}
	}
	fmt.Println("Charts:")
	for _, art := range result.Artifacts {
		fmt.Printf("  %-14s %s\n", art.Kind, art.Title)
	}
	if len(result.Artifacts) == 0 {
		fmt.Println("  (none rendered)")
	}
}
