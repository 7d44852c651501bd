// Package assemble turns report inputs - metadata, the table, the computed
// statistics, and the rendered chart artifacts - into the document's linear
// flow of typed content blocks. The assembler performs no I/O; the block
// sequence is the sole output artifact of the pipeline and is handed to a
// rendering backend unmodified.
package assemble

import (
	"fmt"
	"strconv"
	"time"

	"datareport/domain/core"
	"datareport/domain/report"
	"datareport/domain/table"
)

// Embedded chart size in inch-equivalents; the rendering backend scales
// every image to this physical size regardless of source resolution.
const (
	imageWidthInches  = 6
	imageHeightInches = 4
)

// tocSections is the fixed table of contents. It is a hard-coded listing,
// not a computed index.
var tocSections = []string{
	"1. Executive Summary",
	"2. Introduction",
	"3. Methodology",
	"4. Data Overview",
	"5. Statistical Analysis",
	"6. Findings and Insights",
	"7. Recommendations",
	"8. Limitations and Assumptions",
	"9. Appendix",
}

// Assembler builds the document block sequence. The clock is injectable so
// tests can pin the title-page date.
type Assembler struct {
	now func() time.Time
}

// NewAssembler creates an assembler using the wall clock.
func NewAssembler() *Assembler {
	return &Assembler{now: time.Now}
}

// NewAssemblerAt creates an assembler with a fixed clock.
func NewAssemblerAt(now func() time.Time) *Assembler {
	return &Assembler{now: now}
}

// Assemble produces the full document block sequence in fixed order:
// title page, table of contents, narrative sections, data overview,
// visualizations, statistical analysis, and closing placeholder sections.
func (a *Assembler) Assemble(meta table.ReportMetadata, t *table.Table, target string, stats *report.StatisticsResult, artifacts []report.ChartArtifact) ([]report.Block, error) {
	if t == nil || stats == nil {
		return nil, core.NewAssemblyError("statistics and table inputs are required")
	}
	for _, art := range artifacts {
		if len(art.PNG) == 0 {
			return nil, core.NewAssemblyError(fmt.Sprintf("artifact %q has an empty payload", art.Kind))
		}
	}

	var blocks []report.Block
	blocks = append(blocks, a.titlePage(meta)...)
	blocks = append(blocks, a.tableOfContents()...)
	blocks = append(blocks, a.narrativeSections(meta)...)
	blocks = append(blocks, a.dataOverview(t, target)...)
	blocks = append(blocks, a.visualizations(artifacts)...)
	blocks = append(blocks, a.statisticalAnalysis(stats)...)
	blocks = append(blocks, a.closingSections()...)
	return blocks, nil
}

func (a *Assembler) titlePage(meta table.ReportMetadata) []report.Block {
	return []report.Block{
		report.Heading{Level: 1, Text: meta.Title},
		report.Paragraph{Text: "Prepared By: " + meta.PreparedBy},
		report.Paragraph{Text: "Prepared For: " + meta.PreparedFor},
		report.Paragraph{Text: "Date: " + a.now().Format("2006-01-02")},
		report.Paragraph{Text: "Version: " + meta.Version},
		report.PageBreak{},
	}
}

func (a *Assembler) tableOfContents() []report.Block {
	blocks := []report.Block{report.Heading{Level: 1, Text: "Table of Contents"}}
	for _, section := range tocSections {
		blocks = append(blocks, report.Paragraph{Text: section})
	}
	return append(blocks, report.PageBreak{})
}

func (a *Assembler) narrativeSections(meta table.ReportMetadata) []report.Block {
	return []report.Block{
		report.Heading{Level: 1, Text: "1. Executive Summary"},
		report.Paragraph{Text: meta.Purpose},
		report.Heading{Level: 1, Text: "2. Introduction"},
		report.Heading{Level: 2, Text: "Objective"},
		report.Paragraph{Text: meta.Purpose},
		report.Heading{Level: 2, Text: "Scope"},
		report.Paragraph{Text: "This report covers descriptive statistics, distribution diagnostics, " +
			"and relationship analysis for the selected target feature of the supplied dataset."},
		report.Heading{Level: 1, Text: "3. Methodology"},
		report.Paragraph{Text: "The dataset was profiled column by column. Descriptive statistics were " +
			"computed over observed values, distribution shape was assessed with an omnibus normality " +
			"test alongside skewness and kurtosis, and relationships between numeric features were " +
			"measured with Pearson correlation."},
	}
}

func (a *Assembler) dataOverview(t *table.Table, target string) []report.Block {
	rows := [][]string{
		{"Number of Rows", strconv.Itoa(t.RowCount())},
		{"Number of Columns", strconv.Itoa(len(t.Columns))},
		{"Missing Values", strconv.Itoa(t.MissingTotal())},
		{"Numeric Columns", strconv.Itoa(len(t.NumericColumns()))},
		{"Categorical Columns", strconv.Itoa(len(t.CategoricalColumns()))},
		{"Target Column", target},
	}
	return []report.Block{
		report.Heading{Level: 1, Text: "4. Data Overview"},
		report.TableBlock{Header: []string{"Property", "Value"}, Rows: rows},
	}
}

// visualizations emits exactly one Heading+Image pair per artifact, in the
// given order. Artifacts missing due to upstream rendering failure are
// already absent from the input and produce no placeholder.
func (a *Assembler) visualizations(artifacts []report.ChartArtifact) []report.Block {
	var blocks []report.Block
	for _, art := range artifacts {
		blocks = append(blocks,
			report.Heading{Level: 2, Text: art.Title},
			report.ImageBlock{
				Artifact:     art,
				WidthInches:  imageWidthInches,
				HeightInches: imageHeightInches,
			},
		)
	}
	return blocks
}

func (a *Assembler) statisticalAnalysis(stats *report.StatisticsResult) []report.Block {
	entries := stats.Entries()
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Key, formatValue(entry.Value)})
	}
	return []report.Block{
		report.Heading{Level: 1, Text: "5. Statistical Analysis"},
		report.TableBlock{Header: []string{"Metric", "Value"}, Rows: rows},
	}
}

func (a *Assembler) closingSections() []report.Block {
	return []report.Block{
		report.Heading{Level: 1, Text: "6. Findings and Insights"},
		report.Heading{Level: 1, Text: "7. Recommendations"},
		report.Heading{Level: 1, Text: "8. Limitations and Assumptions"},
		report.Heading{Level: 1, Text: "9. Appendix"},
	}
}

// formatValue renders floats to 2 decimal places and everything else as-is.
func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case int:
		return strconv.Itoa(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
