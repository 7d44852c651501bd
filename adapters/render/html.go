// Package render turns an assembled content block sequence into a
// standalone HTML document with print-ready pagination. It sits on the far
// side of the pipeline's output boundary and leaves the block flow itself
// untouched.
package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"datareport/domain/report"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLRenderer converts blocks to a single HTML document. Chart images are
// embedded as base64 data URIs so the document is self-contained.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML document renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderDocument serializes the block sequence to markdown and converts it
// to a full HTML page with standard print margins.
func (r *HTMLRenderer) RenderDocument(title string, blocks []report.Block) ([]byte, error) {
	md := r.toMarkdown(blocks)

	p := parser.NewWithExtensions(parser.CommonExtensions)
	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags}
	body := markdown.ToHTML([]byte(md), p, mdhtml.NewRenderer(opts))

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	doc.WriteString("<style>\n" + documentCSS + "\n</style>\n</head>\n<body>\n")
	doc.Write(body)
	doc.WriteString("\n</body>\n</html>\n")
	return []byte(doc.String()), nil
}

// toMarkdown writes each block in sequence. Tables become pipe tables,
// images become data URIs with physical-size attributes, and page breaks
// become raw HTML markers the stylesheet paginates on.
func (r *HTMLRenderer) toMarkdown(blocks []report.Block) string {
	var sb strings.Builder
	for _, block := range blocks {
		switch b := block.(type) {
		case report.Heading:
			sb.WriteString(strings.Repeat("#", b.Level) + " " + b.Text + "\n\n")
		case report.Paragraph:
			sb.WriteString(b.Text + "\n\n")
		case report.TableBlock:
			writePipeTable(&sb, b)
		case report.ImageBlock:
			writeImage(&sb, b)
		case report.PageBreak:
			sb.WriteString("<div class=\"page-break\"></div>\n\n")
		}
	}
	return sb.String()
}

func writePipeTable(sb *strings.Builder, b report.TableBlock) {
	sb.WriteString("| " + strings.Join(escapeCells(b.Header), " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(b.Header)) + "\n")
	for _, row := range b.Rows {
		sb.WriteString("| " + strings.Join(escapeCells(row), " | ") + " |\n")
	}
	sb.WriteString("\n")
}

func writeImage(sb *strings.Builder, b report.ImageBlock) {
	encoded := base64.StdEncoding.EncodeToString(b.Artifact.PNG)
	fmt.Fprintf(sb,
		"<img src=\"data:image/png;base64,%s\" alt=\"%s\" style=\"width:%gin;height:%gin;\">\n\n",
		encoded, html.EscapeString(b.Artifact.Title), b.WidthInches, b.HeightInches)
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", "\\|")
	}
	return out
}

// documentCSS styles the document for print: letter-ish margins, a header
// row distinct from data rows, and hard page breaks at break markers.
const documentCSS = `body { font-family: Georgia, serif; font-size: 12pt; line-height: 1.4; margin: 1in; }
h1 { font-size: 20pt; margin-top: 30pt; }
h2 { font-size: 16pt; margin-top: 20pt; }
table { border-collapse: collapse; width: 100%; margin: 12pt 0; }
th { background: #2c3e50; color: #fff; text-align: left; padding: 6pt 8pt; }
td { border: 1px solid #bbb; padding: 5pt 8pt; }
tr:nth-child(even) td { background: #f4f6f7; }
img { display: block; margin: 12pt auto; }
.page-break { page-break-after: always; }`
