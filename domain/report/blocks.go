// Package report defines the data objects exchanged between the report
// pipeline's stages: statistical results, rendered chart artifacts, and the
// typed content blocks that make up the assembled document.
package report

// Block is one unit of the final document's linear structure. The concrete
// variants are Heading, Paragraph, TableBlock, ImageBlock, and PageBreak;
// the set is closed so downstream renderers can type-switch exhaustively.
type Block interface {
	isBlock()
}

// Heading is a numbered-chapter or section heading. Level 1 is a chapter
// title, level 2 a section, level 3 a subsection.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of body text.
type Paragraph struct {
	Text string
}

// TableBlock is a table with a header row styled distinctly from data rows.
type TableBlock struct {
	Header []string
	Rows   [][]string
}

// ImageBlock embeds a rendered chart at a fixed physical size. Width and
// height are in inch-equivalents; the renderer scales the source image to
// fit regardless of its resolution.
type ImageBlock struct {
	Artifact     ChartArtifact
	WidthInches  float64
	HeightInches float64
}

// PageBreak forces the following block onto a new page.
type PageBreak struct{}

func (Heading) isBlock()    {}
func (Paragraph) isBlock()  {}
func (TableBlock) isBlock() {}
func (ImageBlock) isBlock() {}
func (PageBreak) isBlock()  {}
