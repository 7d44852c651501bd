package charts

import (
	"errors"
	"fmt"

	"datareport/domain/report"
	"datareport/domain/table"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// boxplot renders a single box-and-whisker plot of the numeric target
// column for outlier inspection.
func (g *Generator) boxplot(col table.Column) (report.ChartArtifact, error) {
	values := col.NonMissingNumbers()
	if len(values) == 0 {
		return report.ChartArtifact{}, errors.New("no observed values")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Box Plot of %s", col.Name)
	p.Y.Label.Text = col.Name

	box, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(values))
	if err != nil {
		return report.ChartArtifact{}, err
	}
	p.Add(box)
	p.NominalX(col.Name)

	png, err := writePNG(p, 10*vg.Inch, 6*vg.Inch)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	return report.ChartArtifact{
		Kind:        report.ChartBoxplot,
		Title:       fmt.Sprintf("Box Plot of %s", col.Name),
		PNG:         png,
		AspectRatio: 10.0 / 6.0,
	}, nil
}
