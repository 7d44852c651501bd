package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"datareport/domain/report"
	"datareport/domain/table"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const histogramBins = 20

// distribution renders the always-present distribution chart: a histogram
// with an overlaid density curve for numeric targets, a descending
// frequency bar chart for categorical targets.
func (g *Generator) distribution(col table.Column) (report.ChartArtifact, error) {
	if col.Type == table.TypeNumeric {
		return g.numericDistribution(col)
	}
	return g.categoricalDistribution(col)
}

func (g *Generator) numericDistribution(col table.Column) (report.ChartArtifact, error) {
	values := col.NonMissingNumbers()
	if len(values) == 0 {
		return report.ChartArtifact{}, errors.New("no observed values")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", col.Name)
	p.X.Label.Text = col.Name
	p.Y.Label.Text = "Density"

	hist, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	hist.Normalize(1)
	hist.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 200}
	p.Add(hist)

	// Overlay the kernel density curve; a flat sample has no density
	// estimate and fails the whole chart, matching the histogram+KDE
	// pairing being a single artifact.
	xs, ys, err := gaussianKDE(values)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(line)

	png, err := writePNG(p, 10*vg.Inch, 6*vg.Inch)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	return report.ChartArtifact{
		Kind:        report.ChartDistribution,
		Title:       fmt.Sprintf("Distribution of %s", col.Name),
		PNG:         png,
		AspectRatio: 10.0 / 6.0,
	}, nil
}

func (g *Generator) categoricalDistribution(col table.Column) (report.ChartArtifact, error) {
	labels := col.NonMissingLabels()
	if len(labels) == 0 {
		return report.ChartArtifact{}, errors.New("no observed values")
	}

	freq := make(map[string]int, len(labels))
	for _, v := range labels {
		freq[v]++
	}
	names := make([]string, 0, len(freq))
	for name := range freq {
		names = append(names, name)
	}
	// Categories ordered by descending count for readability.
	sort.Slice(names, func(i, j int) bool {
		if freq[names[i]] != freq[names[j]] {
			return freq[names[i]] > freq[names[j]]
		}
		return names[i] < names[j]
	})
	counts := make(plotter.Values, len(names))
	for i, name := range names {
		counts[i] = float64(freq[name])
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frequency Distribution of %s", col.Name)
	p.X.Label.Text = col.Name
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(counts, vg.Points(24))
	if err != nil {
		return report.ChartArtifact{}, err
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	// Rotate the category labels so long names stay readable.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	png, err := writePNG(p, 10*vg.Inch, 6*vg.Inch)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	return report.ChartArtifact{
		Kind:        report.ChartDistribution,
		Title:       fmt.Sprintf("Frequency Distribution of %s", col.Name),
		PNG:         png,
		AspectRatio: 10.0 / 6.0,
	}, nil
}
