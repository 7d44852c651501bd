package charts

import (
	"bytes"
	"errors"
	"image/color"

	"datareport/domain/report"
	"datareport/domain/table"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// pairplot renders the all-pairs scatter matrix over the numeric columns,
// with per-column histograms on the diagonal.
func (g *Generator) pairplot(numeric []table.Column) (report.ChartArtifact, error) {
	k := len(numeric)
	if k < 2 {
		return report.ChartArtifact{}, errors.New("need more than one numeric column")
	}

	plots := make([][]*plot.Plot, k)
	for row := 0; row < k; row++ {
		plots[row] = make([]*plot.Plot, k)
		for col := 0; col < k; col++ {
			p := plot.New()
			// Label only the outer edge, like a scatter-matrix grid.
			if row == k-1 {
				p.X.Label.Text = numeric[col].Name
			}
			if col == 0 {
				p.Y.Label.Text = numeric[row].Name
			}

			if row == col {
				values := numeric[col].NonMissingNumbers()
				if len(values) == 0 {
					return report.ChartArtifact{}, errors.New("no observed values")
				}
				hist, err := plotter.NewHist(plotter.Values(values), histogramBins)
				if err != nil {
					return report.ChartArtifact{}, err
				}
				hist.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 200}
				p.Add(hist)
			} else {
				xs, ys := pairwiseComplete(numeric[col].Numbers, numeric[row].Numbers)
				pts := make(plotter.XYs, len(xs))
				for i := range xs {
					pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
				}
				scatter, err := plotter.NewScatter(pts)
				if err != nil {
					return report.ChartArtifact{}, err
				}
				scatter.GlyphStyle.Radius = vg.Points(1.5)
				scatter.GlyphStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 160}
				p.Add(scatter)
			}
			plots[row][col] = p
		}
	}

	img := vgimg.New(15*vg.Inch, 15*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: k,
		Cols: k,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			plots[row][col].Draw(canvases[row][col])
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return report.ChartArtifact{}, err
	}
	return report.ChartArtifact{
		Kind:        report.ChartPairplot,
		Title:       "Pairwise Relationships",
		PNG:         buf.Bytes(),
		AspectRatio: 1,
	}, nil
}
