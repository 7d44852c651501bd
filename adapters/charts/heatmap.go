package charts

import (
	"errors"
	"fmt"

	"datareport/domain/report"
	"datareport/domain/table"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 is drawn
// at the bottom of the heatmap.
type corrGrid struct {
	names []string
	m     [][]float64
}

func (g corrGrid) Dims() (c, r int)   { return len(g.names), len(g.names) }
func (g corrGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// correlationMatrix computes the pairwise Pearson correlation matrix over
// the given numeric columns, using pairwise-complete observations.
func correlationMatrix(cols []table.Column) [][]float64 {
	k := len(cols)
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k)
		m[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			xs, ys := pairwiseComplete(cols[i].Numbers, cols[j].Numbers)
			r := 0.0
			if len(xs) > 1 {
				r = stat.Correlation(xs, ys, nil)
			}
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}

// correlationHeatmap renders the pairwise Pearson correlation matrix over
// all numeric columns, annotated with 2-decimal coefficients.
func (g *Generator) correlationHeatmap(numeric []table.Column) (report.ChartArtifact, error) {
	if len(numeric) < 2 {
		return report.ChartArtifact{}, errors.New("need more than one numeric column")
	}

	names := make([]string, len(numeric))
	for i, c := range numeric {
		names[i] = c.Name
	}
	grid := corrGrid{names: names, m: correlationMatrix(numeric)}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"

	hm := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	ticks := make([]plot.Tick, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	// Annotate each cell with its coefficient.
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, len(names)*len(names)),
		Labels: make([]string, 0, len(names)*len(names)),
	}
	for r := range names {
		for c := range names {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", grid.m[r][c]))
		}
	}
	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	p.Add(annotations)

	png, err := writePNG(p, 12*vg.Inch, 8*vg.Inch)
	if err != nil {
		return report.ChartArtifact{}, err
	}
	return report.ChartArtifact{
		Kind:        report.ChartCorrelation,
		Title:       "Correlation Heatmap",
		PNG:         png,
		AspectRatio: 12.0 / 8.0,
	}, nil
}
