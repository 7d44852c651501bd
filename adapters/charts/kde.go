package charts

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
)

// kdeResolution is the number of evaluation points for the density curve.
const kdeResolution = 200

var errDegenerateDensity = errors.New("density estimate undefined for zero-variance sample")

// gaussianKDE evaluates a gaussian kernel density estimate over an evenly
// spaced grid spanning the sample, using Silverman's rule-of-thumb
// bandwidth. A zero-variance sample has no defined bandwidth and fails.
func gaussianKDE(values []float64) (xs, ys []float64, err error) {
	n := float64(len(values))
	if n < 2 {
		return nil, nil, errDegenerateDensity
	}
	sigma, _ := stats.StandardDeviation(values)
	if sigma <= 0 || math.IsNaN(sigma) {
		return nil, nil, errDegenerateDensity
	}
	bw := 1.06 * sigma * math.Pow(n, -0.2)

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	lo := min - 3*bw
	hi := max + 3*bw
	step := (hi - lo) / float64(kdeResolution-1)

	xs = make([]float64, kdeResolution)
	ys = make([]float64, kdeResolution)
	norm := 1 / (n * bw * math.Sqrt(2*math.Pi))
	for i := 0; i < kdeResolution; i++ {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range values {
			z := (x - v) / bw
			density += math.Exp(-0.5 * z * z)
		}
		xs[i] = x
		ys[i] = density * norm
	}
	return xs, ys, nil
}
