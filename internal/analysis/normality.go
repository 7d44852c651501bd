package analysis

import (
	"math"

	"datareport/domain/report"

	"gonum.org/v1/gonum/stat/distuv"
)

// skewness returns the third standardized moment g1, computed from
// population moments over the non-missing values.
func skewness(values []float64, mean, stdDev float64) float64 {
	if len(values) < 3 || stdDev == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sum += d * d * d
	}
	return sum / float64(len(values))
}

// excessKurtosis returns the fourth standardized moment minus 3 (Fisher
// definition, zero for a normal distribution). A constant sample has a
// zero standardized fourth moment, so its excess kurtosis is -3.
func excessKurtosis(values []float64, mean, stdDev float64) float64 {
	if len(values) < 4 {
		return 0
	}
	if stdDev == 0 {
		return -3
	}
	sum := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sum += d * d * d * d
	}
	return sum/float64(len(values)) - 3
}

// dagostinoK2 runs D'Agostino's K^2 omnibus normality test. The skewness
// and kurtosis Z-transforms can degenerate for pathological inputs (zero
// variance, tiny effective n); those cases report ok=false so the caller
// can omit the test instead of recording a bogus value.
func dagostinoK2(values []float64, mean, stdDev float64) (*report.NormalityTest, bool) {
	n := float64(len(values))
	if stdDev == 0 || math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
		return nil, false
	}

	g1 := skewness(values, mean, stdDev)
	g2 := excessKurtosis(values, mean, stdDev)

	// Skewness transform to Z1 (D'Agostino)
	y := g1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := (3 * (n*n + 27*n - 70) * (n + 1) * (n + 3)) / ((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	if w2 <= 0 {
		return nil, false
	}
	delta := 1 / math.Sqrt(math.Log(math.Sqrt(w2)))
	alpha := math.Sqrt(2 / (w2 - 1))
	ay := y / alpha
	z1 := delta * math.Log(ay+math.Sqrt(ay*ay+1))

	// Kurtosis transform to Z2 (Anscombe-Glynn), on total kurtosis
	b2 := g2 + 3
	e := 3 * (n - 1) / (n + 1)
	v := 24 * n * (n - 2) * (n - 3) / ((n + 1) * (n + 1) * (n + 3) * (n + 5))
	if v <= 0 {
		return nil, false
	}
	x := (b2 - e) / math.Sqrt(v)

	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) * math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))
	if a <= 4 {
		return nil, false
	}

	term := 1 - 2/(9*a)
	den := 1 + x*math.Sqrt(2/(a-4))
	if den <= 0 {
		return nil, false
	}
	z2 := (term - math.Pow((1-2/a)/den, 1.0/3.0)) / math.Sqrt(2/(9*a))

	k2 := z1*z1 + z2*z2
	chi2 := distuv.ChiSquared{K: 2}
	pValue := 1 - chi2.CDF(k2)
	if pValue < 0 {
		pValue = 0
	}

	return &report.NormalityTest{Statistic: k2, PValue: pValue}, true
}
