package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE is a Gaussian kernel density estimate over a 1-D sample.
type KDE struct {
	Sample    []float64
	Bandwidth float64
}

// NewKDE returns a KDE with Scott's rule bandwidth. A constant sample gets a
// unit bandwidth so the density stays finite.
func NewKDE(sample []float64) KDE {
	cp := append([]float64(nil), sample...)
	bw := Std(cp) * math.Pow(float64(len(cp)), -1.0/5)
	if bw == 0 || math.IsNaN(bw) {
		bw = 1
	}
	return KDE{Sample: cp, Bandwidth: bw}
}

// Density evaluates the estimate at x.
func (k KDE) Density(x float64) float64 {
	if len(k.Sample) == 0 {
		return 0
	}
	kernel := distuv.Normal{Mu: 0, Sigma: k.Bandwidth}
	sum := 0.0
	for _, v := range k.Sample {
		sum += kernel.Prob(x - v)
	}
	return sum / float64(len(k.Sample))
}

// Curve samples the density on n evenly spaced points spanning the sample
// range extended by cut bandwidths on each side.
func (k KDE) Curve(cut float64, n int) (xs, ys []float64) {
	if len(k.Sample) == 0 || n < 2 {
		return nil, nil
	}
	lo, hi := MinMax(k.Sample)
	lo -= cut * k.Bandwidth
	hi += cut * k.Bandwidth

	xs = make([]float64, n)
	floats.Span(xs, lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = k.Density(x)
	}
	return xs, ys
}
