package stats

// Summary holds the descriptive statistics of one sample.
type Summary struct {
	N      int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes a Summary of x.
func Summarize(x []float64) Summary {
	min, max := MinMax(x)
	return Summary{
		N:      len(x),
		Mean:   Mean(x),
		Std:    Std(x),
		Min:    min,
		Q1:     Percentile(x, 25),
		Median: Median(x),
		Q3:     Percentile(x, 75),
		Max:    max,
	}
}

// Range is Max - Min.
func (s Summary) Range() float64 {
	return s.Max - s.Min
}
