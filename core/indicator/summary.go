package indicator

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reduces values to a Summary. values must be non-empty.
func Summarize(name string, print bool, values []float64) Summary {
	s := Summary{
		Name:  name,
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Last:  values[len(values)-1],
		Print: print,
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

// Quantiles computes the p50/p90/p99 empirical quantiles of values.
func Quantiles(values []float64) map[string]float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return map[string]float64{
		"p50": stat.Quantile(0.5, stat.Empirical, sorted, nil),
		"p90": stat.Quantile(0.9, stat.Empirical, sorted, nil),
		"p99": stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}
