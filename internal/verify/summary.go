package verify

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionSummary describes a sample set relative to its intended
// Normal(mean, stdDev²).
type DistributionSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	// share of samples strictly inside (mean - stdDev, mean + stdDev) of the
	// intended parameters
	FractionWithinOneStdDev float64 `json:"fraction_within_one_std_dev"`
	// the same share for the theoretical distribution (~0.6827)
	ExpectedFraction float64 `json:"expected_fraction"`
	P50              float64 `json:"p50"`
	P90              float64 `json:"p90"`
	P99              float64 `json:"p99"`
}

// Summarize computes empirical mean and population standard deviation of
// samples and how many fall within one intended stdDev of the intended mean.
// An empty set yields a zero summary apart from ExpectedFraction.
func Summarize(samples []float64, mean, stdDev float64) DistributionSummary {
	out := DistributionSummary{ExpectedFraction: expectedWithinOne(mean, stdDev)}
	n := len(samples)
	if n == 0 {
		return out
	}
	out.Count = n
	out.Mean, out.StdDev = stat.PopMeanStdDev(samples, nil)

	lo, hi := mean-stdDev, mean+stdDev
	within := 0
	for _, v := range samples {
		if v > lo && v < hi {
			within++
		}
	}
	out.FractionWithinOneStdDev = float64(within) / float64(n)

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	out.P50 = percentile(sorted, 0.50)
	out.P90 = percentile(sorted, 0.90)
	out.P99 = percentile(sorted, 0.99)
	return out
}

func expectedWithinOne(mean, stdDev float64) float64 {
	if !(stdDev > 0) || math.IsInf(stdDev, 0) || math.IsNaN(mean) {
		return 0
	}
	d := distuv.Normal{Mu: mean, Sigma: stdDev}
	return d.CDF(mean+stdDev) - d.CDF(mean-stdDev)
}

// percentile interpolates linearly between closest ranks of sorted data.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return sorted[i]
	}
	return sorted[i]*(1-f) + sorted[i+1]*f
}
