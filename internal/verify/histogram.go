package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrHistogramRange = errors.New("invalid histogram range")

// MaxBins bounds the number of buckets in one histogram.
const MaxBins = 1_000_000

// Histogram counts samples in unit-wide buckets centred on the integers
// Min..Max. Values rounding outside the range are counted in Outside.
type Histogram struct {
	Min     int       `json:"min"`
	Bins    []float64 `json:"bins"`
	Counts  []float64 `json:"counts"`
	Outside int       `json:"outside"`
}

// Total returns the number of samples inside the range.
func (h Histogram) Total() float64 {
	var sum float64
	for _, c := range h.Counts {
		sum += c
	}
	return sum
}

func newHistogram(min, max int) (Histogram, error) {
	if min > max {
		return Histogram{}, fmt.Errorf("%w: min %d > max %d", ErrHistogramRange, min, max)
	}
	// unsigned difference cannot overflow for min <= max
	if span := uint64(max) - uint64(min); span >= MaxBins {
		return Histogram{}, fmt.Errorf("%w: [%d, %d] exceeds %d bins", ErrHistogramRange, min, max, MaxBins)
	}
	n := max - min + 1
	h := Histogram{Min: min, Bins: make([]float64, n), Counts: make([]float64, n)}
	for i := range h.Bins {
		h.Bins[i] = float64(min) + float64(i)
	}
	return h, nil
}

// Bucket rounds each sample to the nearest integer and counts it.
func Bucket(samples []float64, min, max int) (Histogram, error) {
	h, err := newHistogram(min, max)
	if err != nil {
		return Histogram{}, err
	}
	for _, v := range samples {
		// index in float64 so extreme bounds cannot overflow int
		i := math.Round(v) - float64(min)
		if math.IsNaN(i) || i < 0 || i > float64(len(h.Counts)-1) {
			h.Outside++
			continue
		}
		h.Counts[int(i)]++
	}
	return h, nil
}

// ExpectedHistogram fills each integer bucket with the Normal(mean, stdDev²)
// density at that point scaled by population, rounded to whole members.
// The sum may fall short of population when the tails are cut off.
func ExpectedHistogram(mean, stdDev float64, population int, min, max int) (Histogram, error) {
	h, err := newHistogram(min, max)
	if err != nil {
		return Histogram{}, err
	}
	if !(stdDev > 0) {
		return Histogram{}, errors.New("expected histogram: stdDev must be > 0")
	}
	d := distuv.Normal{Mu: mean, Sigma: stdDev}
	for i, x := range h.Bins {
		h.Counts[i] = math.Round(float64(population) * d.Prob(x))
	}
	return h, nil
}
