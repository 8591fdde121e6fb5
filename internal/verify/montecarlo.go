package verify

import (
	"context"
	"fmt"
	"math"

	"github.com/xtding233/curvekit/internal/sampler"
)

// RunParams describes one population generation run.
type RunParams struct {
	Mean    float64
	StdDev  float64
	Samples int
	// tolerances on the empirical mean / stdDev; zero skips the check
	MeanTolerance   float64
	StdDevTolerance float64
	// histogram window; skipped when HistMin == HistMax == 0
	HistMin int
	HistMax int
}

// Report is the outcome of Run.
type Report struct {
	Summary   DistributionSummary
	Histogram *Histogram
	Pass      bool
	Failures  []string
}

// Run generates a population with rng, summarizes it and checks tolerances.
// The samples themselves are discarded once the report is built.
func Run(ctx context.Context, p RunParams, rng sampler.RandomSource) (Report, error) {
	if p.Samples <= 0 {
		return Report{}, fmt.Errorf("run: samples must be > 0, got %d", p.Samples)
	}
	set, err := sampler.Generate(ctx, p.Samples, p.Mean, p.StdDev, rng)
	if err != nil {
		return Report{}, fmt.Errorf("run: %w", err)
	}

	rep := Report{Summary: Summarize(set, p.Mean, p.StdDev), Pass: true}
	if p.HistMin != 0 || p.HistMax != 0 {
		h, err := Bucket(set, p.HistMin, p.HistMax)
		if err != nil {
			return Report{}, fmt.Errorf("run: %w", err)
		}
		rep.Histogram = &h
	}

	if p.MeanTolerance > 0 {
		if d := math.Abs(rep.Summary.Mean - p.Mean); d > p.MeanTolerance {
			rep.Failures = append(rep.Failures, fmt.Sprintf("mean %.4f off by %.4f (tolerance %.4f)", rep.Summary.Mean, d, p.MeanTolerance))
		}
	}
	if p.StdDevTolerance > 0 {
		if d := math.Abs(rep.Summary.StdDev - p.StdDev); d > p.StdDevTolerance {
			rep.Failures = append(rep.Failures, fmt.Sprintf("stdDev %.4f off by %.4f (tolerance %.4f)", rep.Summary.StdDev, d, p.StdDevTolerance))
		}
	}
	rep.Pass = len(rep.Failures) == 0
	return rep, nil
}
