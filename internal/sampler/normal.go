package sampler

import (
	"context"
	"errors"
	"math"
)

var (
	ErrInvalidMean   = errors.New("invalid mean; must be finite")
	ErrInvalidStdDev = errors.New("invalid stdDev; must be finite and >= 0")
)

// SampleSet is an ordered sequence of sampler outputs. It is only appended
// to while being generated.
type SampleSet []float64

// Sample draws one value from Normal(mean, stdDev²) with the Box–Muller
// transform. Both uniforms are redrawn on every call.
func Sample(mean, stdDev float64, rng RandomSource) (float64, error) {
	if err := validateParams(mean, stdDev); err != nil {
		return 0, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	z, _ := boxMuller(rng)
	return mean + stdDev*z, nil
}

// boxMuller returns the cos and sin standard normals for one uniform pair.
// u1, u2 are taken from (0, 1] so ln(u1) is always finite.
func boxMuller(rng RandomSource) (float64, float64) {
	u1 := 1 - rng.Float64()
	u2 := 1 - rng.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return r * math.Cos(theta), r * math.Sin(theta)
}

func validateParams(mean, stdDev float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return ErrInvalidMean
	}
	if math.IsNaN(stdDev) || math.IsInf(stdDev, 0) || stdDev < 0 {
		return ErrInvalidStdDev
	}
	return nil
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSpareCaching keeps the sin companion of each Box–Muller pair and
// returns it on the next call instead of drawing a new pair.
func WithSpareCaching() Option {
	return func(s *Sampler) { s.cacheSpare = true }
}

// Sampler wraps a RandomSource. Without options every call is independent,
// exactly like Sample. A Sampler is not safe for concurrent use.
type Sampler struct {
	RNG RandomSource

	cacheSpare bool
	spare      float64
	hasSpare   bool
}

// NewSampler creates a sampler; nil rng falls back to DefaultRNG.
func NewSampler(rng RandomSource, opts ...Option) *Sampler {
	if rng == nil {
		rng = DefaultRNG()
	}
	s := &Sampler{RNG: rng}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample draws one value from Normal(mean, stdDev²).
func (s *Sampler) Sample(mean, stdDev float64) (float64, error) {
	if err := validateParams(mean, stdDev); err != nil {
		return 0, err
	}
	// the spare is a standard normal, so it is valid for any (mean, stdDev)
	if s.hasSpare {
		s.hasSpare = false
		return mean + stdDev*s.spare, nil
	}
	z0, z1 := boxMuller(s.RNG)
	if s.cacheSpare {
		s.spare, s.hasSpare = z1, true
	}
	return mean + stdDev*z0, nil
}

// Generate draws n samples. ctx is checked between draws; on cancellation the
// samples drawn so far are returned together with ctx.Err().
func (s *Sampler) Generate(ctx context.Context, n int, mean, stdDev float64) (SampleSet, error) {
	if err := validateParams(mean, stdDev); err != nil {
		return nil, err
	}
	if n <= 0 {
		return SampleSet{}, nil
	}
	out := make(SampleSet, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		v, err := s.Sample(mean, stdDev)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Generate draws n independent samples from rng.
func Generate(ctx context.Context, n int, mean, stdDev float64, rng RandomSource) (SampleSet, error) {
	return NewSampler(rng).Generate(ctx, n, mean, stdDev)
}
