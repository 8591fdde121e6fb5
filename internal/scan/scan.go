package scan

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/xtding233/curvekit/internal/curve"
)

var ErrInvalidRange = errors.New("invalid scan range")

// maxPoints bounds a single scan.
const maxPoints = 1_000_000

// Point is one evaluated sample of a curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Range returns from, from+step, ... up to and including to when it lies on
// the grid. Values are computed as from + i*step to avoid drift.
func Range(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be > 0, got %g", ErrInvalidRange, step)
	}
	if to < from {
		return nil, fmt.Errorf("%w: to %g < from %g", ErrInvalidRange, to, from)
	}
	// stay in float64 until the count is known to fit
	span := math.Floor((to-from)/step + 1e-9)
	if math.IsInf(span, 0) || span+1 > maxPoints {
		return nil, fmt.Errorf("%w: [%g, %g] step %g exceeds %d points", ErrInvalidRange, from, to, step, maxPoints)
	}
	xs := make([]float64, int(span)+1)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	return xs, nil
}

// Curve evaluates m at each x in order. The first error aborts the scan.
func Curve(ctx context.Context, m curve.Mapping, xs []float64) ([]Point, error) {
	pts := make([]Point, 0, len(xs))
	for i, x := range xs {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		y, err := m.Map(x)
		if err != nil {
			return nil, fmt.Errorf("scan point %d: %w", i, err)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

// CurveRange combines Range and Curve.
func CurveRange(ctx context.Context, m curve.Mapping, from, to, step float64) ([]Point, error) {
	xs, err := Range(from, to, step)
	if err != nil {
		return nil, err
	}
	return Curve(ctx, m, xs)
}
