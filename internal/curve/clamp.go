package curve

import (
	"errors"
	"math"
)

// Clamp saturates the input into [Lo, Hi] before handing it to Inner, so the
// output stops at Inner(Lo) and Inner(Hi). Use ±Inf for an open side.
type Clamp struct {
	Inner Mapping
	Lo    float64
	Hi    float64
}

func NewClamp(inner Mapping, lo, hi float64) (*Clamp, error) {
	if inner == nil {
		return nil, errors.Join(ErrCalibration, errors.New("clamp: inner mapping is required"))
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, &CalibrationError{Mapping: KindClamp, Param: "hi", Value: hi, Reason: "must be >= lo"}
	}
	return &Clamp{Inner: inner, Lo: lo, Hi: hi}, nil
}

// Ceiling clamps only from above.
func Ceiling(inner Mapping, hi float64) (*Clamp, error) {
	return NewClamp(inner, math.Inf(-1), hi)
}

func (c *Clamp) Map(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, &DomainError{Mapping: KindClamp, Param: "x", Value: x, Reason: "input must not be NaN"}
	}
	if x < c.Lo {
		x = c.Lo
	}
	if x > c.Hi {
		x = c.Hi
	}
	return c.Inner.Map(x)
}
