package curve

import (
	"errors"
	"math"
)

// Branch tags which side of a Piecewise boundary an input falls on.
type Branch int

const (
	BranchBelow Branch = iota
	BranchAtOrAbove
)

func (b Branch) String() string {
	if b == BranchAtOrAbove {
		return "at_or_above"
	}
	return "below"
}

// Piecewise selects one of two mappings with the predicate x >= Boundary,
// inclusive on the AtOrAbove side.
type Piecewise struct {
	Boundary  float64
	Below     Mapping
	AtOrAbove Mapping
}

// NewPiecewise checks that both branches are present.
func NewPiecewise(boundary float64, below, atOrAbove Mapping) (*Piecewise, error) {
	if !isFinite(boundary) {
		return nil, &CalibrationError{Mapping: KindPiecewise, Param: "boundary", Value: boundary, Reason: "must be finite"}
	}
	if below == nil || atOrAbove == nil {
		return nil, errors.Join(ErrCalibration, errors.New("piecewise: both branches are required"))
	}
	return &Piecewise{Boundary: boundary, Below: below, AtOrAbove: atOrAbove}, nil
}

// Select evaluates the boundary predicate.
func (p *Piecewise) Select(x float64) Branch {
	if x >= p.Boundary {
		return BranchAtOrAbove
	}
	return BranchBelow
}

func (p *Piecewise) Map(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, &DomainError{Mapping: KindPiecewise, Param: "x", Value: x, Reason: "branch undefined for NaN"}
	}
	if p.Select(x) == BranchAtOrAbove {
		return p.AtOrAbove.Map(x)
	}
	return p.Below.Map(x)
}
