package curve

import "math"

// saturated is the largest float64 below 1.
var saturated = math.Nextafter(1, 0)

// DampingCalibration sets the input width of the saturating response.
type DampingCalibration struct {
	Scale float64
}

// Damping maps x to (x/Scale) / (1 + |x/Scale|), an odd function bounded
// in (-1, 1).
type Damping struct {
	cal DampingCalibration
}

func NewDamping(c DampingCalibration) (*Damping, error) {
	if !isFinite(c.Scale) || c.Scale == 0 {
		return nil, &CalibrationError{Mapping: KindDamping, Param: "scale", Value: c.Scale, Reason: "must be finite and non-zero"}
	}
	return &Damping{cal: c}, nil
}

func (d *Damping) Calibration() DampingCalibration { return d.cal }

func (d *Damping) Map(x float64) (float64, error) {
	if err := checkInput(KindDamping, x); err != nil {
		return 0, err
	}
	s := x / d.cal.Scale
	if math.IsInf(s, 0) {
		return math.Copysign(saturated, s), nil
	}
	y := s / (1 + math.Abs(s))
	if math.Abs(y) >= 1 {
		// 1+|s| rounds to |s| once |s| passes 2^53
		return math.Copysign(saturated, s), nil
	}
	return y, nil
}
