package curve

import "math"

// ExponentialCalibration describes where the curve starts and ends and how
// convex it is. Example: [0,100] -> [100,10000] with Exponent 4 gives
// f(50) = 100 + 9900 * 0.5^4.
type ExponentialCalibration struct {
	MinInput  float64
	MaxInput  float64
	MinOutput float64
	MaxOutput float64
	Exponent  float64
}

// Exponential maps x to ((x - MinInput)^Exponent) * slope + MinOutput.
type Exponential struct {
	cal   ExponentialCalibration
	slope float64
	// integral exponents are defined for negative bases
	integral bool
}

// NewExponential validates c and precomputes the slope.
func NewExponential(c ExponentialCalibration) (*Exponential, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"minInput", c.MinInput},
		{"maxInput", c.MaxInput},
		{"minOutput", c.MinOutput},
		{"maxOutput", c.MaxOutput},
		{"exponent", c.Exponent},
	} {
		if !isFinite(p.v) {
			return nil, &CalibrationError{Mapping: KindExponential, Param: p.name, Value: p.v, Reason: "must be finite"}
		}
	}
	if c.MaxInput == c.MinInput {
		return nil, &CalibrationError{Mapping: KindExponential, Param: "maxInput", Value: c.MaxInput, Reason: "must differ from minInput"}
	}
	if c.Exponent <= 0 {
		return nil, &CalibrationError{Mapping: KindExponential, Param: "exponent", Value: c.Exponent, Reason: "must be > 0"}
	}

	span := math.Pow(c.MaxInput-c.MinInput, c.Exponent)
	if !isFinite(span) || span == 0 {
		return nil, &CalibrationError{Mapping: KindExponential, Param: "maxInput", Value: c.MaxInput, Reason: "input span raised to exponent is not a finite non-zero value"}
	}
	return &Exponential{
		cal:      c,
		slope:    (c.MaxOutput - c.MinOutput) / span,
		integral: c.Exponent == math.Trunc(c.Exponent),
	}, nil
}

// Calibration returns the parameters the mapping was built from.
func (e *Exponential) Calibration() ExponentialCalibration { return e.cal }

// Slope returns the derived coefficient.
func (e *Exponential) Slope() float64 { return e.slope }

// Map evaluates the curve. Inputs above MaxInput extrapolate.
func (e *Exponential) Map(x float64) (float64, error) {
	if err := checkInput(KindExponential, x); err != nil {
		return 0, err
	}
	d := x - e.cal.MinInput
	if d < 0 && !e.integral {
		return 0, &DomainError{
			Mapping: KindExponential,
			Param:   "x",
			Value:   x,
			Reason:  "below minInput with non-integer exponent",
		}
	}
	return checkOutput(KindExponential, x, math.Pow(d, e.cal.Exponent)*e.slope+e.cal.MinOutput)
}
