package curve

// LinearCalibration holds the divisor of a linear mapping.
type LinearCalibration struct {
	Slope float64
}

// Linear maps x to x / Slope. It never saturates.
type Linear struct {
	cal LinearCalibration
}

func NewLinear(c LinearCalibration) (*Linear, error) {
	if !isFinite(c.Slope) || c.Slope == 0 {
		return nil, &CalibrationError{Mapping: KindLinear, Param: "slope", Value: c.Slope, Reason: "must be finite and non-zero"}
	}
	return &Linear{cal: c}, nil
}

func (l *Linear) Calibration() LinearCalibration { return l.cal }

func (l *Linear) Map(x float64) (float64, error) {
	if err := checkInput(KindLinear, x); err != nil {
		return 0, err
	}
	return checkOutput(KindLinear, x, x/l.cal.Slope)
}
