package curve

import "math"

// SigmoidCalibration is percentile driven: at InputAtPercentile the output
// has covered Percentile of the way from -MaxOutput to +MaxOutput.
type SigmoidCalibration struct {
	InputAtPercentile float64
	Percentile        float64
	MaxOutput         float64
}

// Sigmoid maps x to 2*MaxOutput / (1 + exp(-x/slope)) - MaxOutput, bounded
// in (-MaxOutput, MaxOutput).
type Sigmoid struct {
	cal   SigmoidCalibration
	slope float64
}

// NewSigmoid solves the logistic steepness for c.
//
// The steepness must come out positive so the curve increases: a positive
// InputAtPercentile needs Percentile > 0.5, a negative one Percentile < 0.5.
func NewSigmoid(c SigmoidCalibration) (*Sigmoid, error) {
	if !isFinite(c.Percentile) || c.Percentile <= 0 || c.Percentile >= 1 {
		return nil, &CalibrationError{Mapping: KindSigmoid, Param: "percentile", Value: c.Percentile, Reason: "must be in (0,1)"}
	}
	if !isFinite(c.InputAtPercentile) || c.InputAtPercentile == 0 {
		return nil, &CalibrationError{Mapping: KindSigmoid, Param: "inputAtPercentile", Value: c.InputAtPercentile, Reason: "must be finite and non-zero"}
	}
	if !isFinite(c.MaxOutput) || c.MaxOutput <= 0 {
		return nil, &CalibrationError{Mapping: KindSigmoid, Param: "maxOutput", Value: c.MaxOutput, Reason: "must be finite and > 0"}
	}

	slope := -c.InputAtPercentile / math.Log((1-c.Percentile)/c.Percentile)
	if !isFinite(slope) || slope <= 0 {
		return nil, &CalibrationError{
			Mapping: KindSigmoid,
			Param:   "percentile",
			Value:   c.Percentile,
			Reason:  "must lie on the same side of 0.5 as inputAtPercentile lies of 0",
		}
	}
	return &Sigmoid{cal: c, slope: slope}, nil
}

// Calibration returns the parameters the mapping was built from.
func (s *Sigmoid) Calibration() SigmoidCalibration { return s.cal }

// Slope returns the solved steepness.
func (s *Sigmoid) Slope() float64 { return s.slope }

func (s *Sigmoid) Map(x float64) (float64, error) {
	if err := checkInput(KindSigmoid, x); err != nil {
		return 0, err
	}
	return 2*s.cal.MaxOutput/(1+math.Exp(-x/s.slope)) - s.cal.MaxOutput, nil
}
