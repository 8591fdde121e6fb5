package library

import "github.com/xtding233/curvekit/internal/curve"

// TuitionBonusCalibration describes the two branches of the tuition bonus
// curve split at Boundary.
type TuitionBonusCalibration struct {
	Boundary float64
	Sigmoid  curve.SigmoidCalibration // x >= Boundary
	Linear   curve.LinearCalibration  // x < Boundary
}

// SaturatingCalibration is a linear rescale whose input saturates at Ceiling.
type SaturatingCalibration struct {
	Rescale curve.ExponentialCalibration
	Ceiling float64
}

// Calibrations holds every design constant of the library. Retuning game
// balance means editing these values, never the primitives.
type Calibrations struct {
	PopulationSize curve.ExponentialCalibration
	TuitionBonus   TuitionBonusCalibration
	TargetTuition  curve.ExponentialCalibration
	AcademicToSAT  SaturatingCalibration
	SATToAcademic  curve.ExponentialCalibration
	PrestigeToMean curve.ExponentialCalibration
	TuitionDamping curve.DampingCalibration
}

// Rescale is the exponent-1 exponential calibration: a straight line through
// (minInput, minOutput) and (maxInput, maxOutput).
func Rescale(minInput, maxInput, minOutput, maxOutput float64) curve.ExponentialCalibration {
	return curve.ExponentialCalibration{
		MinInput:  minInput,
		MaxInput:  maxInput,
		MinOutput: minOutput,
		MaxOutput: maxOutput,
		Exponent:  1,
	}
}

// DefaultCalibrations returns the shipped game tuning.
func DefaultCalibrations() Calibrations {
	return Calibrations{
		PopulationSize: curve.ExponentialCalibration{
			MinInput:  0,
			MaxInput:  100,
			MinOutput: 100,
			MaxOutput: 10000,
			Exponent:  4,
		},
		TuitionBonus: TuitionBonusCalibration{
			Boundary: 0,
			// 90% of the +10 asymptote is reached $5k under target
			Sigmoid: curve.SigmoidCalibration{InputAtPercentile: 5000, Percentile: 0.9, MaxOutput: 10},
			// one point of penalty per $400 over target, never saturating
			Linear: curve.LinearCalibration{Slope: 400},
		},
		TargetTuition: curve.ExponentialCalibration{
			MinInput:  0,
			MaxInput:  200,
			MinOutput: 2000,
			MaxOutput: 50000,
			Exponent:  2.1,
		},
		AcademicToSAT: SaturatingCalibration{
			Rescale: Rescale(60, 100, 800, 1600),
			Ceiling: 100,
		},
		SATToAcademic:  Rescale(800, 1600, 60, 100),
		PrestigeToMean: Rescale(0, 100, 60, 110),
		TuitionDamping: curve.DampingCalibration{Scale: 2000},
	}
}
