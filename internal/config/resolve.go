// resolve.go
package config

import (
	"fmt"

	"github.com/xtding233/curvekit/internal/curve"
	"github.com/xtding233/curvekit/internal/library"
)

// Calibrations applies cfg on top of library.DefaultCalibrations after
// validating it.
func Calibrations(cfg RawConfig) (library.Calibrations, error) {
	if err := ValidateRaw(cfg); err != nil {
		return library.Calibrations{}, err
	}
	out := library.DefaultCalibrations()
	c := cfg.Curves

	applyExp(&out.PopulationSize, c.PopulationSize)
	applyExp(&out.TargetTuition, c.TargetTuition)
	applyExp(&out.SATToAcademic, c.SATToAcademic)
	applyExp(&out.PrestigeToMean, c.PrestigeToMean)

	if tb := c.TuitionBonus; tb != nil {
		set(&out.TuitionBonus.Boundary, tb.Boundary)
		if s := tb.Sigmoid; s != nil {
			set(&out.TuitionBonus.Sigmoid.InputAtPercentile, s.InputAtPercentile)
			set(&out.TuitionBonus.Sigmoid.Percentile, s.Percentile)
			set(&out.TuitionBonus.Sigmoid.MaxOutput, s.MaxOutput)
		}
		if l := tb.Linear; l != nil {
			set(&out.TuitionBonus.Linear.Slope, l.Slope)
		}
	}
	if a := c.AcademicToSAT; a != nil {
		applyExp(&out.AcademicToSAT.Rescale, &a.ExponentialCfg)
		set(&out.AcademicToSAT.Ceiling, a.Ceiling)
	}
	if d := c.TuitionDamping; d != nil {
		set(&out.TuitionDamping.Scale, d.Scale)
	}
	return out, nil
}

// Build resolves cfg and constructs the curve library from it.
func Build(cfg RawConfig) (*library.Library, error) {
	cal, err := Calibrations(cfg)
	if err != nil {
		return nil, err
	}
	lib, err := library.New(cal)
	if err != nil {
		return nil, fmt.Errorf("build library (version %q): %w", cfg.Version, err)
	}
	return lib, nil
}

// Load reads profile through l and builds the library.
func (l *Loader) Load(profile string) (*library.Library, RawConfig, error) {
	raw, err := l.LoadMerged(profile)
	if err != nil {
		return nil, RawConfig{}, err
	}
	lib, err := Build(raw)
	if err != nil {
		return nil, RawConfig{}, err
	}
	return lib, raw, nil
}

func applyExp(dst *curve.ExponentialCalibration, e *ExponentialCfg) {
	if e == nil {
		return
	}
	set(&dst.MinInput, e.MinInput)
	set(&dst.MaxInput, e.MaxInput)
	set(&dst.MinOutput, e.MinOutput)
	set(&dst.MaxOutput, e.MaxOutput)
	set(&dst.Exponent, e.Exponent)
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
