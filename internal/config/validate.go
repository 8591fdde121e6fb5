package config

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks semantic constraints of the fields a RawConfig sets.
// All violations are reported together.
func ValidateRaw(cfg RawConfig) error {
	var errs []string
	c := cfg.Curves

	errs = append(errs, validateExp("curves.population_size", c.PopulationSize)...)
	errs = append(errs, validateExp("curves.target_tuition", c.TargetTuition)...)
	errs = append(errs, validateExp("curves.sat_to_academic", c.SATToAcademic)...)
	errs = append(errs, validateExp("curves.prestige_to_mean", c.PrestigeToMean)...)

	// tuition bonus
	if c.TuitionBonus != nil {
		if s := c.TuitionBonus.Sigmoid; s != nil {
			if s.Percentile != nil && !(*s.Percentile > 0 && *s.Percentile < 1) {
				errs = append(errs, fmt.Sprintf("curves.tuition_bonus.sigmoid.percentile must be in (0,1), got %g", *s.Percentile))
			}
			if s.InputAtPercentile != nil && *s.InputAtPercentile == 0 {
				errs = append(errs, "curves.tuition_bonus.sigmoid.input_at_percentile must be non-zero")
			}
			if s.MaxOutput != nil && !(*s.MaxOutput > 0) {
				errs = append(errs, fmt.Sprintf("curves.tuition_bonus.sigmoid.max_output must be > 0, got %g", *s.MaxOutput))
			}
		}
		if l := c.TuitionBonus.Linear; l != nil && l.Slope != nil && *l.Slope == 0 {
			errs = append(errs, "curves.tuition_bonus.linear.slope must be non-zero")
		}
	}

	// academic → SAT
	if c.AcademicToSAT != nil {
		errs = append(errs, validateExp("curves.academic_to_sat", &c.AcademicToSAT.ExponentialCfg)...)
		if ceil, lo := c.AcademicToSAT.Ceiling, c.AcademicToSAT.MinInput; ceil != nil && lo != nil && *ceil < *lo {
			errs = append(errs, fmt.Sprintf("curves.academic_to_sat.ceiling must be >= min_input, got %g < %g", *ceil, *lo))
		}
	}

	if c.TuitionDamping != nil && c.TuitionDamping.Scale != nil && *c.TuitionDamping.Scale == 0 {
		errs = append(errs, "curves.tuition_damping.scale must be non-zero")
	}

	errs = append(errs, nonFinite(cfg)...)

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateExp(prefix string, e *ExponentialCfg) []string {
	if e == nil {
		return nil
	}
	var errs []string
	if e.Exponent != nil && !(*e.Exponent > 0) {
		errs = append(errs, fmt.Sprintf("%s.exponent must be > 0, got %g", prefix, *e.Exponent))
	}
	if e.MinInput != nil && e.MaxInput != nil && *e.MinInput == *e.MaxInput {
		errs = append(errs, fmt.Sprintf("%s.max_input must differ from min_input (%g)", prefix, *e.MinInput))
	}
	return errs
}

// nonFinite reports YAML values like .nan or .inf.
func nonFinite(cfg RawConfig) []string {
	var errs []string
	check := func(name string, v *float64) {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			errs = append(errs, name+" must be finite")
		}
	}
	exp := func(prefix string, e *ExponentialCfg) {
		if e == nil {
			return
		}
		check(prefix+".min_input", e.MinInput)
		check(prefix+".max_input", e.MaxInput)
		check(prefix+".min_output", e.MinOutput)
		check(prefix+".max_output", e.MaxOutput)
		check(prefix+".exponent", e.Exponent)
	}
	c := cfg.Curves
	exp("curves.population_size", c.PopulationSize)
	exp("curves.target_tuition", c.TargetTuition)
	exp("curves.sat_to_academic", c.SATToAcademic)
	exp("curves.prestige_to_mean", c.PrestigeToMean)
	if c.AcademicToSAT != nil {
		exp("curves.academic_to_sat", &c.AcademicToSAT.ExponentialCfg)
		check("curves.academic_to_sat.ceiling", c.AcademicToSAT.Ceiling)
	}
	if c.TuitionBonus != nil {
		check("curves.tuition_bonus.boundary", c.TuitionBonus.Boundary)
		if s := c.TuitionBonus.Sigmoid; s != nil {
			check("curves.tuition_bonus.sigmoid.input_at_percentile", s.InputAtPercentile)
			check("curves.tuition_bonus.sigmoid.max_output", s.MaxOutput)
		}
		if l := c.TuitionBonus.Linear; l != nil {
			check("curves.tuition_bonus.linear.slope", l.Slope)
		}
	}
	if c.TuitionDamping != nil {
		check("curves.tuition_damping.scale", c.TuitionDamping.Scale)
	}
	return errs
}
