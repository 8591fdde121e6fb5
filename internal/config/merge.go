package config

// Merge performs a deep merge: 'b' overrides 'a' field by field where set.
// Neither input is modified.
func Merge(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	out.Curves.PopulationSize = mergeExp(a.Curves.PopulationSize, b.Curves.PopulationSize)
	out.Curves.TargetTuition = mergeExp(a.Curves.TargetTuition, b.Curves.TargetTuition)
	out.Curves.SATToAcademic = mergeExp(a.Curves.SATToAcademic, b.Curves.SATToAcademic)
	out.Curves.PrestigeToMean = mergeExp(a.Curves.PrestigeToMean, b.Curves.PrestigeToMean)

	// tuition bonus
	switch {
	case b.Curves.TuitionBonus == nil:
	case a.Curves.TuitionBonus == nil:
		c := *b.Curves.TuitionBonus
		out.Curves.TuitionBonus = &c
	default:
		c := *a.Curves.TuitionBonus
		bb := b.Curves.TuitionBonus
		pick(&c.Boundary, bb.Boundary)
		if bb.Sigmoid != nil {
			s := SigmoidCfg{}
			if c.Sigmoid != nil {
				s = *c.Sigmoid
			}
			pick(&s.InputAtPercentile, bb.Sigmoid.InputAtPercentile)
			pick(&s.Percentile, bb.Sigmoid.Percentile)
			pick(&s.MaxOutput, bb.Sigmoid.MaxOutput)
			c.Sigmoid = &s
		}
		if bb.Linear != nil {
			lin := LinearCfg{}
			if c.Linear != nil {
				lin = *c.Linear
			}
			pick(&lin.Slope, bb.Linear.Slope)
			c.Linear = &lin
		}
		out.Curves.TuitionBonus = &c
	}

	// academic → SAT
	switch {
	case b.Curves.AcademicToSAT == nil:
	case a.Curves.AcademicToSAT == nil:
		c := *b.Curves.AcademicToSAT
		out.Curves.AcademicToSAT = &c
	default:
		c := *a.Curves.AcademicToSAT
		exp := mergeExp(&c.ExponentialCfg, &b.Curves.AcademicToSAT.ExponentialCfg)
		c.ExponentialCfg = *exp
		pick(&c.Ceiling, b.Curves.AcademicToSAT.Ceiling)
		out.Curves.AcademicToSAT = &c
	}

	// damping
	switch {
	case b.Curves.TuitionDamping == nil:
	case a.Curves.TuitionDamping == nil:
		c := *b.Curves.TuitionDamping
		out.Curves.TuitionDamping = &c
	default:
		c := *a.Curves.TuitionDamping
		pick(&c.Scale, b.Curves.TuitionDamping.Scale)
		out.Curves.TuitionDamping = &c
	}

	return out
}

func mergeExp(a, b *ExponentialCfg) *ExponentialCfg {
	switch {
	case b == nil:
		return a
	case a == nil:
		c := *b
		return &c
	}
	c := *a
	pick(&c.MinInput, b.MinInput)
	pick(&c.MaxInput, b.MaxInput)
	pick(&c.MinOutput, b.MinOutput)
	pick(&c.MaxOutput, b.MaxOutput)
	pick(&c.Exponent, b.Exponent)
	return &c
}

func pick(dst **float64, src *float64) {
	if src != nil {
		*dst = src
	}
}
