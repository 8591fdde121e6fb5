// types.go
package config

// RawConfig is a calibration file as loaded from YAML. Every field is
// optional; unset fields fall through to the layer below.
type RawConfig struct {
	Version string       `yaml:"version"`
	Curves  CurvesConfig `yaml:"curves"`
	Notes   string       `yaml:"notes,omitempty"`
}

type CurvesConfig struct {
	PopulationSize *ExponentialCfg  `yaml:"population_size,omitempty"`
	TuitionBonus   *TuitionBonusCfg `yaml:"tuition_bonus,omitempty"`
	TargetTuition  *ExponentialCfg  `yaml:"target_tuition,omitempty"`
	AcademicToSAT  *SaturatingCfg   `yaml:"academic_to_sat,omitempty"`
	SATToAcademic  *ExponentialCfg  `yaml:"sat_to_academic,omitempty"`
	PrestigeToMean *ExponentialCfg  `yaml:"prestige_to_mean,omitempty"`
	TuitionDamping *DampingCfg      `yaml:"tuition_damping,omitempty"`
}

type ExponentialCfg struct {
	MinInput  *float64 `yaml:"min_input,omitempty"`
	MaxInput  *float64 `yaml:"max_input,omitempty"`
	MinOutput *float64 `yaml:"min_output,omitempty"`
	MaxOutput *float64 `yaml:"max_output,omitempty"`
	Exponent  *float64 `yaml:"exponent,omitempty"`
}

type SigmoidCfg struct {
	InputAtPercentile *float64 `yaml:"input_at_percentile,omitempty"`
	Percentile        *float64 `yaml:"percentile,omitempty"`
	MaxOutput         *float64 `yaml:"max_output,omitempty"`
}

type LinearCfg struct {
	Slope *float64 `yaml:"slope,omitempty"`
}

type TuitionBonusCfg struct {
	Boundary *float64    `yaml:"boundary,omitempty"`
	Sigmoid  *SigmoidCfg `yaml:"sigmoid,omitempty"`
	Linear   *LinearCfg  `yaml:"linear,omitempty"`
}

// SaturatingCfg is a rescale whose input saturates at Ceiling.
type SaturatingCfg struct {
	ExponentialCfg `yaml:",inline"`
	Ceiling        *float64 `yaml:"ceiling,omitempty"`
}

type DampingCfg struct {
	Scale *float64 `yaml:"scale,omitempty"`
}
