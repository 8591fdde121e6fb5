package library

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xtding233/curvekit/internal/curve"
)

// Curve names.
const (
	PopulationSize = "population_size"
	TuitionBonus   = "tuition_bonus"
	TargetTuition  = "target_tuition"
	AcademicToSAT  = "academic_to_sat"
	SATToAcademic  = "sat_to_academic"
	PrestigeToMean = "prestige_to_mean"
	TuitionDamping = "tuition_damping"
)

var ErrUnknownCurve = errors.New("unknown curve")

// ScanRange is the input window a curve is designed for, used by harnesses
// that plot or export it.
type ScanRange struct {
	From float64
	To   float64
	Step float64
}

// Curve is a named, calibrated mapping.
type Curve struct {
	Name        string
	Description string
	Range       ScanRange
	Mapping     curve.Mapping
}

// Map evaluates the curve, tagging errors with its name.
func (c Curve) Map(x float64) (float64, error) {
	y, err := c.Mapping.Map(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.Name, err)
	}
	return y, nil
}

// Library is an immutable set of named curves built from one Calibrations.
type Library struct {
	cal    Calibrations
	curves map[string]Curve

	// enrollment uses clamped variants of the raw curves
	tuitionScore *curve.Clamp
	popularity   *curve.Clamp
}

// New builds every curve, failing on the first invalid calibration.
func New(c Calibrations) (*Library, error) {
	l := &Library{cal: c, curves: make(map[string]Curve)}

	pop, err := curve.NewExponential(c.PopulationSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PopulationSize, err)
	}
	l.add(PopulationSize, "enrolling class size from popularity", ScanRange{c.PopulationSize.MinInput, c.PopulationSize.MaxInput, 1}, pop)

	sig, err := curve.NewSigmoid(c.TuitionBonus.Sigmoid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TuitionBonus, err)
	}
	lin, err := curve.NewLinear(c.TuitionBonus.Linear)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TuitionBonus, err)
	}
	bonus, err := curve.NewPiecewise(c.TuitionBonus.Boundary, lin, sig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TuitionBonus, err)
	}
	l.add(TuitionBonus, "popularity bonus from target tuition minus tuition", ScanRange{-5000, 10000, 10}, bonus)

	target, err := curve.NewExponential(c.TargetTuition)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TargetTuition, err)
	}
	l.add(TargetTuition, "target tuition ($/yr) from academic + research prestige", ScanRange{c.TargetTuition.MinInput, c.TargetTuition.MaxInput, 1}, target)

	sat, err := curve.NewExponential(c.AcademicToSAT.Rescale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", AcademicToSAT, err)
	}
	satCeil, err := curve.Ceiling(sat, c.AcademicToSAT.Ceiling)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", AcademicToSAT, err)
	}
	r := c.AcademicToSAT.Rescale
	l.add(AcademicToSAT, "SAT score from academic score, saturating at the ceiling", ScanRange{r.MinInput, c.AcademicToSAT.Ceiling + 10, 1}, satCeil)

	inv, err := curve.NewExponential(c.SATToAcademic)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SATToAcademic, err)
	}
	l.add(SATToAcademic, "academic score from SAT score", ScanRange{c.SATToAcademic.MinInput, c.SATToAcademic.MaxInput, 10}, inv)

	mean, err := curve.NewExponential(c.PrestigeToMean)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PrestigeToMean, err)
	}
	l.add(PrestigeToMean, "mean enrolling academic score from academic prestige", ScanRange{c.PrestigeToMean.MinInput, c.PrestigeToMean.MaxInput, 1}, mean)

	damp, err := curve.NewDamping(c.TuitionDamping)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TuitionDamping, err)
	}
	l.add(TuitionDamping, "saturating response to a tuition delta", ScanRange{-5000, 10000, 10}, damp)

	if l.tuitionScore, err = curve.NewClamp(target, c.TargetTuition.MinInput, c.TargetTuition.MaxInput); err != nil {
		return nil, fmt.Errorf("%s: %w", TargetTuition, err)
	}
	if l.popularity, err = curve.NewClamp(pop, c.PopulationSize.MinInput, c.PopulationSize.MaxInput); err != nil {
		return nil, fmt.Errorf("%s: %w", PopulationSize, err)
	}
	return l, nil
}

// MustDefault builds the library from DefaultCalibrations.
func MustDefault() *Library {
	l, err := New(DefaultCalibrations())
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Library) add(name, desc string, r ScanRange, m curve.Mapping) {
	l.curves[name] = Curve{Name: name, Description: desc, Range: r, Mapping: m}
}

// Calibrations returns the constants the library was built from.
func (l *Library) Calibrations() Calibrations { return l.cal }

// Get looks up a curve by name.
func (l *Library) Get(name string) (Curve, bool) {
	c, ok := l.curves[name]
	return c, ok
}

// Names returns the curve names in sorted order.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.curves))
	for n := range l.curves {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Eval evaluates the named curve at x.
func (l *Library) Eval(name string, x float64) (float64, error) {
	c, ok := l.curves[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return c.Map(x)
}
