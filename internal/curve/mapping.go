package curve

import "math"

// Kinds reported in errors.
const (
	KindExponential = "exponential"
	KindSigmoid     = "sigmoid"
	KindLinear      = "linear"
	KindDamping     = "damping"
	KindPiecewise   = "piecewise"
	KindClamp       = "clamp"
)

// Mapping is a single-variable scalar transform.
type Mapping interface {
	Map(x float64) (float64, error)
}

// Func adapts a plain function to Mapping.
type Func func(x float64) (float64, error)

func (f Func) Map(x float64) (float64, error) { return f(x) }

// Must panics if err is non-nil. Meant for package-level curves built from
// fixed design constants.
func Must[M Mapping](m M, err error) M {
	if err != nil {
		panic(err)
	}
	return m
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkInput applies the shared finite-input rule.
func checkInput(kind string, x float64) error {
	if !isFinite(x) {
		return &DomainError{Mapping: kind, Param: "x", Value: x, Reason: "input must be finite"}
	}
	return nil
}

// checkOutput rejects a result that overflowed float64 for a finite x.
func checkOutput(kind string, x, y float64) (float64, error) {
	if !isFinite(y) {
		return 0, &DomainError{Mapping: kind, Param: "x", Value: x, Reason: "result overflows"}
	}
	return y, nil
}
