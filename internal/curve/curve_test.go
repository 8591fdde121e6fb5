package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestExponentialEndpoints(t *testing.T) {
	cases := []ExponentialCalibration{
		{MinInput: 0, MaxInput: 100, MinOutput: 100, MaxOutput: 10000, Exponent: 4},
		{MinInput: 0, MaxInput: 100, MinOutput: 0, MaxOutput: 10000, Exponent: 2},
		{MinInput: 0, MaxInput: 200, MinOutput: 2000, MaxOutput: 50000, Exponent: 2.1},
		{MinInput: -10, MaxInput: 60, MinOutput: -12, MaxOutput: 37, Exponent: 1.5},
	}
	for _, c := range cases {
		e, err := NewExponential(c)
		require.NoError(t, err)

		lo, err := e.Map(c.MinInput)
		require.NoError(t, err)
		hi, err := e.Map(c.MaxInput)
		require.NoError(t, err)

		assert.InDelta(t, c.MinOutput, lo, tol)
		assert.InDelta(t, c.MaxOutput, hi, 1e-6)
	}
}

func TestExponentialMidpoint(t *testing.T) {
	e, err := NewExponential(ExponentialCalibration{MinInput: 0, MaxInput: 100, MinOutput: 100, MaxOutput: 10000, Exponent: 4})
	require.NoError(t, err)
	got, err := e.Map(50)
	require.NoError(t, err)
	assert.InDelta(t, 718.75, got, tol)
}

func TestExponentialMonotonic(t *testing.T) {
	e, err := NewExponential(ExponentialCalibration{MinInput: 0, MaxInput: 200, MinOutput: 2000, MaxOutput: 50000, Exponent: 2.1})
	require.NoError(t, err)
	prev := math.Inf(-1)
	for x := 0.0; x <= 250; x += 0.5 {
		y, err := e.Map(x)
		require.NoError(t, err)
		require.GreaterOrEqual(t, y, prev, "x=%v", x)
		prev = y
	}
}

func TestExponentialBelowMinInput(t *testing.T) {
	frac, err := NewExponential(ExponentialCalibration{MinInput: 0, MaxInput: 200, MinOutput: 2000, MaxOutput: 50000, Exponent: 2.1})
	require.NoError(t, err)
	_, err = frac.Map(-1)
	require.ErrorIs(t, err, ErrDomain)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "x", de.Param)
	assert.Equal(t, -1.0, de.Value)
	assert.Contains(t, err.Error(), "x = -1")

	// integer exponents are defined below minInput
	sq, err := NewExponential(ExponentialCalibration{MinInput: 0, MaxInput: 10, MinOutput: 0, MaxOutput: 100, Exponent: 2})
	require.NoError(t, err)
	got, err := sq.Map(-5)
	require.NoError(t, err)
	assert.InDelta(t, 25, got, tol)
}

func TestExponentialCalibrationErrors(t *testing.T) {
	cases := []struct {
		name  string
		cal   ExponentialCalibration
		param string
	}{
		{"equal inputs", ExponentialCalibration{MinInput: 5, MaxInput: 5, MaxOutput: 1, Exponent: 1}, "maxInput"},
		{"zero exponent", ExponentialCalibration{MaxInput: 1, MaxOutput: 1, Exponent: 0}, "exponent"},
		{"negative exponent", ExponentialCalibration{MaxInput: 1, MaxOutput: 1, Exponent: -2}, "exponent"},
		{"nan output", ExponentialCalibration{MaxInput: 1, MaxOutput: math.NaN(), Exponent: 1}, "maxOutput"},
		{"reversed fractional", ExponentialCalibration{MinInput: 10, MaxInput: 0, MaxOutput: 1, Exponent: 1.5}, "maxInput"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExponential(tc.cal)
			require.ErrorIs(t, err, ErrCalibration)
			var ce *CalibrationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.param, ce.Param)
		})
	}
}

func TestSigmoidPercentileTarget(t *testing.T) {
	cases := []SigmoidCalibration{
		{InputAtPercentile: 5000, Percentile: 0.9, MaxOutput: 10},
		{InputAtPercentile: 10, Percentile: 0.75, MaxOutput: 1},
		{InputAtPercentile: -300, Percentile: 0.2, MaxOutput: 4},
	}
	for _, c := range cases {
		s, err := NewSigmoid(c)
		require.NoError(t, err)
		got, err := s.Map(c.InputAtPercentile)
		require.NoError(t, err)
		assert.InDelta(t, (2*c.Percentile-1)*c.MaxOutput, got, 1e-9)
	}
}

func TestSigmoidBoundedIncreasing(t *testing.T) {
	s, err := NewSigmoid(SigmoidCalibration{InputAtPercentile: 5000, Percentile: 0.9, MaxOutput: 10})
	require.NoError(t, err)

	zero, err := s.Map(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, zero, tol)

	prev := math.Inf(-1)
	for x := -20000.0; x <= 20000; x += 10 {
		y, err := s.Map(x)
		require.NoError(t, err)
		require.Greater(t, y, prev)
		require.Greater(t, y, -10.0)
		require.Less(t, y, 10.0)
		prev = y
	}
}

func TestSigmoidCalibrationErrors(t *testing.T) {
	cases := []struct {
		name  string
		cal   SigmoidCalibration
		param string
	}{
		{"percentile zero", SigmoidCalibration{InputAtPercentile: 1, Percentile: 0, MaxOutput: 1}, "percentile"},
		{"percentile one", SigmoidCalibration{InputAtPercentile: 1, Percentile: 1, MaxOutput: 1}, "percentile"},
		{"percentile half", SigmoidCalibration{InputAtPercentile: 1, Percentile: 0.5, MaxOutput: 1}, "percentile"},
		{"sign mismatch", SigmoidCalibration{InputAtPercentile: -1, Percentile: 0.9, MaxOutput: 1}, "percentile"},
		{"zero input", SigmoidCalibration{InputAtPercentile: 0, Percentile: 0.9, MaxOutput: 1}, "inputAtPercentile"},
		{"zero max", SigmoidCalibration{InputAtPercentile: 1, Percentile: 0.9, MaxOutput: 0}, "maxOutput"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSigmoid(tc.cal)
			var ce *CalibrationError
			require.True(t, errors.As(err, &ce), "err=%v", err)
			assert.Equal(t, tc.param, ce.Param)
		})
	}
}

func TestLinearProportional(t *testing.T) {
	l, err := NewLinear(LinearCalibration{Slope: 400})
	require.NoError(t, err)
	for _, x := range []float64{-5000, -1, 0, 3, 1234.5} {
		for _, k := range []float64{-2, 0, 0.5, 3} {
			a, err := l.Map(k * x)
			require.NoError(t, err)
			b, err := l.Map(x)
			require.NoError(t, err)
			assert.InDelta(t, k*b, a, 1e-12)
		}
	}
	got, err := l.Map(-4000)
	require.NoError(t, err)
	assert.Equal(t, -10.0, got)

	_, err = NewLinear(LinearCalibration{Slope: 0})
	require.ErrorIs(t, err, ErrCalibration)
}

func TestDampingProperties(t *testing.T) {
	d, err := NewDamping(DampingCalibration{Scale: 2000})
	require.NoError(t, err)

	zero, err := d.Map(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)

	for _, x := range []float64{1, 10, 2000, 5000, 1e6, 1e9} {
		pos, err := d.Map(x)
		require.NoError(t, err)
		neg, err := d.Map(-x)
		require.NoError(t, err)
		assert.Less(t, math.Abs(pos), 1.0)
		assert.Equal(t, -pos, neg)
	}

	half, err := d.Map(2000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half, tol)

	_, err = NewDamping(DampingCalibration{Scale: 0})
	require.ErrorIs(t, err, ErrCalibration)
}

func TestDampingStaysBelowOne(t *testing.T) {
	d := Must(NewDamping(DampingCalibration{Scale: 1}))
	for _, x := range []float64{1e16, 1e17, 1e300, math.MaxFloat64} {
		pos, err := d.Map(x)
		require.NoError(t, err)
		neg, err := d.Map(-x)
		require.NoError(t, err)
		assert.Less(t, pos, 1.0, "x=%v", x)
		assert.Equal(t, -pos, neg, "x=%v", x)
	}

	tiny := Must(NewDamping(DampingCalibration{Scale: 1e-300}))
	got, err := tiny.Map(1e300)
	require.NoError(t, err)
	assert.Less(t, got, 1.0)
}

func TestOverflowingResultRejected(t *testing.T) {
	exp := Must(NewExponential(ExponentialCalibration{MaxInput: 100, MinOutput: 100, MaxOutput: 10000, Exponent: 4}))
	_, err := exp.Map(1e300)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "x", de.Param)
	assert.Equal(t, 1e300, de.Value)
	assert.Contains(t, err.Error(), "result overflows")

	lin := Must(NewLinear(LinearCalibration{Slope: 1e-300}))
	_, err = lin.Map(1e300)
	require.ErrorIs(t, err, ErrDomain)

	// the same mappings stay finite in range
	y, err := exp.Map(100)
	require.NoError(t, err)
	assert.InDelta(t, 10000, y, tol)
}

func TestNonFiniteInputRejected(t *testing.T) {
	mappings := []Mapping{
		Must(NewExponential(ExponentialCalibration{MaxInput: 1, MaxOutput: 1, Exponent: 2})),
		Must(NewSigmoid(SigmoidCalibration{InputAtPercentile: 1, Percentile: 0.9, MaxOutput: 1})),
		Must(NewLinear(LinearCalibration{Slope: 1})),
		Must(NewDamping(DampingCalibration{Scale: 1})),
	}
	for _, m := range mappings {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := m.Map(x)
			require.ErrorIs(t, err, ErrDomain, "%T x=%v", m, x)
		}
	}
}

func TestPiecewiseSelectsBranch(t *testing.T) {
	below := Must(NewLinear(LinearCalibration{Slope: 400}))
	above := Must(NewSigmoid(SigmoidCalibration{InputAtPercentile: 5000, Percentile: 0.9, MaxOutput: 10}))
	p, err := NewPiecewise(0, below, above)
	require.NoError(t, err)

	assert.Equal(t, BranchAtOrAbove, p.Select(0))
	assert.Equal(t, BranchBelow, p.Select(-0.001))

	got, err := p.Map(-4000)
	require.NoError(t, err)
	assert.Equal(t, -10.0, got)

	got, err = p.Map(5000)
	require.NoError(t, err)
	assert.InDelta(t, 8, got, 1e-9)

	_, err = p.Map(math.NaN())
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewPiecewise(0, nil, above)
	require.ErrorIs(t, err, ErrCalibration)
}

func TestClampSaturates(t *testing.T) {
	inner := Must(NewExponential(ExponentialCalibration{MinInput: 60, MaxInput: 100, MinOutput: 800, MaxOutput: 1600, Exponent: 1}))
	c, err := Ceiling(inner, 100)
	require.NoError(t, err)

	for x, want := range map[float64]float64{60: 800, 80: 1200, 100: 1600, 150: 1600} {
		got, err := c.Map(x)
		require.NoError(t, err)
		assert.InDelta(t, want, got, tol, "x=%v", x)
	}

	_, err = NewClamp(inner, 10, 5)
	require.ErrorIs(t, err, ErrCalibration)
}

func TestFuncAdapter(t *testing.T) {
	var m Mapping = Func(func(x float64) (float64, error) { return 2 * x, nil })
	got, err := m.Map(3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() {
		Must(NewLinear(LinearCalibration{Slope: 0}))
	})
}
