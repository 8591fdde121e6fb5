// Package curve implements the scalar mapping primitives used to shape game
// balance curves: exponential, sigmoid, linear and damping.
//
// Each primitive is calibrated from boundary constraints a designer can
// reason about (an input range and the output range it spans, or the input
// at which a percentile of the asymptote is reached) and validated once at
// construction. The resulting values are immutable and safe for concurrent
// use.
//
// Domain policy: every Map call rejects NaN and ±Inf inputs with a
// *DomainError. The exponential mapping additionally rejects x < MinInput
// when its exponent is not an integer, since the power of a negative base is
// undefined there. A finite input whose result overflows float64 is a
// *DomainError too, so Map never returns NaN or ±Inf. Nothing is clamped
// implicitly; use Clamp to saturate. The one exception is damping, whose
// output stops at the largest float64 below 1 in magnitude once rounding would
// reach ±1.
package curve
