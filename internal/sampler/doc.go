// Package sampler generates normally distributed scalars with the
// Box–Muller transform over a pluggable uniform RandomSource.
//
// Sample is stateless: each call consumes two fresh uniforms. Sampler adds
// optional caching of the second value of each pair and bulk generation
// that can be interrupted between draws.
package sampler
