// Package library holds the named game curves: population size, tuition
// bonus, target tuition, academic score and SAT conversions, prestige to
// mean score, and tuition damping. Each one composes a curve primitive with
// constants from Calibrations.
package library
