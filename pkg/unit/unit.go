// Package unit provides the scalar physical quantities used across the
// engine. Each type wraps a float64 and enforces its own invariant:
// magnitudes (Distance, Mass, Velocity, Luminosity, Frequency) are never
// negative, Ratio stays within [0, 1] and Radian within [0, 2π).
//
// Negative magnitude inputs are clamped through their absolute value rather
// than rejected. That policy is deliberate and part of the contract: callers
// that need strict validation must check their inputs before constructing a
// unit. Every type keeps one canonical base unit internally (meters,
// kilograms, m/s, watts, hertz) and converts only through named accessors.
package unit

import "math"

// positive clamps v to a non-negative magnitude.
func positive(v float64) float64 {
	return math.Abs(v)
}
