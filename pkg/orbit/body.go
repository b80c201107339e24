package orbit

import (
	"time"

	"orbital.space/pkg/unit"
)

// Spin is the rotation of a body about its own axis.
type Spin struct {
	// Period is the time the body takes to complete one rotation. A zero
	// period means the body does not rotate.
	Period time.Duration

	// Clockwise indicates retrograde rotation.
	Clockwise bool
}

// Frequency returns the number of rotations per second.
func (s Spin) Frequency() unit.Frequency {
	return unit.PerPeriod(s.Period)
}

// Body is a celestial body: anything massive enough to orbit or be orbited.
type Body struct {
	// Name identifies the body within its system.
	Name string

	// Radius is the equatorial radius of the body.
	Radius unit.Distance

	// Spin is the rotation of the body about its own axis.
	Spin Spin

	// Mass is the total mass of the body.
	Mass unit.Mass

	// Luminosity is the radiant power of the body. Only stars have a
	// non-zero luminosity.
	Luminosity unit.Luminosity
}

// GravitationalParameter returns the standard gravitational parameter μ of
// the body, the product of G and its mass, in m³·s⁻².
func (b Body) GravitationalParameter() float64 {
	return G * b.Mass.Kilograms()
}

// IsLuminous returns true if the body shines with its own light.
func (b Body) IsLuminous() bool {
	return !b.Luminosity.IsZero()
}

// SideralPeriod returns the time the body takes to rotate once about its
// axis relative to the fixed stars.
func (b Body) SideralPeriod() time.Duration {
	return b.Spin.Period
}

// SpinFrequency returns the number of rotations of the body per second.
func (b Body) SpinFrequency() unit.Frequency {
	return b.Spin.Frequency()
}
