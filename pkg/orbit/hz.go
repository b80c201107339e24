package orbit

import (
	"math"

	"orbital.space/pkg/unit"
)

// HabitableZone is the range of distances from a luminous body within which
// an orbiting body could hold liquid water.
type HabitableZone struct {
	// Inner is the bound below which water boils away.
	Inner unit.Distance

	// Outer is the bound beyond which water freezes.
	Outer unit.Distance
}

// HabitableZoneOf returns the habitable zone around a body of the given
// luminosity, scaled from the Sun's zone by the square root of the relative
// luminosity. A zero luminosity yields a degenerate zero-width zone.
func HabitableZoneOf(luminosity unit.Luminosity) HabitableZone {
	suns := luminosity.Suns()

	return HabitableZone{
		Inner: unit.AstronomicalUnit.Mul(math.Sqrt(suns / 1.1)),
		Outer: unit.AstronomicalUnit.Mul(math.Sqrt(suns / 0.53)),
	}
}
