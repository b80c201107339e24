// Package geographic provides spherical coordinates and their conversion to
// and from cartesian space.
package geographic

import (
	"math"

	"orbital.space/pkg/cartesian"
)

// Longitude is the angle east (positive) or west (negative) of the zero
// meridian, always within [-π, π). Both bounds are consecutive: overflowing
// one continues from the other in the same direction.
type Longitude float64

// NewLongitude returns the longitude of rad radians wrapped into [-π, π).
func NewLongitude(rad float64) Longitude {
	if rad >= -math.Pi && rad < math.Pi {
		return Longitude(rad)
	}

	wrapped := math.Mod(rad+math.Pi, 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}

	return Longitude(wrapped - math.Pi)
}

// Radians returns the longitude as a float64 of radians.
func (l Longitude) Radians() float64 {
	return float64(l)
}

// Normal returns the longitude scaled into [-1, 1) by dividing it by π.
func (l Longitude) Normal() float64 {
	return float64(l) / math.Pi
}

// Latitude is the angle between the equatorial plane and the line through
// the point and the sphere's center, always within [-π/2, π/2]. Overflowing
// a bound folds back towards the opposite one.
type Latitude float64

// NewLatitude returns the latitude of rad radians folded into [-π/2, π/2].
func NewLatitude(rad float64) Latitude {
	if rad >= -math.Pi/2 && rad <= math.Pi/2 {
		return Latitude(rad)
	}

	return Latitude(math.Asin(math.Sin(rad)))
}

// Radians returns the latitude as a float64 of radians.
func (l Latitude) Radians() float64 {
	return float64(l)
}

// Normal returns the latitude scaled into [-1, 1] by dividing it by π/2.
func (l Latitude) Normal() float64 {
	return float64(l) / (math.Pi / 2)
}

// Coords is a point in geographic space: a longitude, a latitude and an
// altitude measured from the sphere's center.
type Coords struct {
	Longitude Longitude
	Latitude  Latitude
	Altitude  float64
}

// preciseSinCos returns sin and cos of rad, with exact values at the
// quadrant boundaries where the float64 approximations of π would otherwise
// leak into the result.
func preciseSinCos(rad float64) (sin, cos float64) {
	switch {
	case math.Abs(rad) == math.Pi/2:
		return math.Copysign(1, rad), 0
	case math.Abs(rad) == math.Pi:
		return 0, -1
	case rad == 0:
		return 0, 1
	}

	return math.Sin(rad), math.Cos(rad)
}

// Cartesian returns the point in cartesian space, following the physics
// convention of the spherical coordinate system. A zero altitude maps onto
// the unit sphere.
func (c Coords) Cartesian() cartesian.Coords {
	radial := c.Altitude
	if radial == 0 {
		radial = 1
	}

	theta := math.Pi/2 - c.Latitude.Radians()
	phi := c.Longitude.Radians()

	thetaSin, thetaCos := preciseSinCos(theta)
	phiSin, phiCos := preciseSinCos(phi)

	return cartesian.New(
		radial*thetaSin*phiCos,
		radial*thetaSin*phiSin,
		radial*thetaCos,
	)
}

// FromCartesian returns the geographic coordinates of the given cartesian
// point.
func FromCartesian(point cartesian.Coords) Coords {
	return Coords{
		Longitude: longitudeOf(point),
		Latitude:  latitudeOf(point),
		Altitude:  point.Magnitude(),
	}
}

func longitudeOf(point cartesian.Coords) Longitude {
	x, y := point.X, point.Y

	switch {
	case x > 0:
		return NewLongitude(math.Atan(y / x))
	case x < 0 && y >= 0:
		return NewLongitude(math.Atan(y/x) + math.Pi)
	case x < 0 && y < 0:
		return NewLongitude(math.Atan(y/x) - math.Pi)
	case x == 0 && y > 0:
		return NewLongitude(math.Pi / 2)
	case x == 0 && y < 0:
		return NewLongitude(-math.Pi / 2)
	}

	return 0
}

func latitudeOf(point cartesian.Coords) Latitude {
	mag := point.Magnitude()
	if mag == 0 {
		return 0
	}

	return NewLatitude(math.Asin(point.Z / mag))
}
