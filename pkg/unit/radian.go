package unit

import (
	"math"
	"time"
)

// FullTurn is the angle of a whole rotation, in radians.
const FullTurn = 2 * math.Pi

// Radian is an angle, always within the range [0, 2π). Negative inputs wrap
// into the positive range instead of truncating, so -π/2 becomes 3π/2.
type Radian struct {
	rad float64
}

// Radians returns the angle of rad radians reduced into [0, 2π).
func Radians(rad float64) Radian {
	if rad >= 0 && rad < FullTurn {
		return Radian{rad: rad}
	}

	rad = math.Mod(rad, FullTurn)
	if rad < 0 {
		rad += FullTurn
	}

	return Radian{rad: rad}
}

// AngularFrequency returns the angle swept per second by a rotation that
// completes a full turn every period.
func AngularFrequency(period time.Duration) Radian {
	if period <= 0 {
		return Radian{}
	}

	return Radians(FullTurn / period.Seconds())
}

// Radians returns the angle as a float64 of radians.
func (r Radian) Radians() float64 {
	return r.rad
}

// Degrees returns the angle in degrees.
func (r Radian) Degrees() float64 {
	return r.rad * 180 / math.Pi
}

// Add returns the sum of both angles, wrapped into range.
func (r Radian) Add(rhs Radian) Radian {
	return Radians(r.rad + rhs.rad)
}

// Sub returns the difference between both angles, wrapped into range.
func (r Radian) Sub(rhs Radian) Radian {
	return Radians(r.rad - rhs.rad)
}

// Mul returns the angle scaled by factor, wrapped into range.
func (r Radian) Mul(factor float64) Radian {
	return Radians(r.rad * factor)
}

// Neg returns the angle of the opposite rotation, wrapped into range.
func (r Radian) Neg() Radian {
	return Radians(-r.rad)
}

// AbsDiff returns the absolute difference between both angles.
func (r Radian) AbsDiff(rhs Radian) Radian {
	return Radians(math.Abs(r.rad - rhs.rad))
}
