// Package orbit models hierarchical orbital systems: bodies, the orbits
// that bind them, and the position, velocity and rotation of every body at
// an arbitrary instant in time.
//
// The whole package is a pure function of a static system description and a
// time value. Nothing in it performs I/O, keeps shared mutable state or
// depends on the wall clock.
package orbit

import (
	"errors"
	"math"
	"time"

	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/unit"
)

// G is the gravitational constant, in N·m²·kg⁻².
const G = 6.674010551359e-11

// ErrInvalidOrbitParameters is returned when orbital elements fall outside
// the solver's domain, such as a parabolic or hyperbolic eccentricity.
var ErrInvalidOrbitParameters = errors.New("invalid orbit parameters")

// Orbit describes the path of a body around another. Distances are
// expressed in the orbit's local frame, centered on the ellipse's geometric
// center, with the occupied focus on the positive x axis.
type Orbit interface {
	// Period returns the time the orbit takes around the given body.
	Period(orbitee Body) time.Duration

	// PositionAt returns the position of the orbiting body after the given
	// time since epoch, in the orbit's local frame.
	PositionAt(t time.Duration, orbitee Body) cartesian.Coords

	// VelocityAt returns the speed of the orbiting body after the given
	// time since epoch.
	VelocityAt(t time.Duration, orbitee Body) unit.Velocity

	// ThetaAt returns the phase angle of the orbit after the given time
	// since epoch.
	ThetaAt(t time.Duration, orbitee Body) unit.Radian

	// MinVelocity returns the orbital speed at the farthest point.
	MinVelocity(orbitee Body) unit.Velocity

	// MaxVelocity returns the orbital speed at the nearest point.
	MaxVelocity(orbitee Body) unit.Velocity

	// Focus returns the offset from the occupied focus, where the orbited
	// body sits, to the orbit's geometric center. Adding it to a local
	// position expresses that position relative to the orbited body.
	Focus() cartesian.Coords

	// Radius returns the maximal extent of the orbit from the occupied
	// focus.
	Radius() unit.Distance

	// Perimeter returns the length of one revolution.
	Perimeter() unit.Distance
}

// maxKeplerIterations bounds the Newton-Raphson refinement. One hundred
// iterations are enough for double precision at any eccentricity below one.
const maxKeplerIterations = 100

// keplerConvergence is the residual below which the refinement stops early.
const keplerConvergence = 1e-14

// solveKepler solves Kepler's equation E - e·sin(E) = M for the eccentric
// anomaly E through Newton-Raphson. High eccentricities are seeded at π
// instead of M, which keeps the iteration from diverging.
func solveKepler(meanAnomaly, eccentricity float64) float64 {
	e := meanAnomaly
	if eccentricity >= 0.8 {
		e = math.Pi
	}

	for iter := 0; iter < maxKeplerIterations; iter++ {
		residual := e - eccentricity*math.Sin(e) - meanAnomaly
		if math.Abs(residual) < keplerConvergence {
			break
		}

		e -= residual / (1 - eccentricity*math.Cos(e))
	}

	return e
}

// trueAnomaly converts the eccentric anomaly into the true anomaly, the
// actual angle of the body as seen from the occupied focus.
func trueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+eccentricity)*math.Sin(eccentricAnomaly/2),
		math.Sqrt(1-eccentricity)*math.Cos(eccentricAnomaly/2),
	)
}

// visViva returns the orbital speed at distance r from the occupied focus
// of an orbit with semi-major axis a, both in meters, around a body with
// standard gravitational parameter mu.
func visViva(mu, r, a float64) unit.Velocity {
	return unit.MetersPerSecond(math.Sqrt(mu * (2/r - 1/(2*a))))
}

// modPeriod reduces t modulo the given period.
func modPeriod(t time.Duration, period time.Duration) time.Duration {
	if period <= 0 {
		return 0
	}

	return time.Duration(math.Mod(t.Seconds(), period.Seconds()) * float64(time.Second))
}
