package orbit

import (
	"fmt"
	"math"
	"time"

	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/unit"
)

// Ellipse is a closed Keplerian orbit with eccentricity in [0, 1). The
// orbited body occupies the focus on the positive x axis of the local
// frame, so the epoch angle of zero is periapsis.
type Ellipse struct {
	semiMajorAxis unit.Distance
	eccentricity  unit.Ratio
	initialTheta  unit.Radian
	clockwise     bool
	span          float64
}

// NewEllipse returns the elliptical orbit of the given semi-major axis and
// eccentricity. Eccentricities of one or above describe parabolic and
// hyperbolic trajectories, which are outside the solver's domain and are
// rejected.
func NewEllipse(semiMajorAxis unit.Distance, eccentricity float64) (Ellipse, error) {
	if semiMajorAxis.IsZero() {
		return Ellipse{}, fmt.Errorf("%w: semi-major axis must be greater than zero", ErrInvalidOrbitParameters)
	}
	if eccentricity < 0 || eccentricity >= 1 {
		return Ellipse{}, fmt.Errorf("%w: eccentricity %v outside [0, 1)", ErrInvalidOrbitParameters, eccentricity)
	}

	return Ellipse{
		semiMajorAxis: semiMajorAxis,
		eccentricity:  unit.RatioOf(eccentricity),
		span:          unit.FullTurn,
	}, nil
}

// WithInitialTheta returns the orbit offset by the given phase angle.
func (e Ellipse) WithInitialTheta(theta unit.Radian) Ellipse {
	e.initialTheta = theta
	return e
}

// WithClockwise returns the orbit swept in the given direction.
func (e Ellipse) WithClockwise(clockwise bool) Ellipse {
	e.clockwise = clockwise
	return e
}

// WithSpan returns the orbit sampled across the given angular span instead
// of a whole turn. Only sampling is affected.
func (e Ellipse) WithSpan(span unit.Radian) Ellipse {
	e.span = span.Radians()
	return e
}

// IsClockwise returns true if the orbit is swept clockwise.
func (e Ellipse) IsClockwise() bool {
	return e.clockwise
}

// InitialTheta returns the phase angle of the orbit at epoch.
func (e Ellipse) InitialTheta() unit.Radian {
	return e.initialTheta
}

// SemiMajorAxis returns half the longest diameter of the ellipse.
func (e Ellipse) SemiMajorAxis() unit.Distance {
	return e.semiMajorAxis
}

// SemiMinorAxis returns half the shortest diameter of the ellipse.
func (e Ellipse) SemiMinorAxis() unit.Distance {
	a := e.semiMajorAxis.Meters()
	c := e.LinearEccentricity().Meters()

	return unit.Meters(math.Sqrt(a*a - c*c))
}

// Eccentricity returns how much the ellipse deviates from a circle.
func (e Ellipse) Eccentricity() unit.Ratio {
	return e.eccentricity
}

// LinearEccentricity returns the distance from the geometric center to
// either focus.
func (e Ellipse) LinearEccentricity() unit.Distance {
	return e.semiMajorAxis.Mul(e.eccentricity.Value())
}

// Focus implements [Orbit]: the offset from the occupied focus to the
// geometric center. Shifting local positions by it puts the orbited body
// on the focus itself.
func (e Ellipse) Focus() cartesian.Coords {
	return cartesian.New(-e.LinearEccentricity().Kilometers(), 0, 0)
}

// Radius implements [Orbit]: the apoapsis distance from the occupied focus.
func (e Ellipse) Radius() unit.Distance {
	return e.semiMajorAxis.Add(e.LinearEccentricity())
}

// Perimeter implements [Orbit] through the Ramanujan-Cantrell approximation,
// since the ellipse perimeter integral has no closed elementary form. The
// approximation has a small bounded relative error and constant cost.
func (e Ellipse) Perimeter() unit.Distance {
	a := e.semiMajorAxis.Meters()
	b := e.SemiMinorAxis().Meters()

	h := (a - b) / (a + b)
	h *= h

	ramanujan := 1 + 3*h/(10+math.Sqrt(4-3*h))
	cantrell := (4/math.Pi - 14.0/11.0) * math.Pow(h, 12)

	return unit.Meters(math.Pi * (a + b) * (ramanujan + cantrell))
}

// Period implements [Orbit]: 2π·sqrt(a³/μ).
func (e Ellipse) Period(orbitee Body) time.Duration {
	a := e.semiMajorAxis.Meters()
	mu := orbitee.GravitationalParameter()

	return time.Duration(unit.FullTurn * math.Sqrt(a*a*a/mu) * float64(time.Second))
}

// ThetaAt implements [Orbit]. The phase angle is the true anomaly solved
// from Kepler's equation, offset by the initial theta and swept in the
// orbit's direction.
func (e Ellipse) ThetaAt(t time.Duration, orbitee Body) unit.Radian {
	t = modPeriod(t, e.Period(orbitee))

	meanAnomaly := unit.FullTurn * t.Seconds() / e.Period(orbitee).Seconds()
	eccentricAnomaly := solveKepler(meanAnomaly, e.eccentricity.Value())
	nu := trueAnomaly(eccentricAnomaly, e.eccentricity.Value())

	if e.clockwise {
		nu = -nu
	}

	return e.initialTheta.Add(unit.Radians(nu))
}

// PositionAt implements [Orbit]: the parametric point of the ellipse at the
// phase angle of time t, in the local frame centered on the geometric
// center.
func (e Ellipse) PositionAt(t time.Duration, orbitee Body) cartesian.Coords {
	return e.positionFor(e.ThetaAt(t, orbitee))
}

func (e Ellipse) positionFor(theta unit.Radian) cartesian.Coords {
	a := e.semiMajorAxis.Kilometers()
	b := e.SemiMinorAxis().Kilometers()

	return cartesian.New(
		a*math.Cos(theta.Radians()),
		b*math.Sin(theta.Radians()),
		0,
	)
}

// VelocityAt implements [Orbit] through the vis-viva relation, evaluated at
// the instantaneous distance between the body and the occupied focus. The
// occupied focus sits at the negation of [Ellipse.Focus], since that offset
// points from the focus towards the geometric center.
func (e Ellipse) VelocityAt(t time.Duration, orbitee Body) unit.Velocity {
	r := e.PositionAt(t, orbitee).Distance(e.Focus().Neg()) * 1000

	return visViva(orbitee.GravitationalParameter(), r, e.semiMajorAxis.Meters())
}

// MinVelocity implements [Orbit]: the speed at apoapsis, the farthest point
// from the occupied focus.
func (e Ellipse) MinVelocity(orbitee Body) unit.Velocity {
	a := e.semiMajorAxis.Meters()
	c := e.LinearEccentricity().Meters()

	return visViva(orbitee.GravitationalParameter(), a+c, a)
}

// MaxVelocity implements [Orbit]: the speed at periapsis, the nearest point
// to the occupied focus.
func (e Ellipse) MaxVelocity(orbitee Body) unit.Velocity {
	a := e.semiMajorAxis.Meters()
	c := e.LinearEccentricity().Meters()

	return visViva(orbitee.GravitationalParameter(), a-c, a)
}

// Sample implements [cartesian.Sampler]: segments points across the orbit's
// angular span, starting at the initial theta and swept in the orbit's
// direction. The sampling is purely geometric; no time is involved.
func (e Ellipse) Sample(segments int) cartesian.Shape {
	if segments <= 0 {
		return cartesian.Shape{}
	}

	step := e.span / float64(segments)
	if e.clockwise {
		step = -step
	}

	points := make([]cartesian.Coords, 0, segments)
	for index := 0; index < segments; index++ {
		theta := e.initialTheta.Add(unit.Radians(step * float64(index)))
		points = append(points, e.positionFor(theta))
	}

	return cartesian.Shape{Points: points}
}
