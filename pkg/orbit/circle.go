package orbit

import (
	"fmt"
	"math"
	"time"

	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/unit"
)

// Circle is the degenerate orbit of eccentricity zero. Every position lies
// at the same distance from the orbited body, which sits on the geometric
// center itself, so the whole Kepler machinery collapses into closed forms.
type Circle struct {
	radius       unit.Distance
	initialTheta unit.Radian
	clockwise    bool
	span         float64
}

// NewCircle returns the circular orbit of the given radius.
func NewCircle(radius unit.Distance) (Circle, error) {
	if radius.IsZero() {
		return Circle{}, fmt.Errorf("%w: radius must be greater than zero", ErrInvalidOrbitParameters)
	}

	return Circle{radius: radius, span: unit.FullTurn}, nil
}

// WithInitialTheta returns the orbit offset by the given phase angle.
func (c Circle) WithInitialTheta(theta unit.Radian) Circle {
	c.initialTheta = theta
	return c
}

// WithClockwise returns the orbit swept in the given direction.
func (c Circle) WithClockwise(clockwise bool) Circle {
	c.clockwise = clockwise
	return c
}

// WithSpan returns the orbit sampled across the given angular span instead
// of a whole turn. Only sampling is affected.
func (c Circle) WithSpan(span unit.Radian) Circle {
	c.span = span.Radians()
	return c
}

// IsClockwise returns true if the orbit is swept clockwise.
func (c Circle) IsClockwise() bool {
	return c.clockwise
}

// InitialTheta returns the phase angle of the orbit at epoch.
func (c Circle) InitialTheta() unit.Radian {
	return c.initialTheta
}

// Focus implements [Orbit]. Both foci of a circle coincide with its center.
func (c Circle) Focus() cartesian.Coords {
	return cartesian.Coords{}
}

// Radius implements [Orbit].
func (c Circle) Radius() unit.Distance {
	return c.radius
}

// Perimeter implements [Orbit]: the circumference 2π·r.
func (c Circle) Perimeter() unit.Distance {
	return c.radius.Mul(unit.FullTurn)
}

// Period implements [Orbit]: 2π·sqrt(r³/μ).
func (c Circle) Period(orbitee Body) time.Duration {
	r := c.radius.Meters()
	mu := orbitee.GravitationalParameter()

	return time.Duration(unit.FullTurn * math.Sqrt(r*r*r/mu) * float64(time.Second))
}

// Frequency returns the number of revolutions per second around the given
// body.
func (c Circle) Frequency(orbitee Body) unit.Frequency {
	return unit.PerPeriod(c.Period(orbitee))
}

// ThetaAt implements [Orbit]. A circular orbit sweeps its phase angle at a
// constant rate, so no equation solving is involved.
func (c Circle) ThetaAt(t time.Duration, orbitee Body) unit.Radian {
	t = modPeriod(t, c.Period(orbitee))

	swept := unit.FullTurn * t.Seconds() / c.Period(orbitee).Seconds()
	if c.clockwise {
		swept = -swept
	}

	return c.initialTheta.Add(unit.Radians(swept))
}

// PositionAt implements [Orbit].
func (c Circle) PositionAt(t time.Duration, orbitee Body) cartesian.Coords {
	return c.positionFor(c.ThetaAt(t, orbitee))
}

func (c Circle) positionFor(theta unit.Radian) cartesian.Coords {
	r := c.radius.Kilometers()

	return cartesian.New(
		r*math.Cos(theta.Radians()),
		r*math.Sin(theta.Radians()),
		0,
	)
}

// VelocityAt implements [Orbit]. The speed along a circular orbit is
// constant.
func (c Circle) VelocityAt(t time.Duration, orbitee Body) unit.Velocity {
	r := c.radius.Meters()

	return visViva(orbitee.GravitationalParameter(), r, r)
}

// MinVelocity implements [Orbit]. It equals [Circle.MaxVelocity], since the
// speed never varies.
func (c Circle) MinVelocity(orbitee Body) unit.Velocity {
	return c.VelocityAt(0, orbitee)
}

// MaxVelocity implements [Orbit].
func (c Circle) MaxVelocity(orbitee Body) unit.Velocity {
	return c.VelocityAt(0, orbitee)
}

// Sample implements [cartesian.Sampler]: segments points across the orbit's
// angular span, starting at the initial theta and swept in the orbit's
// direction.
func (c Circle) Sample(segments int) cartesian.Shape {
	if segments <= 0 {
		return cartesian.Shape{}
	}

	step := c.span / float64(segments)
	if c.clockwise {
		step = -step
	}

	points := make([]cartesian.Coords, 0, segments)
	for index := 0; index < segments; index++ {
		theta := c.initialTheta.Add(unit.Radians(step * float64(index)))
		points = append(points, c.positionFor(theta))
	}

	return cartesian.Shape{Points: points}
}
