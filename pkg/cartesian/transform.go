package cartesian

import (
	"math"

	"orbital.space/pkg/unit"
)

// Transform is a geometric transformation over a point.
type Transform interface {
	// Transform performs the transformation over the given point.
	Transform(Coords) Coords
}

// Translation shifts a point by a fixed vector.
type Translation struct {
	Vector Coords
}

// Translate returns the translation by the given vector.
func Translate(vector Coords) Translation {
	return Translation{Vector: vector}
}

// Transform implements [Transform].
func (t Translation) Transform(point Coords) Coords {
	return point.Add(t.Vector)
}

// Neg returns the inverse translation, which undoes t.
func (t Translation) Neg() Translation {
	return Translation{Vector: t.Vector.Neg()}
}

// Add returns the translation equivalent to applying both in sequence.
func (t Translation) Add(rhs Translation) Translation {
	return Translation{Vector: t.Vector.Add(rhs.Vector)}
}

// Rotation rotates a point about an axis through the origin by theta
// radians, following the right hand rule.
type Rotation struct {
	axis  Coords
	theta unit.Radian
}

// RotationAbout returns the rotation of theta radians about the given axis.
// The axis is normalized to unit length, so callers need not pre-normalize.
func RotationAbout(axis Coords, theta unit.Radian) Rotation {
	return Rotation{axis: axis.Unit(), theta: theta}
}

// Axis returns the unitary axis of rotation.
func (r Rotation) Axis() Coords {
	return r.axis
}

// Theta returns the angle of rotation.
func (r Rotation) Theta() unit.Radian {
	return r.theta
}

// Transform implements [Transform] through the Rodrigues rotation formula
// expressed as a 3x3 matrix.
func (r Rotation) Transform(point Coords) Coords {
	sin := math.Sin(r.theta.Radians())
	cos := math.Cos(r.theta.Radians())
	sub1Cos := 1 - cos

	x, y, z := r.axis.X, r.axis.Y, r.axis.Z

	return Coords{
		X: (cos+x*x*sub1Cos)*point.X + (x*y*sub1Cos-z*sin)*point.Y + (x*z*sub1Cos+y*sin)*point.Z,
		Y: (y*x*sub1Cos+z*sin)*point.X + (cos+y*y*sub1Cos)*point.Y + (y*z*sub1Cos-x*sin)*point.Z,
		Z: (z*x*sub1Cos-y*sin)*point.X + (z*y*sub1Cos+x*sin)*point.Y + (cos+z*z*sub1Cos)*point.Z,
	}
}

// Neg returns the inverse rotation, which undoes r.
func (r Rotation) Neg() Rotation {
	return Rotation{axis: r.axis, theta: r.theta.Neg()}
}

// Scaling scales a point uniformly from the origin.
type Scaling struct {
	Factor float64
}

// ScaleBy returns the uniform scaling by the given factor.
func ScaleBy(factor float64) Scaling {
	return Scaling{Factor: factor}
}

// Transform implements [Transform].
func (s Scaling) Transform(point Coords) Coords {
	return point.Scale(s.Factor)
}
