// Package cartesian provides points, geometric transformations and shape
// sampling over a right-handed three dimensional space. Throughout the
// engine the cartesian space is kilometric: one unit equals one kilometer.
package cartesian

import "math"

// Coords is a point or displacement in cartesian space.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// New returns the point at the given components.
func New(x, y, z float64) Coords {
	return Coords{X: x, Y: y, Z: z}
}

// Add returns the sum of both points.
func (c Coords) Add(rhs Coords) Coords {
	return Coords{X: c.X + rhs.X, Y: c.Y + rhs.Y, Z: c.Z + rhs.Z}
}

// Sub returns the difference between both points.
func (c Coords) Sub(rhs Coords) Coords {
	return Coords{X: c.X - rhs.X, Y: c.Y - rhs.Y, Z: c.Z - rhs.Z}
}

// Neg returns the opposite of the point.
func (c Coords) Neg() Coords {
	return Coords{X: -c.X, Y: -c.Y, Z: -c.Z}
}

// Scale returns the point scaled by factor.
func (c Coords) Scale(factor float64) Coords {
	return Coords{X: c.X * factor, Y: c.Y * factor, Z: c.Z * factor}
}

// Dot returns the dot product between both points.
func (c Coords) Dot(rhs Coords) float64 {
	return c.X*rhs.X + c.Y*rhs.Y + c.Z*rhs.Z
}

// Cross returns the cross product between both points.
func (c Coords) Cross(rhs Coords) Coords {
	return Coords{
		X: c.Y*rhs.Z - c.Z*rhs.Y,
		Y: c.Z*rhs.X - c.X*rhs.Z,
		Z: c.X*rhs.Y - c.Y*rhs.X,
	}
}

// Magnitude returns the distance of the point from the origin.
func (c Coords) Magnitude() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// Distance returns the distance between both points.
func (c Coords) Distance(rhs Coords) float64 {
	return c.Sub(rhs).Magnitude()
}

// Unit returns the unitary vector of the point. The zero vector has no
// direction and is returned unchanged.
func (c Coords) Unit() Coords {
	mag := c.Magnitude()
	if mag < 1e-10 {
		return Coords{}
	}

	return c.Scale(1 / mag)
}

// Transform applies the given transformation over the point. Chained calls
// apply left to right: c.Transform(t1).Transform(t2) performs t1 first.
func (c Coords) Transform(t Transform) Coords {
	return t.Transform(c)
}
