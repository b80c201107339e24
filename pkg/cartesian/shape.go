package cartesian

import (
	"orbital.space/pkg/unit"
)

// Shape is a succession of points representing an arbitrary figure.
type Shape struct {
	Points []Coords
}

// Sampler is a continuous shape that can be sampled into a discrete [Shape].
type Sampler interface {
	// Sample converts the continuous shape into exactly segments points.
	// Closing the figure, when wanted, is the caller's job: duplicate the
	// first point.
	Sample(segments int) Shape
}

// Arc is a portion of a circle's circumference.
type Arc struct {
	// Center of the circumference the arc belongs to.
	Center Coords
	// Start is the point the arc begins at.
	Start Coords
	// Axis about which the arc is swept.
	Axis Coords
	// Theta is the angle of the arc.
	Theta unit.Radian
}

// Sample implements [Sampler]. Each point is produced by moving the previous
// one into the arc's local frame, rotating it one step and moving it back.
func (a Arc) Sample(segments int) Shape {
	if segments <= 0 {
		return Shape{}
	}

	step := unit.Radians(a.Theta.Radians() / float64(segments))

	translation := Translate(a.Center.Neg())
	rotation := RotationAbout(a.Axis, step)

	points := make([]Coords, 0, segments)
	points = append(points, a.Start)

	for index := 1; index < segments; index++ {
		points = append(points, points[index-1].
			Transform(translation).
			Transform(rotation).
			Transform(translation.Neg()))
	}

	return Shape{Points: points}
}

// End returns the last point of the arc.
func (a Arc) End() Coords {
	translation := Translate(a.Center.Neg())
	rotation := RotationAbout(a.Axis, a.Theta)

	return a.Start.
		Transform(translation).
		Transform(rotation).
		Transform(translation.Neg())
}

// Radius returns the radius of the arc's circumference.
func (a Arc) Radius() float64 {
	return a.Center.Distance(a.Start)
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return a.Radius() * a.Theta.Radians()
}

// Perimeter returns the perimeter of the arc's circumference.
func (a Arc) Perimeter() float64 {
	return a.Radius() * unit.FullTurn
}

// Circle is a whole circumference. It exists apart from [Arc] because a full
// turn is not representable as an arc angle, which wraps at 2π.
type Circle struct {
	// Center of the circumference.
	Center Coords
	// Start is the point the sampling begins at.
	Start Coords
	// Axis about which the circumference is swept.
	Axis Coords
}

// Sample implements [Sampler]. Consecutive points are equidistant from the
// center and separated by equal angular steps.
func (c Circle) Sample(segments int) Shape {
	if segments <= 0 {
		return Shape{}
	}

	step := unit.Radians(unit.FullTurn / float64(segments))

	translation := Translate(c.Center.Neg())
	rotation := RotationAbout(c.Axis, step)

	points := make([]Coords, 0, segments)
	points = append(points, c.Start)

	for index := 1; index < segments; index++ {
		points = append(points, points[index-1].
			Transform(translation).
			Transform(rotation).
			Transform(translation.Neg()))
	}

	return Shape{Points: points}
}

// Radius returns the radius of the circumference.
func (c Circle) Radius() float64 {
	return c.Center.Distance(c.Start)
}

// Perimeter returns the perimeter of the circumference.
func (c Circle) Perimeter() float64 {
	return c.Radius() * unit.FullTurn
}
