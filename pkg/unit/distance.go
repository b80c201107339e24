package unit

// Distance is the separation between two points in space. It is always a
// non-negative number of meters.
type Distance struct {
	m float64
}

// AstronomicalUnit is the mean Sun-Earth distance.
var AstronomicalUnit = Kilometers(149597870.7)

// Meters returns a distance of m meters.
func Meters(m float64) Distance {
	return Distance{m: positive(m)}
}

// Kilometers returns a distance of km kilometers.
func Kilometers(km float64) Distance {
	return Meters(km * 1000)
}

// Meters returns the distance in meters.
func (d Distance) Meters() float64 {
	return d.m
}

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 {
	return d.m / 1000
}

// IsZero returns true if the distance is exactly zero.
func (d Distance) IsZero() bool {
	return d.m == 0
}

// Add returns the sum of both distances.
func (d Distance) Add(rhs Distance) Distance {
	return Meters(d.m + rhs.m)
}

// Sub returns the difference between both distances. Since a distance is
// always non-negative the result is the magnitude of the difference.
func (d Distance) Sub(rhs Distance) Distance {
	return Meters(d.m - rhs.m)
}

// Mul returns the distance scaled by factor.
func (d Distance) Mul(factor float64) Distance {
	return Meters(d.m * factor)
}

// Div returns the distance divided by factor.
func (d Distance) Div(factor float64) Distance {
	return Meters(d.m / factor)
}

// Less returns true if d is strictly shorter than rhs.
func (d Distance) Less(rhs Distance) bool {
	return d.m < rhs.m
}
