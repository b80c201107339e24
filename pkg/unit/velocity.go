package unit

// Velocity is the speed at which an arbitrary object moves through space,
// always a non-negative number of meters per second.
type Velocity struct {
	ms float64
}

// MetersPerSecond returns a velocity of v meters per second.
func MetersPerSecond(v float64) Velocity {
	return Velocity{ms: positive(v)}
}

// MetersPerSecond returns the velocity in meters per second.
func (v Velocity) MetersPerSecond() float64 {
	return v.ms
}

// KilometersPerSecond returns the velocity in kilometers per second.
func (v Velocity) KilometersPerSecond() float64 {
	return v.ms / 1000
}

// Less returns true if v is strictly slower than rhs.
func (v Velocity) Less(rhs Velocity) bool {
	return v.ms < rhs.ms
}
