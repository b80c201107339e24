package unit

// Luminosity is the intensity at which an arbitrary object shines, always a
// non-negative number of watts. Non-luminous bodies have a luminosity of
// exactly zero.
type Luminosity struct {
	w float64
}

// SunLuminosity is the reference luminosity of the Sun.
var SunLuminosity = Watts(3.828e26)

// Watts returns a luminosity of w watts.
func Watts(w float64) Luminosity {
	return Luminosity{w: positive(w)}
}

// Watts returns the luminosity in watts.
func (l Luminosity) Watts() float64 {
	return l.w
}

// Suns returns the luminosity relative to the Sun's.
func (l Luminosity) Suns() float64 {
	return l.w / SunLuminosity.w
}

// IsZero returns true if the luminosity is exactly zero.
func (l Luminosity) IsZero() bool {
	return l.w == 0
}

// Mul returns the luminosity scaled by factor.
func (l Luminosity) Mul(factor float64) Luminosity {
	return Watts(l.w * factor)
}
