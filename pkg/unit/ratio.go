package unit

// Ratio is a dimensionless value that must be within the range [0, 1].
// Out-of-range inputs are clamped to the nearest bound.
type Ratio struct {
	v float64
}

// RatioOf returns v as a ratio, clamped into [0, 1].
func RatioOf(v float64) Ratio {
	if v < 0 {
		return Ratio{v: 0}
	}
	if v > 1 {
		return Ratio{v: 1}
	}

	return Ratio{v: v}
}

// Value returns the ratio as a float64.
func (r Ratio) Value() float64 {
	return r.v
}

// IsZero returns true if the ratio is exactly zero.
func (r Ratio) IsZero() bool {
	return r.v == 0
}
