package unit

// Mass is the mass of an arbitrary object, always a non-negative number of
// kilograms.
type Mass struct {
	kg float64
}

// Kilograms returns a mass of kg kilograms.
func Kilograms(kg float64) Mass {
	return Mass{kg: positive(kg)}
}

// Kilograms returns the mass in kilograms.
func (m Mass) Kilograms() float64 {
	return m.kg
}

// Add returns the sum of both masses.
func (m Mass) Add(rhs Mass) Mass {
	return Kilograms(m.kg + rhs.kg)
}

// Mul returns the mass scaled by factor.
func (m Mass) Mul(factor float64) Mass {
	return Kilograms(m.kg * factor)
}
