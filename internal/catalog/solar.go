package catalog

import "math"

// SolarSystem returns the description of the Sun, its eight planets and
// Earth's moon, with real orbital elements and physical figures.
func SolarSystem() System {
	return System{
		Body: Body{
			Name:            "Sun",
			RadiusKm:        696340,
			MassKg:          1.9891e30,
			LuminosityWatts: 3.828e26,
			SpinSeconds:     25.05 * day,
		},
		Secondary: []System{
			planet("Mercury", 2439.7, 3.3011e23, 58.646*day, 57909050, 0.2056),
			planet("Venus", 6051.8, 4.8675e24, -243.025*day, 108208000, 0.0068),
			{
				Body: Body{
					Name:        "Earth",
					RadiusKm:    6371,
					MassKg:      5.97219e24,
					SpinSeconds: 86164.1,
				},
				Orbit: &Orbit{
					Shape:           ShapeEllipse,
					SemiMajorAxisKm: 149598023,
					Eccentricity:    0.0167,
				},
				Secondary: []System{
					planet("Moon", 1737.4, 7.34767e22, 27.322*day, 384400, 0.0549),
				},
			},
			planet("Mars", 3389.5, 6.4171e23, 1.026*day, 227939366, 0.0934),
			planet("Jupiter", 69911, 1.8982e27, 9.925*3600, 778479000, 0.0489),
			planet("Saturn", 58232, 5.6834e26, 10.56*3600, 1433530000, 0.0565),
			planet("Uranus", 25362, 8.681e25, -17.24*3600, 2870972000, 0.0472),
			planet("Neptune", 24622, 1.02413e26, 16.11*3600, 4500000000, 0.0086),
		},
	}
}

const day = 86400.0

// planet returns a leaf node with an elliptical orbit. A negative spin
// period denotes retrograde rotation.
func planet(name string, radiusKm, massKg, spinSeconds, semiMajorKm, eccentricity float64) System {
	return System{
		Body: Body{
			Name:          name,
			RadiusKm:      radiusKm,
			MassKg:        massKg,
			SpinSeconds:   math.Abs(spinSeconds),
			SpinClockwise: spinSeconds < 0,
		},
		Orbit: &Orbit{
			Shape:           ShapeEllipse,
			SemiMajorAxisKm: semiMajorKm,
			Eccentricity:    eccentricity,
		},
	}
}
