package geographic

import (
	"math"
	"testing"

	"orbital.space/pkg/cartesian"
)

func TestCartesianFromGeographic(t *testing.T) {
	tests := []struct {
		name  string
		input Coords
		want  cartesian.Coords
	}{
		{
			name:  "north point",
			input: Coords{Latitude: NewLatitude(math.Pi / 2)},
			want:  cartesian.New(0, 0, 1),
		},
		{
			name:  "south point",
			input: Coords{Latitude: NewLatitude(-math.Pi / 2)},
			want:  cartesian.New(0, 0, -1),
		},
		{
			name:  "east point",
			input: Coords{Longitude: NewLongitude(math.Pi / 2)},
			want:  cartesian.New(0, 1, 0),
		},
		{
			name:  "west point",
			input: Coords{Longitude: NewLongitude(-math.Pi / 2)},
			want:  cartesian.New(0, -1, 0),
		},
		{
			name:  "front point",
			input: Coords{},
			want:  cartesian.New(1, 0, 0),
		},
		{
			name:  "back point as negative bound",
			input: Coords{Longitude: NewLongitude(-math.Pi)},
			want:  cartesian.New(-1, 0, 0),
		},
		{
			name:  "altitude scales the radial distance",
			input: Coords{Altitude: 2.5},
			want:  cartesian.New(2.5, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.input.Cartesian(); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLongitudeWrapsConsecutively(t *testing.T) {
	// Overflowing one bound continues from the other in the same direction.
	overflowed := NewLongitude(math.Pi + 1)
	equivalent := NewLongitude(-math.Pi + 1)

	if math.Abs(overflowed.Radians()-equivalent.Radians()) > 1e-12 {
		t.Errorf("lon(π+1) = %v, want %v", overflowed.Radians(), equivalent.Radians())
	}
}

func TestLatitudeFoldsBack(t *testing.T) {
	const absError = 2e-16

	overflowed := NewLatitude(-5 * math.Pi / 4)
	equivalent := NewLatitude(math.Pi / 4)

	if math.Abs(overflowed.Radians()-equivalent.Radians()) > absError {
		t.Errorf("lat(-5π/4) = %v, want %v", overflowed.Radians(), equivalent.Radians())
	}
}

func TestGeographicRoundTrip(t *testing.T) {
	const absError = 1e-12

	tests := []struct {
		name  string
		input Coords
	}{
		{name: "mid latitudes", input: Coords{Longitude: NewLongitude(0.7), Latitude: NewLatitude(-0.4), Altitude: 6371}},
		{name: "west hemisphere", input: Coords{Longitude: NewLongitude(-2.1), Latitude: NewLatitude(1.1), Altitude: 42}},
		{name: "equator", input: Coords{Longitude: NewLongitude(1.5), Altitude: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromCartesian(tc.input.Cartesian())

			if math.Abs(got.Longitude.Radians()-tc.input.Longitude.Radians()) > absError {
				t.Errorf("longitude = %v, want %v", got.Longitude.Radians(), tc.input.Longitude.Radians())
			}
			if math.Abs(got.Latitude.Radians()-tc.input.Latitude.Radians()) > absError {
				t.Errorf("latitude = %v, want %v", got.Latitude.Radians(), tc.input.Latitude.Radians())
			}
			if math.Abs(got.Altitude-tc.input.Altitude) > absError {
				t.Errorf("altitude = %v, want %v", got.Altitude, tc.input.Altitude)
			}
		})
	}
}
