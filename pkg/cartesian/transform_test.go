package cartesian

import (
	"math"
	"testing"

	"orbital.space/pkg/unit"
)

// approxEq reports whether got and want differ by at most absError on every
// component.
func approxEq(got, want Coords, absError float64) bool {
	return math.Abs(got.X-want.X) <= absError &&
		math.Abs(got.Y-want.Y) <= absError &&
		math.Abs(got.Z-want.Z) <= absError
}

func TestRotation(t *testing.T) {
	const absError = 3e-16

	tests := []struct {
		name  string
		theta float64
		axis  Coords
		input Coords
		want  Coords
	}{
		{
			name:  "full rotation on the x axis must not change the y point",
			theta: 2 * math.Pi,
			axis:  New(1, 0, 0),
			input: New(0, 1, 0),
			want:  New(0, 1, 0),
		},
		{
			name:  "half of a whole rotation on the x axis must negate the y point",
			theta: math.Pi,
			axis:  New(1, 0, 0),
			input: New(0, 1, 0),
			want:  New(0, -1, 0),
		},
		{
			name:  "a quarter of a whole rotation on the x axis must move y into z",
			theta: math.Pi / 2,
			axis:  New(1, 0, 0),
			input: New(0, 1, 0),
			want:  New(0, 0, 1),
		},
		{
			name:  "half of a whole rotation on the z axis must negate the y point",
			theta: math.Pi,
			axis:  New(0, 0, 1),
			input: New(0, 1, 0),
			want:  New(0, -1, 0),
		},
		{
			name:  "a quarter of a whole rotation on the z axis must move y into -x",
			theta: math.Pi / 2,
			axis:  New(0, 0, 1),
			input: New(0, 1, 0),
			want:  New(-1, 0, 0),
		},
		{
			name:  "rotating a point over its own axis must not change it",
			theta: math.Pi / 2,
			axis:  New(0, 1, 0),
			input: New(0, 1, 0),
			want:  New(0, 1, 0),
		},
		{
			name:  "the axis is normalized before use",
			theta: math.Pi,
			axis:  New(7, 0, 0),
			input: New(0, 1, 0),
			want:  New(0, -1, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.Transform(RotationAbout(tc.axis, unit.Radians(tc.theta)))
			if !approxEq(got, tc.want, absError) {
				t.Errorf("got %+v, want %+v ± %v", got, tc.want, absError)
			}
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	const absError = 1e-15

	point := New(0.3, -1.7, 2.5)
	rotation := RotationAbout(New(1, 2, -1), unit.Radians(1.234))

	got := point.Transform(rotation).Transform(rotation.Neg())
	if !approxEq(got, point, absError) {
		t.Errorf("rotate then unrotate: got %+v, want %+v", got, point)
	}
}

func TestTranslation(t *testing.T) {
	tests := []struct {
		name   string
		vector Coords
		input  Coords
		want   Coords
	}{
		{
			name:   "the negative of the input should move the point to the origin",
			vector: New(-1, -2, -3),
			input:  New(1, 2, 3),
			want:   New(0, 0, 0),
		},
		{
			name:   "translation should be the sum of both vectors",
			vector: New(1, 2, 3),
			input:  New(8, 7, 6),
			want:   New(9, 9, 9),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.Transform(Translate(tc.vector))
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	point := New(4.25, -8.5, 17)
	translation := Translate(New(-1.5, 2.25, 9))

	if got := point.Transform(translation).Transform(translation.Neg()); got != point {
		t.Errorf("translate then untranslate: got %+v, want %+v", got, point)
	}
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		input  Coords
		want   Coords
	}{
		{
			name:   "factor of 1 should not change the point",
			factor: 1,
			input:  New(0, 1, 0),
			want:   New(0, 1, 0),
		},
		{
			name:   "factor of 2 should duplicate the magnitude of the point",
			factor: 2,
			input:  New(0, 1, 0),
			want:   New(0, 2, 0),
		},
		{
			name:   "factor of a half should divide the magnitude by two",
			factor: 0.5,
			input:  New(0, 1, 0),
			want:   New(0, 0.5, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.Transform(ScaleBy(tc.factor))
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTransformComposition(t *testing.T) {
	const absError = 1e-12

	// Rotating about an axis centered away from the origin requires moving
	// the point into the local frame, rotating, and moving it back.
	center := New(10, 0, 0)
	point := New(11, 0, 0)

	translation := Translate(center.Neg())
	rotation := RotationAbout(New(0, 0, 1), unit.Radians(math.Pi/2))

	got := point.
		Transform(translation).
		Transform(rotation).
		Transform(translation.Neg())

	if want := New(10, 1, 0); !approxEq(got, want, absError) {
		t.Errorf("pivoted rotation: got %+v, want %+v", got, want)
	}
}
