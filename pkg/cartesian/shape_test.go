package cartesian

import (
	"math"
	"testing"

	"orbital.space/pkg/unit"
)

func TestArcSampleCountAndEnd(t *testing.T) {
	arc := Arc{
		Center: New(0, 0, 0),
		Start:  New(1, 0, 0),
		Axis:   New(0, 0, 1),
		Theta:  unit.Radians(math.Pi),
	}

	const segments = 16
	shape := arc.Sample(segments)

	if got := len(shape.Points); got != segments {
		t.Fatalf("sample(%d) returned %d points", segments, got)
	}
	if got := shape.Points[0]; got != arc.Start {
		t.Errorf("first sampled point = %+v, want the start %+v", got, arc.Start)
	}

	// The sample stops one step short of the arc's end.
	end := arc.End()
	if want := New(-1, 0, 0); !approxEq(end, want, 1e-14) {
		t.Errorf("half-turn end = %+v, want %+v", end, want)
	}
}

func TestArcSampleKeepsRadius(t *testing.T) {
	arc := Arc{
		Center: New(3, -2, 1),
		Start:  New(3, 3, 1),
		Axis:   New(0, 0, 1),
		Theta:  unit.Radians(3 * math.Pi / 2),
	}

	radius := arc.Radius()
	for i, point := range arc.Sample(32).Points {
		if got := arc.Center.Distance(point); math.Abs(got-radius) > 1e-12 {
			t.Errorf("point %d at distance %v from center, want %v", i, got, radius)
		}
	}
}

func TestCircleSampleIsEquidistant(t *testing.T) {
	circle := Circle{
		Center: New(5, 5, 0),
		Start:  New(7, 5, 0),
		Axis:   New(0, 0, 1),
	}

	const segments = 24
	shape := circle.Sample(segments)

	if got := len(shape.Points); got != segments {
		t.Fatalf("sample(%d) returned %d points", segments, got)
	}

	radius := circle.Radius()
	chord := 2 * radius * math.Sin(math.Pi/segments)

	for i, point := range shape.Points {
		if got := circle.Center.Distance(point); math.Abs(got-radius) > 1e-12 {
			t.Errorf("point %d at distance %v from center, want %v", i, got, radius)
		}

		next := shape.Points[(i+1)%segments]
		if got := point.Distance(next); math.Abs(got-chord) > 1e-9 {
			t.Errorf("chord %d has length %v, want %v", i, got, chord)
		}
	}
}

func TestSampleWithoutSegments(t *testing.T) {
	if got := (Arc{}).Sample(0).Points; len(got) != 0 {
		t.Errorf("arc sample(0) returned %d points, want none", len(got))
	}
	if got := (Circle{}).Sample(-3).Points; len(got) != 0 {
		t.Errorf("circle sample(-3) returned %d points, want none", len(got))
	}
}
