// Package catalog turns serializable system descriptions into orbital
// system trees and persists them by name.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"orbital.space/pkg/orbit"
	"orbital.space/pkg/unit"
)

// Shape names accepted by an orbit description.
const (
	ShapeEllipse = "ellipse"
	ShapeCircle  = "circle"
)

var (
	// ErrDuplicateName is returned when two bodies in a description share
	// a name. Lookups match by name alone, so names must be unique.
	ErrDuplicateName = errors.New("duplicate body name")

	// ErrUnknownShape is returned when an orbit description names a shape
	// other than ellipse or circle.
	ErrUnknownShape = errors.New("unknown orbit shape")

	// ErrMissingOrbit is returned when a non-root body has no orbit.
	ErrMissingOrbit = errors.New("non-root body without an orbit")
)

// Body describes a celestial body. All magnitudes are expressed in the
// units their field names carry.
type Body struct {
	Name            string  `json:"name"`
	RadiusKm        float64 `json:"radius_km"`
	MassKg          float64 `json:"mass_kg"`
	LuminosityWatts float64 `json:"luminosity_watts,omitempty"`
	SpinSeconds     float64 `json:"spin_seconds,omitempty"`
	SpinClockwise   bool    `json:"spin_clockwise,omitempty"`
}

// Orbit describes the path of a body around its parent.
type Orbit struct {
	Shape            string  `json:"shape"`
	SemiMajorAxisKm  float64 `json:"semi_major_axis_km,omitempty"`
	RadiusKm         float64 `json:"radius_km,omitempty"`
	Eccentricity     float64 `json:"eccentricity,omitempty"`
	InitialThetaRads float64 `json:"initial_theta_rads,omitempty"`
	Clockwise        bool    `json:"clockwise,omitempty"`
}

// System is the serializable description of an orbital system tree. The
// root carries no orbit; every other node must carry one.
type System struct {
	Body      Body     `json:"body"`
	Orbit     *Orbit   `json:"orbit,omitempty"`
	Secondary []System `json:"secondary,omitempty"`
}

// Build validates the description and returns the system tree it
// describes.
func (s System) Build() (*orbit.System, error) {
	seen := make(map[string]struct{})

	built, err := s.build(true, seen)
	if err != nil {
		return nil, err
	}

	return built, nil
}

func (s System) build(root bool, seen map[string]struct{}) (*orbit.System, error) {
	if _, dup := seen[s.Body.Name]; dup {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, s.Body.Name)
	}
	seen[s.Body.Name] = struct{}{}

	node := &orbit.System{Primary: s.Body.build()}

	if s.Orbit == nil && !root {
		return nil, fmt.Errorf("%w: %q", ErrMissingOrbit, s.Body.Name)
	}
	if s.Orbit != nil {
		path, err := s.Orbit.build()
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", s.Body.Name, err)
		}

		node.Orbit = path
	}

	node.Secondary = make([]orbit.System, 0, len(s.Secondary))
	for _, child := range s.Secondary {
		sub, err := child.build(false, seen)
		if err != nil {
			return nil, err
		}

		node.Secondary = append(node.Secondary, *sub)
	}

	return node, nil
}

func (b Body) build() orbit.Body {
	return orbit.Body{
		Name:       b.Name,
		Radius:     unit.Kilometers(b.RadiusKm),
		Mass:       unit.Kilograms(b.MassKg),
		Luminosity: unit.Watts(b.LuminosityWatts),
		Spin: orbit.Spin{
			Period:    time.Duration(b.SpinSeconds * float64(time.Second)),
			Clockwise: b.SpinClockwise,
		},
	}
}

func (o Orbit) build() (orbit.Orbit, error) {
	switch o.Shape {
	case ShapeEllipse:
		built, err := orbit.NewEllipse(unit.Kilometers(o.SemiMajorAxisKm), o.Eccentricity)
		if err != nil {
			return nil, err
		}

		return built.
			WithInitialTheta(unit.Radians(o.InitialThetaRads)).
			WithClockwise(o.Clockwise), nil
	case ShapeCircle:
		built, err := orbit.NewCircle(unit.Kilometers(o.RadiusKm))
		if err != nil {
			return nil, err
		}

		return built.
			WithInitialTheta(unit.Radians(o.InitialThetaRads)).
			WithClockwise(o.Clockwise), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, o.Shape)
}
