package orbit

import (
	"time"

	"orbital.space/pkg/unit"
)

// SystemStats is the time-independent mirror of a [System] node: the
// figures of the orbit and the habitable zone of the body. Stats never
// change for a given tree, so callers should compute them once and reuse
// them.
type SystemStats struct {
	// Name identifies the body these stats belong to.
	Name string

	// Radius is the maximal extent of the orbit. Zero for the root.
	Radius unit.Distance

	// Perimeter is the length of one revolution. Zero for the root.
	Perimeter unit.Distance

	// Period is the duration of one revolution. Zero for the root.
	Period time.Duration

	// MinVelocity is the orbital speed at the farthest point.
	MinVelocity unit.Velocity

	// MaxVelocity is the orbital speed at the nearest point.
	MaxVelocity unit.Velocity

	// HabitableZone bounds the distances at which water stays liquid
	// under the body's own light. Degenerate for non-luminous bodies.
	HabitableZone HabitableZone

	// Secondary holds the stats of the orbiting systems, in the same
	// order as the source tree.
	Secondary []SystemStats
}

// Stats returns the statistics of every body in the subtree.
func (s *System) Stats() SystemStats {
	return s.stats(Body{})
}

func (s *System) stats(parent Body) SystemStats {
	stats := SystemStats{
		Name:          s.Primary.Name,
		HabitableZone: HabitableZoneOf(s.Primary.Luminosity),
	}

	if s.Orbit != nil {
		stats.Radius = s.Orbit.Radius()
		stats.Perimeter = s.Orbit.Perimeter()
		stats.Period = s.Orbit.Period(parent)
		stats.MinVelocity = s.Orbit.MinVelocity(parent)
		stats.MaxVelocity = s.Orbit.MaxVelocity(parent)
	}

	stats.Secondary = make([]SystemStats, 0, len(s.Secondary))
	for index := range s.Secondary {
		stats.Secondary = append(stats.Secondary, s.Secondary[index].stats(s.Primary))
	}

	return stats
}

// Stats returns the stats of the body of the given name, or nil if no such
// body exists. The search is depth-first; the first match wins.
func (s *SystemStats) Stats(name string) *SystemStats {
	if s.Name == name {
		return s
	}

	for index := range s.Secondary {
		if found := s.Secondary[index].Stats(name); found != nil {
			return found
		}
	}

	return nil
}
