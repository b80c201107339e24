package orbit

import (
	"time"

	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/unit"
)

// SystemState is the time-dependent mirror of a [System] node: where every
// body is, how far it has rotated and how fast it moves at one instant.
// States are freshly allocated by [System.StateAt] and hold no reference
// back to the tree they were derived from.
type SystemState struct {
	// Name identifies the body this state belongs to.
	Name string

	// Rotation is the angle the body has spun about its own axis.
	Rotation unit.Radian

	// Position is the absolute position of the body.
	Position cartesian.Coords

	// Theta is the orbital phase angle. Zero for the root.
	Theta unit.Radian

	// Velocity is the instantaneous orbital speed. Zero for the root.
	Velocity unit.Velocity

	// Secondary holds the states of the orbiting systems, in the same
	// order as the source tree.
	Secondary []SystemState
}

// State returns the state of the body of the given name, or nil if no such
// body exists. The search is depth-first; the first match wins.
func (s *SystemState) State(name string) *SystemState {
	if s.Name == name {
		return s
	}

	for index := range s.Secondary {
		if found := s.Secondary[index].State(name); found != nil {
			return found
		}
	}

	return nil
}

// StateGenerator steps a system through time at a fixed pace, yielding one
// state per call. It is not safe for concurrent use.
type StateGenerator struct {
	system  *System
	step    time.Duration
	elapsed time.Duration
}

// NewStateGenerator returns a generator over the given system advancing by
// step on every call to Next.
func NewStateGenerator(system *System, step time.Duration) *StateGenerator {
	return &StateGenerator{system: system, step: step}
}

// Next returns the state at the current instant and advances the clock by
// one step.
func (g *StateGenerator) Next() SystemState {
	state := g.system.StateAt(g.elapsed)
	g.elapsed += g.step

	return state
}

// Elapsed returns the time the generator has advanced so far.
func (g *StateGenerator) Elapsed() time.Duration {
	return g.elapsed
}

// SetStep changes the pace of the generator from the next call onwards. A
// negative step plays the system backwards.
func (g *StateGenerator) SetStep(step time.Duration) {
	g.step = step
}
