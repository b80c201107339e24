package orbit

import (
	"time"

	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/unit"
)

// System is a node of a hierarchical orbital system: a primary body, the
// orbit binding it to its parent, and the systems orbiting it in turn. The
// root of a tree has a nil Orbit. Trees are built once and never mutated;
// everything derived from them is recomputed on demand.
type System struct {
	// Primary is the body at the center of this subtree.
	Primary Body

	// Orbit describes the path of Primary around its parent's body. It is
	// nil on the root node.
	Orbit Orbit

	// Secondary holds the systems orbiting Primary.
	Secondary []System
}

// System returns the subtree rooted at the body of the given name, or nil
// if no such body exists. The search is depth-first; names are assumed
// unique across the tree, so the first match wins.
func (s *System) System(name string) *System {
	if s.Primary.Name == name {
		return s
	}

	for index := range s.Secondary {
		if found := s.Secondary[index].System(name); found != nil {
			return found
		}
	}

	return nil
}

// Radius returns the maximal extent of the whole subtree: the primary's own
// extent plus the largest extent among its secondaries.
func (s *System) Radius() unit.Distance {
	own := s.Primary.Radius
	if s.Orbit != nil {
		own = own.Add(s.Orbit.Radius())
	}

	var largest unit.Distance
	for index := range s.Secondary {
		if extent := s.Secondary[index].Radius(); largest.Less(extent) {
			largest = extent
		}
	}

	return own.Add(largest)
}

// StateAt returns the state of every body in the subtree after the given
// time since epoch. The tree is walked top-down: each node's orbit is
// solved against its parent's body and already-resolved absolute position,
// so a node's state never depends on its siblings.
func (s *System) StateAt(t time.Duration) SystemState {
	return s.stateAt(t, Body{}, cartesian.Coords{})
}

func (s *System) stateAt(t time.Duration, parent Body, parentPosition cartesian.Coords) SystemState {
	state := SystemState{
		Name:     s.Primary.Name,
		Rotation: spinAt(t, s.Primary.Spin),
		Position: parentPosition,
	}

	if s.Orbit != nil {
		state.Theta = s.Orbit.ThetaAt(t, parent)
		state.Velocity = s.Orbit.VelocityAt(t, parent)
		state.Position = s.Orbit.PositionAt(t, parent).
			Transform(cartesian.Translate(parentPosition)).
			Transform(cartesian.Translate(s.Orbit.Focus()))
	}

	state.Secondary = make([]SystemState, 0, len(s.Secondary))
	for index := range s.Secondary {
		state.Secondary = append(state.Secondary, s.Secondary[index].stateAt(t, s.Primary, state.Position))
	}

	return state
}

// spinAt returns the angle a body has rotated about its own axis after the
// given time since epoch. Bodies without a rotation period do not spin.
func spinAt(t time.Duration, spin Spin) unit.Radian {
	if spin.Period <= 0 {
		return unit.Radian{}
	}

	t = modPeriod(t, spin.Period)

	angle := unit.FullTurn * t.Seconds() / spin.Period.Seconds()
	if spin.Clockwise {
		angle = -angle
	}

	return unit.Radians(angle)
}
