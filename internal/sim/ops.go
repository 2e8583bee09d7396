package sim

import "github.com/mvelde/orbitlab/internal/body"

// Descriptor carries the properties of a body to admit into a registry.
// Position and velocity are computed by the caller, typically with
// scenario.PlaceInOrbit.
type Descriptor struct {
	Name     string
	Kind     body.Kind
	Color    string
	Position body.Vec3
	Velocity body.Vec3
	Mass     float64
	Radius   float64
}

// AddBody appends one new body and returns the resulting snapshot. Invalid
// descriptors (non-positive mass or radius, non-finite state) are rejected
// before anything is copied. The new body gets the lowest ID not held by a
// live body; IDs of merged-away bodies are reused, but never by two bodies
// alive at once.
func AddBody(bodies []*body.Body, d Descriptor) ([]*body.Body, error) {
	nb := &body.Body{
		ID:       nextID(bodies),
		Name:     d.Name,
		Kind:     d.Kind,
		Color:    d.Color,
		Position: d.Position,
		Velocity: d.Velocity,
		Mass:     d.Mass,
		Radius:   d.Radius,
	}
	if err := nb.Validate(); err != nil {
		return nil, err
	}
	return append(body.CloneSet(bodies), nb), nil
}

func nextID(bodies []*body.Body) int {
	used := make(map[int]bool, len(bodies))
	for _, b := range bodies {
		used[b.ID] = true
	}
	for id := 0; ; id++ {
		if !used[id] {
			return id
		}
	}
}

// ClearTrails returns a snapshot identical to the input except that every
// trail is empty.
func ClearTrails(bodies []*body.Body) []*body.Body {
	next := body.CloneSet(bodies)
	for _, b := range next {
		b.ClearTrail()
	}
	return next
}

// Clear returns the empty registry. IDs restart from zero afterwards.
func Clear() []*body.Body {
	return []*body.Body{}
}
