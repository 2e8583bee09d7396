package body

import "math"

// Kind labels a body for display. It has no effect on the physics.
type Kind string

const (
	Star     Kind = "star"
	Planet   Kind = "planet"
	Moon     Kind = "moon"
	Asteroid Kind = "asteroid"
)

// Body is a point mass with spatial extent. The radius is used only for
// collision testing and display sizing. Positions are in simulation-space
// units, velocities in m/s.
type Body struct {
	ID       int
	Name     string
	Kind     Kind
	Color    string // hex, display-only
	Position Vec3
	Velocity Vec3
	Mass     float64 // kg
	Radius   float64 // simulation units
	Trail    []Vec3  // past positions, oldest first
}

// Validate reports whether the body may be admitted into a registry.
func (b *Body) Validate() error {
	if b.Mass <= 0 || math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
		return ErrNonPositiveMass
	}
	if b.Radius <= 0 || math.IsNaN(b.Radius) || math.IsInf(b.Radius, 0) {
		return ErrNonPositiveRadius
	}
	if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
		return ErrNonFiniteState
	}
	return nil
}

// Clone returns an independent deep copy, trail included.
func (b *Body) Clone() *Body {
	c := *b
	c.Trail = make([]Vec3, len(b.Trail))
	copy(c.Trail, b.Trail)
	return &c
}

// CloneSet deep-copies a registry snapshot.
func CloneSet(bodies []*Body) []*Body {
	out := make([]*Body, len(bodies))
	for i, b := range bodies {
		out[i] = b.Clone()
	}
	return out
}
