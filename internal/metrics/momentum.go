package metrics

import "github.com/mvelde/orbitlab/internal/body"

// TotalMomentum sums mass·velocity over the registry.
func TotalMomentum(bodies []*body.Body) body.Vec3 {
	var p body.Vec3
	for _, b := range bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

// Momentum reports the norm of the total linear momentum of the last
// observed snapshot. Merges conserve it; integration of a closed system
// should too, up to floating point.
type Momentum struct {
	last float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(bodies []*body.Body, t float64) {
	m.last = TotalMomentum(bodies).Length()
}

func (m *Momentum) Value() float64 { return m.last }
func (m *Momentum) Reset()         { m.last = 0 }

// BodyCount reports the minimum live body count seen, which is also the
// final count since merges only shrink the registry.
type BodyCount struct {
	min     int
	samples int
}

func NewBodyCount() *BodyCount { return &BodyCount{} }

func (c *BodyCount) Name() string { return "bodies" }

func (c *BodyCount) Observe(bodies []*body.Body, t float64) {
	if c.samples == 0 || len(bodies) < c.min {
		c.min = len(bodies)
	}
	c.samples++
}

func (c *BodyCount) Value() float64 { return float64(c.min) }

func (c *BodyCount) Reset() {
	c.min = 0
	c.samples = 0
}
