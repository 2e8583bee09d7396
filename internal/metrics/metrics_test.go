package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/scenario"
	"github.com/mvelde/orbitlab/internal/sim"
)

func TestTotalEnergyTwoBody(t *testing.T) {
	bodies := []*body.Body{
		{Mass: 2, Radius: 1, Velocity: body.Vec3{X: 3}},
		{Mass: 4, Radius: 1, Position: body.Vec3{X: 10}},
	}

	// KE = ½·2·9, PE = -G·2·4 / (10 m scaled to meters).
	want := 9.0 - 6.67430e-11*8/(10/1e-9)
	if got := TotalEnergy(bodies); math.Abs(got-want) > math.Abs(want)*1e-12 {
		t.Errorf("TotalEnergy = %v, want %v", got, want)
	}
}

func TestTotalMomentum(t *testing.T) {
	bodies := []*body.Body{
		{Mass: 2, Velocity: body.Vec3{X: 1, Y: 2, Z: 3}},
		{Mass: 6, Velocity: body.Vec3{X: 4, Y: 5, Z: 6}},
	}

	want := body.Vec3{X: 26, Y: 34, Z: 42}
	if got := TotalMomentum(bodies); got != want {
		t.Errorf("TotalMomentum = %v, want %v", got, want)
	}
}

// A merge replaces two bodies with one of identical total momentum.
func TestMomentumConservedThroughMerge(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Mass: 2, Radius: 2, Velocity: body.Vec3{X: 1, Y: 2, Z: 3}},
		{ID: 1, Mass: 6, Radius: 2, Velocity: body.Vec3{X: 4, Y: 5, Z: 6},
			Position: body.Vec3{X: 3}},
	}
	before := TotalMomentum(bodies)

	after, st := sim.Step(bodies, sim.DefaultConfig().Dt(), sim.DefaultConfig())
	if st.Merges != 1 {
		t.Fatalf("merges = %d, want 1", st.Merges)
	}
	// Both bodies are gone; the survivor's momentum plus one step of mutual
	// gravity (zero net) must match.
	if d := TotalMomentum(after).Sub(before).Length(); d > before.Length()*1e-12 {
		t.Errorf("momentum changed by %v across a merge", d)
	}
}

func TestEnergyDriftCircularOrbit(t *testing.T) {
	bodies := scenario.BinaryStars()

	drift := NewEnergyDrift()
	r := sim.NewRunner(sim.DefaultConfig())
	r.AddMetric(drift)

	res, err := r.Run(context.Background(), bodies, 50)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stats.Merges != 0 {
		t.Fatalf("stars merged, drift not meaningful")
	}
	if drift.Value() > 0.1 {
		t.Errorf("energy drift = %v over 50 days, want a bounded oscillation", drift.Value())
	}
}

func TestBodyCountMetric(t *testing.T) {
	c := NewBodyCount()
	c.Observe(make([]*body.Body, 5), 0)
	c.Observe(make([]*body.Body, 3), 1)
	c.Observe(make([]*body.Body, 3), 2)

	if c.Value() != 3 {
		t.Errorf("BodyCount = %v, want 3", c.Value())
	}

	c.Reset()
	c.Observe(make([]*body.Body, 7), 0)
	if c.Value() != 7 {
		t.Errorf("BodyCount after reset = %v, want 7", c.Value())
	}
}

func TestEnergyMetricReportsLast(t *testing.T) {
	e := NewEnergy()
	e.Observe([]*body.Body{{Mass: 2, Radius: 1, Velocity: body.Vec3{X: 3}}}, 0)

	if want := 9.0; e.Value() != want {
		t.Errorf("Energy = %v, want %v", e.Value(), want)
	}
}
