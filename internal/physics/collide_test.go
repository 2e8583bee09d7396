package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mvelde/orbitlab/internal/body"
)

func TestResolveMassConservation(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Name: "A", Mass: 10, Radius: 2},
		{ID: 1, Name: "B", Mass: 30, Radius: 2, Position: body.Vec3{X: 3}},
	}

	live, merges, rejected := Resolve(bodies)

	if merges != 1 || rejected != 0 {
		t.Fatalf("merges = %d, rejected = %d", merges, rejected)
	}
	if len(live) != 1 {
		t.Fatalf("survivors = %d, want 1", len(live))
	}
	if live[0].Mass != 40 {
		t.Errorf("merged mass = %v, want exactly 40", live[0].Mass)
	}
	if want := math.Cbrt(16); math.Abs(live[0].Radius-want) > 1e-12 {
		t.Errorf("merged radius = %v, want cbrt(2³+2³) = %v", live[0].Radius, want)
	}
}

func TestResolveMomentumConservation(t *testing.T) {
	a := &body.Body{ID: 0, Mass: 2, Radius: 1, Velocity: body.Vec3{X: 1, Y: 2, Z: 3}}
	b := &body.Body{ID: 1, Mass: 6, Radius: 1, Velocity: body.Vec3{X: 4, Y: 5, Z: 6}, Position: body.Vec3{X: 1}}

	live, _, _ := Resolve([]*body.Body{a, b})
	if len(live) != 1 {
		t.Fatalf("survivors = %d, want 1", len(live))
	}

	want := body.Vec3{X: 3.25, Y: 4.25, Z: 5.25} // (2·v_a + 6·v_b) / 8
	if diff := live[0].Velocity.Sub(want).Length(); diff > 1e-12 {
		t.Errorf("merged velocity = %v, want %v", live[0].Velocity, want)
	}
}

func TestResolveSurvivorIdentity(t *testing.T) {
	a := &body.Body{ID: 4, Name: "keeper", Kind: body.Planet, Color: "#4f94cd",
		Mass: 10, Radius: 2, Position: body.Vec3{X: 1}, Trail: []body.Vec3{{X: 0, Y: 0, Z: 0}}}
	b := &body.Body{ID: 9, Name: "gone", Kind: body.Asteroid, Color: "#8f8f8f",
		Mass: 1, Radius: 1, Position: body.Vec3{X: 3}, Trail: []body.Vec3{{X: 5, Y: 0, Z: 0}}}

	live, _, _ := Resolve([]*body.Body{a, b})
	if len(live) != 1 {
		t.Fatalf("survivors = %d, want 1", len(live))
	}

	s := live[0]
	if s.ID != 4 || s.Name != "keeper" || s.Kind != body.Planet || s.Color != "#4f94cd" {
		t.Errorf("survivor lost its identity: %+v", s)
	}
	if s.Position != (body.Vec3{X: 1}) {
		t.Errorf("survivor position changed: %v", s.Position)
	}
	if len(s.Trail) != 1 || s.Trail[0] != (body.Vec3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("survivor trail changed: %v", s.Trail)
	}
}

// A merge can grow a survivor into a body that was scanned earlier in the
// same pass; resolution must repeat until no overlap remains.
func TestResolveFixedPoint(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Mass: 5, Radius: 1},                             // at origin
		{ID: 1, Mass: 5, Radius: 1, Position: body.Vec3{X: 3}},  // clear of 0
		{ID: 2, Mass: 5, Radius: 2.1, Position: body.Vec3{X: 4.2}}, // overlaps 1
	}

	live, merges, _ := Resolve(bodies)

	if merges != 2 {
		t.Errorf("merges = %d, want 2 (second from the grown survivor)", merges)
	}
	if len(live) != 1 {
		t.Fatalf("survivors = %d, want 1", len(live))
	}
	if live[0].ID != 0 {
		t.Errorf("survivor id = %d, want 0", live[0].ID)
	}
	if live[0].Mass != 15 {
		t.Errorf("survivor mass = %v, want 15", live[0].Mass)
	}
}

func TestResolveNoPostOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bodies := make([]*body.Body, 40)
	for i := range bodies {
		bodies[i] = &body.Body{
			ID:     i,
			Mass:   1 + rng.Float64()*10,
			Radius: 0.5 + rng.Float64()*2,
			Position: body.Vec3{
				X: rng.Float64() * 40,
				Z: rng.Float64() * 40,
			},
		}
	}

	live, _, _ := Resolve(bodies)

	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			d := live[i].Position.Dist(live[j].Position)
			if d < live[i].Radius+live[j].Radius {
				t.Errorf("bodies %d and %d still overlap: dist %v < %v",
					live[i].ID, live[j].ID, d, live[i].Radius+live[j].Radius)
			}
		}
	}
}

func TestResolveTouchingIsNotOverlap(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Mass: 1, Radius: 1},
		{ID: 1, Mass: 1, Radius: 1, Position: body.Vec3{X: 2}}, // exactly touching
	}

	live, merges, _ := Resolve(bodies)
	if merges != 0 || len(live) != 2 {
		t.Errorf("touching bodies merged: %d survivors, %d merges", len(live), merges)
	}
}

func TestResolveRejectsNonFiniteMerge(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Mass: math.MaxFloat64, Radius: 1},
		{ID: 1, Mass: math.MaxFloat64, Radius: 1, Position: body.Vec3{X: 1}},
	}

	live, merges, rejected := Resolve(bodies)

	if merges != 0 || rejected != 1 {
		t.Errorf("merges = %d, rejected = %d, want 0 and 1", merges, rejected)
	}
	if len(live) != 2 {
		t.Fatalf("survivors = %d, want 2 (merge refused)", len(live))
	}
	for _, b := range live {
		if math.IsInf(b.Mass, 0) || math.IsNaN(b.Mass) {
			t.Errorf("non-finite mass leaked into body %d", b.ID)
		}
	}
}
