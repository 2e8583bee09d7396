package metrics

import (
	"math"

	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/physics"
)

// TotalEnergy is the system's kinetic plus pairwise gravitational potential
// energy, with distances taken in meters.
func TotalEnergy(bodies []*body.Body) float64 {
	e := 0.0
	for i, b := range bodies {
		e += 0.5 * b.Mass * b.Velocity.Length() * b.Velocity.Length()
		for j := i + 1; j < len(bodies); j++ {
			r := b.Position.Dist(bodies[j].Position) / physics.DistanceScale
			if r == 0 {
				continue
			}
			e -= physics.G * b.Mass * bodies[j].Mass / r
		}
	}
	return e
}

// Energy reports the total energy of the last observed snapshot.
type Energy struct {
	last float64
}

func NewEnergy() *Energy { return &Energy{} }

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(bodies []*body.Body, t float64) {
	e.last = TotalEnergy(bodies)
}

func (e *Energy) Value() float64 { return e.last }
func (e *Energy) Reset()         { e.last = 0 }

// EnergyDrift tracks the maximum relative deviation from the first observed
// total energy. Merges intentionally dissipate energy, so drift is a gauge
// of integration quality only while the body count is stable.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []*body.Body, t float64) {
	energy := TotalEnergy(bodies)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
