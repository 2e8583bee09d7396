package scenario

import (
	"math"
	"math/rand"

	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/physics"
)

// OrbitalSpeed is the circular-orbit speed (m/s) around a central mass at
// the given simulation-space distance.
func OrbitalSpeed(centralMass, dist float64) float64 {
	return math.Sqrt(physics.G * centralMass / (dist / physics.DistanceScale))
}

// PlaceInOrbit picks a random angle on the XZ orbital plane and returns the
// position `dist` units from central at that angle, plus the tangential
// velocity for a circular orbit, both relative to central's own motion.
func PlaceInOrbit(rng *rand.Rand, central *body.Body, dist float64) (pos, vel body.Vec3) {
	angle := rng.Float64() * 2 * math.Pi
	sin, cos := math.Sin(angle), math.Cos(angle)
	speed := OrbitalSpeed(central.Mass, dist)

	pos = central.Position.Add(body.Vec3{X: dist * cos, Z: dist * sin})
	vel = central.Velocity.Add(body.Vec3{X: -speed * sin, Z: speed * cos})
	return pos, vel
}

// Heaviest returns the most massive body, or nil for an empty registry.
// addBody-style operations orbit new bodies around it.
func Heaviest(bodies []*body.Body) *body.Body {
	var best *body.Body
	for _, b := range bodies {
		if best == nil || b.Mass > best.Mass {
			best = b
		}
	}
	return best
}
