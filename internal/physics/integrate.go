package physics

import "github.com/mvelde/orbitlab/internal/body"

// Integrate advances one body by dt simulated seconds using semi-implicit
// (symplectic) Euler. The position update must use the already-updated
// velocity; swapping the order loses the scheme's stability.
//
// There is no sub-stepping: a large dt from a high time-scale produces
// visible integration error, which is accepted.
func Integrate(b *body.Body, force body.Vec3, dt float64) {
	b.Velocity = b.Velocity.Add(force.Scale(dt / b.Mass))
	b.Position = b.Position.Add(b.Velocity.Scale(dt * DistanceScale))
}
