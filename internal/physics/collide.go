package physics

import (
	"math"

	"github.com/mvelde/orbitlab/internal/body"
)

// Resolve merges overlapping bodies until no two survivors are closer than
// the sum of their radii. It mutates the bodies it is given (the survivors
// absorb mass and momentum) and returns the surviving set, so callers step
// on a cloned snapshot.
//
// Each pass scans unordered pairs in registry order over an alive mask:
// the higher-index body is folded into the lower-index one and drops out of
// the pass immediately. A merge grows the survivor, which can create new
// overlaps with bodies already scanned, so passes repeat to a fixed point.
func Resolve(bodies []*body.Body) (live []*body.Body, merges, rejected int) {
	live = bodies
	for {
		var m, r int
		live, m, r = resolvePass(live)
		merges += m
		rejected += r
		if m == 0 {
			return live, merges, rejected
		}
	}
}

func resolvePass(bodies []*body.Body) ([]*body.Body, int, int) {
	alive := make([]bool, len(bodies))
	for i := range alive {
		alive[i] = true
	}

	merges, rejected := 0, 0
	for i := 0; i < len(bodies); i++ {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			if !alive[j] {
				continue
			}
			a, b := bodies[i], bodies[j]
			if a.Position.Dist(b.Position) >= a.Radius+b.Radius {
				continue
			}
			if !merge(a, b) {
				rejected++
				continue
			}
			alive[j] = false
			merges++
		}
	}

	out := make([]*body.Body, 0, len(bodies))
	for i, b := range bodies {
		if alive[i] {
			out = append(out, b)
		}
	}
	return out, merges, rejected
}

// merge folds b into a: mass adds exactly, radius adds by volume (density is
// not modeled), velocity is the momentum-conserving combination. The survivor
// keeps its identity, position and trail; b's trail is discarded with it.
//
// Returns false without touching a when the combined mass or radius would be
// non-finite; propagating NaN/Inf into later steps is worse than leaving an
// overlap unresolved.
func merge(a, b *body.Body) bool {
	mass := a.Mass + b.Mass
	radius := math.Cbrt(a.Radius*a.Radius*a.Radius + b.Radius*b.Radius*b.Radius)
	if math.IsNaN(mass) || math.IsInf(mass, 0) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return false
	}

	a.Velocity = a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass)).Scale(1 / mass)
	a.Mass = mass
	a.Radius = radius
	return true
}
