package physics

import "github.com/mvelde/orbitlab/internal/body"

// Forces computes the net gravitational force on every body from all others:
// for each pair, magnitude G·mA·mB/d² along the line between them, with d the
// physical (meter) distance. Quadratic in body count; no spatial partitioning.
//
// Coincident bodies (zero separation) contribute no force to each other.
// Returns the per-body net forces and the count of such degenerate pairs.
func Forces(bodies []*body.Body) ([]body.Vec3, int) {
	n := len(bodies)
	forces := make([]body.Vec3, n)
	skipped := 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := bodies[j].Position.Sub(bodies[i].Position)
			r := d.Length()
			if r == 0 {
				skipped++
				continue
			}
			rm := r / DistanceScale
			f := G * bodies[i].Mass * bodies[j].Mass / (rm * rm)

			// d.Scale(f/r) is normalize(d) times the magnitude.
			fv := d.Scale(f / r)
			forces[i] = forces[i].Add(fv)
			forces[j] = forces[j].Sub(fv)
		}
	}

	return forces, skipped
}

// ForcesParallel is Forces split across workers. Each worker owns a disjoint
// range of output slots and repeats the full inner loop for its bodies, so no
// slot is written from two goroutines. Degenerate pairs are counted once, on
// the lower-index side.
func ForcesParallel(bodies []*body.Body) ([]body.Vec3, int) {
	n := len(bodies)
	forces := make([]body.Vec3, n)
	skips := make([]int, n)

	ParallelFor(n, 16, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				d := bodies[j].Position.Sub(bodies[i].Position)
				r := d.Length()
				if r == 0 {
					if j > i {
						skips[i]++
					}
					continue
				}
				rm := r / DistanceScale
				f := G * bodies[i].Mass * bodies[j].Mass / (rm * rm)
				forces[i] = forces[i].Add(d.Scale(f / r))
			}
		}
	})

	skipped := 0
	for _, s := range skips {
		skipped += s
	}
	return forces, skipped
}
