// Package physics implements the gravitational core: pairwise force
// accumulation, collision merging and symplectic Euler integration.
//
// One step is three materialized phases run in order by the sim package:
// [Resolve] removes overlaps before any force is computed, [Forces] sums
// G·mA·mB/d² over all pairs, and [Integrate] advances each body.
//
// The force sum is quadratic with no spatial partitioning, which bounds
// real-time use to moderate body counts; [ForcesParallel] spreads the same
// sum across workers without changing the result.
package physics
