package sim

import (
	"math"

	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/physics"
)

// Config is the explicit per-step state that would otherwise live in UI
// globals: the pause flag, the collision toggle and the time-scale.
type Config struct {
	Paused            bool
	CollisionsEnabled bool
	Parallel          bool
	TimeScale         float64
}

func DefaultConfig() Config {
	return Config{CollisionsEnabled: true, TimeScale: 1.0}
}

// ClampTimeScale bounds the user-controlled multiplier to the supported
// range.
func ClampTimeScale(ts float64) float64 {
	return math.Min(math.Max(ts, physics.MinTimeScale), physics.MaxTimeScale)
}

// Dt is the simulated seconds one step covers at the config's time-scale.
func (c Config) Dt() float64 {
	return physics.SecondsPerStep * ClampTimeScale(c.TimeScale)
}

// Stats counts what one step did beyond moving bodies.
type Stats struct {
	Merges          int // collision merges applied
	RejectedMerges  int // merges refused for non-finite results
	DegeneratePairs int // coincident pairs skipped in the force sum
}

func (s *Stats) add(o Stats) {
	s.Merges += o.Merges
	s.RejectedMerges += o.RejectedMerges
	s.DegeneratePairs += o.DegeneratePairs
}

// Step advances one registry snapshot to the next: collision resolution,
// force accumulation, integration, then trail recording, each phase fully
// materialized before the next. The input is never mutated; every call
// returns a fresh, independent snapshot, so a caller can keep rendering the
// previous one. While paused the snapshot comes back unchanged.
//
// Stepping an empty registry is a valid no-op.
func Step(bodies []*body.Body, dt float64, cfg Config) ([]*body.Body, Stats) {
	next := body.CloneSet(bodies)
	var st Stats
	if cfg.Paused {
		return next, st
	}

	if cfg.CollisionsEnabled {
		next, st.Merges, st.RejectedMerges = physics.Resolve(next)
	}

	var forces []body.Vec3
	if cfg.Parallel {
		forces, st.DegeneratePairs = physics.ForcesParallel(next)
	} else {
		forces, st.DegeneratePairs = physics.Forces(next)
	}

	for i, b := range next {
		physics.Integrate(b, forces[i], dt)
	}
	for _, b := range next {
		b.RecordTrail()
	}

	return next, st
}
