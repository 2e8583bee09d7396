// Package sim orchestrates stepping: collision resolution, force
// accumulation, integration and trail recording, in that fixed order.
//
// [Step] is a pure function from one registry snapshot to the next; the
// pause flag, collision toggle and time-scale travel in an explicit [Config]
// rather than ambient state. [AddBody] and [ClearTrails] are the serialized
// registry operations; callers must not interleave them with an in-flight
// step, and at most one step is in flight at a time.
//
// # Example
//
//	bodies, _ := scenario.Load("solar-system")
//	cfg := sim.DefaultConfig()
//	bodies, stats := sim.Step(bodies, cfg.Dt(), cfg)
package sim
