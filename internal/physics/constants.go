package physics

// Contract constants. Trajectories are only compatible across
// implementations when these match exactly.
const (
	// G is the gravitational constant in m³/(kg·s²).
	G = 6.67430e-11

	// DistanceScale converts meters into simulation-space units
	// (1 unit = 1e9 m). Positions and radii are stored in units;
	// velocities stay in m/s and are scaled on the position update.
	DistanceScale = 1e-9

	// SecondsPerStep is the simulated duration of one step at
	// time-scale 1: one simulated day per step.
	SecondsPerStep = 86400.0

	// MinTimeScale and MaxTimeScale bound the user-controlled
	// multiplier on SecondsPerStep.
	MinTimeScale = 0.1
	MaxTimeScale = 5.0
)
