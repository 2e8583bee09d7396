package gui

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/scenario"
	"github.com/mvelde/orbitlab/internal/sim"
)

// worldScale maps simulation units to render units so the outer planets stay
// within the camera's far plane.
const worldScale = 0.02

// App is the windowed viewer. Like the terminal view, it is only the
// per-frame trigger: one sim.Step per rendered frame, explicit dt.
type App struct {
	scenarioName string
	initial      []*body.Body
	bodies       []*body.Body
	cfg          sim.Config
	simTime      float64
	stats        sim.Stats
	added        int
	rng          *rand.Rand
	camera       rl.Camera3D
}

func New(scenarioName string, bodies []*body.Body, cfg sim.Config) *App {
	return &App{
		scenarioName: scenarioName,
		initial:      body.CloneSet(bodies),
		bodies:       body.CloneSet(bodies),
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 60, 80),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	rl.InitWindow(1280, 720, "orbitlab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	for !rl.WindowShouldClose() {
		a.handleInput()

		if !a.cfg.Paused {
			dt := a.cfg.Dt()
			var st sim.Stats
			a.bodies, st = sim.Step(a.bodies, dt, a.cfg)
			a.stats.Merges += st.Merges
			a.stats.RejectedMerges += st.RejectedMerges
			a.stats.DegeneratePairs += st.DegeneratePairs
			a.simTime += dt
		}

		rl.UpdateCamera(&a.camera, rl.CameraOrbital)
		a.draw()
	}
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.cfg.Paused = !a.cfg.Paused
	case rl.IsKeyPressed(rl.KeyUp):
		a.cfg.TimeScale = sim.ClampTimeScale(a.cfg.TimeScale * 1.25)
	case rl.IsKeyPressed(rl.KeyDown):
		a.cfg.TimeScale = sim.ClampTimeScale(a.cfg.TimeScale / 1.25)
	case rl.IsKeyPressed(rl.KeyC):
		a.cfg.CollisionsEnabled = !a.cfg.CollisionsEnabled
	case rl.IsKeyPressed(rl.KeyA):
		a.addOrbiter()
	case rl.IsKeyPressed(rl.KeyT):
		a.bodies = sim.ClearTrails(a.bodies)
	case rl.IsKeyPressed(rl.KeyR):
		a.bodies = body.CloneSet(a.initial)
		a.simTime = 0
		a.stats = sim.Stats{}
		a.added = 0
	}
}

func (a *App) addOrbiter() {
	central := scenario.Heaviest(a.bodies)
	if central == nil {
		return
	}

	dist := 60 + a.rng.Float64()*340
	pos, vel := scenario.PlaceInOrbit(a.rng, central, dist)
	a.added++

	next, err := sim.AddBody(a.bodies, sim.Descriptor{
		Name:     fmt.Sprintf("visitor-%d", a.added),
		Kind:     body.Asteroid,
		Color:    "#9fbf8f",
		Position: pos,
		Velocity: vel,
		Mass:     math.Pow(10, 22+a.rng.Float64()*3),
		Radius:   0.5 + a.rng.Float64()*1.5,
	})
	if err != nil {
		return
	}
	a.bodies = next
}
