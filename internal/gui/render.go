package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/sim"
)

var (
	colBg      = rl.NewColor(8, 8, 14, 255)
	colText    = rl.NewColor(150, 150, 160, 255)
	colTextDim = rl.NewColor(70, 70, 80, 255)
)

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.camera)
	rl.DrawGrid(20, 10)

	for _, b := range a.bodies {
		col := parseColor(b.Color)

		trail := b.Trail
		for i := 1; i < len(trail); i++ {
			rl.DrawLine3D(toWorld(trail[i-1]), toWorld(trail[i]), rl.Fade(col, 0.35))
		}
		if len(trail) > 0 {
			rl.DrawLine3D(toWorld(trail[len(trail)-1]), toWorld(b.Position), rl.Fade(col, 0.35))
		}

		rl.DrawSphere(toWorld(b.Position), displayRadius(b), col)
	}
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	hud := fmt.Sprintf("%s · day %.1f · %d bodies · %.2fx · collisions %v · merges %d",
		a.scenarioName, a.simTime/86400, len(a.bodies),
		sim.ClampTimeScale(a.cfg.TimeScale), a.cfg.CollisionsEnabled, a.stats.Merges)
	rl.DrawText(hud, 16, 14, 20, colText)

	if a.cfg.Paused {
		rl.DrawText("paused", 16, 40, 20, rl.Gold)
	}
	rl.DrawText("space pause · up/down time-scale · C collisions · A add · T trails · R reset",
		16, int32(rl.GetScreenHeight()-30), 18, colTextDim)
}

func toWorld(p body.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(p.X*worldScale), float32(p.Y*worldScale), float32(p.Z*worldScale))
}

// displayRadius compresses the huge spread between the Sun and an asteroid
// into something visible at world scale.
func displayRadius(b *body.Body) float32 {
	return float32(math.Log1p(b.Radius) * 0.35)
}

func parseColor(hex string) rl.Color {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		if n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return rl.NewColor(r, g, b, 255)
		}
	}
	return rl.NewColor(200, 200, 255, 255)
}
