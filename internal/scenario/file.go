package scenario

import (
	"fmt"
	"os"

	"github.com/mvelde/orbitlab/internal/body"
	"gopkg.in/yaml.v3"
)

// File is a user-supplied scenario definition.
type File struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	AutoOrbit   bool       `yaml:"auto_orbit"`
	Bodies      []FileBody `yaml:"bodies"`
}

type FileBody struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Color    string     `yaml:"color"`
	Mass     float64    `yaml:"mass"`
	Radius   float64    `yaml:"radius"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
}

// LoadFile parses a YAML scenario file into a body set. Every body is
// validated on the way in. With auto_orbit set, bodies that declare no
// velocity are put on a circular orbit around the heaviest body, at the
// angle their position already implies.
func LoadFile(path string) ([]*body.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	bodies := make([]*body.Body, 0, len(f.Bodies))
	for i, fb := range f.Bodies {
		b := &body.Body{
			ID:       i,
			Name:     fb.Name,
			Kind:     body.Kind(fb.Kind),
			Color:    fb.Color,
			Mass:     fb.Mass,
			Radius:   fb.Radius,
			Position: body.Vec3{X: fb.Position[0], Y: fb.Position[1], Z: fb.Position[2]},
			Velocity: body.Vec3{X: fb.Velocity[0], Y: fb.Velocity[1], Z: fb.Velocity[2]},
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: body %d (%s): %w", path, i, fb.Name, err)
		}
		bodies = append(bodies, b)
	}

	if f.AutoOrbit {
		autoOrbit(bodies)
	}
	return bodies, nil
}

// autoOrbit fills in circular-orbit velocities for bodies at rest,
// perpendicular to their offset from the heaviest body on the XZ plane.
func autoOrbit(bodies []*body.Body) {
	central := Heaviest(bodies)
	if central == nil {
		return
	}
	for _, b := range bodies {
		if b == central || (body.Vec3{}) != b.Velocity {
			continue
		}
		offset := b.Position.Sub(central.Position)
		dist := offset.Length()
		if dist == 0 {
			continue
		}
		speed := OrbitalSpeed(central.Mass, dist)
		tangent := body.Vec3{X: -offset.Z / dist, Z: offset.X / dist}
		b.Velocity = central.Velocity.Add(tangent.Scale(speed))
	}
}
