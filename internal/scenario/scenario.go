package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mvelde/orbitlab/internal/body"
)

// ErrUnknown is returned by Load for a name no builder is registered under.
var ErrUnknown = errors.New("scenario: unknown name")

// Builder produces the initial body set of a named scenario.
type Builder func() []*body.Body

var builders = map[string]Builder{
	"solar-system": SolarSystem,
	"binary-stars": BinaryStars,
	"three-body":   ThreeBody,
	"empty":        Empty,
}

// Load returns a fresh copy of the named scenario's initial bodies.
func Load(name string) ([]*body.Body, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknown, name, Names())
	}
	return b(), nil
}

// Names lists the registered scenarios, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SolarSystem is the Sun, the eight planets and Ceres. Distances are in
// simulation units (1 unit = 1e9 m, so Earth sits at 150), speeds in m/s,
// masses in kg. Radii are exaggerated for display; only collisions read them.
func SolarSystem() []*body.Body {
	return []*body.Body{
		{ID: 0, Name: "Sun", Kind: body.Star, Color: "#ffcc33", Mass: 1.989e30, Radius: 15},
		{ID: 1, Name: "Mercury", Kind: body.Planet, Color: "#b5a79f", Mass: 3.285e23, Radius: 0.8,
			Position: body.Vec3{X: 57.9}, Velocity: body.Vec3{Z: 47.87e3}},
		{ID: 2, Name: "Venus", Kind: body.Planet, Color: "#e8c468", Mass: 4.867e24, Radius: 1.9,
			Position: body.Vec3{X: 108.2}, Velocity: body.Vec3{Z: 35.02e3}},
		{ID: 3, Name: "Earth", Kind: body.Planet, Color: "#4f94cd", Mass: 5.972e24, Radius: 2,
			Position: body.Vec3{X: 150}, Velocity: body.Vec3{Z: 29.78e3}},
		{ID: 4, Name: "Mars", Kind: body.Planet, Color: "#c1440e", Mass: 6.39e23, Radius: 1.1,
			Position: body.Vec3{X: 227.9}, Velocity: body.Vec3{Z: 24.08e3}},
		{ID: 5, Name: "Ceres", Kind: body.Asteroid, Color: "#8f8f8f", Mass: 9.38e20, Radius: 0.4,
			Position: body.Vec3{X: 414}, Velocity: body.Vec3{Z: 17.9e3}},
		{ID: 6, Name: "Jupiter", Kind: body.Planet, Color: "#d8ca9d", Mass: 1.898e27, Radius: 6,
			Position: body.Vec3{X: 778.5}, Velocity: body.Vec3{Z: 13.07e3}},
		{ID: 7, Name: "Saturn", Kind: body.Planet, Color: "#e3dccb", Mass: 5.683e26, Radius: 5,
			Position: body.Vec3{X: 1433.5}, Velocity: body.Vec3{Z: 9.69e3}},
		{ID: 8, Name: "Uranus", Kind: body.Planet, Color: "#aee2e8", Mass: 8.681e25, Radius: 3.2,
			Position: body.Vec3{X: 2872.5}, Velocity: body.Vec3{Z: 6.81e3}},
		{ID: 9, Name: "Neptune", Kind: body.Planet, Color: "#5b7fe4", Mass: 1.024e26, Radius: 3.1,
			Position: body.Vec3{X: 4495.1}, Velocity: body.Vec3{Z: 5.43e3}},
	}
}

// BinaryStars is two solar-mass stars on a circular orbit about their
// barycenter, 160 units apart.
func BinaryStars() []*body.Body {
	return []*body.Body{
		{ID: 0, Name: "Alpha", Kind: body.Star, Color: "#ffd27d", Mass: 1.989e30, Radius: 10,
			Position: body.Vec3{X: -80}, Velocity: body.Vec3{Z: -20365}},
		{ID: 1, Name: "Beta", Kind: body.Star, Color: "#9db4ff", Mass: 1.989e30, Radius: 10,
			Position: body.Vec3{X: 80}, Velocity: body.Vec3{Z: 20365}},
	}
}

// ThreeBody is three solar-mass stars in the Lagrange equilateral
// configuration, rotating about their common center 200 units out.
func ThreeBody() []*body.Body {
	return []*body.Body{
		{ID: 0, Name: "Prime", Kind: body.Star, Color: "#ff8c66", Mass: 1.989e30, Radius: 9,
			Position: body.Vec3{Z: 200}, Velocity: body.Vec3{X: -19576}},
		{ID: 1, Name: "Second", Kind: body.Star, Color: "#66d9ff", Mass: 1.989e30, Radius: 9,
			Position: body.Vec3{X: -173.2, Z: -100}, Velocity: body.Vec3{X: 9788, Z: -16953}},
		{ID: 2, Name: "Third", Kind: body.Star, Color: "#c2ff66", Mass: 1.989e30, Radius: 9,
			Position: body.Vec3{X: 173.2, Z: -100}, Velocity: body.Vec3{X: 9788, Z: 16953}},
	}
}

// Empty is the zero-body scenario.
func Empty() []*body.Body {
	return []*body.Body{}
}
