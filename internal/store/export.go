package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/sim"
)

type ExportData struct {
	Scenario   string             `json:"scenario"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	BodyCounts []int              `json:"body_counts"`
	Snapshots  [][]ExportBody     `json:"snapshots"`
	Metrics    map[string]float64 `json:"metrics"`
}

type ExportBody struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Mass     float64    `json:"mass"`
	Radius   float64    `json:"radius"`
}

// ExportJSON writes a full run, snapshots included, to w.
func ExportJSON(w io.Writer, scenario string, dt float64, result *sim.Result) error {
	data := ExportData{
		Scenario:   scenario,
		Dt:         dt,
		Steps:      result.StepsTaken,
		Times:      result.Times,
		BodyCounts: result.BodyCounts,
		Snapshots:  make([][]ExportBody, len(result.Snapshots)),
		Metrics:    result.Metrics,
	}
	for i, snapshot := range result.Snapshots {
		data.Snapshots[i] = make([]ExportBody, len(snapshot))
		for j, b := range snapshot {
			data.Snapshots[i][j] = exportBody(b)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile is ExportJSON to a created file.
func ExportJSONFile(path, scenario string, dt float64, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, scenario, dt, result)
}

func exportBody(b *body.Body) ExportBody {
	return ExportBody{
		ID:       b.ID,
		Name:     b.Name,
		Kind:     string(b.Kind),
		Position: [3]float64{b.Position.X, b.Position.Y, b.Position.Z},
		Velocity: [3]float64{b.Velocity.X, b.Velocity.Y, b.Velocity.Z},
		Mass:     b.Mass,
		Radius:   b.Radius,
	}
}
