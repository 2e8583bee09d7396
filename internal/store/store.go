package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mvelde/orbitlab/internal/sim"
)

// Store keeps one directory per recorded run under a base data dir:
// metadata.json plus states.csv. The CSV is long-format (one row per body
// per step) because merges shrink the body set mid-run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	TimeScale  float64            `json:"time_scale"`
	Collisions bool               `json:"collisions"`
	Merges     int                `json:"merges"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Row is one body at one recorded step.
type Row struct {
	Step         int
	Time         float64
	ID           int
	Name         string
	X, Y, Z      float64
	VX, VY, VZ   float64
	Mass, Radius float64
}

var csvHeader = []string{"step", "time", "id", "name", "x", "y", "z", "vx", "vy", "vz", "mass", "radius"}

// sanitizeLabel reduces a scenario label to a single path segment. Labels
// can be file paths (a run of a YAML scenario is labelled with its path),
// and run directories must sit directly under the data dir or List never
// sees them.
func sanitizeLabel(label string) string {
	base := filepath.Base(label)
	base = strings.ReplaceAll(base, "/", "-")
	base = strings.ReplaceAll(base, `\`, "-")
	if base == "." || base == "" {
		return "run"
	}
	return base
}

func (s *Store) Save(scenario string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sanitizeLabel(scenario), time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Dt:         cfg.Dt(),
		Steps:      result.StepsTaken,
		TimeScale:  sim.ClampTimeScale(cfg.TimeScale),
		Collisions: cfg.CollisionsEnabled,
		Merges:     result.Stats.Merges,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for step, snapshot := range result.Snapshots {
		t := result.Times[step]
		for _, b := range snapshot {
			row := []string{
				strconv.Itoa(step),
				strconv.FormatFloat(t, 'f', 2, 64),
				strconv.Itoa(b.ID),
				b.Name,
				strconv.FormatFloat(b.Position.X, 'g', 12, 64),
				strconv.FormatFloat(b.Position.Y, 'g', 12, 64),
				strconv.FormatFloat(b.Position.Z, 'g', 12, 64),
				strconv.FormatFloat(b.Velocity.X, 'g', 12, 64),
				strconv.FormatFloat(b.Velocity.Y, 'g', 12, 64),
				strconv.FormatFloat(b.Velocity.Z, 'g', 12, 64),
				strconv.FormatFloat(b.Mass, 'g', 12, 64),
				strconv.FormatFloat(b.Radius, 'g', 12, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadStates(runID string) ([]Row, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(csvHeader) {
			continue
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		id, err := strconv.Atoi(record[2])
		if err != nil {
			continue
		}

		vals := make([]float64, 0, 9)
		ok := true
		for _, col := range append([]string{record[1]}, record[4:]...) {
			v, err := strconv.ParseFloat(col, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Step: step, Time: vals[0], ID: id, Name: record[3],
			X: vals[1], Y: vals[2], Z: vals[3],
			VX: vals[4], VY: vals[5], VZ: vals[6],
			Mass: vals[7], Radius: vals[8],
		})
	}

	return rows, nil
}
