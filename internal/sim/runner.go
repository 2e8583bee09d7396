package sim

import (
	"context"
	"fmt"

	"github.com/mvelde/orbitlab/internal/body"
)

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}

// Observer is called after every step with the fresh snapshot.
type Observer interface {
	OnStep(bodies []*body.Body, stats Stats, t float64)
}

// Result collects what a headless run produced.
type Result struct {
	Times      []float64
	Snapshots  [][]*body.Body
	BodyCounts []int
	Metrics    map[string]float64
	Stats      Stats
	StepsTaken int
}

// Runner drives Step a fixed number of times. It is the external scheduler
// the core itself does not have: the TUI and GUI play the same role one
// frame at a time.
type Runner struct {
	cfg       Config
	metrics   []Metric
	observers []Observer
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps the registry `steps` times, observing metrics on each snapshot
// (the initial one included). Cancellation is checked between steps; there
// is no mid-step cancellation.
func (r *Runner) Run(ctx context.Context, bodies []*body.Body, steps int) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	dt := r.cfg.Dt()
	cur := body.CloneSet(bodies)
	t := 0.0

	result := &Result{
		Times:      make([]float64, 0, steps+1),
		Snapshots:  make([][]*body.Body, 0, steps+1),
		BodyCounts: make([]int, 0, steps+1),
		Metrics:    make(map[string]float64),
	}
	record := func() {
		result.Times = append(result.Times, t)
		result.Snapshots = append(result.Snapshots, cur)
		result.BodyCounts = append(result.BodyCounts, len(cur))
	}
	record()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range r.metrics {
			m.Observe(cur, t)
		}

		next, st := Step(cur, dt, r.cfg)
		result.Stats.add(st)
		result.StepsTaken++

		for _, obs := range r.observers {
			obs.OnStep(next, st, t+dt)
		}

		cur = next
		t += dt
		record()
	}

	for _, m := range r.metrics {
		m.Observe(cur, t)
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
