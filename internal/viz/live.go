package viz

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/metrics"
	"github.com/mvelde/orbitlab/internal/scenario"
	"github.com/mvelde/orbitlab/internal/sim"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
	historyCap   = 300
)

var addPalette = []string{"#d8a47f", "#9fbf8f", "#7fa8d8", "#c27fd8", "#d87f7f"}

type TickMsg time.Time

// Model is the live terminal view. It is the per-frame external trigger of
// the simulation: one sim.Step per tick, with the previous snapshot kept for
// rendering until the new one is complete.
type Model struct {
	scenarioName string
	initial      []*body.Body
	bodies       []*body.Body
	cfg          sim.Config
	fps          int
	simTime      float64
	steps        int
	stats        sim.Stats
	added        int
	canvas       *Canvas
	energyHist   []float64
	rng          *rand.Rand
	note         string
}

func NewModel(scenarioName string, bodies []*body.Body, cfg sim.Config, fps int) Model {
	return Model{
		scenarioName: scenarioName,
		initial:      body.CloneSet(bodies),
		bodies:       body.CloneSet(bodies),
		cfg:          cfg,
		fps:          fps,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		energyHist:   make([]float64, 0, historyCap),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run blocks until the live view exits.
func Run(scenarioName string, bodies []*body.Body, cfg sim.Config, fps int) error {
	p := tea.NewProgram(NewModel(scenarioName, bodies, cfg, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if !m.cfg.Paused {
			dt := m.cfg.Dt()
			var st sim.Stats
			m.bodies, st = sim.Step(m.bodies, dt, m.cfg)
			m.stats.Merges += st.Merges
			m.stats.RejectedMerges += st.RejectedMerges
			m.stats.DegeneratePairs += st.DegeneratePairs
			m.simTime += dt
			m.steps++

			m.energyHist = append(m.energyHist, metrics.TotalEnergy(m.bodies))
			if len(m.energyHist) > historyCap {
				m.energyHist = m.energyHist[len(m.energyHist)-historyCap:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.cfg.Paused = !m.cfg.Paused
	case "+", "=":
		m.cfg.TimeScale = sim.ClampTimeScale(m.cfg.TimeScale * 1.25)
	case "-":
		m.cfg.TimeScale = sim.ClampTimeScale(m.cfg.TimeScale / 1.25)
	case "c":
		m.cfg.CollisionsEnabled = !m.cfg.CollisionsEnabled
	case "a":
		m.addOrbiter()
	case "T":
		m.bodies = sim.ClearTrails(m.bodies)
	case "r":
		m.bodies = body.CloneSet(m.initial)
		m.simTime = 0
		m.steps = 0
		m.stats = sim.Stats{}
		m.added = 0
		m.energyHist = m.energyHist[:0]
		m.note = ""
	}
	return m, nil
}

// addOrbiter drops a small body on a circular orbit around the heaviest one,
// at a random angle and distance.
func (m *Model) addOrbiter() {
	central := scenario.Heaviest(m.bodies)
	if central == nil {
		m.note = "nothing to orbit: registry is empty"
		return
	}

	dist := 60 + m.rng.Float64()*340
	pos, vel := scenario.PlaceInOrbit(m.rng, central, dist)
	m.added++

	next, err := sim.AddBody(m.bodies, sim.Descriptor{
		Name:     fmt.Sprintf("visitor-%d", m.added),
		Kind:     body.Asteroid,
		Color:    addPalette[m.rng.Intn(len(addPalette))],
		Position: pos,
		Velocity: vel,
		Mass:     math.Pow(10, 22+m.rng.Float64()*3),
		Radius:   0.5 + m.rng.Float64()*1.5,
	})
	if err != nil {
		m.note = err.Error()
		return
	}
	m.bodies = next
	m.note = ""
}

func (m Model) View() string {
	m.renderCanvas()

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("orbitlab · "+m.scenarioName) + "\n")
	if m.cfg.Paused {
		stats.WriteString(pausedStyle.Render("paused") + "\n")
	}
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("day", fmt.Sprintf("%.1f", m.simTime/86400))
	row("bodies", fmt.Sprintf("%d", len(m.bodies)))
	row("time-scale", fmt.Sprintf("%.2fx", sim.ClampTimeScale(m.cfg.TimeScale)))
	row("collisions", onOff(m.cfg.CollisionsEnabled))
	row("merges", fmt.Sprintf("%d", m.stats.Merges))
	row("energy", fmt.Sprintf("%.3e", metrics.TotalEnergy(m.bodies)))
	row("momentum", fmt.Sprintf("%.3e", metrics.TotalMomentum(m.bodies).Length()))

	if len(m.energyHist) >= 2 {
		chart := asciigraph.Plot(m.energyHist,
			asciigraph.Height(4),
			asciigraph.Width(32),
			asciigraph.Caption("energy"))
		stats.WriteString(graphStyle.Render(chart))
	}
	if m.note != "" {
		stats.WriteString("\n" + pausedStyle.Render(m.note))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()))

	help := helpStyle.Render("space pause · +/- time-scale · c collisions · a add body · T clear trails · r reset · q quit")
	return main + "\n" + help + "\n"
}

// renderCanvas projects the XZ plane onto the braille grid, auto-zoomed to
// the current extent of the system.
func (m Model) renderCanvas() {
	m.canvas.Clear()

	half := 20.0
	for _, b := range m.bodies {
		half = math.Max(half, math.Max(math.Abs(b.Position.X), math.Abs(b.Position.Z))*1.15)
	}

	subW, subH := float64(canvasWidth*2), float64(canvasHeight*4)
	project := func(p body.Vec3) (int, int) {
		x := (p.X/half + 1) / 2 * subW
		y := (p.Z/half + 1) / 2 * subH
		return int(x), int(y)
	}

	for _, b := range m.bodies {
		for _, p := range b.Trail {
			x, y := project(p)
			m.canvas.Set(x, y)
		}
	}
	for _, b := range m.bodies {
		x, y := project(b.Position)
		r := int(b.Radius / half * subW / 2)
		if r > 5 {
			r = 5
		}
		m.canvas.Disc(x, y, r)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
