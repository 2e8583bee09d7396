package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/mvelde/orbitlab/internal/body"
	"github.com/mvelde/orbitlab/internal/config"
	"github.com/mvelde/orbitlab/internal/gui"
	"github.com/mvelde/orbitlab/internal/metrics"
	"github.com/mvelde/orbitlab/internal/scenario"
	"github.com/mvelde/orbitlab/internal/sim"
	"github.com/mvelde/orbitlab/internal/store"
	"github.com/mvelde/orbitlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	steps        int
	timeScale    float64
	collisions   bool
	parallel     bool
	fps          int
	scenarioFile string
	configFile   string
	preset       string
	exportPath   string
	plotBody     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "gravitational n-body sandbox",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the live terminal view of the solar system.
			if err := runLive(cmd, []string{config.DefaultScenario}); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&exportPath, "json", "", "also export the full run as json to this path")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "step a scenario in a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [scenario]",
		Short: "step a scenario in a 3d window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenario.Names() {
				bodies, _ := scenario.Load(name)
				fmt.Printf("  %-14s %d bodies", name, len(bodies))
				if presets := config.ListPresets(name); len(presets) > 0 {
					fmt.Printf("  (presets: %v)", presets)
				}
				fmt.Println()
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's distance from the origin over a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotBody, "body", 1, "body id to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, scenariosCmd, listCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps (run only)")
	cmd.Flags().Float64Var(&timeScale, "time-scale", config.DefaultTimeScale, "time-scale multiplier [0.1, 5.0]")
	cmd.Flags().BoolVar(&collisions, "collisions", true, "merge overlapping bodies")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "parallel force accumulation")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate (live only)")
	cmd.Flags().StringVar(&scenarioFile, "file", "", "yaml scenario file instead of a built-in")
}

// buildConfig folds preset, config file and flags into one run config,
// flags winning over the file, the file over the preset.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) == 1 {
		cfg.Scenario = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(cfg.Scenario))
		}
		cfg.Steps = p.Steps
		cfg.TimeScale = p.TimeScale
		cfg.Collisions = p.Collisions
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) == 0 {
			cfg.Scenario = fileCfg.Scenario
		}
		cfg.ScenarioFile = fileCfg.ScenarioFile
		if !cmd.Flags().Changed("steps") {
			cfg.Steps = fileCfg.Steps
		}
		if !cmd.Flags().Changed("time-scale") {
			cfg.TimeScale = fileCfg.TimeScale
		}
		if !cmd.Flags().Changed("collisions") {
			cfg.Collisions = fileCfg.Collisions
		}
		if !cmd.Flags().Changed("parallel") {
			cfg.Parallel = fileCfg.Parallel
		}
		if !cmd.Flags().Changed("fps") {
			cfg.FPS = fileCfg.FPS
		}
	}

	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.TimeScale = timeScale
	}
	if cmd.Flags().Changed("collisions") {
		cfg.Collisions = collisions
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if scenarioFile != "" {
		cfg.ScenarioFile = scenarioFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadBodies(cfg *config.Config) ([]*body.Body, error) {
	if cfg.ScenarioFile != "" {
		return scenario.LoadFile(cfg.ScenarioFile)
	}
	return scenario.Load(cfg.Scenario)
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		CollisionsEnabled: cfg.Collisions,
		Parallel:          cfg.Parallel,
		TimeScale:         cfg.TimeScale,
	}
}

func scenarioLabel(cfg *config.Config) string {
	if cfg.ScenarioFile != "" {
		return cfg.ScenarioFile
	}
	return cfg.Scenario
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := loadBodies(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := sim.NewRunner(simConfig(cfg))
	runner.AddMetric(metrics.NewEnergy())
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewBodyCount())

	fmt.Printf("running %s for %d steps...\n", scenarioLabel(cfg), cfg.Steps)
	start := time.Now()

	result, err := runner.Run(context.Background(), bodies, cfg.Steps)
	if err != nil {
		return err
	}

	runID, err := st.Save(scenarioLabel(cfg), simConfig(cfg), result)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if err := store.ExportJSONFile(exportPath, scenarioLabel(cfg), simConfig(cfg).Dt(), result); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", exportPath)
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("bodies: %d -> %d (merges: %d)\n",
		result.BodyCounts[0], result.BodyCounts[len(result.BodyCounts)-1], result.Stats.Merges)
	if result.Stats.DegeneratePairs > 0 {
		fmt.Printf("degenerate pairs skipped: %d\n", result.Stats.DegeneratePairs)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := loadBodies(cfg)
	if err != nil {
		return err
	}
	return viz.Run(scenarioLabel(cfg), bodies, simConfig(cfg), cfg.FPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	bodies, err := loadBodies(cfg)
	if err != nil {
		return err
	}
	gui.New(scenarioLabel(cfg), bodies, simConfig(cfg)).Run()
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tTIME-SCALE\tMERGES\tWHEN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%d\t%s\n",
			run.ID, run.Scenario, run.Steps, run.TimeScale, run.Merges,
			run.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	rows, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	dist := make([]float64, 0, 256)
	name := ""
	for _, row := range rows {
		if row.ID != plotBody {
			continue
		}
		name = row.Name
		dist = append(dist, math.Sqrt(row.X*row.X+row.Y*row.Y+row.Z*row.Z))
	}
	if len(dist) < 2 {
		return fmt.Errorf("no data for body id %d in run %s", plotBody, args[0])
	}

	graph := asciigraph.Plot(dist,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("distance from origin (%s)", name)))
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
