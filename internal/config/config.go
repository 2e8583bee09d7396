package config

import (
	"fmt"
	"os"

	"github.com/mvelde/orbitlab/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario  = "solar-system"
	DefaultSteps     = 365
	DefaultTimeScale = 1.0
	DefaultFPS       = 30
	DefaultDataDir   = ".orbitlab"
)

// Config is the run configuration shared by the CLI commands. ScenarioFile,
// when set, overrides the named scenario with a YAML body list.
type Config struct {
	Scenario     string  `yaml:"scenario"`
	ScenarioFile string  `yaml:"scenario_file"`
	Steps        int     `yaml:"steps"`
	TimeScale    float64 `yaml:"time_scale"`
	Collisions   bool    `yaml:"collisions"`
	Parallel     bool    `yaml:"parallel"`
	FPS          int     `yaml:"fps"`
	DataDir      string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario:   DefaultScenario,
		Steps:      DefaultSteps,
		TimeScale:  DefaultTimeScale,
		Collisions: true,
		FPS:        DefaultFPS,
		DataDir:    DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.TimeScale < physics.MinTimeScale || c.TimeScale > physics.MaxTimeScale {
		return fmt.Errorf("time_scale must be in [%g, %g], got %g",
			physics.MinTimeScale, physics.MaxTimeScale, c.TimeScale)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
