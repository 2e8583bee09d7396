package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := DefaultConfig()
	want.Scenario = "three-body"
	want.Steps = 500
	want.TimeScale = 2.5
	want.Parallel = true

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip: got %+v, want %+v", got, want)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	// A partial file written by hand still gets defaults for what it omits.
	partial := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(partial, []byte("scenario: binary-stars\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(partial)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Scenario != "binary-stars" {
		t.Errorf("scenario = %q", got.Scenario)
	}
	if got.Steps != DefaultSteps || got.FPS != DefaultFPS {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"zero steps", func(c *Config) { c.Steps = 0 }, false},
		{"negative steps", func(c *Config) { c.Steps = -1 }, false},
		{"time scale too low", func(c *Config) { c.TimeScale = 0.01 }, false},
		{"time scale too high", func(c *Config) { c.TimeScale = 10 }, false},
		{"time scale at min", func(c *Config) { c.TimeScale = 0.1 }, true},
		{"time scale at max", func(c *Config) { c.TimeScale = 5.0 }, true},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate accepted %+v", cfg)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for scenario, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Scenario != scenario {
				t.Errorf("preset %s/%s points at scenario %q", scenario, name, cfg.Scenario)
			}
			// Presets leave FPS and DataDir to the defaults layer.
			cfg := *cfg
			cfg.FPS = DefaultFPS
			cfg.DataDir = DefaultDataDir
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", scenario, name, err)
			}
		}
	}

	if GetPreset("solar-system", "year") == nil {
		t.Errorf("GetPreset missed a known preset")
	}
	if GetPreset("solar-system", "nope") != nil || GetPreset("nope", "year") != nil {
		t.Errorf("GetPreset invented a preset")
	}
	if len(ListPresets("three-body")) != 2 {
		t.Errorf("ListPresets(three-body) = %v", ListPresets("three-body"))
	}
}

// Mutating what GetPreset returns must not write through to the preset table.
func TestGetPresetReturnsCopy(t *testing.T) {
	got := GetPreset("solar-system", "year")
	if got == nil {
		t.Fatal("GetPreset(solar-system, year) = nil")
	}
	got.Steps = -999
	got.TimeScale = 99

	again := GetPreset("solar-system", "year")
	if again.Steps != 365 || again.TimeScale != 1.0 {
		t.Errorf("preset table corrupted: %+v", again)
	}
}
