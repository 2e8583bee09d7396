package config

var Presets = map[string]map[string]*Config{
	"solar-system": {
		"year": {
			Scenario: "solar-system", Steps: 365, TimeScale: 1.0, Collisions: true,
		},
		"decade": {
			Scenario: "solar-system", Steps: 3650, TimeScale: 1.0, Collisions: true,
		},
		"fast": {
			Scenario: "solar-system", Steps: 730, TimeScale: 5.0, Collisions: true,
		},
	},
	"binary-stars": {
		"orbit": {
			Scenario: "binary-stars", Steps: 600, TimeScale: 1.0, Collisions: true,
		},
		"slow": {
			Scenario: "binary-stars", Steps: 2000, TimeScale: 0.25, Collisions: true,
		},
	},
	"three-body": {
		"stable": {
			Scenario: "three-body", Steps: 1000, TimeScale: 0.5, Collisions: true,
		},
		"chaos": {
			Scenario: "three-body", Steps: 2000, TimeScale: 3.0, Collisions: true,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil. Callers own the
// returned config; the preset table itself is never handed out.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
