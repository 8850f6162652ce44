package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadSumdropCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
grid:
  rows: 8
  cols: 5
  initial_rows: 2
tiles:
  min_value: 1
  max_value: 6
target:
  min: 5
  max: 12
timing:
  time_per_round: 20
  row_delay_ticks: 10
scoring:
  points_per_tile: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadSumdrop(path)
	if err != nil {
		t.Fatalf("LoadSumdrop() error: %v", err)
	}

	if cfg.Grid.Rows != 8 || cfg.Grid.Cols != 5 || cfg.Grid.InitialRows != 2 {
		t.Errorf("grid = %+v, expected 8x5 with 2 initial rows", cfg.Grid)
	}
	if cfg.Tiles.MaxValue != 6 {
		t.Errorf("tiles.max_value = %d, expected 6", cfg.Tiles.MaxValue)
	}
	if cfg.Target.Min != 5 || cfg.Target.Max != 12 {
		t.Errorf("target = %+v, expected [5, 12]", cfg.Target)
	}
	if cfg.Timing.TimePerRound != 20 || cfg.Timing.RowDelayTicks != 10 {
		t.Errorf("timing = %+v, expected 20s rounds with 10 tick delay", cfg.Timing)
	}
	if cfg.Scoring.PointsPerTile != 25 {
		t.Errorf("scoring.points_per_tile = %d, expected 25", cfg.Scoring.PointsPerTile)
	}
}

func TestLoadSumdropMissingCustomPath(t *testing.T) {
	_, err := LoadSumdrop(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}

func TestLoadSumdropInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not: valid"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadSumdrop(path)
	if err == nil {
		t.Error("expected a parse error for invalid YAML")
	}
}

func TestLoadSumdropRejectsInvalidRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	// Tile values above 9 are rejected: the board renders single digits.
	content := `
grid:
  rows: 10
  cols: 6
  initial_rows: 4
tiles:
  min_value: 1
  max_value: 12
target:
  min: 10
  max: 25
timing:
  time_per_round: 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadSumdrop(path)
	if err == nil {
		t.Error("expected a validation error for double-digit tiles")
	}
}

func TestLoadSumdropDefault(t *testing.T) {
	// With no custom path the loader always ends on a playable rule set,
	// whether from a user override or the embedded YAML.
	cfg, err := LoadSumdrop("")
	if err != nil {
		t.Fatalf("LoadSumdrop(\"\") error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesFallback(t *testing.T) {
	var cfg SumdropConfig
	if err := yaml.Unmarshal(defaultSumdropYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultSumdropConfig() {
		t.Errorf("embedded config = %+v, hardcoded default = %+v", cfg, DefaultSumdropConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SumdropConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *SumdropConfig) {}, false},
		{"too few rows", func(c *SumdropConfig) { c.Grid.Rows = 1 }, true},
		{"zero columns", func(c *SumdropConfig) { c.Grid.Cols = 0 }, true},
		{"initial rows fill the board", func(c *SumdropConfig) { c.Grid.InitialRows = c.Grid.Rows }, true},
		{"zero initial rows", func(c *SumdropConfig) { c.Grid.InitialRows = 0 }, true},
		{"tile minimum below one", func(c *SumdropConfig) { c.Tiles.MinValue = 0 }, true},
		{"inverted tile range", func(c *SumdropConfig) { c.Tiles.MinValue = 5; c.Tiles.MaxValue = 3 }, true},
		{"double-digit tiles", func(c *SumdropConfig) { c.Tiles.MaxValue = 10 }, true},
		{"target below tile minimum", func(c *SumdropConfig) { c.Target.Min = 0 }, true},
		{"inverted target range", func(c *SumdropConfig) { c.Target.Min = 20; c.Target.Max = 10 }, true},
		{"zero round time", func(c *SumdropConfig) { c.Timing.TimePerRound = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSumdropConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name         string
		preset       PacingPreset
		wantTime     int
		wantInitRows int
	}{
		{"relaxed", PresetRelaxed, 45, 3},
		{"normal", PresetNormal, 30, 4},
		{"intense", PresetIntense, 15, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSumdropConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Timing.TimePerRound != tc.wantTime {
				t.Errorf("time_per_round = %d, expected %d", cfg.Timing.TimePerRound, tc.wantTime)
			}
			if cfg.Grid.InitialRows != tc.wantInitRows {
				t.Errorf("initial_rows = %d, expected %d", cfg.Grid.InitialRows, tc.wantInitRows)
			}
		})
	}
}

func TestApplyPresetUnknownLeavesConfig(t *testing.T) {
	cfg := DefaultSumdropConfig()
	ApplyPreset(&cfg, PacingPreset("turbo"))
	if cfg != DefaultSumdropConfig() {
		t.Error("unknown preset must leave the config untouched")
	}
}
