// Package config provides YAML-based rule configuration and pacing presets
// for the sumdrop platform.
package config

// SumdropConfig contains all tunable rules for the game.
type SumdropConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Target  TargetConfig  `yaml:"target"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the board dimensions and initial fill.
type GridConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	InitialRows int `yaml:"initial_rows"`
}

// TilesConfig defines the range of tile face values.
type TilesConfig struct {
	MinValue int `yaml:"min_value"`
	MaxValue int `yaml:"max_value"`
}

// TargetConfig defines the range the sum target is drawn from.
type TargetConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig defines the two pacing rules.
type TimingConfig struct {
	// TimePerRound is the countdown (seconds) before a timed-mode row injection.
	TimePerRound int `yaml:"time_per_round"`
	// RowDelayTicks is how many simulation ticks classic mode waits between a
	// match resolving and the follow-up row injection, so the clear is visible.
	RowDelayTicks int `yaml:"row_delay_ticks"`
}

// ScoringConfig defines score accounting.
type ScoringConfig struct {
	PointsPerTile int `yaml:"points_per_tile"`
}

// PacingPreset represents a named pacing level.
type PacingPreset string

const (
	PresetRelaxed PacingPreset = "relaxed"
	PresetNormal  PacingPreset = "normal"
	PresetIntense PacingPreset = "intense"
)

// ApplyPreset adjusts timing and initial fill for a named preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *SumdropConfig, preset PacingPreset) {
	switch preset {
	case PresetRelaxed:
		cfg.Timing.TimePerRound = 45
		cfg.Grid.InitialRows = 3
	case PresetNormal:
		cfg.Timing.TimePerRound = 30
		cfg.Grid.InitialRows = 4
	case PresetIntense:
		cfg.Timing.TimePerRound = 15
		cfg.Grid.InitialRows = 5
	}
}

// Validate reports whether the config describes a playable board.
func (c SumdropConfig) Validate() error {
	if c.Grid.Rows < 2 || c.Grid.Cols < 1 {
		return errGrid
	}
	if c.Grid.InitialRows < 1 || c.Grid.InitialRows >= c.Grid.Rows {
		return errInitialRows
	}
	if c.Tiles.MinValue < 1 || c.Tiles.MaxValue < c.Tiles.MinValue || c.Tiles.MaxValue > 9 {
		return errTiles
	}
	if c.Target.Min < c.Tiles.MinValue || c.Target.Max < c.Target.Min {
		return errTarget
	}
	if c.Timing.TimePerRound < 1 {
		return errTiming
	}
	return nil
}
