package config

import (
	_ "embed"
	"errors"
)

//go:embed defaults/sumdrop.yaml
var defaultSumdropYAML []byte

var (
	errGrid        = errors.New("config: grid needs at least 2 rows and 1 column")
	errInitialRows = errors.New("config: initial_rows must be between 1 and rows-1")
	errTiles       = errors.New("config: tile values must be single digits within [1, 9]")
	errTarget      = errors.New("config: target range is invalid")
	errTiming      = errors.New("config: time_per_round must be positive")
)

// DefaultSumdropConfig returns the default rule set.
// Matches the embedded defaults/sumdrop.yaml.
func DefaultSumdropConfig() SumdropConfig {
	return SumdropConfig{
		Grid: GridConfig{
			Rows:        10,
			Cols:        6,
			InitialRows: 4,
		},
		Tiles: TilesConfig{
			MinValue: 1,
			MaxValue: 9,
		},
		Target: TargetConfig{
			Min: 10,
			Max: 25,
		},
		Timing: TimingConfig{
			TimePerRound:  30,
			RowDelayTicks: 30, // half a second at 60fps
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
		},
	}
}
