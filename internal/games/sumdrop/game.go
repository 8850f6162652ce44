// Package sumdrop implements the sum-matching grid puzzle: pick tiles whose
// values add up to the target, clear them, and keep the board from reaching
// the top as new rows push in from the bottom.
package sumdrop

import (
	"math/rand"

	"github.com/tuigames/sumdrop/internal/config"
	"github.com/tuigames/sumdrop/internal/core"
	"github.com/tuigames/sumdrop/internal/registry"
)

// Mode selects the row-injection pacing rule.
type Mode string

const (
	// ModeClassic injects a row shortly after every successful match.
	ModeClassic Mode = "classic"
	// ModeTimed injects a row whenever the round countdown expires.
	ModeTimed Mode = "timed"
)

// Status is the engine lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the sumdrop engine. It owns the grid, target, score, mode, status
// and timer state, and is driven one event at a time by the platform loop;
// no mutation ever interleaves with another.
type Game struct {
	mode  Mode
	rules config.SumdropConfig
	rng   *rand.Rand
	tick  uint64

	grid   Grid
	target int
	score  int
	status Status
	level  int // reserved for progression, never advanced

	// Timed-mode countdown (seconds).
	timeLeft int
	maxTime  int

	// Classic-mode deferred row injection. Every match owes one row;
	// pendingRows counts rows owed and pendingRowTicks counts down to the
	// next one, so back-to-back matches inside one delay window still inject
	// one row each. Both are cancelled by Restart/ReturnToMenu so a stale
	// deferral can never mutate a newer game.
	pendingRows     int
	pendingRowTicks int

	// Frame counter that turns platform ticks into whole seconds.
	tickRate    int
	secondTicks int

	nextTileID int64

	// Keyboard selection cursor.
	cursorRow int
	cursorCol int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// Package-level variables for config, set by the CLI before creation.
var (
	rulesPath    string
	pacingPreset string
)

// SetConfigPath sets the rules YAML path used on the next Reset.
func SetConfigPath(path string) {
	rulesPath = path
}

// SetPacingPreset sets the pacing preset applied on the next Reset.
func SetPacingPreset(preset string) {
	pacingPreset = preset
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a timed-mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("sumdrop", func() registry.Game {
		return New()
	})
	registry.Register("sumdrop_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "sumdrop_timed"
	}
	return "sumdrop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Sumdrop (Timed)"
	}
	return "Sumdrop"
}

// Mode returns the fixed mode this game was created with.
func (g *Game) Mode() Mode {
	return g.mode
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Target returns the current sum goal.
func (g *Game) Target() int {
	return g.target
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules, err := config.LoadSumdrop(rulesPath)
	if err != nil {
		rules = config.DefaultSumdropConfig()
	}
	if pacingPreset != "" {
		config.ApplyPreset(&rules, config.PacingPreset(pacingPreset))
	}
	g.rules = rules

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.nextTileID = 0

	g.checkScreenSize()
	g.Start(g.mode)
}

// Start begins a fresh game in the given mode: the bottom initial_rows rows
// are filled with random tiles, a target is drawn, score and timers reset.
func (g *Game) Start(mode Mode) {
	g.mode = mode
	g.grid = NewGrid(g.rules.Grid.Rows, g.rules.Grid.Cols)

	firstFilled := g.grid.Rows() - g.rules.Grid.InitialRows
	for row := firstFilled; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			g.grid.Set(row, col, g.newTile())
		}
	}

	g.target = g.drawTarget()
	g.score = 0
	g.status = StatusPlaying
	g.maxTime = g.rules.Timing.TimePerRound
	g.timeLeft = g.maxTime
	g.pendingRows = 0
	g.pendingRowTicks = 0
	g.secondTicks = 0
	g.cursorRow = g.grid.Rows() - 1
	g.cursorCol = 0
}

// Restart regenerates a fresh game in the same mode.
func (g *Game) Restart() {
	g.Start(g.mode)
}

// ReturnToMenu abandons the current game without touching the score records.
// Any pending deferred row injection is cancelled.
func (g *Game) ReturnToMenu() {
	g.status = StatusIdle
	g.pendingRows = 0
	g.pendingRowTicks = 0
}

// newTile creates a fresh random tile with the next stable ID.
func (g *Game) newTile() Tile {
	g.nextTileID++
	span := g.rules.Tiles.MaxValue - g.rules.Tiles.MinValue + 1
	return Tile{
		ID:    g.nextTileID,
		Value: g.rules.Tiles.MinValue + g.rng.Intn(span),
	}
}

// drawTarget draws a uniform random sum goal.
func (g *Game) drawTarget() int {
	span := g.rules.Target.Max - g.rules.Target.Min + 1
	return g.rules.Target.Min + g.rng.Intn(span)
}

// SelectTile toggles the tile at (row, col) and evaluates the selection sum.
// Outside PLAYING, out of range, or on an empty cell it is a no-op.
func (g *Game) SelectTile(row, col int) {
	if g.status != StatusPlaying {
		return
	}
	if !g.grid.InBounds(row, col) {
		return
	}
	t := g.grid.At(row, col)
	if t.Empty() {
		return
	}

	t.Selected = !t.Selected
	g.grid.Set(row, col, t)

	sum := g.grid.SelectionSum()
	switch {
	case sum == g.target:
		g.resolveMatch()
	case sum > g.target:
		// Overflow: selection resets, board and score untouched.
		g.grid.ClearSelection()
	}
	// sum < target: pending, await further selections.
}

// resolveMatch clears the selected tiles, compacts each column, scores the
// clear, draws a new target, and resets the round timer. Classic mode also
// schedules the follow-up row injection.
func (g *Game) resolveMatch() {
	cleared := g.grid.RemoveSelected()
	g.grid.Collapse()
	g.score += cleared * g.rules.Scoring.PointsPerTile
	g.target = g.drawTarget()
	g.timeLeft = g.maxTime
	g.secondTicks = 0

	if g.mode == ModeClassic {
		if g.rules.Timing.RowDelayTicks <= 0 {
			g.AddRow()
			return
		}
		g.pendingRows++
		if g.pendingRowTicks == 0 {
			g.pendingRowTicks = g.rules.Timing.RowDelayTicks
		}
	}
}

// AddRow injects a fresh bottom row, shifting every row up by one.
// If the top row is occupied the game ends instead and the grid is left
// exactly as it was, incoming row discarded.
func (g *Game) AddRow() {
	if g.status != StatusPlaying {
		return
	}
	if g.grid.TopRowOccupied() {
		g.status = StatusGameOver
		g.pendingRows = 0
		g.pendingRowTicks = 0
		return
	}

	fresh := make([]Tile, g.grid.Cols())
	for col := range fresh {
		fresh[col] = g.newTile()
	}
	g.grid.ShiftUp(fresh)
}

// Tick advances the timed-mode countdown by one second. Outside
// PLAYING+timed it is a no-op.
func (g *Game) Tick() {
	if g.status != StatusPlaying || g.mode != ModeTimed {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.AddRow()
		if g.status == StatusPlaying {
			g.timeLeft = g.maxTime
		} else {
			g.timeLeft = 0
		}
	}
}

// TimeLeft returns the remaining seconds in the current timed round.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.rules.Grid.Cols*cellWidth + 1
	minH := g.rules.Grid.Rows + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.status == StatusPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.status == StatusPlaying {
		g.moveCursor(in)
		if in.Has(core.ActionToggle) {
			g.SelectTile(g.cursorRow, g.cursorCol)
		}
	}

	// Classic-mode deferred injections fire one per elapsed delay until every
	// owed row has arrived.
	if g.status == StatusPlaying && g.pendingRowTicks > 0 {
		g.pendingRowTicks--
		if g.pendingRowTicks == 0 {
			g.AddRow()
			g.pendingRows--
			if g.status == StatusPlaying && g.pendingRows > 0 {
				g.pendingRowTicks = g.rules.Timing.RowDelayTicks
			} else {
				g.pendingRows = 0
			}
		}
	}

	// Timed mode: convert platform ticks into one-second countdown steps.
	if g.status == StatusPlaying && g.mode == ModeTimed {
		g.secondTicks++
		if g.secondTicks >= g.tickRate {
			g.secondTicks = 0
			g.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.grid.Rows()-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.grid.Cols()-1)
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
