package sumdrop

// Snapshot captures the complete game state for determinism testing and for
// renderers. The grid is a clone; mutating it never affects the engine.
type Snapshot struct {
	Tick         uint64
	Mode         Mode
	Status       Status
	Target       int
	Score        int
	Level        int
	TimeLeft     int
	MaxTime      int
	SelectionSum int
	CursorRow    int
	CursorCol    int
	Grid         Grid
}

// Snapshot returns an immutable copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         g.mode,
		Status:       g.status,
		Target:       g.target,
		Score:        g.score,
		Level:        g.level,
		TimeLeft:     g.timeLeft,
		MaxTime:      g.maxTime,
		SelectionSum: g.grid.SelectionSum(),
		CursorRow:    g.cursorRow,
		CursorCol:    g.cursorCol,
		Grid:         g.grid.Clone(),
	}
}
