package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/sumdrop/internal/core"
)

func testSessionModel() SessionModel {
	return NewSessionModel(nil, core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	})
}

// producesQuit reports whether a command would terminate the program.
func producesQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionTabOpensScoreboard(t *testing.T) {
	m := testSessionModel()

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	session, ok := newModel.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", newModel)
	}

	if session.scoreboard == nil {
		t.Fatal("Tab on the menu should show the scoreboard inside the session")
	}
	if producesQuit(cmd) {
		t.Error("Tab must not terminate the session program")
	}
}

func TestSessionScoreboardBackReturnsToMenu(t *testing.T) {
	m := testSessionModel()

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	session := newModel.(SessionModel)
	if session.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}

	newModel, cmd := session.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	session = newModel.(SessionModel)

	if session.scoreboard != nil {
		t.Error("Back should close the scoreboard")
	}
	if session.quitting {
		t.Error("Back from the scoreboard must not quit the session")
	}
	if producesQuit(cmd) {
		t.Error("Back must not terminate the session program")
	}
}

func TestSessionMenuQuitStillQuits(t *testing.T) {
	m := testSessionModel()

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	session := newModel.(SessionModel)

	if !session.quitting {
		t.Error("q on the menu should quit the session")
	}
	if !producesQuit(cmd) {
		t.Error("quitting should terminate the session program")
	}
}
