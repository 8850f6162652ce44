package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuigames/sumdrop/internal/registry"
	"github.com/tuigames/sumdrop/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores = 100 // Max scores to load per variant
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	scoreboardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreboardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	scoreboardTabActive  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// ScoreboardModel shows high score tables per game variant.
type ScoreboardModel struct {
	store    *storage.Store
	games    []registry.GameInfo
	gameIdx  int
	tbl      table.Model
	keys     ScoreboardKeyMap
	help     help.Model
	width    int
	height   int
	goBack   bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard for all registered variants.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.tbl = m.buildTable()
	return m
}

// buildTable loads the current variant's scores into a bubbles table.
func (m ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	if m.store != nil && len(m.games) > 0 {
		entries, err := m.store.TopScores(m.games[m.gameIdx].ID, maxScores)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", e.Score),
					e.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}

	tableHeight := m.height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl = m.buildTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameIdx = (m.gameIdx + 1) % len(m.games)
				m.tbl = m.buildTable()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameIdx = (m.gameIdx - 1 + len(m.games)) % len(m.games)
				m.tbl = m.buildTable()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(scoreboardTitleStyle.Render("High Scores"))
	b.WriteString("\n\n")

	// Variant tabs
	var tabs []string
	for i, g := range m.games {
		style := scoreboardTabStyle
		if i == m.gameIdx {
			style = scoreboardTabActive
		}
		tabs = append(tabs, style.Render(g.Title))
	}
	b.WriteString(strings.Join(tabs, "  |  "))
	b.WriteString("\n\n")

	b.WriteString(m.tbl.View())
	b.WriteString("\n")

	// Aggregate stats line
	if m.store != nil && len(m.games) > 0 {
		if stats, err := m.store.GetGameStats(m.games[m.gameIdx].ID); err == nil && stats.GamesCount > 0 {
			line := fmt.Sprintf("games: %d  best: %d  avg: %.0f",
				stats.GamesCount, stats.HighScore, stats.AvgScore)
			b.WriteString(scoreboardStatsStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunScoreboard shows the scoreboard. Returns true if the user wants to go
// back to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if sb, ok := finalModel.(ScoreboardModel); ok {
		return sb.goBack, nil
	}
	return false, nil
}
