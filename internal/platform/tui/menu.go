package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/sumdrop/internal/core"
	"github.com/tuigames/sumdrop/internal/registry"
	"github.com/tuigames/sumdrop/internal/storage"
)

// MenuItem represents a selectable entry in the mode picker.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// modeBlurbs describes each variant's pacing on the menu screen.
var modeBlurbs = map[string]string{
	"sumdrop":       "a new row after every match",
	"sumdrop_timed": "a new row every countdown",
}

// NewMenuModel creates a new menu model from the registered variants.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Blurb:  modeBlurbs[g.ID],
		})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  S U M D R O P  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	subtitle := "Pick tiles that add up to the target"
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-20s %s", cursor, item.Title, item.Blurb)

		// Append high score if storage is available
		if m.store != nil {
			if high, err := m.store.HighScore(item.GameID); err == nil && high > 0 {
				line = fmt.Sprintf("%s  (best: %d)", line, high)
			}
		}

		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "up/down: navigate - enter: play - tab: high scores - q: quit"
	b.WriteString(centerText(help, m.width))

	return b.String()
}

// IsQuitting returns true if the user quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Selected returns the chosen menu item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Config returns the (possibly resized) runtime config.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult describes what the user chose in the menu.
type MenuResult struct {
	GameID          string
	Quit            bool
	WantsScoreboard bool
	Config          core.RuntimeConfig
}

// RunMenu shows the mode picker and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	menu, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, nil
	}

	result := MenuResult{
		Quit:            menu.quitting,
		WantsScoreboard: menu.openScoreboard,
		Config:          menu.Config(),
	}
	if menu.selected != nil {
		result.GameID = menu.selected.GameID
	}
	return result, nil
}
