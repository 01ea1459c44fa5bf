package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Selection is what the player picked in the menu.
type Selection struct {
	GameID string // "breakout" or "breakout_endless"
	Level  int    // Starting level index
}

// menuEntry is one line of the mode list.
type menuEntry struct {
	label  string
	action func(m *MenuModel) tea.Cmd
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	entries        []menuEntry
	levels         []*breakout.Level
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	help           help.Model
	best           int
	quitting       bool
	selected       *Selection // Set when user picks a mode or level
	openScoreboard bool       // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	levels := breakout.BuiltinLevels()

	m := MenuModel{
		levels:    levels,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	m.entries = []menuEntry{
		{
			label:  fmt.Sprintf("Campaign (%d levels)", len(levels)),
			action: selectGame("breakout", 0),
		},
		{
			label:  "Endless Mode",
			action: selectGame("breakout_endless", 0),
		},
		{
			label: "Select Level...",
			action: func(m *MenuModel) tea.Cmd {
				m.inLevelSelect = true
				m.levelCursor = 0
				return nil
			},
		},
		{
			label: "High Scores",
			action: func(m *MenuModel) tea.Cmd {
				m.openScoreboard = true
				return tea.Quit
			},
		},
	}

	if store != nil {
		if best, err := store.HighScore("breakout"); err == nil {
			m.best = best
		}
	}
	return m
}

func selectGame(gameID string, level int) func(m *MenuModel) tea.Cmd {
	return func(m *MenuModel) tea.Cmd {
		m.selected = &Selection{GameID: gameID, Level: level}
		return tea.Quit // Exit menu to start game
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
		m.help.Width = msg.Width
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

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		return m.handleLevelKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		cmd := m.entries[m.cursor].action(&m)
		return m, cmd
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		cmd := selectGame("breakout", m.levelCursor)(&m)
		return m, cmd
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Select level", m.width))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			b.WriteString(centerText(menuLine(i == m.levelCursor, fmt.Sprintf("%2d. %s", i+1, lvl.Name)), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select game mode", m.width))
		b.WriteString("\n\n")
		for i, e := range m.entries {
			b.WriteString(centerText(menuLine(i == m.cursor, e.label), m.width))
			b.WriteString("\n")
		}
		if m.best > 0 {
			b.WriteString("\n")
			b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keyMapper.Menu)), m.width))
	b.WriteString("\n")

	return b.String()
}

func menuLine(active bool, label string) string {
	if active {
		return "> " + label
	}
	return "  " + label
}

// Selected returns the selected mode, or nil if none selected.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
		result.Level = m.Selected().Level
	default:
		result.Quit = true
	}

	return result, nil
}
