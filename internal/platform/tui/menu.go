package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/storage"
)

// maxStartLevel bounds the start level offered by the menu.
const maxStartLevel = 20

// difficulties is the order the menu cycles presets in.
var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// Menu rows.
const (
	menuRowPlay = iota
	menuRowDifficulty
	menuRowLevel
	menuRowScores
	menuRowCount
)

var menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuSelection is what the player picked in the setup menu.
type MenuSelection struct {
	Difficulty config.DifficultyPreset
	Level      int
}

// MenuModel lets the player pick a difficulty and start level, or open the
// scoreboard.
type MenuModel struct {
	gameID     string
	title      string
	cursor     int
	difficulty int
	level      int
	best       int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	quitting   bool
	chosen     bool
	scoreboard bool
}

// NewMenuModel creates a setup menu for gameID. The initial selection is
// taken from sel; store may be nil.
func NewMenuModel(gameID, title string, store *storage.Store, cfg core.RuntimeConfig, sel MenuSelection) MenuModel {
	m := MenuModel{
		gameID: gameID,
		title:  title,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		level:  max(sel.Level, 1),
	}
	m.difficulty = 1
	for i, d := range difficulties {
		if d == sel.Difficulty {
			m.difficulty = i
		}
	}
	if store != nil {
		if best, err := store.HighScore(gameID); err == nil {
			m.best = best
		}
	}
	return m
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
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + menuRowCount - 1) % menuRowCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % menuRowCount

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)

	case key.Matches(msg, m.keys.Scores):
		m.scoreboard = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case menuRowScores:
			m.scoreboard = true
			return m, tea.Quit
		case menuRowDifficulty, menuRowLevel:
			m.adjust(1)
		default:
			m.chosen = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// adjust changes the value on the current row by delta, wrapping around.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case menuRowDifficulty:
		m.difficulty = (m.difficulty + delta + len(difficulties)) % len(difficulties)
	case menuRowLevel:
		m.level = (m.level-1+delta+maxStartLevel)%maxStartLevel + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	rows := [menuRowCount]string{
		menuRowPlay:       "Play",
		menuRowDifficulty: fmt.Sprintf("Difficulty  < %s >", difficulties[m.difficulty]),
		menuRowLevel:      fmt.Sprintf("Start level < %d >", m.level),
		menuRowScores:     "High scores",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the current difficulty and start level.
func (m MenuModel) Selection() MenuSelection {
	return MenuSelection{Difficulty: difficulties[m.difficulty], Level: m.level}
}

// Chosen returns true if the player picked Play.
func (m MenuModel) Chosen() bool {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between the letters of an upper-cased title.
func spaced(title string) string {
	return strings.Join(strings.Split(strings.ToUpper(title), ""), " ")
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the setup menu and returns the selection result.
func RunMenu(gameID, title string, store *storage.Store, cfg core.RuntimeConfig, sel MenuSelection) (MenuResult, error) {
	model := NewMenuModel(gameID, title, store, cfg, sel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Selection: sel}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Selection: sel, Quit: true}, nil
	}

	result := MenuResult{
		Selection:       m.Selection(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            !m.Chosen() && !m.WantsScoreboard(),
	}
	return result, nil
}
