package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/core"
	"github.com/vovakirdan/tui-marbles/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel is one SSH player's flow through menu, scoreboard and game
// inside a single Bubble Tea program. The child models end their own
// programs with tea.Quit when run standalone; here those commands are
// dropped and the session switches screens instead.
type SessionModel struct {
	server    SSHServerConfig
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	selection MenuSelection
	screen    sessionScreen

	menu   MenuModel
	scores ScoreboardModel
	game   Model

	quitting bool
}

// NewSessionModel starts a session at the setup menu.
func NewSessionModel(server SSHServerConfig, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	m := SessionModel{
		server:    server,
		store:     store,
		logger:    logger,
		config:    cfg,
		selection: MenuSelection{Difficulty: config.DifficultyNormal, Level: 1},
	}
	m.menu = NewMenuModel(server.GameID, server.Title, store, cfg, m.selection)
	return m
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	m.selection = m.menu.Selection()

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.server.GameID, m.server.Title, m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, nil

	case m.menu.Chosen():
		m.logger.Info("game started", "difficulty", m.selection.Difficulty, "level", m.selection.Level)
		m.game = NewModel(m.server.NewGame(m.selection), m.store, m.logger, m.config)
		m.game.embedded = true
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		state := m.game.GameState()
		m.logger.Info("game left", "score", state.Score, "level", state.Level)
		return m.toMenu(), nil
	}
	return m, cmd
}

// toMenu rebuilds the menu so it shows the current best score, keeping the
// player's last selection.
func (m SessionModel) toMenu() SessionModel {
	m.menu = NewMenuModel(m.server.GameID, m.server.Title, m.store, m.config, m.selection)
	m.screen = screenMenu
	return m
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}
