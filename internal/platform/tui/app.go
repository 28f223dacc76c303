package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // may be nil
	Logger  *log.Logger    // may be nil
	Player  string
}

// appScreen is the screen the app currently shows.
type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScoreboard
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// This is the top-level model for the menu command and SSH sessions.
type AppModel struct {
	opts       AppOptions
	logger     *log.Logger
	screen     appScreen
	menu       MenuModel
	game       *GameModel
	scoreboard ScoreboardModel
	err        string
	quitting   bool
	active     *activeGame
}

// activeGame tracks the session on screen so it can be finished after the
// program exits, e.g. when an SSH client disconnects mid-game.
type activeGame struct {
	mu   sync.Mutex
	sess *session.Session
}

func (a *activeGame) set(s *session.Session) {
	a.mu.Lock()
	a.sess = s
	a.mu.Unlock()
}

func (a *activeGame) finish() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.sess == nil {
		return nil
	}
	err := a.sess.Finish()
	a.sess = nil
	return err
}

// NewAppModel creates a new app model showing the variant menu.
func NewAppModel(opts AppOptions) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return AppModel{
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(opts.Store, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		active: &activeGame{},
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(selected.VariantID)
	}

	return m, cmd
}

// startGame creates a game model for the variant and switches to it.
func (m AppModel) startGame(variantID string) (tea.Model, tea.Cmd) {
	settings, err := m.opts.Config.ForVariant(variantID)
	if err != nil {
		return m.showMenu(err.Error())
	}

	game, err := NewGameModel(GameOptions{
		Settings: settings,
		Runtime:  m.opts.Runtime,
		Store:    m.opts.Store,
		Logger:   m.logger,
		Player:   m.opts.Player,
	})
	if err != nil {
		m.logger.Error("could not start game", "variant", variantID, "error", err)
		return m.showMenu(err.Error())
	}

	m.game = &game
	m.active.set(game.Session())
	m.screen = screenGame
	return m, m.game.Init()
}

// showMenu rebuilds the menu so best scores are fresh.
func (m AppModel) showMenu(errMsg string) (tea.Model, tea.Cmd) {
	m.err = errMsg
	m.game = nil
	m.active.set(nil)
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
	return m, m.menu.Init()
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
		m.active.set(gameModel.Session())
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.showMenu("")
	}

	return m, cmd
}

// updateScoreboard handles updates when showing scores.
func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.showMenu("")
	}

	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}

	view := m.menu.View()
	if m.err != "" {
		view += "\n" + centerText(errorStyle.Render(m.err), m.opts.Runtime.ScreenW)
	}
	return view
}

// Finish ends a game still in progress, saving it.
func (m AppModel) Finish() {
	if err := m.active.finish(); err != nil {
		m.logger.Warn("could not save game", "error", err)
	}
}

// RunApp runs the menu-driven program in the local terminal.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if app, ok := final.(AppModel); ok {
		app.Finish()
	}
	return err
}
