package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Settings   config.Settings
	Runtime    core.RuntimeConfig
	Store      *storage.Store // may be nil
	Logger     *log.Logger    // may be nil
	Player     string         // recorded with saved games
	Standalone bool           // quit the program instead of returning to a menu
}

// GameModel is the Bubble Tea model for one board. It drives a
// session.Session and animates the events the model emits.
type GameModel struct {
	opts      GameOptions
	logger    *log.Logger
	sess      *session.Session
	anim      *Animator
	view      *BoardView
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	best      int
	paused    bool
	quitting  bool
	back      bool
	status    string
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// NewGameModel creates a game model and starts the first game.
func NewGameModel(opts GameOptions) (GameModel, error) {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		opts:      opts,
		logger:    logger,
		view:      &BoardView{},
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-helpHeight),
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	m.help.Width = opts.Runtime.ScreenW

	if err := m.newGame(); err != nil {
		return m, err
	}
	return m, nil
}

// helpHeight is the number of lines below the board reserved for the status
// and short help.
const helpHeight = 2

// newGame abandons the current game, if any, and starts a fresh session.
// Only the first game uses the configured seed; later ones are random.
func (m *GameModel) newGame() error {
	m.finish()

	anim := NewAnimator(m.opts.Runtime.SlideTicks, m.opts.Runtime.PopTicks)
	opts := []session.Option{
		session.WithLogger(m.logger),
		session.WithPlayer(m.opts.Player),
	}
	if m.opts.Store != nil {
		opts = append(opts, session.WithScoreSaver(m.opts.Store))
	}

	observer := game.Multi{anim, game.LogObserver{Logger: m.logger}}
	sess, err := session.New(m.opts.Settings.SessionConfig(m.opts.Runtime.Seed), observer, opts...)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	m.opts.Runtime.Seed = 0

	anim.Flush()
	m.sess = sess
	m.anim = anim
	m.paused = false
	m.status = ""
	m.loadBest()
	return nil
}

// loadBest reads the stored high score for the current variant.
func (m *GameModel) loadBest() {
	m.best = 0
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore(m.opts.Settings.ScoreKey())
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return
	}
	m.best = best
}

// finish ends the current game, saving it if it is still in progress.
func (m *GameModel) finish() {
	if m.sess == nil {
		return
	}
	if err := m.sess.Finish(); err != nil {
		m.logger.Warn("could not save game", "error", err)
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.anim.Tick()
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.finish()
		m.back = true
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionPause:
		if !m.sess.Over() {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		if err := m.newGame(); err != nil {
			m.logger.Error("restart failed", "error", err)
			m.status = err.Error()
		}
		return m, nil
	}

	if dir, ok := action.Direction(); ok && !m.paused {
		m.status = ""
		if err := m.sess.Move(dir); err != nil && !errors.Is(err, session.ErrGameOver) {
			m.logger.Error("move failed", "dir", dir, "error", err)
		}
		m.anim.Flush()
	}

	return m, nil
}

// saveScreenshot renders the board and writes it as plain text to
// ~/.t2048/screenshots.
func (m *GameModel) saveScreenshot() {
	m.view.Render(m.screen, m.boardState())

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.Settings.ScoreKey(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
	m.logger.Debug("screenshot saved", "path", path)
}

// boardState collects what the renderer needs from the session.
func (m GameModel) boardState() BoardState {
	model := m.sess.Model()
	winCell, won := m.sess.WinningCell()
	return BoardState{
		Title:     fmt.Sprintf("2048 · %s", m.opts.Settings.Title),
		Board:     m.sess.Board(),
		Score:     m.sess.Score(),
		Best:      m.best,
		Moves:     model.Moves(),
		MaxTile:   model.MaxTile(),
		Threshold: model.Threshold(),
		Won:       won,
		WinCell:   winCell,
		Lost:      m.sess.State() == session.StateLost,
		Paused:    m.paused,
		Animator:  m.anim,
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen, m.boardState())

	status := m.status
	if status != "" {
		status = statusStyle.Render(status)
	}
	return RenderScreen(m.screen) + "\n" + status + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Session returns the running game session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Run starts a standalone Bubble Tea program for a single variant.
func Run(opts GameOptions) error {
	opts.Standalone = true
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if gm, ok := final.(GameModel); ok {
		gm.finish()
	}
	return err
}
