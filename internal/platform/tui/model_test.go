package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 1}
}

func newTestGame(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	settings, err := config.DefaultConfig().Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	m, err := NewGameModel(GameOptions{
		Settings: settings,
		Runtime:  testRuntime(),
		Store:    store,
		Player:   "tester",
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func press(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, want GameModel", next)
	}
	return gm, cmd
}

func tileCount(board [][]int) int {
	n := 0
	for _, row := range board {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

var arrows = []tea.KeyMsg{
	{Type: tea.KeyLeft},
	{Type: tea.KeyUp},
	{Type: tea.KeyRight},
	{Type: tea.KeyDown},
}

func TestGameModelStartsWithTwoTiles(t *testing.T) {
	m := newTestGame(t, nil)

	if got := tileCount(m.Session().Board()); got != 2 {
		t.Errorf("initial tiles = %d, want 2", got)
	}
	if m.Session().State() != session.StatePlaying {
		t.Errorf("State() = %v, want playing", m.Session().State())
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestGameModelMoves(t *testing.T) {
	m := newTestGame(t, nil)

	for _, k := range arrows {
		m, _ = press(t, m, k)
	}
	if got := m.Session().Model().Moves(); got != len(arrows) {
		t.Errorf("Moves() = %d, want %d", got, len(arrows))
	}
	if tileCount(m.Session().Board()) < 2 {
		t.Error("board lost tiles")
	}
}

func TestGameModelPauseBlocksMoves(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = press(t, m, runeKey('p'))
	if !m.paused {
		t.Fatal("p should pause")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Session().Model().Moves(); got != 0 {
		t.Errorf("Moves() while paused = %d, want 0", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause overlay")
	}

	m, _ = press(t, m, runeKey('p'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Session().Model().Moves(); got != 1 {
		t.Errorf("Moves() after resume = %d, want 1", got)
	}
}

func TestGameModelRestart(t *testing.T) {
	m := newTestGame(t, nil)
	first := m.Session()

	m, _ = press(t, m, runeKey('r'))
	if m.Session() == first {
		t.Fatal("restart should start a new session")
	}
	if first.State() != session.StateAbandoned {
		t.Errorf("old session State() = %v, want abandoned", first.State())
	}
	if m.Session().ID() == first.ID() {
		t.Error("restarted session reused the ID")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}
	if m.Session().State() != session.StateAbandoned {
		t.Errorf("State() = %v, want abandoned", m.Session().State())
	}
}

func TestGameModelBack(t *testing.T) {
	m := newTestGame(t, nil)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("BackToMenu() = false after esc")
	}
	if cmd != nil {
		t.Error("back should not quit the program outside standalone mode")
	}

	m = newTestGame(t, nil)
	m.opts.Standalone = true
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.IsQuitting() {
		t.Error("back in standalone mode should quit")
	}
}

func TestGameModelResizeAndTick(t *testing.T) {
	m := newTestGame(t, nil)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}

	_, cmd := press(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	view := m.View()
	for _, want := range []string{"Score:", "Classic 2048"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestGameModelSavesToStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestGame(t, store)
	for i := 0; i < 200 && m.Session().Score() == 0 && !m.Session().Over(); i++ {
		m, _ = press(t, m, arrows[i%len(arrows)])
	}
	if m.Session().Score() == 0 {
		t.Skip("no merge happened with this seed")
	}

	id := m.Session().ID()
	score := m.Session().Score()
	press(t, m, runeKey('q'))

	rec, err := store.GameBySession(id)
	if err != nil {
		t.Fatalf("GameBySession() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("game was not saved")
	}
	if rec.Score != score || rec.Player != "tester" || rec.Variant != "classic" {
		t.Errorf("saved record = %+v, want score %d for tester on classic", rec, score)
	}

	best, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != score {
		t.Errorf("HighScore() = %d, want %d", best, score)
	}
}

func TestGameModelLogsBoardEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	settings, err := config.DefaultConfig().Resolve()
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	m, err := NewGameModel(GameOptions{
		Settings: settings,
		Runtime:  testRuntime(),
		Logger:   logger,
	})
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}

	if got := strings.Count(buf.String(), "event=insert"); got != 2 {
		t.Errorf("logged %d insertions, want 2 for the opening tiles", got)
	}
	if m.anim == nil || tileCount(m.Session().Board()) != 2 {
		t.Error("animator missing or board not started alongside logging")
	}
}
