package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	results := []session.Result{
		{SessionID: "w", Variant: "classic", Player: "alice", Score: 20000, MaxTile: 2048, Moves: 950, State: session.StateWon},
		{SessionID: "l", Variant: "classic", Player: "bob", Score: 3000, MaxTile: 256, Moves: 300, State: session.StateLost},
		{SessionID: "m", Variant: "mini", Player: "alice", Score: 900, MaxTile: 128, Moves: 120, State: session.StateAbandoned},
	}
	for _, r := range results {
		if err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%s) failed: %v", r.SessionID, err)
		}
	}
	return store
}

func sendScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T, want ScoreboardModel", next)
	}
	return sb
}

func TestScoreboardWideLayout(t *testing.T) {
	m := NewScoreboardModel(openScoreStore(t), 100, 30)

	if len(m.games) != 2 {
		t.Fatalf("classic games = %d, want 2", len(m.games))
	}
	if m.games[0].SessionID != "w" {
		t.Errorf("first game = %s, want the best score", m.games[0].SessionID)
	}

	view := m.View()
	for _, want := range []string{"Classic 2048 (4x4 to 2048)", "Boards", "3x3 to 512", "2 games  1 won", "alice", "won", "2048*", "reached the goal tile"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardSelectBoard(t *testing.T) {
	m := NewScoreboardModel(openScoreStore(t), 100, 30)
	last := len(m.boards) - 1

	m = sendScoreboard(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != last {
		t.Errorf("cursor after shift+tab = %d, want %d", m.cursor, last)
	}
	if len(m.games) != 0 || !strings.Contains(m.View(), "not played yet") {
		t.Errorf("unplayed board shows %d games", len(m.games))
	}

	for m.boards[m.cursor].variant.ID != "mini" {
		m = sendScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if len(m.games) != 1 || m.games[0].Result != string(session.StateAbandoned) {
		t.Fatalf("mini games = %v, want the abandoned game", m.games)
	}
	if !strings.Contains(m.View(), "quit") {
		t.Error("abandoned game should be listed as quit")
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(openScoreStore(t), 60, 24)

	view := m.View()
	if strings.Contains(view, "Boards") {
		t.Error("narrow layout should not draw the sidebar")
	}
	if !strings.Contains(view, "classic") {
		t.Error("narrow layout missing board tabs")
	}
	if strings.Contains(view, "alice") {
		t.Error("narrow layout should drop the player column")
	}

	m = sendScoreboard(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.View(), "alice") {
		t.Error("resizing to a wide terminal should add the player column")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("View() without a store should show the empty hint")
	}

	m = sendScoreboard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
