package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestMultiFansOutInOrder(t *testing.T) {
	first, second := &Recorder{}, &Recorder{}
	m := newTestModel(t, [][]int{
		{2, 2, 0},
		{0, 0, 4},
		{0, 0, 0},
	}, Multi{first, second})

	move(t, m, grid.Left)
	if err := m.InsertTile(grid.Cell{Row: 2, Col: 2}, 2); err != nil {
		t.Fatalf("InsertTile failed: %v", err)
	}

	if len(first.Events) == 0 {
		t.Fatal("first observer received no events")
	}
	if len(first.Events) != len(second.Events) {
		t.Fatalf("observers got %d and %d events, want the same", len(first.Events), len(second.Events))
	}
	for i := range first.Events {
		if first.Events[i].String() != second.Events[i].String() {
			t.Errorf("event %d = %s and %s, want identical", i, first.Events[i], second.Events[i])
		}
	}

	want := []EventKind{EventMerge, EventScore, EventMove, EventInsert}
	if len(first.Events) != len(want) {
		t.Fatalf("events = %v, want kinds %v", first.Events, want)
	}
	for i, kind := range want {
		if first.Events[i].Kind != kind {
			t.Errorf("event %d kind = %s, want %s", i, first.Events[i].Kind, kind)
		}
	}
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	m := newTestModel(t, [][]int{
		{0, 2, 2},
		{0, 0, 0},
		{0, 0, 0},
	}, LogObserver{Logger: logger})
	move(t, m, grid.Left)

	out := buf.String()
	for _, msg := range []string{"event=merge", "event=score"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
	if strings.Contains(out, "event=move") {
		t.Errorf("log output has a slide for a pure merge:\n%s", out)
	}
}
