package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-maze/internal/game"
	"github.com/vovakirdan/candy-maze/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func recordRun(t *testing.T, store *storage.Store, seed uint64) string {
	t.Helper()
	rules := game.DefaultRules()
	rec, err := store.StartRun("backtracker", seed, rules)
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	ev := game.StartGameEvent{Maze: smallMaze(), Seed: seed}
	if err := rec.Record(ev, rules.Apply(game.Session{}, ev)); err != nil {
		t.Fatalf("record: %v", err)
	}
	return rec.RunID()
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(openStore(t), 80, 24)
	if out := m.View(); !strings.Contains(out, "No runs journaled yet") {
		t.Errorf("empty browser view:\n%s", out)
	}
	if _, ok := m.Selected(); ok {
		t.Error("Selected() on an empty journal should report nothing")
	}
}

func TestRunsModelListsAndDeletes(t *testing.T) {
	store := openStore(t)
	recordRun(t, store, 1)
	recordRun(t, store, 2)

	m := NewRunsModel(store, 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, want 2", len(m.runs))
	}
	if out := m.View(); !strings.Contains(out, "JOURNALED RUNS") || !strings.Contains(out, "backtracker") {
		t.Errorf("browser view:\n%s", out)
	}

	selected, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selected run")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = next.(RunsModel)

	if m.err != nil {
		t.Fatalf("delete: %v", m.err)
	}
	if len(m.runs) != 1 {
		t.Fatalf("%d runs after delete, want 1", len(m.runs))
	}
	if m.runs[0].ID == selected.ID {
		t.Error("the selected run should be the one deleted")
	}
}

func TestRunsModelQuit(t *testing.T) {
	m := NewRunsModel(openStore(t), 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(RunsModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("wide", 2); got != "wide" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
