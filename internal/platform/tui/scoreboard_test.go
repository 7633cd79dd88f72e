package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/crazysnake/internal/storage"
)

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ProfileScore{
		{Profile: "local", Score: 42, UpdatedAt: time.Date(2026, 3, 4, 15, 4, 0, 0, time.UTC)},
		{Profile: "guest", Score: 7},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "local", "42", "Mar 04 15:04"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 col %d = %q, want %q", i, cell, want[i])
		}
	}
	if rows[1][3] != "-" {
		t.Errorf("missing timestamp should show '-', got %q", rows[1][3])
	}
}

func TestScoreboardView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, 80, 24)
	if view := m.View(); !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}

	if err := store.SaveHighScore("ada", 31); err != nil {
		t.Fatalf("SaveHighScore: %v", err)
	}
	next, _ := m.Update(runeKey('r'))
	m = next.(ScoreboardModel)
	if view := m.View(); !strings.Contains(view, "ada") {
		t.Errorf("refreshed view should list ada:\n%s", view)
	}
}
