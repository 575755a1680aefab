package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paint-hit/internal/storage"
)

type fakeSource struct {
	top   []storage.ScoreEntry
	stats map[string]*storage.ModeStats
	err   error
}

func (f fakeSource) TopScores(limit int) ([]storage.ScoreEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f fakeSource) Stats() (map[string]*storage.ModeStats, error) {
	return f.stats, f.err
}

func testSource() fakeSource {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	return fakeSource{
		top: []storage.ScoreEntry{
			{ID: 1, Name: "ACE", Score: 900, CreatedAt: now},
			{ID: 2, Name: "BOB", Score: 450, CreatedAt: now},
			{ID: 3, Name: "CY", Score: 10, CreatedAt: now},
		},
		stats: map[string]*storage.ModeStats{
			"timed":   {Mode: "timed", Runs: 2, BestScore: 450, AvgScore: 230},
			"classic": {Mode: "classic", Runs: 5, BestScore: 900, AvgScore: 300.5},
		},
	}
}

func TestScoreboardPages(t *testing.T) {
	m := NewScoreboardModel(testSource(), 100, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("top page has %d rows, expected 3", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "ACE" || rows[0][2] != "900" {
		t.Errorf("first row = %v", rows[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("runs page has %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "classic" || rows[0][3] != "300.5" {
		t.Errorf("runs should be sorted by mode, first row = %v", rows[0])
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.page != pageTop {
		t.Errorf("page = %d, expected the top page", m.page)
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeSource{}, 100, 30)
	if !strings.Contains(empty.View(), "No scores recorded yet.") {
		t.Error("empty board should say so")
	}

	broken := NewScoreboardModel(fakeSource{err: errors.New("disk on fire")}, 100, 30)
	if !strings.Contains(broken.View(), "disk on fire") {
		t.Error("read errors should be shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(testSource(), 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.quitting || cmd == nil {
		t.Fatal("esc should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
