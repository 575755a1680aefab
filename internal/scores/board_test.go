package scores

import (
	"errors"
	"math/rand"
	"testing"
)

func TestQualifies(t *testing.T) {
	full := make([]Entry, 0, MaxEntries)
	for i := MaxEntries; i > 0; i-- {
		full = append(full, Entry{Name: "p", Score: i * 100})
	}

	tests := []struct {
		name     string
		entries  []Entry
		score    int
		expected bool
	}{
		{"empty board", nil, 0, true},
		{"partial board low score", full[:3], 1, true},
		{"full board above min", full, 101, true},
		{"full board equal to min", full, 100, false},
		{"full board below min", full, 50, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Qualifies(tc.entries, tc.score); got != tc.expected {
				t.Errorf("Qualifies(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestInsertKeepsOrderAndLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var board []Entry
	for i := 0; i < 50; i++ {
		board = Insert(board, Entry{Name: "p", Score: rng.Intn(1000)})
		if len(board) > MaxEntries {
			t.Fatalf("len = %d after insert %d, expected <= %d", len(board), i, MaxEntries)
		}
		for j := 1; j < len(board); j++ {
			if board[j-1].Score < board[j].Score {
				t.Fatalf("board not sorted descending at %d: %+v", j, board)
			}
		}
	}
}

func TestInsertTieKeepsEarlier(t *testing.T) {
	board := Insert(nil, Entry{Name: "first", Score: 50})
	board = Insert(board, Entry{Name: "second", Score: 50})
	if board[0].Name != "first" {
		t.Errorf("board[0] = %q, expected first", board[0].Name)
	}
}

func TestNameEditing(t *testing.T) {
	name := ""
	for _, r := range "Ann_e! 42" {
		name = AppendRune(name, r)
	}
	if name != "Anne 42" {
		t.Errorf("name = %q, expected %q", name, "Anne 42")
	}

	long := ""
	for i := 0; i < 30; i++ {
		long = AppendRune(long, 'x')
	}
	if len(long) != MaxNameLen {
		t.Errorf("len = %d, expected %d", len(long), MaxNameLen)
	}

	if got := Backspace("abc"); got != "ab" {
		t.Errorf("Backspace = %q, expected ab", got)
	}
	if got := Backspace(""); got != "" {
		t.Errorf("Backspace(\"\") = %q", got)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"  Ann  ", "Ann", false},
		{"Player 1", "Player 1", false},
		{"   ", "", true},
		{"", "", true},
		{"bad;name", "", true},
		{"abcdefghijklmnopq", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := CleanName(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("CleanName(%q) error = %v, expected ErrInvalidName", tc.in, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("CleanName(%q) = %q, %v, expected %q", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestMemoryBoard(t *testing.T) {
	m := NewMemory(Entry{Name: "a", Score: 10}, Entry{Name: "b", Score: 30})
	if err := m.Add(Entry{Name: "c", Score: 20}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	top, err := m.Top()
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []string{"b", "c", "a"}
	if len(top) != len(want) {
		t.Fatalf("len = %d, expected %d", len(top), len(want))
	}
	for i, n := range want {
		if top[i].Name != n {
			t.Errorf("top[%d] = %q, expected %q", i, top[i].Name, n)
		}
	}

	top[0].Name = "mutated"
	again, _ := m.Top()
	if again[0].Name != "b" {
		t.Error("Top must return a copy")
	}
}
