// Package scores holds the rules of the top-ten high score board and the
// validation of player names entered after a run.
package scores

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// MaxEntries is the number of entries kept on the board.
const MaxEntries = 10

// MaxNameLen is the longest accepted player name, in runes.
const MaxNameLen = 15

// ErrInvalidName is returned for names that are empty after trimming or
// contain characters other than letters, digits and spaces.
var ErrInvalidName = errors.New("scores: invalid player name")

// Entry is one row of the board.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Qualifies reports whether score earns a place on a board holding entries.
// entries must be sorted descending.
func Qualifies(entries []Entry, score int) bool {
	if len(entries) < MaxEntries {
		return true
	}
	return score > entries[len(entries)-1].Score
}

// Insert adds e to entries and returns the board sorted descending by score
// and truncated to MaxEntries. Earlier entries win ties.
func Insert(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, e)
	return Normalize(out)
}

// Normalize sorts entries descending by score and truncates to MaxEntries.
func Normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

// AcceptsRune reports whether r may be typed into a player name.
func AcceptsRune(r rune) bool {
	return r == ' ' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// AppendRune appends r to name when it is accepted and the length limit
// allows it, and returns the resulting name.
func AppendRune(name string, r rune) string {
	if !AcceptsRune(r) || len([]rune(name)) >= MaxNameLen {
		return name
	}
	return name + string(r)
}

// Backspace removes the last rune of name.
func Backspace(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return name
	}
	return string(r[:len(r)-1])
}

// CleanName trims name and validates it for submission.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > MaxNameLen {
		return "", ErrInvalidName
	}
	for _, r := range name {
		if !AcceptsRune(r) {
			return "", ErrInvalidName
		}
	}
	return name, nil
}

// Board is the persistence contract of the high score list.
type Board interface {
	// Top returns the board sorted descending, at most MaxEntries long.
	Top() ([]Entry, error)
	// Add inserts an entry and persists the truncated board.
	Add(e Entry) error
}

// Memory is a Board kept in process memory. It is safe for concurrent use
// so several remote sessions can share one board.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory returns a board seeded with entries.
func NewMemory(entries ...Entry) *Memory {
	m := &Memory{}
	for _, e := range entries {
		m.entries = Insert(m.entries, e)
	}
	return m
}

// Top implements Board.
func (m *Memory) Top() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Add implements Board.
func (m *Memory) Add(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = Insert(m.entries, e)
	return nil
}
