package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/paint-hit/internal/scores"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreAddAndTop(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []scores.Entry{
		{Name: "ann", Score: 100},
		{Name: "bob", Score: 50},
		{Name: "cat", Score: 200},
	} {
		if err := store.Add(e); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	top, err := store.Top()
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(top))
	}

	// Should be sorted descending
	want := []scores.Entry{{Name: "cat", Score: 200}, {Name: "ann", Score: 100}, {Name: "bob", Score: 50}}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("top[%d] = %+v, expected %+v", i, top[i], want[i])
		}
	}
}

func TestStoreKeepsTopTen(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 25; i++ {
		if err := store.Add(scores.Entry{Name: "p", Score: i * 10}); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	rows, err := store.TopScores(100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rows) != scores.MaxEntries {
		t.Fatalf("Expected %d rows, got %d", scores.MaxEntries, len(rows))
	}
	if rows[0].Score != 250 || rows[len(rows)-1].Score != 160 {
		t.Errorf("Expected 250..160, got %d..%d", rows[0].Score, rows[len(rows)-1].Score)
	}
}

func TestStoreTieKeepsEarlier(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < scores.MaxEntries; i++ {
		if err := store.Add(scores.Entry{Name: "old", Score: 10}); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}
	if err := store.Add(scores.Entry{Name: "new", Score: 10}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	top, _ := store.Top()
	for _, e := range top {
		if e.Name == "new" {
			t.Fatal("an equal score must not displace an existing entry")
		}
	}
}

func TestStoreReplaceAllAndClear(t *testing.T) {
	store := openTestStore(t)
	store.Add(scores.Entry{Name: "gone", Score: 999})

	entries := []scores.Entry{{Name: "a", Score: 1}, {Name: "b", Score: 3}, {Name: "c", Score: 2}}
	if err := store.ReplaceAll(entries); err != nil {
		t.Fatalf("ReplaceAll() failed: %v", err)
	}
	top, _ := store.Top()
	if len(top) != 3 || top[0].Name != "b" || top[2].Name != "a" {
		t.Errorf("Top() = %+v", top)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	top, _ = store.Top()
	if len(top) != 0 {
		t.Errorf("Expected empty board, got %d", len(top))
	}
}

func TestStoreMerge(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < scores.MaxEntries-1; i++ {
		if err := store.Add(scores.Entry{Name: "old", Score: 10 + i}); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	merged := []scores.Entry{{Name: "new", Score: 100}, {Name: "tie", Score: 10}, {Name: "low", Score: 1}}
	if err := store.Merge(merged); err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}

	top, err := store.Top()
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != scores.MaxEntries {
		t.Fatalf("len(Top()) = %d, expected %d", len(top), scores.MaxEntries)
	}
	if top[0].Name != "new" {
		t.Errorf("Top()[0] = %+v, expected new", top[0])
	}
	// The old 10 wins the tie; the imported 10 and 1 are pruned.
	last := top[len(top)-1]
	if last.Name != "old" || last.Score != 10 {
		t.Errorf("last entry = %+v, expected old/10", last)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		mode  string
		score int
	}{
		{"classic", 10}, {"classic", 30}, {"timed", 5},
	} {
		if _, err := store.RecordRun(r.mode, r.score); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	classic := stats["classic"]
	if classic == nil {
		t.Fatal("missing classic stats")
	}
	if classic.Runs != 2 || classic.BestScore != 30 || classic.AvgScore != 20 || classic.TotalScore != 40 {
		t.Errorf("classic stats = %+v", classic)
	}
	if stats["timed"] == nil || stats["timed"].Runs != 1 {
		t.Errorf("timed stats = %+v", stats["timed"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.painthit/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".painthit", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
