// Package browse lists directories for the in-game file explorer.
package browse

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ParentLabel is the name shown for the synthetic parent directory entry.
const ParentLabel = ".. (Back)"

// Layout of the explorer list, in viewport units.
const (
	RowHeight  = 50 // Height of one list row
	ScrollStep = 20 // Scroll distance of one wheel notch
)

// Entry is one row of a directory listing.
type Entry struct {
	Name   string
	Path   string
	IsDir  bool
	Parent bool // Synthetic entry leading to the parent directory
}

// IsRoot reports whether dir is a filesystem root.
func IsRoot(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == abs
}

// List reads dir. Directories come before files, each group in name order.
// A parent entry is prepended unless dir is a filesystem root.
func List(dir string) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	items, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items)+1)
	if !IsRoot(abs) {
		entries = append(entries, Entry{
			Name:   ParentLabel,
			Path:   filepath.Dir(abs),
			IsDir:  true,
			Parent: true,
		})
	}

	files := make([]Entry, 0, len(items))
	for _, it := range items {
		e := Entry{Name: it.Name(), Path: filepath.Join(abs, it.Name()), IsDir: it.IsDir()}
		if it.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(e.Path); err == nil {
				e.IsDir = info.IsDir()
			}
		}
		files = append(files, e)
	}
	// os.ReadDir sorts by name; keep that order within each group
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].IsDir && !files[j].IsDir
	})
	return append(entries, files...), nil
}

// Explorer is the state of one browsing session: the current directory, its
// cached listing and the scroll offset of the list.
type Explorer struct {
	Dir     string
	Entries []Entry
	Scroll  float64
}

// Open switches to dir and lists it. On error the listing is empty and the
// directory is left unchanged.
func (e *Explorer) Open(dir string) error {
	entries, err := List(dir)
	if err != nil {
		e.Entries = nil
		e.Scroll = 0
		return err
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	e.Dir = dir
	e.Entries = entries
	e.Scroll = 0
	return nil
}

// MaxScroll returns the largest scroll offset for a list box of height viewH.
func (e *Explorer) MaxScroll(viewH float64) float64 {
	return max(0, float64(len(e.Entries)*RowHeight)-viewH)
}

// ScrollBy moves the list by wheel notches; positive notches scroll up.
func (e *Explorer) ScrollBy(notches, viewH float64) {
	e.Scroll -= notches * ScrollStep
	e.Scroll = max(0, min(e.Scroll, e.MaxScroll(viewH)))
}

// IndexAt returns the entry index under offsetY, measured from the top of
// the list box, or -1.
func (e *Explorer) IndexAt(offsetY float64) int {
	if offsetY < 0 {
		return -1
	}
	i := int((offsetY + e.Scroll) / RowHeight)
	if i < 0 || i >= len(e.Entries) {
		return -1
	}
	return i
}

// Visible returns the indices of rows intersecting a list box of height
// viewH, with each row's top relative to the box.
func (e *Explorer) Visible(viewH float64) []VisibleRow {
	var rows []VisibleRow
	for i := range e.Entries {
		top := float64(i*RowHeight) - e.Scroll
		if top > -RowHeight && top < viewH {
			rows = append(rows, VisibleRow{Index: i, Top: top})
		}
	}
	return rows
}

// VisibleRow is a row index with its offset inside the list box.
type VisibleRow struct {
	Index int
	Top   float64
}
