package game

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/browse"
	"github.com/vovakirdan/paint-hit/internal/core"
)

// explorerMode is what the file explorer was opened for.
type explorerMode int

const (
	explorerBackground explorerMode = iota
	explorerFace
)

var (
	explorerList       = core.NewRect(50, 180, core.ViewportW-100, core.ViewportH-320)
	explorerBackButton = button{"back", "Back", core.NewRect(50, core.ViewportH-80, 200, 60)}
)

// Messages shown for recoverable explorer errors.
const (
	msgInvalidFile  = "Invalid file! Use .png, .jpg, .jpeg"
	msgLoadFailed   = "Could not load image!"
	msgBrowseDenied = "File browsing is disabled"
)

// openExplorer enters the file explorer at the last visited directory.
// slot is the face slot being edited, ignored for backgrounds.
func (m *Machine) openExplorer(mode explorerMode, slot int) {
	if !m.ctx.AllowBrowse {
		m.showError(msgBrowseDenied)
		return
	}
	m.explorerMode = mode
	m.faceSlot = slot
	m.explorerRow = 0
	m.explorer.Dir = m.settings.LastPath
	if err := m.explorer.Open(m.settings.LastPath); err != nil {
		m.browseError(err)
	}
	m.setState(StateFileExplorer)
}

// leaveExplorer returns to the screen the explorer was opened from.
func (m *Machine) leaveExplorer() {
	if m.explorerMode == explorerFace {
		m.setState(StateCustomFaces)
	} else {
		m.setState(StateSettings)
	}
}

func (m *Machine) browseError(err error) {
	m.log.Warn("cannot list directory", "err", err)
	reason := err.Error()
	var pe *fs.PathError
	if errors.As(err, &pe) {
		reason = pe.Err.Error()
	}
	m.showError("Cannot access directory: " + reason)
}

func (m *Machine) inputExplorer(in core.InputFrame) {
	if in.Scroll != 0 {
		m.explorer.ScrollBy(in.Scroll, explorerList.H)
	}

	n := len(m.explorer.Entries)
	switch {
	case in.Has(core.ActionBack):
		m.leaveExplorer()
		return
	case in.Has(core.ActionUp) && n > 0:
		m.explorerRow = (m.explorerRow - 1 + n) % n
		m.revealRow()
	case in.Has(core.ActionDown) && n > 0:
		m.explorerRow = (m.explorerRow + 1) % n
		m.revealRow()
	case in.Has(core.ActionConfirm) && n > 0:
		m.openEntry(m.explorerRow)
		return
	}

	if !in.Fire {
		return
	}
	if explorerBackButton.rect.Contains(in.Pointer) {
		m.leaveExplorer()
		return
	}
	if explorerList.Contains(in.Pointer) {
		if i := m.explorer.IndexAt(in.Pointer.Y - explorerList.Y); i >= 0 {
			m.openEntry(i)
		}
	}
}

// revealRow scrolls the list so the keyboard row is fully visible.
func (m *Machine) revealRow() {
	top := float64(m.explorerRow * browse.RowHeight)
	switch {
	case top < m.explorer.Scroll:
		m.explorer.Scroll = top
	case top+browse.RowHeight > m.explorer.Scroll+explorerList.H:
		m.explorer.Scroll = top + browse.RowHeight - explorerList.H
	}
}

// openEntry follows a directory or picks a file.
func (m *Machine) openEntry(i int) {
	if i < 0 || i >= len(m.explorer.Entries) {
		return
	}
	e := m.explorer.Entries[i]
	if e.IsDir {
		m.enterDir(e.Path)
		return
	}
	m.pickFile(e.Path)
}

// enterDir navigates into dir and remembers it as the last visited path.
func (m *Machine) enterDir(dir string) {
	if err := m.explorer.Open(dir); err != nil {
		m.browseError(err)
		return
	}
	m.explorerRow = 0
	m.settings.LastPath = m.explorer.Dir
	m.saveSettings()
}

// pickFile loads path as the new background or face. On success the
// settings are saved and the explorer closes.
func (m *Machine) pickFile(path string) {
	if !assets.IsValidImage(path) {
		m.showError(msgInvalidFile)
		return
	}
	img, err := assets.LoadUserImage(path)
	if err != nil {
		m.log.Warn("cannot load image", "path", path, "err", err)
		m.showError(msgLoadFailed)
		return
	}

	switch m.explorerMode {
	case explorerBackground:
		m.background = img
		m.settings.BackgroundPath = path
		m.log.Info("background changed", "path", path)
		m.setState(StateSettings)
	case explorerFace:
		if m.faceSlot < 0 || m.faceSlot >= len(m.faces) {
			return
		}
		m.faces[m.faceSlot] = img
		m.settings.FacePaths[m.faceSlot] = path
		m.log.Info("face changed", "slot", m.faceSlot, "path", path)
		m.setState(StateCustomFaces)
	}
	m.settings.LastPath = filepath.Dir(path)
	m.saveSettings()
}
