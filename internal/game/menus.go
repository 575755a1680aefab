package game

import (
	"strconv"

	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/core"
)

// button is a clickable rectangle on a menu screen.
type button struct {
	id    string
	label string
	rect  core.Rect
}

func centered(y, w, h float64) core.Rect {
	return core.NewRect(core.ViewportW/2-w/2, y, w, h)
}

var (
	menuButtons = []button{
		{"classic", "Classic Mode", centered(250, 300, 60)},
		{"timed", "Timed Challenge", centered(320, 300, 60)},
		{"scores", "High Scores", centered(390, 300, 60)},
		{"settings", "Settings", centered(460, 300, 60)},
		{"about", "About", centered(530, 300, 60)},
		{"quit", "Quit", centered(600, 300, 60)},
	}
	settingsButtons = []button{
		{"easy", "Easy", core.NewRect(200, 280, 150, 60)},
		{"normal", "Normal", core.NewRect(425, 280, 150, 60)},
		{"hard", "Hard", core.NewRect(650, 280, 150, 60)},
		{"faces", "Faces", centered(420, 300, 60)},
		{"background", "Background", centered(490, 300, 60)},
		{"back", "Back to Menu", centered(650, 300, 60)},
	}
	facesButtons = []button{
		{"slot0", "", core.NewRect(100, 300, 200, 250)},
		{"slot1", "", core.NewRect(325, 300, 200, 250)},
		{"slot2", "", core.NewRect(550, 300, 200, 250)},
		{"slot3", "", core.NewRect(775, 300, 200, 250)},
		{"back", "Back to Settings", centered(650, 300, 60)},
	}
	scoresButtons = []button{{"back", "Back to Menu", centered(700, 300, 60)}}
	aboutButtons  = []button{{"back", "Back to Menu", centered(650, 300, 60)}}

	timedBackButton = button{"back", "Back to Menu", centered(580, 300, 60)}
	skipButton      = core.NewRect(core.ViewportW-250, 700, 200, 60)
)

// buttons returns the buttons of the current screen in focus order.
func (m *Machine) buttons() []button {
	switch m.state {
	case StateMenu:
		return menuButtons
	case StateSettings:
		return settingsButtons
	case StateCustomFaces:
		return facesButtons
	case StateHighScores:
		return scoresButtons
	case StateAbout:
		return aboutButtons
	}
	return nil
}

// inputMenu handles the screens that are nothing but buttons: pointer
// clicks, Up/Down focus and Confirm on the focused button.
func (m *Machine) inputMenu(in core.InputFrame) {
	btns := m.buttons()
	if len(btns) == 0 {
		return
	}

	switch {
	case in.Has(core.ActionUp):
		m.cursor = (m.cursor - 1 + len(btns)) % len(btns)
		m.keyFocus = true
	case in.Has(core.ActionDown):
		m.cursor = (m.cursor + 1) % len(btns)
		m.keyFocus = true
	case in.Has(core.ActionConfirm):
		m.activate(btns[m.cursor].id)
		return
	case in.Has(core.ActionBack):
		m.back()
		return
	}

	if in.Fire {
		for _, b := range btns {
			if b.rect.Contains(in.Pointer) {
				m.activate(b.id)
				return
			}
		}
	}
}

// back leaves the current screen as its Back button would.
func (m *Machine) back() {
	switch m.state {
	case StateSettings, StateHighScores, StateAbout, StateTimedSetup:
		m.setState(StateMenu)
	case StateCustomFaces:
		m.setState(StateSettings)
	case StateFileExplorer:
		m.leaveExplorer()
	}
}

// activate runs the action of a button on the current screen.
func (m *Machine) activate(id string) {
	switch m.state {
	case StateMenu:
		m.activateMenu(id)
	case StateSettings:
		m.activateSettings(id)
	case StateCustomFaces:
		if id == "back" {
			m.setState(StateSettings)
			return
		}
		slot, err := strconv.Atoi(id[len("slot"):])
		if err == nil {
			m.openExplorer(explorerFace, slot)
		}
	case StateHighScores, StateAbout:
		m.setState(StateMenu)
	}
}

func (m *Machine) activateMenu(id string) {
	switch id {
	case "classic":
		m.startGame(StatePlaying)
	case "timed":
		m.setState(StateTimedSetup)
	case "scores":
		m.setState(StateHighScores)
	case "settings":
		m.setState(StateSettings)
	case "about":
		m.setState(StateAbout)
	case "quit":
		m.saveSettings()
		m.running = false
	}
}

func (m *Machine) activateSettings(id string) {
	switch id {
	case "easy", "normal", "hard":
		sp, _ := config.ParseSpeed(id)
		m.settings.Speed = sp
		m.saveSettings()
	case "faces":
		m.setState(StateCustomFaces)
	case "background":
		m.openExplorer(explorerBackground, -1)
	case "back":
		m.setState(StateMenu)
	}
}

func (m *Machine) enterTimedSetup() {
	m.durationText = m.settings.ChallengeDuration
}

// inputTimedSetup edits the duration field. Only digits are accepted;
// Confirm starts the challenge.
func (m *Machine) inputTimedSetup(in core.InputFrame) {
	if (in.Fire && timedBackButton.rect.Contains(in.Pointer)) || in.Has(core.ActionBack) {
		m.setState(StateMenu)
		return
	}
	for _, r := range in.Text {
		if r >= '0' && r <= '9' {
			m.durationText += string(r)
		}
	}
	if in.Has(core.ActionBackspace) && m.durationText != "" {
		m.durationText = m.durationText[:len(m.durationText)-1]
	}
	if in.Has(core.ActionConfirm) {
		m.startChallenge()
	}
}

// startChallenge parses the typed duration, persists a valid one and starts
// the timed run. Invalid input runs for the default duration.
func (m *Machine) startChallenge() {
	if secs, ok := config.ParseDuration(m.durationText); ok {
		m.challengeSecs = secs
		m.settings.ChallengeDuration = m.durationText
		m.saveSettings()
	} else {
		m.challengeSecs = m.tuning.Session.DefaultDuration
	}
	m.startGame(StateTimedChallenge)
}
