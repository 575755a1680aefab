// Package game is the Paint (H)it state machine. It owns the session, the
// live targets and the loaded settings, consumes one InputFrame per tick and
// describes each frame as a scene for the front ends.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/browse"
	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/scene"
	"github.com/vovakirdan/paint-hit/internal/scores"
	"github.com/vovakirdan/paint-hit/internal/scoring"
	"github.com/vovakirdan/paint-hit/internal/target"
)

// handler is one row of the dispatch table. Every field is optional.
type handler struct {
	enter  func(m *Machine)
	input  func(m *Machine, in core.InputFrame)
	update func(m *Machine)
	render func(m *Machine, l *scene.List)
}

// Machine is the game. It is not safe for concurrent use; each player
// session gets its own machine.
type Machine struct {
	ctx    Context
	rt     core.RuntimeConfig
	rng    core.RNG
	tuning config.Tuning
	params target.Params
	log    *log.Logger

	settings      config.Settings
	faces         [config.FaceSlots]*assets.Image
	background    *assets.Image
	challengeSecs int

	state    State
	session  Session
	targets  []*target.Target
	combo    *scoring.Engine
	handlers map[State]handler

	pointer    core.Vec
	hasPointer bool
	cursor     int  // Focused button for keyboard navigation
	keyFocus   bool // Cursor was moved by keyboard since the last pointer move

	durationText string
	nameText     string
	nameEntry    bool
	highScores   []scores.Entry

	explorer     browse.Explorer
	explorerMode explorerMode
	explorerRow  int
	faceSlot     int

	errMsg   string
	errTimer int

	running bool
	events  []core.Event
}

// New creates a machine on the menu screen. Settings are loaded from the
// context's store; unreadable settings and images fall back to defaults.
func New(ctx Context, rt core.RuntimeConfig) (*Machine, error) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.ViewW <= 0 || rt.ViewH <= 0 {
		rt.ViewW, rt.ViewH = core.ViewportW, core.ViewportH
	}
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard)
	}
	if ctx.Assets == nil {
		catalog, err := assets.LoadCatalog(assets.Bundled())
		if err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
		ctx.Assets = catalog
	}
	if ctx.Settings == nil {
		ctx.Settings = config.NewStore("")
	}
	if ctx.Board == nil {
		ctx.Board = scores.NewMemory()
	}

	tuning := ctx.Tuning.Normalize()
	silW, silH := ctx.Assets.Silhouette.Size()

	m := &Machine{
		ctx:     ctx,
		rt:      rt,
		rng:     core.NewRNG(rt.Seed),
		tuning:  tuning,
		params:  tuning.TargetParams(silW, silH, rt.ViewH),
		log:     ctx.Logger,
		combo:   scoring.NewEngine(tuning.Session.ComboWindow),
		state:   StateMenu,
		running: true,
	}
	m.handlers = m.dispatchTable()
	m.loadSettings()
	m.resetSession()
	return m, nil
}

// SetRNG replaces the random source. Tests use it to script outcomes.
func (m *Machine) SetRNG(rng core.RNG) {
	m.rng = rng
}

func (m *Machine) dispatchTable() map[State]handler {
	gameplay := handler{
		input:  (*Machine).inputGameplay,
		update: (*Machine).updateGameplay,
		render: (*Machine).renderGameplay,
	}
	return map[State]handler{
		StateMenu: {
			input:  (*Machine).inputMenu,
			render: (*Machine).renderMenu,
		},
		StateTimedSetup: {
			enter:  (*Machine).enterTimedSetup,
			input:  (*Machine).inputTimedSetup,
			render: (*Machine).renderTimedSetup,
		},
		StatePlaying:        gameplay,
		StateTimedChallenge: gameplay,
		StateSettings: {
			input:  (*Machine).inputMenu,
			render: (*Machine).renderSettings,
		},
		StateCustomFaces: {
			input:  (*Machine).inputMenu,
			render: (*Machine).renderCustomFaces,
		},
		StateFileExplorer: {
			input:  (*Machine).inputExplorer,
			render: (*Machine).renderExplorer,
		},
		StateHighScores: {
			enter:  (*Machine).enterHighScores,
			input:  (*Machine).inputMenu,
			render: (*Machine).renderHighScores,
		},
		StateAbout: {
			input:  (*Machine).inputMenu,
			render: (*Machine).renderAbout,
		},
		StateGameOver: {
			enter:  (*Machine).enterGameOver,
			input:  (*Machine).inputGameOver,
			render: (*Machine).renderGameOver,
		},
	}
}

// loadSettings reads the settings record and decodes the images it names.
// Images that cannot be loaded are dropped from the record.
func (m *Machine) loadSettings() {
	settings, err := m.ctx.Settings.Load()
	if err != nil {
		m.log.Warn("using default settings", "path", m.ctx.Settings.Path(), "err", err)
	}
	m.settings = settings

	for i, path := range settings.FacePaths {
		if path == "" {
			continue
		}
		img, err := assets.LoadUserImage(path)
		if err != nil {
			m.log.Warn("dropping custom face", "slot", i, "err", err)
			m.settings.FacePaths[i] = ""
			continue
		}
		m.faces[i] = img
	}
	if settings.BackgroundPath != "" {
		img, err := assets.LoadUserImage(settings.BackgroundPath)
		if err != nil {
			m.log.Warn("dropping custom background", "err", err)
			m.settings.BackgroundPath = ""
		} else {
			m.background = img
		}
	}

	m.challengeSecs = m.tuning.Session.DefaultDuration
	if secs, ok := settings.ChallengeSeconds(); ok {
		m.challengeSecs = secs
	}
	m.durationText = settings.ChallengeDuration
}

// saveSettings persists the settings record. A failed write is reported on
// screen and otherwise ignored.
func (m *Machine) saveSettings() {
	if err := m.ctx.Settings.Save(m.settings); err != nil {
		m.log.Warn("cannot save settings", "err", err)
		m.showError("Could not save settings!")
	}
}

// Step advances the machine by one tick.
func (m *Machine) Step(in core.InputFrame) core.StepResult {
	m.events = nil

	if in.HasPointer {
		if !m.hasPointer || in.Pointer != m.pointer {
			m.keyFocus = false
		}
		m.pointer = in.Pointer
		m.hasPointer = true
	}

	if in.Has(core.ActionExit) && m.running {
		m.saveSettings()
		m.running = false
	}

	if m.running {
		if h := m.handlers[m.state]; h.input != nil {
			h.input(m, in)
		}
		if h := m.handlers[m.state]; h.update != nil {
			h.update(m)
		}
	}

	if m.errTimer > 0 {
		m.errTimer--
		if m.errTimer == 0 {
			m.errMsg = ""
		}
	}

	return core.StepResult{State: m.GameState(), Events: m.events}
}

// setState switches screens and runs the new screen's enter hook.
func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	m.log.Debug("state change", "from", m.state, "to", s)
	m.state = s
	m.cursor = 0
	m.emit(core.Event{Kind: core.EventStateChanged, Detail: s.String()})
	if h := m.handlers[s]; h.enter != nil {
		h.enter(m)
	}
}

// showError raises a transient on-screen message.
func (m *Machine) showError(msg string) {
	m.errMsg = msg
	m.errTimer = m.tuning.Session.ErrorTicks
	m.emit(core.Event{Kind: core.EventError, Detail: msg})
}

func (m *Machine) emit(e core.Event) {
	m.events = append(m.events, e)
}

// State returns the current screen.
func (m *Machine) State() State { return m.state }

// Session returns a copy of the run counters.
func (m *Machine) Session() Session { return m.session }

// Targets returns the live targets. Callers must not modify them.
func (m *Machine) Targets() []*target.Target { return m.targets }

// Combo returns the current streak and the ticks before it decays.
func (m *Machine) Combo() (combo, timer int) {
	return m.combo.Combo(), m.combo.Timer()
}

// Settings returns a copy of the current settings record.
func (m *Machine) Settings() config.Settings { return m.settings }

// Error returns the on-screen error message and its remaining ticks.
func (m *Machine) Error() (string, int) { return m.errMsg, m.errTimer }

// Running reports whether the player has not asked to leave the program.
func (m *Machine) Running() bool { return m.running }

// Runtime returns the runtime configuration in effect.
func (m *Machine) Runtime() core.RuntimeConfig { return m.rt }

// GameState summarizes the session for the platform.
func (m *Machine) GameState() core.GameState {
	return core.GameState{
		Score:    m.session.Score,
		Lives:    m.session.Lives,
		GameOver: m.session.GameOver,
		Paused:   m.session.Paused,
		Running:  m.running,
	}
}

// Render describes the current frame in painter's order.
func (m *Machine) Render() []scene.Cmd {
	var l scene.List
	if h := m.handlers[m.state]; h.render != nil {
		h.render(m, &l)
	}
	m.renderError(&l)
	return l.Cmds
}
