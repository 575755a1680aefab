package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/game"
	"github.com/vovakirdan/paint-hit/internal/registry"
)

// Model is the Bubble Tea model driving one game machine.
type Model struct {
	machine  *game.Machine
	canvas   *Canvas
	painter  *Painter
	keys     *KeyMapper
	help     help.Model
	dim      lipgloss.Style
	sound    registry.Sound
	logger   *log.Logger
	tickRate int

	frame core.InputFrame
	aim   core.Vec // Keyboard aim pointer, follows the mouse

	shotDir  string
	quitting bool
}

// NewModel creates a model for machine sized to a cols x rows terminal.
// renderer may be nil for the local terminal; sound may be nil.
func NewModel(machine *game.Machine, cols, rows int, renderer *lipgloss.Renderer, sound registry.Sound) Model {
	rt := machine.Runtime()
	h := help.New()
	h.Width = cols
	painter := NewPainter(renderer)

	return Model{
		machine:  machine,
		canvas:   NewCanvas(cols, rows-1, rt.ViewW, rt.ViewH),
		painter:  painter,
		keys:     NewKeyMapper(),
		help:     h,
		dim:      painter.renderer.NewStyle().Foreground(lipgloss.Color("241")),
		sound:    sound,
		logger:   log.New(io.Discard),
		tickRate: rt.TickRate,
		frame:    core.NewInputFrame(),
		aim:      core.V(rt.ViewW/2, rt.ViewH/2),
		shotDir:  config.ScreenshotDir,
	}
}

// WithLogger sets the logger for front-end messages.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.keys.MapKeyToFrame(msg, m.aiming(), &m.frame)

	if res.Aim != (core.Vec{}) {
		rt := m.machine.Runtime()
		m.aim = core.V(
			core.ClampF(m.aim.X+res.Aim.X, 0, rt.ViewW-1),
			core.ClampF(m.aim.Y+res.Aim.Y, 0, rt.ViewH-1),
		)
		if !m.frame.Fire {
			m.frame.MovePointer(m.aim)
		}
	}
	if res.Fire {
		m.frame.Click(m.aim)
	}
	if res.Screenshot {
		m.saveScreenshot()
	}
	return m, nil
}

// aiming reports whether arrow keys steer the crosshair.
func (m Model) aiming() bool {
	s := m.machine.Session()
	return m.machine.State().Active() && !s.Paused && s.Confirm == game.ConfirmNone
}

// handleMouse maps terminal cells to viewport positions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, inside := m.canvas.ToViewport(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.frame.Scroll++
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.frame.Scroll--
		return m, nil
	}

	if !inside {
		return m, nil
	}
	m.aim = p

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.frame.Click(p)
		}
	case tea.MouseActionMotion:
		// A pending click keeps its position until the tick consumes it.
		if !m.frame.Fire {
			m.frame.MovePointer(p)
		}
	}
	return m, nil
}

// handleTick advances the machine by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.machine.Step(m.frame)
	if m.sound != nil && len(res.Events) > 0 {
		m.sound.Play(res.Events)
	}

	// Clear input for next frame
	m.frame.Clear()

	if !m.machine.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir, err := config.ExpandHome(m.shotDir)
	if err != nil {
		m.logger.Warn("cannot resolve screenshot directory", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	m.canvas.Draw(m.machine.Render())
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("painthit_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Draw(m.machine.Render())

	var keys help.KeyMap = MenuKeys{m.keys.Keys()}
	if m.machine.State().Active() {
		keys = GameplayKeys{m.keys.Keys()}
	}
	return m.painter.Render(m.canvas) + "\n" + m.dim.Render(m.help.View(keys))
}

// Run starts the Bubble Tea program for machine on the local terminal.
func Run(machine *game.Machine, cols, rows int, sound registry.Sound, logger *log.Logger) error {
	model := NewModel(machine, cols, rows, nil, sound).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The crosshair follows the mouse
	)

	_, err := p.Run()
	return err
}
