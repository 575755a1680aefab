package game

import (
	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/scores"
	"github.com/vovakirdan/paint-hit/internal/target"
)

// resetSession clears the run counters and the playfield.
func (m *Machine) resetSession() {
	m.session = Session{
		Lives:    m.tuning.Session.Lives,
		Color:    core.PaintRed,
		Mode:     StatePlaying,
		Duration: m.challengeSecs,
	}
	m.targets = nil
	m.combo.Reset()
}

// startGame begins a fresh run in mode.
func (m *Machine) startGame(mode State) {
	m.resetSession()
	m.session.Mode = mode
	m.session.SpawnTimer = m.rt.Ticks(m.tuning.Spawn.FirstDelayMS)
	m.log.Info("run started", "mode", mode.ModeName(), "speed", m.settings.Speed)
	m.setState(mode)
}

// resume leaves the pause screen and re-arms the spawn countdown.
func (m *Machine) resume() {
	m.session.Paused = false
	m.session.Confirm = ConfirmNone
	m.session.SpawnTimer = m.rt.Ticks(m.tuning.Spawn.FirstDelayMS)
}

func (m *Machine) inputGameplay(in core.InputFrame) {
	s := &m.session

	if s.Confirm != ConfirmNone {
		switch {
		case in.Has(core.ActionYes):
			if s.Confirm == ConfirmRestart {
				m.startGame(s.Mode)
			} else {
				m.endRun(true)
			}
		case in.Has(core.ActionNo), in.Has(core.ActionPause):
			m.resume()
		}
		return
	}
	if s.GameOver {
		return
	}

	if in.Has(core.ActionPause) {
		if s.Paused {
			m.resume()
		} else {
			s.Paused = true
		}
	}
	if s.Paused {
		return
	}

	switch {
	case in.Has(core.ActionRestart):
		s.Paused = true
		s.Confirm = ConfirmRestart
		return
	case in.Has(core.ActionQuit):
		s.Paused = true
		s.Confirm = ConfirmQuit
		return
	}
	for a := core.ActionColor1; a <= core.ActionColor4; a++ {
		if !in.Has(a) {
			continue
		}
		if c, ok := core.PaintForAction(a); ok {
			s.Color = c
		}
	}

	if in.Fire {
		m.fire(in.Pointer)
	}
}

// fire resolves a shot and books the points.
func (m *Machine) fire(pos core.Vec) {
	out := m.combo.Fire(pos, m.targets, m.session.Color, m.rng)
	if !out.Hit() {
		m.emit(core.Event{Kind: core.EventMiss})
		return
	}
	m.session.Score += out.Points
	m.emit(core.Event{Kind: core.EventHit, Zone: out.Zone.String(), Points: out.Points})
}

func (m *Machine) updateGameplay() {
	s := &m.session
	if s.Paused || s.GameOver {
		return
	}

	if s.Flash > 0 {
		s.Flash--
	}
	m.combo.Tick()
	s.Elapsed++

	s.SpawnTimer--
	if s.SpawnTimer <= 0 {
		m.spawn()
	}

	m.tickTargets()

	if !s.GameOver && m.state == StateTimedChallenge && s.Elapsed >= s.Duration*m.rt.TickRate {
		m.endRun(false)
	}
}

// tickTargets advances every target and drops the ones that left the field.
func (m *Machine) tickTargets() {
	kept := m.targets[:0]
	for _, t := range m.targets {
		res := t.Tick(m.rng)
		if res.Escaped {
			m.loseLife()
		}
		if !res.Remove {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(m.targets); i++ {
		m.targets[i] = nil
	}
	m.targets = kept
}

// spawn adds a target and schedules the next one.
func (m *Machine) spawn() {
	var faces []*assets.Image
	for _, f := range m.faces {
		if f != nil {
			faces = append(faces, f)
		}
	}
	var face *assets.Image
	if len(faces) > 0 {
		face = faces[m.rng.Intn(len(faces))]
	}

	mult := m.tuning.Speed.For(m.settings.Speed)
	m.targets = append(m.targets, target.Spawn(m.params, m.rng, mult, face))
	m.emit(core.Event{Kind: core.EventSpawn})

	delay := core.IntRange(m.rng, m.tuning.Spawn.MinDelayMS, m.tuning.Spawn.MaxDelayMS)
	m.session.SpawnTimer = m.rt.Ticks(delay)
}

// loseLife charges one life for an escaped target. It only counts during an
// active run that has not ended.
func (m *Machine) loseLife() {
	s := &m.session
	if !m.state.Active() || s.GameOver {
		return
	}
	if s.Lives > 0 {
		s.Lives--
		s.Flash = m.tuning.Session.FlashTicks
		m.emit(core.Event{Kind: core.EventLifeLost})
	}
	if s.Lives <= 0 {
		m.endRun(false)
	}
}

// endRun finishes the current run and shows the score screen.
func (m *Machine) endRun(quit bool) {
	s := &m.session
	s.GameOver = true
	s.QuitInitiated = quit
	s.Paused = false
	s.Confirm = ConfirmNone
	m.log.Info("run finished", "mode", s.Mode.ModeName(), "score", s.Score, "quit", quit)
	m.emit(core.Event{Kind: core.EventGameOver, Points: s.Score, Detail: s.Mode.ModeName()})

	if rec, ok := m.ctx.Board.(RunRecorder); ok {
		if _, err := rec.RecordRun(s.Mode.ModeName(), s.Score); err != nil {
			m.log.Warn("cannot record run", "err", err)
		}
	}
	m.setState(StateGameOver)
}

func (m *Machine) enterGameOver() {
	m.nameText = ""
	m.refreshScores()
	m.nameEntry = scores.Qualifies(m.highScores, m.session.Score)
}

func (m *Machine) inputGameOver(in core.InputFrame) {
	if m.nameEntry {
		if (in.Fire && skipButton.Contains(in.Pointer)) || in.Has(core.ActionBack) {
			m.resetSession()
			m.setState(StateMenu)
			return
		}
		for _, r := range in.Text {
			m.nameText = scores.AppendRune(m.nameText, r)
		}
		if in.Has(core.ActionBackspace) {
			m.nameText = scores.Backspace(m.nameText)
		}
		if in.Has(core.ActionConfirm) {
			m.submitName()
		}
		return
	}

	switch {
	case in.Has(core.ActionRestart):
		m.startGame(m.session.Mode)
	case in.Has(core.ActionMenu), in.Has(core.ActionBack):
		m.setState(StateMenu)
	}
}

// submitName adds the finished run to the board. Names that are blank after
// trimming are ignored so the prompt stays open.
func (m *Machine) submitName() {
	name, err := scores.CleanName(m.nameText)
	if err != nil {
		return
	}
	if err := m.ctx.Board.Add(scores.Entry{Name: name, Score: m.session.Score}); err != nil {
		m.log.Warn("cannot save high score", "err", err)
		m.showError("Could not save score!")
	}
	m.nameEntry = false
	m.setState(StateHighScores)
}

// refreshScores reloads the board. A failing board reads as empty.
func (m *Machine) refreshScores() {
	top, err := m.ctx.Board.Top()
	if err != nil {
		m.log.Warn("cannot read high scores", "err", err)
		top = nil
	}
	m.highScores = top
}

func (m *Machine) enterHighScores() {
	m.refreshScores()
}
