package game

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/paint-hit/internal/browse"
	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/scores"
	"github.com/vovakirdan/paint-hit/internal/target"
)

func newTestMachine(t *testing.T, store *config.Store, board scores.Board) *Machine {
	t.Helper()
	if store == nil {
		store = config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	}
	m, err := New(Context{Settings: store, Board: board, AllowBrowse: true},
		core.RuntimeConfig{TickRate: 60, Seed: 1})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m
}

func click(m *Machine, x, y float64) core.StepResult {
	in := core.NewInputFrame()
	in.Click(core.V(x, y))
	return m.Step(in)
}

func press(m *Machine, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return m.Step(in)
}

func typeText(m *Machine, s string) core.StepResult {
	in := core.NewInputFrame()
	in.Type([]rune(s)...)
	return m.Step(in)
}

func idle(m *Machine, n int) {
	for range n {
		m.Step(core.NewInputFrame())
	}
}

// placeTarget adds a standing target at (x, y) with the given scale.
func placeTarget(m *Machine, x, y, scale float64) *target.Target {
	t := target.Spawn(m.params, m.rng, 1, nil)
	t.X, t.Y, t.LaneX, t.Scale = x, y, x, scale
	t.RecomputeGeometry()
	m.targets = append(m.targets, t)
	return t
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestNewMachine(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	if m.State() != StateMenu {
		t.Errorf("State() = %v, expected MENU", m.State())
	}
	if !m.Running() {
		t.Error("new machine should be running")
	}
	s := m.Session()
	if s.Lives != 5 || s.Score != 0 || s.Color != core.PaintRed || s.GameOver {
		t.Errorf("initial session = %+v", s)
	}
}

func TestStateActive(t *testing.T) {
	for s := StateMenu; s <= StateGameOver; s++ {
		expected := s == StatePlaying || s == StateTimedChallenge
		if s.Active() != expected {
			t.Errorf("%v.Active() = %v, expected %v", s, s.Active(), expected)
		}
	}
}

func TestMenuStartsClassic(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	res := click(m, 500, 280)

	if m.State() != StatePlaying {
		t.Fatalf("State() = %v, expected PLAYING", m.State())
	}
	if countEvents(res.Events, core.EventStateChanged) != 1 {
		t.Errorf("expected one state change event, got %+v", res.Events)
	}
	if len(m.Targets()) != 0 {
		t.Error("no target should exist before the first spawn delay")
	}
}

func TestSpawnSchedule(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	click(m, 500, 280)

	// First spawn is 2000 ms = 120 ticks after the start
	idle(m, 100)
	if n := len(m.Targets()); n != 0 {
		t.Fatalf("targets after 101 ticks = %d, expected 0", n)
	}
	idle(m, 30)
	if n := len(m.Targets()); n != 1 {
		t.Fatalf("targets after 131 ticks = %d, expected 1", n)
	}
	timer := m.Session().SpawnTimer
	if timer < 60 || timer > 180 {
		t.Errorf("next spawn in %d ticks, expected 1500-3000 ms", timer)
	}
}

func TestFirstAndSecondInnerHit(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)

	first := placeTarget(m, 500, 400, 1)
	res := click(m, first.Geometry.Center.X, first.Geometry.Center.Y)

	if got := m.Session().Score; got != 10 {
		t.Errorf("score after first inner hit = %d, expected 10", got)
	}
	if combo, _ := m.Combo(); combo != 1 {
		t.Errorf("combo = %d, expected 1", combo)
	}
	if !first.Falling {
		t.Error("target should fall after an inner hit")
	}
	if countEvents(res.Events, core.EventHit) != 1 || res.Events[0].Zone != target.ZoneInner.String() {
		t.Errorf("events = %+v", res.Events)
	}

	second := placeTarget(m, 800, 400, 1)
	click(m, second.Geometry.Center.X, second.Geometry.Center.Y)
	if got := m.Session().Score; got != 30 {
		t.Errorf("score after second inner hit = %d, expected 30", got)
	}
	if combo, _ := m.Combo(); combo != 2 {
		t.Errorf("combo = %d, expected 2", combo)
	}
}

func TestShotZones(t *testing.T) {
	tests := []struct {
		name     string
		face     bool
		pos      core.Vec
		points   int
		falling  bool
		expected target.Zone
	}{
		{"outer", false, core.V(500, 340), 5, false, target.ZoneOuter},
		{"face", true, core.V(500, 250), 5, true, target.ZoneFace},
		{"face without image is body", false, core.V(500, 250), 1, false, target.ZoneBody},
		{"body", false, core.V(420, 550), 1, false, target.ZoneBody},
		{"miss", false, core.V(100, 100), 0, false, target.ZoneNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(t, nil, nil)
			m.startGame(StatePlaying)
			tg := placeTarget(m, 500, 400, 1)
			if tc.face {
				tg.Face = m.ctx.Assets.Placeholder
			}
			if zone := tg.ScoreAt(tc.pos); zone != tc.expected {
				t.Fatalf("ScoreAt(%v) = %v, expected %v", tc.pos, zone, tc.expected)
			}

			res := click(m, tc.pos.X, tc.pos.Y)
			if got := m.Session().Score; got != tc.points {
				t.Errorf("score = %d, expected %d", got, tc.points)
			}
			if tg.Falling != tc.falling {
				t.Errorf("Falling = %v, expected %v", tg.Falling, tc.falling)
			}
			if combo, _ := m.Combo(); combo != 0 {
				t.Errorf("combo = %d, expected 0", combo)
			}
			if tc.expected == target.ZoneNone && countEvents(res.Events, core.EventMiss) != 1 {
				t.Errorf("expected a miss event, got %+v", res.Events)
			}
		})
	}
}

func TestComboResetsAfterWindow(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	tg := placeTarget(m, 500, 400, 1)
	click(m, tg.Geometry.Center.X, tg.Geometry.Center.Y)

	// The hit tick already counted one tick of the window
	idle(m, 178)
	if combo, _ := m.Combo(); combo != 1 {
		t.Fatalf("combo = %d before the window ends, expected 1", combo)
	}
	idle(m, 1)
	if combo, _ := m.Combo(); combo != 0 {
		t.Errorf("combo = %d after 180 ticks, expected 0", combo)
	}
}

func TestLoseLifeOnlyWhileActive(t *testing.T) {
	m := newTestMachine(t, nil, nil)

	m.loseLife()
	if s := m.Session(); s.Lives != 5 || s.Flash != 0 || s.GameOver {
		t.Fatalf("loseLife() on the menu changed the session: %+v", s)
	}

	m.startGame(StatePlaying)
	m.loseLife()
	if s := m.Session(); s.Lives != 4 || s.Flash != 30 {
		t.Errorf("session after loseLife() = %+v, expected 4 lives and a 30 tick flash", s)
	}
}

func TestEscapedTargetCostsLife(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	tg := placeTarget(m, 500, 649, 1)
	tg.Speed = 5

	res := press(m)
	if got := m.Session().Lives; got != 4 {
		t.Errorf("lives = %d, expected 4", got)
	}
	if len(m.Targets()) != 0 {
		t.Error("escaped target should be removed")
	}
	if countEvents(res.Events, core.EventLifeLost) != 1 {
		t.Errorf("expected one life lost event, got %+v", res.Events)
	}
}

func TestLastLifeEndsRunOnce(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	m.session.Lives = 1

	m.events = nil
	m.loseLife()
	if s := m.Session(); !s.GameOver || s.Lives != 0 {
		t.Fatalf("session = %+v, expected game over with 0 lives", s)
	}
	if m.State() != StateGameOver {
		t.Errorf("State() = %v, expected GAME_OVER", m.State())
	}
	if n := countEvents(m.events, core.EventGameOver); n != 1 {
		t.Errorf("game over events = %d, expected 1", n)
	}

	m.loseLife()
	if s := m.Session(); s.Lives != 0 {
		t.Errorf("repeated loseLife() changed lives to %d", s.Lives)
	}
	if n := countEvents(m.events, core.EventGameOver); n != 1 {
		t.Errorf("game over events = %d after repeat, expected 1", n)
	}
	if m.Session().Mode != StatePlaying {
		t.Errorf("Mode = %v, expected PLAYING", m.Session().Mode)
	}
}

func TestPauseAndConfirm(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	tg := placeTarget(m, 500, 300, 1)

	press(m, core.ActionPause)
	if !m.Session().Paused {
		t.Fatal("expected pause")
	}
	y := tg.Y
	idle(m, 10)
	if tg.Y != y {
		t.Error("targets must not move while paused")
	}

	press(m, core.ActionRestart)
	if m.Session().Confirm != ConfirmNone {
		t.Error("restart prompt must not open while paused")
	}

	press(m, core.ActionPause)
	if s := m.Session(); s.Paused || s.SpawnTimer != 119 {
		t.Errorf("after unpause: %+v, expected a re-armed spawn timer", s)
	}

	press(m, core.ActionRestart)
	if s := m.Session(); !s.Paused || s.Confirm != ConfirmRestart {
		t.Fatalf("after R: %+v", s)
	}
	press(m, core.ActionNo)
	if s := m.Session(); s.Paused || s.Confirm != ConfirmNone {
		t.Errorf("after N: %+v", s)
	}

	m.session.Score = 42
	press(m, core.ActionRestart)
	press(m, core.ActionYes)
	if s := m.Session(); s.Score != 0 || s.Paused || m.State() != StatePlaying || len(m.Targets()) != 0 {
		t.Errorf("restart did not begin a fresh run: %+v", s)
	}
}

func TestQuitPromptEndsRun(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StateTimedChallenge)

	press(m, core.ActionQuit)
	if m.Session().Confirm != ConfirmQuit {
		t.Fatalf("Confirm = %v, expected quit prompt", m.Session().Confirm)
	}
	press(m, core.ActionYes)

	s := m.Session()
	if m.State() != StateGameOver || !s.GameOver || !s.QuitInitiated {
		t.Fatalf("state %v, session %+v", m.State(), s)
	}
	if s.Mode != StateTimedChallenge {
		t.Errorf("Mode = %v, expected TIMED_CHALLENGE", s.Mode)
	}
	texts := strings.Join(renderTexts(m), "|")
	if !strings.Contains(texts, "Save Your Score?") {
		t.Errorf("quit game over title missing: %s", texts)
	}
}

func TestColorSelection(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	press(m, core.ActionColor3)
	if got := m.Session().Color; got != core.PaintBlue {
		t.Errorf("Color = %v, expected blue", got)
	}

	tg := placeTarget(m, 500, 400, 1)
	click(m, 420, 550)
	if len(tg.Splats) != 1 || tg.Splats[0].Color != core.PaintBlue {
		t.Errorf("splats = %+v", tg.Splats)
	}
}

func TestTimedChallenge(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	m := newTestMachine(t, store, nil)

	click(m, 500, 350)
	if m.State() != StateTimedSetup {
		t.Fatalf("State() = %v, expected TIMED_SETUP", m.State())
	}
	press(m, core.ActionBackspace)
	press(m, core.ActionBackspace)
	typeText(m, "2x")
	press(m, core.ActionConfirm)

	if m.State() != StateTimedChallenge || m.Session().Duration != 2 {
		t.Fatalf("state %v, duration %d", m.State(), m.Session().Duration)
	}
	saved, err := store.Load()
	if err != nil || saved.ChallengeDuration != "2" {
		t.Errorf("saved duration = %q (%v), expected \"2\"", saved.ChallengeDuration, err)
	}

	idle(m, 118)
	if m.State() != StateTimedChallenge {
		t.Fatalf("challenge ended early at tick %d", m.Session().Elapsed)
	}
	idle(m, 1)
	if m.State() != StateGameOver {
		t.Errorf("State() = %v after 2 s, expected GAME_OVER", m.State())
	}
	if m.Session().QuitInitiated {
		t.Error("time out is not a quit")
	}
}

func TestTimedChallengeInvalidDuration(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	m := newTestMachine(t, store, nil)
	click(m, 500, 350)
	press(m, core.ActionBackspace)
	press(m, core.ActionBackspace)
	press(m, core.ActionConfirm)

	if got := m.Session().Duration; got != 60 {
		t.Errorf("Duration = %d, expected 60", got)
	}
	if got := m.Settings().ChallengeDuration; got != "60" {
		t.Errorf("ChallengeDuration = %q, expected it unchanged", got)
	}
}

func TestTimedSetupBack(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	click(m, 500, 350)
	click(m, 500, 600)
	if m.State() != StateMenu {
		t.Errorf("State() = %v, expected MENU", m.State())
	}
}

func TestGameOverNameEntry(t *testing.T) {
	board := scores.NewMemory()
	m := newTestMachine(t, nil, board)
	m.startGame(StatePlaying)
	m.session.Score = 77
	m.endRun(false)

	if !m.nameEntry {
		t.Fatal("a score on an empty board should qualify")
	}
	typeText(m, "Ann!")
	typeText(m, "e")
	press(m, core.ActionBackspace)
	press(m, core.ActionConfirm)

	if m.State() != StateHighScores {
		t.Fatalf("State() = %v, expected HIGH_SCORES", m.State())
	}
	top, _ := board.Top()
	if len(top) != 1 || top[0] != (scores.Entry{Name: "Ann", Score: 77}) {
		t.Errorf("board = %+v", top)
	}
}

func TestGameOverBlankNameKeepsPrompt(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	m.endRun(false)
	typeText(m, "   ")
	press(m, core.ActionConfirm)
	if m.State() != StateGameOver || !m.nameEntry {
		t.Errorf("blank name must keep the prompt open, state %v", m.State())
	}
}

func TestGameOverSkip(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	m.session.Score = 5
	m.endRun(false)

	click(m, 850, 730)
	if m.State() != StateMenu {
		t.Fatalf("State() = %v, expected MENU", m.State())
	}
	if m.Session().Score != 0 || m.Session().GameOver {
		t.Errorf("skip should reset the session: %+v", m.Session())
	}
}

func TestGameOverRestartSameMode(t *testing.T) {
	var full []scores.Entry
	for range scores.MaxEntries {
		full = append(full, scores.Entry{Name: "pro", Score: 1000})
	}

	for _, mode := range []State{StatePlaying, StateTimedChallenge} {
		t.Run(mode.String(), func(t *testing.T) {
			m := newTestMachine(t, nil, scores.NewMemory(full...))
			m.startGame(mode)
			m.endRun(false)
			if m.nameEntry {
				t.Fatal("0 points must not qualify on a full board")
			}
			if !slices.Contains(renderTexts(m), "Final Score: 0") {
				t.Errorf("texts = %v", renderTexts(m))
			}
			press(m, core.ActionRestart)
			if m.State() != mode {
				t.Errorf("State() = %v, expected %v", m.State(), mode)
			}
		})
	}
}

func TestGameOverMenu(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	m.nameEntry = false
	m.state = StateGameOver
	press(m, core.ActionMenu)
	if m.State() != StateMenu {
		t.Errorf("State() = %v, expected MENU", m.State())
	}
}

type recordingBoard struct {
	*scores.Memory
	modes []string
}

func (b *recordingBoard) RecordRun(mode string, score int) (int64, error) {
	b.modes = append(b.modes, mode)
	return int64(len(b.modes)), nil
}

func TestRunIsRecorded(t *testing.T) {
	board := &recordingBoard{Memory: scores.NewMemory()}
	m := newTestMachine(t, nil, board)
	m.startGame(StateTimedChallenge)
	m.endRun(false)
	if !slices.Equal(board.modes, []string{"timed"}) {
		t.Errorf("recorded modes = %v", board.modes)
	}
}

func TestSettingsSpeedPersists(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	m := newTestMachine(t, store, nil)

	click(m, 500, 490)
	if m.State() != StateSettings {
		t.Fatalf("State() = %v, expected SETTINGS", m.State())
	}
	click(m, 700, 310)

	saved, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.Speed != config.SpeedHard {
		t.Errorf("saved speed = %v, expected Hard", saved.Speed)
	}
	if m.Settings().Speed != config.SpeedHard {
		t.Errorf("in-memory speed = %v", m.Settings().Speed)
	}
}

func TestMenuKeyboardNavigation(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	press(m, core.ActionDown)
	press(m, core.ActionDown)
	press(m, core.ActionUp)
	press(m, core.ActionConfirm)
	if m.State() != StateTimedSetup {
		t.Errorf("State() = %v, expected TIMED_SETUP", m.State())
	}
	press(m, core.ActionBack)
	if m.State() != StateMenu {
		t.Errorf("State() = %v, expected MENU", m.State())
	}
}

func TestMenuQuitStops(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	res := click(m, 500, 630)
	if m.Running() || res.State.Running {
		t.Error("quit should stop the machine")
	}
}

func TestExitStops(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	press(m, core.ActionExit)
	if m.Running() {
		t.Error("exit should stop the machine")
	}
}

// explorerFixture prepares a directory with an image, a text file and a
// subdirectory, and a machine whose last path points at it.
func explorerFixture(t *testing.T) (*Machine, *config.Store, string) {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "face.png"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	store := config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	settings := config.DefaultSettings()
	settings.LastPath = dir
	if err := store.Save(settings); err != nil {
		t.Fatal(err)
	}
	return newTestMachine(t, store, nil), store, dir
}

// clickRow clicks the explorer row with the given name.
func clickRow(t *testing.T, m *Machine, name string) {
	t.Helper()
	for i, e := range m.explorer.Entries {
		if e.Name == name {
			click(m, 500, explorerList.Y+float64(i)*50+25)
			return
		}
	}
	t.Fatalf("no row named %q in %+v", name, m.explorer.Entries)
}

func TestExplorerPicksFace(t *testing.T) {
	m, store, dir := explorerFixture(t)

	click(m, 500, 490) // Settings
	click(m, 500, 450) // Faces
	if m.State() != StateCustomFaces {
		t.Fatalf("State() = %v, expected CUSTOM_FACES", m.State())
	}
	click(m, 425, 400) // Slot 1
	if m.State() != StateFileExplorer {
		t.Fatalf("State() = %v, expected FILE_EXPLORER", m.State())
	}

	clickRow(t, m, "notes.txt")
	if msg, ticks := m.Error(); msg != msgInvalidFile || ticks == 0 {
		t.Errorf("error = %q (%d ticks), expected the invalid file message", msg, ticks)
	}
	if m.State() != StateFileExplorer {
		t.Fatal("an invalid file must keep the explorer open")
	}

	clickRow(t, m, "face.png")
	if m.State() != StateCustomFaces {
		t.Fatalf("State() = %v, expected CUSTOM_FACES", m.State())
	}
	face := filepath.Join(dir, "face.png")
	if m.faces[1] == nil || m.Settings().FacePaths[1] != face {
		t.Errorf("slot 1 = %q", m.Settings().FacePaths[1])
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if saved.FacePaths[0] != face || saved.LastPath != dir {
		t.Errorf("saved settings = %+v", saved)
	}
}

func TestExplorerPicksBackground(t *testing.T) {
	m, store, dir := explorerFixture(t)
	click(m, 500, 490) // Settings
	click(m, 500, 520) // Background
	clickRow(t, m, "face.png")

	if m.State() != StateSettings {
		t.Fatalf("State() = %v, expected SETTINGS", m.State())
	}
	saved, _ := store.Load()
	if saved.BackgroundPath != filepath.Join(dir, "face.png") {
		t.Errorf("background = %q", saved.BackgroundPath)
	}
}

func TestExplorerNavigation(t *testing.T) {
	m, store, dir := explorerFixture(t)
	click(m, 500, 490)
	click(m, 500, 520)

	clickRow(t, m, "sub")
	sub := filepath.Join(dir, "sub")
	if m.explorer.Dir != sub {
		t.Fatalf("Dir = %q, expected %q", m.explorer.Dir, sub)
	}
	if saved, _ := store.Load(); saved.LastPath != sub {
		t.Errorf("last path = %q, expected %q", saved.LastPath, sub)
	}

	clickRow(t, m, browse.ParentLabel)
	if m.explorer.Dir != dir {
		t.Errorf("Dir = %q after parent, expected %q", m.explorer.Dir, dir)
	}

	click(m, 100, 750)
	if m.State() != StateSettings {
		t.Errorf("back button: State() = %v, expected SETTINGS", m.State())
	}
}

func TestExplorerKeyboard(t *testing.T) {
	m, _, dir := explorerFixture(t)
	click(m, 500, 490)
	click(m, 500, 520)

	// Rows: parent, sub, face.png, notes.txt
	press(m, core.ActionDown)
	press(m, core.ActionConfirm)
	if m.explorer.Dir != filepath.Join(dir, "sub") {
		t.Errorf("Dir = %q", m.explorer.Dir)
	}
	press(m, core.ActionBack)
	if m.State() != StateSettings {
		t.Errorf("State() = %v, expected SETTINGS", m.State())
	}
}

func TestExplorerMissingDirectory(t *testing.T) {
	store := config.NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	settings := config.DefaultSettings()
	settings.LastPath = filepath.Join(t.TempDir(), "gone")
	if err := store.Save(settings); err != nil {
		t.Fatal(err)
	}
	m := newTestMachine(t, store, nil)
	click(m, 500, 490)
	click(m, 500, 520)

	if m.State() != StateFileExplorer {
		t.Fatalf("State() = %v, expected FILE_EXPLORER", m.State())
	}
	msg, _ := m.Error()
	if !strings.HasPrefix(msg, "Cannot access directory: ") {
		t.Errorf("error = %q", msg)
	}
	if len(m.explorer.Entries) != 0 {
		t.Error("listing should be empty")
	}
}

func TestExplorerDisabled(t *testing.T) {
	m, err := New(Context{}, core.RuntimeConfig{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	click(m, 500, 490)
	click(m, 500, 520)
	if m.State() != StateSettings {
		t.Errorf("State() = %v, expected SETTINGS", m.State())
	}
	if msg, _ := m.Error(); msg != msgBrowseDenied {
		t.Errorf("error = %q", msg)
	}
}

func TestErrorExpires(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.showError("boom")
	idle(m, 179)
	if msg, _ := m.Error(); msg != "boom" {
		t.Fatalf("error cleared too early")
	}
	idle(m, 1)
	if msg, ticks := m.Error(); msg != "" || ticks != 0 {
		t.Errorf("error = %q (%d), expected cleared after 180 ticks", msg, ticks)
	}
}

func TestSettingsLoadedAtStart(t *testing.T) {
	dir := t.TempDir()
	face := filepath.Join(dir, "face.png")
	writePNG(t, face)

	store := config.NewStore(filepath.Join(dir, "config.yaml"))
	settings := config.DefaultSettings()
	settings.FacePaths = [config.FaceSlots]string{"", face, filepath.Join(dir, "missing.png")}
	settings.Speed = config.SpeedEasy
	settings.ChallengeDuration = "30"
	if err := store.Save(settings); err != nil {
		t.Fatal(err)
	}

	m := newTestMachine(t, store, nil)
	// Compaction moves the face to slot 0; the missing one is dropped
	if m.faces[0] == nil || m.faces[1] != nil {
		t.Errorf("faces = %v", m.faces)
	}
	if m.Settings().Speed != config.SpeedEasy || m.challengeSecs != 30 {
		t.Errorf("settings = %+v, challenge %d", m.Settings(), m.challengeSecs)
	}

	m.startGame(StatePlaying)
	m.spawn()
	if m.Targets()[0].Face != m.faces[0] {
		t.Error("spawned target should carry the only loaded face")
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []core.Vec {
		m := newTestMachine(t, nil, nil)
		m.startGame(StatePlaying)
		for i := range 900 {
			if i%45 == 0 {
				click(m, 400+float64(i%200), 300)
				continue
			}
			idle(m, 1)
		}
		var out []core.Vec
		for _, tg := range m.Targets() {
			out = append(out, core.V(tg.X, tg.Y))
		}
		out = append(out, core.V(float64(m.Session().Score), float64(m.Session().Lives)))
		return out
	}
	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Errorf("same seed and input diverged:\n%v\n%v", a, b)
	}
}

func renderTexts(m *Machine) []string {
	var out []string
	for _, c := range m.Render() {
		if c.Text != "" {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestRenderScreens(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	if !slices.Contains(renderTexts(m), "Paint (H)it") {
		t.Errorf("menu texts = %v", renderTexts(m))
	}

	m.startGame(StatePlaying)
	texts := renderTexts(m)
	for _, want := range []string{"Score: 0", "Lives: 5"} {
		if !slices.Contains(texts, want) {
			t.Errorf("gameplay texts %v missing %q", texts, want)
		}
	}

	m.startGame(StateTimedChallenge)
	if !slices.Contains(renderTexts(m), "Time: 60s") {
		t.Errorf("timed texts = %v", renderTexts(m))
	}

	press(m, core.ActionPause)
	if !slices.Contains(renderTexts(m), "PAUSED") {
		t.Errorf("paused texts = %v", renderTexts(m))
	}

	m.state = StateHighScores
	m.refreshScores()
	if !slices.Contains(renderTexts(m), "No scores yet!") {
		t.Errorf("high score texts = %v", renderTexts(m))
	}
}

func TestRenderComboHUD(t *testing.T) {
	m := newTestMachine(t, nil, nil)
	m.startGame(StatePlaying)
	for _, x := range []float64{200, 500} {
		tg := placeTarget(m, x, 400, 1)
		click(m, tg.Geometry.Center.X, tg.Geometry.Center.Y)
	}
	if !slices.Contains(renderTexts(m), "x2 Combo!") {
		t.Errorf("texts = %v", renderTexts(m))
	}
}
