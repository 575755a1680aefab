// Package scoring resolves shots against the live targets and keeps the
// inner-bullseye combo streak.
package scoring

import (
	"sort"

	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/target"
)

// DefaultComboWindow is the number of ticks a combo survives without
// another inner hit.
const DefaultComboWindow = 180

// comboStep is the bonus added per combo level beyond the first.
const comboStep = 10

// Outcome describes the result of one shot.
type Outcome struct {
	Target *target.Target // Struck target, nil on a miss
	Zone   target.Zone
	Points int // Points awarded, combo bonus included
	Combo  int // Combo counter after the shot
}

// Hit reports whether the shot struck any target.
func (o Outcome) Hit() bool {
	return o.Zone != target.ZoneNone
}

// Engine holds the combo state of a session.
type Engine struct {
	combo  int
	timer  int
	window int
}

// NewEngine creates a combo engine with the given decay window in ticks.
func NewEngine(window int) *Engine {
	if window <= 0 {
		window = DefaultComboWindow
	}
	return &Engine{window: window}
}

// Combo returns the current streak length.
func (e *Engine) Combo() int { return e.combo }

// Timer returns the ticks left before the streak decays.
func (e *Engine) Timer() int { return e.timer }

// Window returns the decay window in ticks.
func (e *Engine) Window() int { return e.window }

// Reset clears the streak.
func (e *Engine) Reset() {
	e.combo = 0
	e.timer = 0
}

// Tick advances the decay timer by one active tick. The streak is cleared
// exactly when the timer runs out.
func (e *Engine) Tick() {
	if e.timer > 0 {
		e.timer--
		if e.timer == 0 {
			e.combo = 0
		}
		return
	}
	e.combo = 0
}

// Fire resolves a shot at pos. Targets are tested nearest first (largest y)
// and only the first one whose zones contain pos is struck. The struck
// target receives a splat of the given color and falls on a fatal zone.
func (e *Engine) Fire(pos core.Vec, targets []*target.Target, color core.PaintColor, rng core.RNG) Outcome {
	ordered := make([]*target.Target, len(targets))
	copy(ordered, targets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Y > ordered[j].Y
	})

	for _, t := range ordered {
		zone := t.ScoreAt(pos)
		if zone == target.ZoneNone {
			continue
		}

		points := zone.Points()
		if zone == target.ZoneInner {
			e.combo++
			e.timer = e.window
			points += (e.combo - 1) * comboStep
		} else {
			e.combo = 0
		}

		t.RegisterHit(pos, color, rng)
		if zone.Fatal() {
			t.TriggerFall()
		}
		return Outcome{Target: t, Zone: zone, Points: points, Combo: e.combo}
	}

	e.combo = 0
	return Outcome{Zone: target.ZoneNone, Combo: 0}
}
