package game

import "github.com/vovakirdan/paint-hit/internal/core"

// Confirm is the prompt shown over a paused run.
type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmRestart
	ConfirmQuit
)

// Session holds the counters of one run. It is reset on every start.
type Session struct {
	Lives         int
	Score         int
	Color         core.PaintColor
	Paused        bool
	Confirm       Confirm
	GameOver      bool
	QuitInitiated bool  // The run ended through the quit prompt
	Mode          State // StatePlaying or StateTimedChallenge
	Duration      int   // Timed challenge length in seconds
	Elapsed       int   // Active, unpaused ticks since the start
	Flash         int   // Ticks left of the life-lost flash
	SpawnTimer    int   // Ticks until the next spawn
}

// Remaining returns the seconds left in a timed challenge, never negative.
func (s Session) Remaining(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	left := s.Duration - s.Elapsed/tickRate
	if left < 0 {
		return 0
	}
	return left
}
