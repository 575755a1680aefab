package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventSpawn        EventKind = iota // A target entered the lanes
	EventHit                           // A shot struck a target (see Event.Zone)
	EventMiss                          // A shot hit nothing
	EventLifeLost                      // A target escaped past the despawn line
	EventGameOver                      // The run ended
	EventStateChanged                  // The machine moved to another screen
	EventError                         // A recoverable error message was raised
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventStateChanged:
		return "state_changed"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is emitted by the game core during Step. Front ends use events
// for sound cues and logging; the core never depends on them being read.
type Event struct {
	Kind   EventKind
	Zone   string // Hit zone name for EventHit
	Points int    // Points awarded for EventHit
	Detail string // Free-form detail (new state name, error text)
}
