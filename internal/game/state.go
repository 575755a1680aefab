package game

// State is a screen of the game.
type State int

const (
	StateMenu State = iota
	StateTimedSetup
	StatePlaying
	StateTimedChallenge
	StateSettings
	StateCustomFaces
	StateFileExplorer
	StateHighScores
	StateAbout
	StateGameOver
)

var stateNames = [...]string{
	StateMenu:           "MENU",
	StateTimedSetup:     "TIMED_SETUP",
	StatePlaying:        "PLAYING",
	StateTimedChallenge: "TIMED_CHALLENGE",
	StateSettings:       "SETTINGS",
	StateCustomFaces:    "CUSTOM_FACES",
	StateFileExplorer:   "FILE_EXPLORER",
	StateHighScores:     "HIGH_SCORES",
	StateAbout:          "ABOUT",
	StateGameOver:       "GAME_OVER",
}

// String returns the state tag.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

// Active reports whether targets spawn and move in this state.
func (s State) Active() bool {
	return s == StatePlaying || s == StateTimedChallenge
}

// ModeName is the name a finished run is recorded under.
func (s State) ModeName() string {
	if s == StateTimedChallenge {
		return "timed"
	}
	return "classic"
}
