package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - move menu cursor up
	ActionDown             // Down arrow, j - move menu cursor down
	ActionConfirm          // Enter - activate the focused button, submit text
	ActionBack             // Escape - leave the current screen, skip score entry
	ActionPause            // P - pause/unpause, also cancels a confirmation
	ActionRestart          // R - ask to restart, restart after game over
	ActionQuit             // Q - ask to quit the current run
	ActionYes              // Y - accept a confirmation prompt
	ActionNo               // N - reject a confirmation prompt
	ActionMenu             // M - return to the menu after game over
	ActionBackspace        // Backspace - delete the last typed character
	ActionColor1           // 1 - red paint
	ActionColor2           // 2 - green paint
	ActionColor3           // 3 - blue paint
	ActionColor4           // 4 - yellow paint
	ActionExit             // Ctrl+C, window close - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionMenu:
		return "Menu"
	case ActionBackspace:
		return "Backspace"
	case ActionColor1:
		return "Color1"
	case ActionColor2:
		return "Color2"
	case ActionColor3:
		return "Color3"
	case ActionColor4:
		return "Color4"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// InputFrame represents everything the player did during one simulation tick.
// Front ends fill it from their own event sources; the core never polls devices.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the last known pointer position in viewport units.
	Pointer    Vec
	HasPointer bool

	// Fire is set when the primary button was pressed at Pointer this frame.
	Fire bool

	// Scroll is the wheel delta in notches (positive scrolls up).
	Scroll float64

	// Text holds printable runes typed this frame, in order.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer records the pointer position.
func (f *InputFrame) MovePointer(p Vec) {
	f.Pointer = p
	f.HasPointer = true
}

// Click records a primary-button press at p.
func (f *InputFrame) Click(p Vec) {
	f.MovePointer(p)
	f.Fire = true
}

// Type appends typed runes.
func (f *InputFrame) Type(r ...rune) {
	f.Text = append(f.Text, r...)
}

// Clear resets the frame for the next tick. The pointer position is kept
// because it persists between frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Fire = false
	f.Scroll = 0
	f.Text = f.Text[:0]
}
