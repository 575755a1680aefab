package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paint-hit/internal/core"
)

// AimStep is how far one arrow key press moves the aim pointer, in
// viewport units.
const AimStep = 25

// KeyMap defines the key bindings of the game screen. It doubles as the
// help footer's source.
type KeyMap struct {
	Aim        key.Binding
	Fire       key.Binding
	Colors     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Navigate   key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Exit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Aim: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "aim"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "fire"),
		),
		Colors: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "paint"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit run"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("up/down", "move"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// GameplayKeys is the help view shown while a run is active.
type GameplayKeys struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k GameplayKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Aim, k.Fire, k.Colors, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameplayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Aim, k.Fire, k.Colors},
		{k.Pause, k.Restart, k.Quit},
		{k.Screenshot, k.Exit},
	}
}

// MenuKeys is the help view shown on every other screen.
type MenuKeys struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Confirm, k.Back, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Confirm, k.Back},
		{k.Screenshot, k.Exit},
	}
}

// KeyResult is what a key press means beyond the actions it sets.
type KeyResult struct {
	Aim        core.Vec // Aim pointer displacement, zero when the key does not aim
	Fire       bool     // Fire at the aim pointer
	Screenshot bool     // Save the current frame
}

// KeyMapper translates Bubble Tea key messages into InputFrames.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKeyToFrame records msg into frame. Printable keys are always typed as
// text as well, since the machine ignores whatever does not apply to the
// current screen. While a run is active the arrows aim and space fires.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, gameplay bool, frame *core.InputFrame) KeyResult {
	var res KeyResult

	switch {
	case key.Matches(msg, km.keys.Exit):
		frame.Set(core.ActionExit)
		return res
	case key.Matches(msg, km.keys.Screenshot):
		res.Screenshot = true
		return res
	}

	switch msg.Type {
	case tea.KeyEnter:
		frame.Set(core.ActionConfirm)
		return res
	case tea.KeyEsc:
		frame.Set(core.ActionBack)
		if gameplay {
			frame.Set(core.ActionPause)
		}
		return res
	case tea.KeyBackspace, tea.KeyDelete:
		frame.Set(core.ActionBackspace)
		return res
	case tea.KeySpace:
		frame.Type(' ')
		res.Fire = gameplay
		return res
	case tea.KeyUp:
		if gameplay {
			res.Aim = core.V(0, -AimStep)
		} else {
			frame.Set(core.ActionUp)
		}
		return res
	case tea.KeyDown:
		if gameplay {
			res.Aim = core.V(0, AimStep)
		} else {
			frame.Set(core.ActionDown)
		}
		return res
	case tea.KeyLeft:
		if gameplay {
			res.Aim = core.V(-AimStep, 0)
		}
		return res
	case tea.KeyRight:
		if gameplay {
			res.Aim = core.V(AimStep, 0)
		}
		return res
	case tea.KeyRunes:
		if msg.Alt {
			return res
		}
	default:
		return res
	}

	frame.Type(msg.Runes...)
	for _, r := range msg.Runes {
		if a, ok := runeAction(r, gameplay); ok {
			frame.Set(a)
		}
	}
	return res
}

// runeAction maps a typed rune to its action, if any.
func runeAction(r rune, gameplay bool) (core.Action, bool) {
	switch r {
	case 'y', 'Y':
		return core.ActionYes, true
	case 'n', 'N':
		return core.ActionNo, true
	case 'p', 'P':
		return core.ActionPause, true
	case 'r', 'R':
		return core.ActionRestart, true
	case 'q', 'Q':
		return core.ActionQuit, true
	case 'm', 'M':
		return core.ActionMenu, true
	case '1':
		return core.ActionColor1, true
	case '2':
		return core.ActionColor2, true
	case '3':
		return core.ActionColor3, true
	case '4':
		return core.ActionColor4, true
	case 'k':
		if !gameplay {
			return core.ActionUp, true
		}
	case 'j':
		if !gameplay {
			return core.ActionDown, true
		}
	}
	return core.ActionNone, false
}
