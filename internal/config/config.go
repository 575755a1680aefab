// Package config provides the user settings record, the speed presets and
// the YAML/TOML tuning of gameplay constants.
package config

import (
	"os"
	"strconv"
	"strings"
)

// FaceSlots is the number of custom face slots.
const FaceSlots = 4

// DefaultChallengeSeconds is used when the challenge duration is not a
// positive integer.
const DefaultChallengeSeconds = 60

// Settings is the user-editable configuration record.
// It is rewritten in full on every change.
type Settings struct {
	BackgroundPath    string            // Custom background image, empty for the bundled one
	FacePaths         [FaceSlots]string // Custom faces by slot, empty when unset
	Speed             Speed             // Target speed preset
	ChallengeDuration string            // Timed challenge length as typed by the player
	LastPath          string            // Last directory visited in the file explorer
}

// DefaultSettings returns the settings used when no record exists.
func DefaultSettings() Settings {
	return Settings{
		Speed:             SpeedNormal,
		ChallengeDuration: strconv.Itoa(DefaultChallengeSeconds),
		LastPath:          homeDir(),
	}
}

// ChallengeSeconds parses ChallengeDuration. Values that are not positive
// integers yield DefaultChallengeSeconds and ok=false.
func (s Settings) ChallengeSeconds() (secs int, ok bool) {
	return ParseDuration(s.ChallengeDuration)
}

// ParseDuration parses a typed challenge duration in seconds.
func ParseDuration(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return DefaultChallengeSeconds, false
	}
	return n, true
}

// Faces returns the non-empty face paths in slot order.
func (s Settings) Faces() []string {
	var out []string
	for _, p := range s.FacePaths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// homeDir returns the user's home directory, or "/" if it is unknown.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return string(os.PathSeparator)
	}
	return home
}
