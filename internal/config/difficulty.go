package config

import "strings"

// Speed represents a named target speed preset.
type Speed string

const (
	SpeedEasy   Speed = "Easy"
	SpeedNormal Speed = "Normal"
	SpeedHard   Speed = "Hard"
)

// Speeds lists the presets in menu order.
var Speeds = []Speed{SpeedEasy, SpeedNormal, SpeedHard}

// ParseSpeed converts a stored or typed preset name. Matching ignores case;
// unknown names return SpeedNormal and false.
func ParseSpeed(s string) (Speed, bool) {
	for _, sp := range Speeds {
		if strings.EqualFold(strings.TrimSpace(s), string(sp)) {
			return sp, true
		}
	}
	return SpeedNormal, false
}

// SpeedMultipliers maps each preset to the factor applied to target speed.
type SpeedMultipliers struct {
	Easy   float64 `yaml:"easy" toml:"easy"`
	Normal float64 `yaml:"normal" toml:"normal"`
	Hard   float64 `yaml:"hard" toml:"hard"`
}

// For returns the multiplier of a preset.
func (m SpeedMultipliers) For(s Speed) float64 {
	switch s {
	case SpeedEasy:
		return m.Easy
	case SpeedHard:
		return m.Hard
	default:
		return m.Normal
	}
}
