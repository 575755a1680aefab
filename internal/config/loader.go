package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadTuning loads gameplay tuning.
// Search order: customPath -> ~/.painthit/tuning.{yaml,toml} -> ./configs/tuning.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func LoadTuning(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		cfg, err := decodeTuning(customPath, data)
		if err != nil {
			return DefaultTuning(), fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return cfg.Normalize(), nil
	}

	// Try user config directory
	for _, name := range []string{"tuning.yaml", "tuning.toml"} {
		if path := userConfigPath(name); path != "" {
			if cfg, ok := tryTuning(path); ok {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if cfg, ok := tryTuning(filepath.Join("configs", "tuning.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.Normalize(), nil
}

func tryTuning(path string) (Tuning, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, false
	}
	cfg, err := decodeTuning(path, data)
	if err != nil {
		return Tuning{}, false
	}
	return cfg.Normalize(), true
}

// decodeTuning picks the decoder by file extension. Anything that is not
// .toml is read as YAML.
func decodeTuning(path string, data []byte) (Tuning, error) {
	var cfg Tuning
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
