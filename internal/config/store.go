package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileRecord is the on-disk shape of Settings.
type fileRecord struct {
	BackgroundPath string       `yaml:"background_path,omitempty"`
	FacesPaths     []string     `yaml:"faces_paths"`
	GameSettings   gameSettings `yaml:"game_settings"`
}

type gameSettings struct {
	SpeedSetting      string `yaml:"speed_setting"`
	ChallengeDuration string `yaml:"challenge_duration"`
	LastPath          string `yaml:"last_path"`
}

// Store reads and writes the settings record at a fixed path.
// An empty path keeps settings in memory only.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for path. A leading ~ is expanded.
func NewStore(path string) *Store {
	if expanded, err := ExpandHome(path); err == nil {
		path = expanded
	}
	return &Store{path: path}
}

// Path returns the file backing the store, or "" for a memory-only store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing file yields defaults and no error. A
// malformed file yields defaults together with the parse error so the
// caller can report it; it is never fatal.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return DefaultSettings(), nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("config: cannot read %s: %w", s.path, err)
	}
	return decodeSettings(data)
}

// Save overwrites the record with settings. Face paths are written
// compacted, in slot order.
func (s *Store) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", s.path, err)
	}
	return nil
}

func decodeSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	var rec fileRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return settings, fmt.Errorf("config: malformed settings: %w", err)
	}
	return rec.apply(settings), nil
}

// apply overlays the fields present in the record onto base.
func (r fileRecord) apply(base Settings) Settings {
	base.BackgroundPath = r.BackgroundPath
	slot := 0
	for _, p := range r.FacesPaths {
		if p == "" || slot >= FaceSlots {
			continue
		}
		base.FacePaths[slot] = p
		slot++
	}
	if sp, ok := ParseSpeed(r.GameSettings.SpeedSetting); ok {
		base.Speed = sp
	}
	if r.GameSettings.ChallengeDuration != "" {
		base.ChallengeDuration = r.GameSettings.ChallengeDuration
	}
	if r.GameSettings.LastPath != "" {
		base.LastPath = r.GameSettings.LastPath
	}
	return base
}

func encodeSettings(s Settings) ([]byte, error) {
	rec := fileRecord{
		BackgroundPath: s.BackgroundPath,
		FacesPaths:     s.Faces(),
		GameSettings: gameSettings{
			SpeedSetting:      string(s.Speed),
			ChallengeDuration: s.ChallengeDuration,
			LastPath:          s.LastPath,
		},
	}
	if rec.FacesPaths == nil {
		rec.FacesPaths = []string{}
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode settings: %w", err)
	}
	return data, nil
}
