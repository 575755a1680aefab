package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yaml"))

	want := DefaultSettings()
	want.BackgroundPath = "/pics/bg.png"
	want.FacePaths = [FaceSlots]string{"/pics/a.png", "/pics/b.jpg", "/pics/c.jpeg", ""}
	want.Speed = SpeedHard
	want.ChallengeDuration = "45"
	want.LastPath = "/pics"

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.yaml"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, expected nil", err)
	}
	if got != DefaultSettings() {
		t.Errorf("Load() = %+v, expected defaults", got)
	}
}

func TestStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game_settings: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewStore(path).Load()
	if err == nil {
		t.Error("expected a parse error to report")
	}
	if got != DefaultSettings() {
		t.Errorf("Load() = %+v, expected defaults", got)
	}
}

func TestStorePartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "game_settings:\n  speed_setting: easy\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Speed != SpeedEasy {
		t.Errorf("Speed = %v, expected Easy", got.Speed)
	}
	if got.ChallengeDuration != "60" || got.LastPath != DefaultSettings().LastPath {
		t.Errorf("missing keys must keep defaults: %+v", got)
	}
}

func TestStoreCompactsFaces(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	s := DefaultSettings()
	s.FacePaths = [FaceSlots]string{"", "/a.png", "", "/b.png"}
	if err := store.Save(s); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, _ := os.ReadFile(store.Path())
	var rec fileRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		t.Fatalf("saved file is not YAML: %v", err)
	}
	if !reflect.DeepEqual(rec.FacesPaths, []string{"/a.png", "/b.png"}) {
		t.Errorf("faces_paths = %v", rec.FacesPaths)
	}

	got, _ := store.Load()
	if got.FacePaths != [FaceSlots]string{"/a.png", "/b.png", "", ""} {
		t.Errorf("FacePaths = %v", got.FacePaths)
	}
}

func TestStoreMemoryOnly(t *testing.T) {
	store := NewStore("")
	s := DefaultSettings()
	s.Speed = SpeedHard
	if err := store.Save(s); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, _ := store.Load()
	if got.Speed != SpeedNormal {
		t.Error("memory-only store must not persist")
	}
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		in   string
		want Speed
		ok   bool
	}{
		{"Easy", SpeedEasy, true},
		{"hard", SpeedHard, true},
		{" Normal ", SpeedNormal, true},
		{"turbo", SpeedNormal, false},
		{"", SpeedNormal, false},
	}
	for _, tc := range tests {
		got, ok := ParseSpeed(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSpeed(%q) = %v, %v, expected %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"45", 45, true},
		{" 90 ", 90, true},
		{"", 60, false},
		{"abc", 60, false},
		{"0", 60, false},
		{"-5", 60, false},
	}
	for _, tc := range tests {
		got, ok := ParseDuration(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDuration(%q) = %d, %v, expected %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSpeedMultipliers(t *testing.T) {
	m := DefaultTuning().Speed
	if m.For(SpeedEasy) != 0.7 || m.For(SpeedNormal) != 1.0 || m.For(SpeedHard) != 1.5 {
		t.Errorf("multipliers = %+v", m)
	}
}

func TestParseLegacy(t *testing.T) {
	data := []byte(`{
		"background_path": "/bg.png",
		"faces_paths": ["/f1.png", "/f2.png"],
		"game_settings": {"speed_setting": "Hard", "challenge_duration": "30", "last_path": "/home/p"}
	}`)
	got, err := ParseLegacy(data)
	if err != nil {
		t.Fatalf("ParseLegacy() failed: %v", err)
	}
	want := DefaultSettings()
	want.BackgroundPath = "/bg.png"
	want.FacePaths[0], want.FacePaths[1] = "/f1.png", "/f2.png"
	want.Speed = SpeedHard
	want.ChallengeDuration = "30"
	want.LastPath = "/home/p"
	if got != want {
		t.Errorf("ParseLegacy() = %+v, expected %+v", got, want)
	}

	if _, err := ParseLegacy([]byte(`[1,2]`)); !errors.Is(err, ErrMalformedLegacy) {
		t.Errorf("expected ErrMalformedLegacy for an array, got %v", err)
	}
}
