package config

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformedLegacy is returned when a legacy config.json is not a JSON object.
var ErrMalformedLegacy = errors.New("config: malformed legacy config")

// ParseLegacy reads a config.json written by earlier releases:
//
//	{"background_path": ..., "faces_paths": [...],
//	 "game_settings": {"speed_setting": ..., "challenge_duration": ..., "last_path": ...}}
//
// Missing keys keep their defaults.
func ParseLegacy(data []byte) (Settings, error) {
	if !gjson.ValidBytes(data) {
		return DefaultSettings(), ErrMalformedLegacy
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return DefaultSettings(), ErrMalformedLegacy
	}

	rec := fileRecord{
		BackgroundPath: doc.Get("background_path").String(),
		GameSettings: gameSettings{
			SpeedSetting:      doc.Get("game_settings.speed_setting").String(),
			ChallengeDuration: doc.Get("game_settings.challenge_duration").String(),
			LastPath:          doc.Get("game_settings.last_path").String(),
		},
	}
	doc.Get("faces_paths").ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			rec.FacesPaths = append(rec.FacesPaths, v.Str)
		}
		return true
	})
	return rec.apply(DefaultSettings()), nil
}
