package storage

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/vovakirdan/paint-hit/internal/scores"
)

// ErrMalformedScores is returned when a legacy score document is not a
// JSON array.
var ErrMalformedScores = errors.New("storage: malformed legacy scores")

// ParseLegacyScores reads a highscores.json document: an array of
// {"name": string, "score": integer}. Rows without a numeric score are
// skipped. The result is sorted and truncated like the board.
func ParseLegacyScores(data []byte) ([]scores.Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrMalformedScores
	}
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		return nil, ErrMalformedScores
	}

	out := make([]scores.Entry, 0, int(res.Get("#").Int()))
	res.ForEach(func(_, v gjson.Result) bool {
		score := v.Get("score")
		if score.Type != gjson.Number {
			return true
		}
		out = append(out, scores.Entry{
			Name:  v.Get("name").String(),
			Score: int(score.Int()),
		})
		return true
	})
	return scores.Normalize(out), nil
}

// EncodeLegacyScores renders entries in the highscores.json shape, indented
// and newline terminated.
func EncodeLegacyScores(entries []scores.Entry) ([]byte, error) {
	data := []byte("[]")
	for i, e := range entries {
		row, err := sjson.SetBytes([]byte("{}"), "name", e.Name)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot encode entry %d: %w", i, err)
		}
		row, err = sjson.SetBytes(row, "score", e.Score)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot encode entry %d: %w", i, err)
		}
		data, err = sjson.SetRawBytes(data, "-1", row)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot append entry %d: %w", i, err)
		}
	}

	return pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "}), nil
}
