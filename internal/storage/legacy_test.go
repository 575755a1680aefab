package storage

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vovakirdan/paint-hit/internal/scores"
)

func TestParseLegacyScores(t *testing.T) {
	data := []byte(`[
		{"name": "low", "score": 5},
		{"name": "high", "score": 50},
		{"name": "broken"},
		{"name": "mid", "score": 20}
	]`)

	got, err := ParseLegacyScores(data)
	if err != nil {
		t.Fatalf("ParseLegacyScores() failed: %v", err)
	}
	want := []scores.Entry{{Name: "high", Score: 50}, {Name: "mid", Score: 20}, {Name: "low", Score: 5}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestParseLegacyScoresMalformed(t *testing.T) {
	for _, doc := range []string{`{"name":"x"}`, `not json`, ``} {
		if _, err := ParseLegacyScores([]byte(doc)); !errors.Is(err, ErrMalformedScores) {
			t.Errorf("ParseLegacyScores(%q) error = %v, expected ErrMalformedScores", doc, err)
		}
	}
}

func TestEncodeLegacyScores(t *testing.T) {
	entries := []scores.Entry{{Name: "ann", Score: 30}, {Name: "bob", Score: 10}}
	data, err := EncodeLegacyScores(entries)
	if err != nil {
		t.Fatalf("EncodeLegacyScores() failed: %v", err)
	}

	if n := gjson.GetBytes(data, "#").Int(); n != 2 {
		t.Fatalf("array length = %d, expected 2", n)
	}
	if name := gjson.GetBytes(data, "0.name").String(); name != "ann" {
		t.Errorf("0.name = %q, expected ann", name)
	}
	if score := gjson.GetBytes(data, "1.score").Int(); score != 10 {
		t.Errorf("1.score = %d, expected 10", score)
	}

	back, err := ParseLegacyScores(data)
	if err != nil {
		t.Fatalf("ParseLegacyScores() failed: %v", err)
	}
	if len(back) != 2 || back[0] != entries[0] || back[1] != entries[1] {
		t.Errorf("round trip = %+v", back)
	}
}

func TestEncodeLegacyScoresEmpty(t *testing.T) {
	data, err := EncodeLegacyScores(nil)
	if err != nil {
		t.Fatalf("EncodeLegacyScores() failed: %v", err)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		t.Errorf("expected an empty JSON array, got %q", data)
	}
}
