// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/target"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound effect.
type Cue int

const (
	CueInner Cue = iota
	CueOuter
	CueFace
	CueBody
	CueMiss
	CueLifeLost
	CueGameOver
)

// voice describes how a cue sounds.
type voice struct {
	from, to float64 // Frequency sweep in Hz
	length   time.Duration
	volume   float64
	square   bool
}

var voices = map[Cue]voice{
	CueInner:    {from: 880, to: 1320, length: 120 * time.Millisecond, volume: 0.25},
	CueOuter:    {from: 660, to: 660, length: 90 * time.Millisecond, volume: 0.2},
	CueFace:     {from: 520, to: 780, length: 110 * time.Millisecond, volume: 0.2},
	CueBody:     {from: 330, to: 300, length: 70 * time.Millisecond, volume: 0.15},
	CueMiss:     {from: 180, to: 140, length: 60 * time.Millisecond, volume: 0.1, square: true},
	CueLifeLost: {from: 220, to: 110, length: 250 * time.Millisecond, volume: 0.25, square: true},
	CueGameOver: {from: 440, to: 110, length: 700 * time.Millisecond, volume: 0.25},
}

// CueFor maps a game event to its cue.
func CueFor(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventHit:
		switch e.Zone {
		case target.ZoneInner.String():
			return CueInner, true
		case target.ZoneOuter.String():
			return CueOuter, true
		case target.ZoneFace.String():
			return CueFace, true
		default:
			return CueBody, true
		}
	case core.EventMiss:
		return CueMiss, true
	case core.EventLifeLost:
		return CueLifeLost, true
	case core.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Tone is a finite sweep from one frequency to another with a short
// attack and a linear release.
type Tone struct {
	v   voice
	sr  beep.SampleRate
	n   int
	pos int
}

// NewTone creates the streamer for a cue.
func NewTone(c Cue, sr beep.SampleRate) *Tone {
	v := voices[c]
	return &Tone{v: v, sr: sr, n: sr.N(v.length)}
}

// Len returns the number of samples in the tone.
func (t *Tone) Len() int { return t.n }

// Stream implements beep.Streamer.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.n {
		return 0, false
	}
	attack := float64(t.sr.N(5 * time.Millisecond))
	for i := range samples {
		if t.pos >= t.n {
			return i, true
		}
		progress := float64(t.pos) / float64(t.n)
		freq := t.v.from + (t.v.to-t.v.from)*progress
		phase := 2 * math.Pi * freq * float64(t.pos) / float64(t.sr)

		s := math.Sin(phase)
		if t.v.square {
			s = math.Copysign(0.6, s)
		}
		env := min(float64(t.pos)/attack, 1) * (1 - progress)
		s *= env * t.v.volume

		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Tone) Err() error { return nil }

// Player mixes cues onto the speaker. A muted or uninitialized player
// accepts every call and stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a player. Call Init to open the audio device.
func NewPlayer(muted bool) *Player {
	return &Player{mixer: &beep.Mixer{}, muted: muted}
}

// Init opens the audio device. A failure leaves the player silent; the
// game runs without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cues for a tick's events.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			tone := NewTone(c, sampleRate)
			speaker.Lock()
			p.mixer.Add(tone)
			speaker.Unlock()
		}
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
