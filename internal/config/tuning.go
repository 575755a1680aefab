package config

import (
	"github.com/vovakirdan/paint-hit/internal/target"
)

// Tuning contains every gameplay constant. Durations are in ticks unless
// the field name says milliseconds.
type Tuning struct {
	Session SessionTuning    `yaml:"session" toml:"session"`
	Spawn   SpawnTuning      `yaml:"spawn" toml:"spawn"`
	Speed   SpeedMultipliers `yaml:"speed" toml:"speed"`
	Target  TargetTuning     `yaml:"target" toml:"target"`
}

// SessionTuning defines per-run bookkeeping.
type SessionTuning struct {
	Lives           int `yaml:"lives" toml:"lives"`
	FlashTicks      int `yaml:"flash_ticks" toml:"flash_ticks"`
	ErrorTicks      int `yaml:"error_ticks" toml:"error_ticks"`
	ComboWindow     int `yaml:"combo_window" toml:"combo_window"`
	DefaultDuration int `yaml:"default_duration" toml:"default_duration"`
}

// SpawnTuning defines the spawn schedule.
type SpawnTuning struct {
	FirstDelayMS int `yaml:"first_delay_ms" toml:"first_delay_ms"`
	MinDelayMS   int `yaml:"min_delay_ms" toml:"min_delay_ms"`
	MaxDelayMS   int `yaml:"max_delay_ms" toml:"max_delay_ms"`
}

// TargetTuning defines target motion.
type TargetTuning struct {
	Lanes              []float64 `yaml:"lanes" toml:"lanes"`
	SpawnY             float64   `yaml:"spawn_y" toml:"spawn_y"`
	InitialScale       float64   `yaml:"initial_scale" toml:"initial_scale"`
	SpeedMin           float64   `yaml:"speed_min" toml:"speed_min"`
	SpeedMax           float64   `yaml:"speed_max" toml:"speed_max"`
	FirstLaneChangeMin int       `yaml:"first_lane_change_min" toml:"first_lane_change_min"`
	FirstLaneChangeMax int       `yaml:"first_lane_change_max" toml:"first_lane_change_max"`
	LaneChangeMin      int       `yaml:"lane_change_min" toml:"lane_change_min"`
	LaneChangeMax      int       `yaml:"lane_change_max" toml:"lane_change_max"`
	Drift              float64   `yaml:"drift" toml:"drift"`
	Growth             float64   `yaml:"growth" toml:"growth"`
	DespawnY           float64   `yaml:"despawn_y" toml:"despawn_y"`
	FallSpeed          float64   `yaml:"fall_speed" toml:"fall_speed"`
	Gravity            float64   `yaml:"gravity" toml:"gravity"`
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	p := target.DefaultParams()
	return Tuning{
		Session: SessionTuning{
			Lives:           5,
			FlashTicks:      30,
			ErrorTicks:      180,
			ComboWindow:     180,
			DefaultDuration: DefaultChallengeSeconds,
		},
		Spawn: SpawnTuning{
			FirstDelayMS: 2000,
			MinDelayMS:   1500,
			MaxDelayMS:   3000,
		},
		Speed: SpeedMultipliers{Easy: 0.7, Normal: 1.0, Hard: 1.5},
		Target: TargetTuning{
			Lanes:              append([]float64(nil), p.Lanes...),
			SpawnY:             p.SpawnY,
			InitialScale:       p.InitialScale,
			SpeedMin:           p.SpeedMin,
			SpeedMax:           p.SpeedMax,
			FirstLaneChangeMin: p.FirstLaneChangeMin,
			FirstLaneChangeMax: p.FirstLaneChangeMax,
			LaneChangeMin:      p.LaneChangeMin,
			LaneChangeMax:      p.LaneChangeMax,
			Drift:              p.Drift,
			Growth:             p.Growth,
			DespawnY:           p.DespawnY,
			FallSpeed:          p.FallSpeed,
			Gravity:            p.Gravity,
		},
	}
}

// Normalize replaces every out-of-range field with its default, so a
// partial or hand-edited file still yields a playable game.
func (t Tuning) Normalize() Tuning {
	d := DefaultTuning()

	posInt(&t.Session.Lives, d.Session.Lives)
	posInt(&t.Session.FlashTicks, d.Session.FlashTicks)
	posInt(&t.Session.ErrorTicks, d.Session.ErrorTicks)
	posInt(&t.Session.ComboWindow, d.Session.ComboWindow)
	posInt(&t.Session.DefaultDuration, d.Session.DefaultDuration)

	posInt(&t.Spawn.FirstDelayMS, d.Spawn.FirstDelayMS)
	posInt(&t.Spawn.MinDelayMS, d.Spawn.MinDelayMS)
	posInt(&t.Spawn.MaxDelayMS, d.Spawn.MaxDelayMS)
	if t.Spawn.MaxDelayMS < t.Spawn.MinDelayMS {
		t.Spawn.MinDelayMS, t.Spawn.MaxDelayMS = d.Spawn.MinDelayMS, d.Spawn.MaxDelayMS
	}

	posFloat(&t.Speed.Easy, d.Speed.Easy)
	posFloat(&t.Speed.Normal, d.Speed.Normal)
	posFloat(&t.Speed.Hard, d.Speed.Hard)

	tt, dt := &t.Target, d.Target
	if len(tt.Lanes) < 2 {
		tt.Lanes = dt.Lanes
	}
	posFloat(&tt.SpawnY, dt.SpawnY)
	posFloat(&tt.InitialScale, dt.InitialScale)
	posFloat(&tt.SpeedMin, dt.SpeedMin)
	posFloat(&tt.SpeedMax, dt.SpeedMax)
	if tt.SpeedMax < tt.SpeedMin {
		tt.SpeedMin, tt.SpeedMax = dt.SpeedMin, dt.SpeedMax
	}
	posInt(&tt.FirstLaneChangeMin, dt.FirstLaneChangeMin)
	posInt(&tt.FirstLaneChangeMax, dt.FirstLaneChangeMax)
	if tt.FirstLaneChangeMax < tt.FirstLaneChangeMin {
		tt.FirstLaneChangeMin, tt.FirstLaneChangeMax = dt.FirstLaneChangeMin, dt.FirstLaneChangeMax
	}
	posInt(&tt.LaneChangeMin, dt.LaneChangeMin)
	posInt(&tt.LaneChangeMax, dt.LaneChangeMax)
	if tt.LaneChangeMax < tt.LaneChangeMin {
		tt.LaneChangeMin, tt.LaneChangeMax = dt.LaneChangeMin, dt.LaneChangeMax
	}
	if tt.Drift <= 0 || tt.Drift > 1 {
		tt.Drift = dt.Drift
	}
	posFloat(&tt.Growth, dt.Growth)
	posFloat(&tt.DespawnY, dt.DespawnY)
	posFloat(&tt.FallSpeed, dt.FallSpeed)
	posFloat(&tt.Gravity, dt.Gravity)

	return t
}

// TargetParams converts the target section into entity parameters for a
// silhouette of the given size and a viewport of the given height.
func (t Tuning) TargetParams(silW, silH, viewH float64) target.Params {
	p := target.DefaultParams()
	tt := t.Target
	p.Lanes = append([]float64(nil), tt.Lanes...)
	p.SpawnY = tt.SpawnY
	p.InitialScale = tt.InitialScale
	p.SpeedMin, p.SpeedMax = tt.SpeedMin, tt.SpeedMax
	p.FirstLaneChangeMin, p.FirstLaneChangeMax = tt.FirstLaneChangeMin, tt.FirstLaneChangeMax
	p.LaneChangeMin, p.LaneChangeMax = tt.LaneChangeMin, tt.LaneChangeMax
	p.Drift = tt.Drift
	p.Growth = tt.Growth
	p.DespawnY = tt.DespawnY
	p.FallSpeed = tt.FallSpeed
	p.Gravity = tt.Gravity
	if silW > 0 && silH > 0 {
		p.SilhouetteW, p.SilhouetteH = silW, silH
	}
	if viewH > 0 {
		p.FloorY = viewH
	}
	return p
}

func posInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func posFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
