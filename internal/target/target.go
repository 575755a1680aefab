package target

import (
	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/core"
)

// Splat is one paint mark. Pos is normalized to the unscaled silhouette,
// so it re-projects correctly as the target grows.
type Splat struct {
	Pos      core.Vec
	Rotation int // Degrees, 0-360
	Color    core.PaintColor
}

// SplatPlacement is a splat resolved to viewport coordinates.
type SplatPlacement struct {
	Center   core.Vec
	Size     float64
	Rotation int
	Color    core.PaintColor
}

// Geometry is the derived draw and hit geometry of a target.
type Geometry struct {
	Bounds   core.Rect // Scaled silhouette box
	Bullseye core.Rect // Square the bullseye image is drawn into
	Center   core.Vec  // Bullseye center
	Radius   float64   // Bullseye radius
	Inner    core.Rect // Inner zone square (drawing only; hits use distance)
	Face     core.Rect // Face box; hit-testable only when a face is assigned
	Splats   []SplatPlacement
}

// TickResult reports what happened to a target during one tick.
type TickResult struct {
	Remove  bool // Target left the playfield and must be dropped
	Escaped bool // Target passed the despawn line while still standing
}

// Target is one paint target sliding down the lanes.
type Target struct {
	X        float64
	Y        float64
	LaneX    float64 // Lane the target drifts toward
	Scale    float64
	Speed    float64
	Falling  bool
	FallVel  float64
	Face     *assets.Image // Optional; shared and never modified
	Splats   []Splat
	Geometry Geometry

	laneTimer int
	params    Params
}

// Spawn creates a target in a random lane with a random speed scaled by
// speedMult. face may be nil.
func Spawn(p Params, rng core.RNG, speedMult float64, face *assets.Image) *Target {
	lane := p.Lanes[rng.Intn(len(p.Lanes))]
	t := &Target{
		X:         lane,
		Y:         p.SpawnY,
		LaneX:     lane,
		Scale:     p.InitialScale,
		Speed:     core.Uniform(rng, p.SpeedMin, p.SpeedMax) * speedMult,
		Face:      face,
		laneTimer: core.IntRange(rng, p.FirstLaneChangeMin, p.FirstLaneChangeMax),
		params:    p,
	}
	t.RecomputeGeometry()
	return t
}

// Tick advances the target by one simulation step.
func (t *Target) Tick(rng core.RNG) TickResult {
	p := t.params
	if t.Falling {
		t.Y += t.FallVel
		t.FallVel += p.Gravity
		if t.Y > p.FloorY {
			return TickResult{Remove: true}
		}
		t.RecomputeGeometry()
		return TickResult{}
	}

	t.laneTimer--
	if t.laneTimer <= 0 {
		t.pickLane(rng)
		t.laneTimer = core.IntRange(rng, p.LaneChangeMin, p.LaneChangeMax)
	}

	// Exponential approach toward the lane anchor
	t.X += (t.LaneX - t.X) * p.Drift
	t.Y += t.Speed
	t.Scale += t.Speed * p.Growth

	if t.Y > p.DespawnY {
		return TickResult{Remove: true, Escaped: true}
	}
	t.RecomputeGeometry()
	return TickResult{}
}

// pickLane moves the drift destination to a different lane.
func (t *Target) pickLane(rng core.RNG) {
	others := make([]float64, 0, len(t.params.Lanes))
	for _, l := range t.params.Lanes {
		if l != t.LaneX {
			others = append(others, l)
		}
	}
	if len(others) == 0 {
		return
	}
	t.LaneX = others[rng.Intn(len(others))]
}

// RecomputeGeometry rebuilds the derived geometry from position, scale and
// composition. Targets too small to draw keep their previous geometry.
func (t *Target) RecomputeGeometry() {
	p := t.params
	w := float64(int(p.SilhouetteW * t.Scale))
	h := float64(int(p.SilhouetteH * t.Scale))
	if w < 1 || h < 1 {
		return
	}

	tgt := float64(int(w * bullseyeSize))
	bx := float64(int(w * bullseyeX))
	by := float64(int(h * bullseyeY))
	face := core.NewRect(
		float64(int(w*faceX)), float64(int(h*faceY)),
		float64(int(w*faceW)), float64(int(h*faceH)),
	)

	bounds := core.RectCentered(core.V(t.X, t.Y), w, h)
	// Keep the face zone on screen near the spawn line
	if overflow := bounds.Y + face.Y; overflow < 0 {
		t.Y -= overflow
		bounds = core.RectCentered(core.V(t.X, t.Y), w, h)
	}

	g := Geometry{
		Bounds:   bounds,
		Bullseye: core.NewRect(bounds.X+bx, bounds.Y+by, tgt, tgt),
		Radius:   tgt / 2,
		Face:     face.Offset(bounds.TopLeft()),
	}
	g.Center = core.V(bounds.X+bx+tgt/2, bounds.Y+by+tgt/2)
	g.Inner = core.RectCentered(g.Center, g.Radius*innerFrac*2, g.Radius*innerFrac*2)

	size := float64(int(float64(int(p.SilhouetteW*p.SplatFrac)) * t.Scale))
	if size >= 1 {
		g.Splats = make([]SplatPlacement, 0, len(t.Splats))
		for _, s := range t.Splats {
			g.Splats = append(g.Splats, SplatPlacement{
				Center:   bounds.TopLeft().Add(s.Pos.Scale(t.Scale)),
				Size:     size,
				Rotation: s.Rotation,
				Color:    s.Color,
			})
		}
	}
	t.Geometry = g
}

// ScoreAt classifies a point against the target's hit zones.
// Zones are tested inner bullseye, outer bullseye, face, then body box.
func (t *Target) ScoreAt(pos core.Vec) Zone {
	g := t.Geometry
	if g.Bounds.Empty() {
		return ZoneNone
	}
	d := core.Dist(pos, g.Center)
	switch {
	case d <= g.Radius*innerFrac:
		return ZoneInner
	case d <= g.Radius:
		return ZoneOuter
	case t.Face != nil && g.Face.Contains(pos):
		return ZoneFace
	case g.Bounds.Contains(pos):
		return ZoneBody
	}
	return ZoneNone
}

// RegisterHit records a paint splat at pos. Scoring is left to the caller.
func (t *Target) RegisterHit(pos core.Vec, color core.PaintColor, rng core.RNG) {
	norm := pos.Sub(t.Geometry.Bounds.TopLeft()).Scale(1 / t.Scale)
	t.Splats = append(t.Splats, Splat{
		Pos:      norm,
		Rotation: core.IntRange(rng, 0, 360),
		Color:    color,
	})
	t.RecomputeGeometry()
}

// TriggerFall knocks the target down. Calling it again has no effect.
func (t *Target) TriggerFall() {
	if t.Falling {
		return
	}
	t.Falling = true
	t.FallVel = t.params.FallSpeed
}
