// Package target implements the paint target entity: lane motion, growth,
// the fall after a fatal hit, hit-zone geometry and accumulated paint splats.
package target

// Params holds every tunable constant of the target lifecycle.
// Lengths are in viewport units, durations in ticks.
type Params struct {
	Lanes []float64 // Lane anchor x coordinates

	SpawnY       float64 // Initial vertical position
	InitialScale float64 // Initial scale factor
	SpeedMin     float64 // Lower bound of the random base speed
	SpeedMax     float64 // Upper bound of the random base speed

	FirstLaneChangeMin int // Initial lane-change countdown range
	FirstLaneChangeMax int
	LaneChangeMin      int // Countdown range after each lane change
	LaneChangeMax      int

	Drift  float64 // Fraction of the lane gap closed per tick
	Growth float64 // Scale growth per unit of speed per tick

	DespawnY  float64 // Active targets past this line escape
	FloorY    float64 // Falling targets past this line are removed
	FallSpeed float64 // Initial fall speed
	Gravity   float64 // Fall speed increment per tick

	SilhouetteW float64 // Unscaled silhouette size
	SilhouetteH float64
	SplatFrac   float64 // Unscaled splat width as a fraction of SilhouetteW
}

// DefaultParams returns the stock target tuning for an 1000x800 viewport.
func DefaultParams() Params {
	return Params{
		Lanes:              []float64{200, 400, 600, 800},
		SpawnY:             60,
		InitialScale:       0.10,
		SpeedMin:           0.5,
		SpeedMax:           1.2,
		FirstLaneChangeMin: 120,
		FirstLaneChangeMax: 240,
		LaneChangeMin:      180,
		LaneChangeMax:      300,
		Drift:              0.02,
		Growth:             0.003,
		DespawnY:           650,
		FloorY:             800,
		FallSpeed:          5,
		Gravity:            0.5,
		SilhouetteW:        200,
		SilhouetteH:        400,
		SplatFrac:          0.2,
	}
}

// Fixed fractional layout of the composited target image.
const (
	bullseyeX    = 0.25 // Bullseye left edge, fraction of width
	bullseyeY    = 0.30 // Bullseye top edge, fraction of height
	bullseyeSize = 0.50 // Bullseye diameter, fraction of width
	innerFrac    = 0.20 // Inner zone radius, fraction of bullseye radius

	faceX = 0.35
	faceY = 0.05
	faceW = 0.30
	faceH = 0.20
)
