package target

// Zone classifies where a shot landed on a target.
type Zone int

const (
	ZoneNone  Zone = iota // Shot missed the target
	ZoneInner             // Within the inner bullseye circle
	ZoneOuter             // Within the bullseye but outside the inner circle
	ZoneFace              // On the face overlay
	ZoneBody              // Anywhere else on the silhouette box
)

// String returns the zone name used in events and logs.
func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneInner:
		return "inner"
	case ZoneOuter:
		return "outer"
	case ZoneFace:
		return "face"
	case ZoneBody:
		return "body"
	default:
		return "unknown"
	}
}

// Points returns the base score of the zone, before any combo bonus.
func (z Zone) Points() int {
	switch z {
	case ZoneInner:
		return 10
	case ZoneOuter, ZoneFace:
		return 5
	case ZoneBody:
		return 1
	default:
		return 0
	}
}

// Fatal reports whether a hit in this zone knocks the target down.
func (z Zone) Fatal() bool {
	return z == ZoneInner || z == ZoneFace
}
