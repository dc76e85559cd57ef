package chord

import (
	"runtime"
	"strings"
)

// Convention selects which physical modifier acts as the primary chord
// modifier on the host platform.
type Convention uint8

const (
	// ConventionAuto resolves to the running platform's convention.
	ConventionAuto Convention = iota
	// PrimaryCtrl treats Control as the primary chord modifier.
	PrimaryCtrl
	// PrimaryMeta treats Meta (Command) as the primary chord modifier.
	PrimaryMeta
)

// appleMarker identifies the Apple platform family in GOOS-style strings.
const appleMarker = "darwin"

// ConventionForOS returns the modifier convention for a platform string.
// Any string containing the Apple family marker, in any case, selects the
// Command convention; everything else selects Control.
func ConventionForOS(goos string) Convention {
	if strings.Contains(strings.ToLower(goos), appleMarker) {
		return PrimaryMeta
	}
	return PrimaryCtrl
}

// DefaultConvention returns the convention for the running platform.
func DefaultConvention() Convention {
	return ConventionForOS(runtime.GOOS)
}

// Primary reports whether the convention's primary modifier is held in m.
// ConventionAuto resolves against the running platform first.
func (c Convention) Primary(m Modifier) bool {
	switch c {
	case PrimaryMeta:
		return m.HasMeta()
	case ConventionAuto:
		return DefaultConvention().Primary(m)
	default:
		return m.HasCtrl()
	}
}

// PrimaryName returns the label token of the primary modifier, "cmd" or
// "ctrl", suitable for building chord labels such as "ctrl+b".
func (c Convention) PrimaryName() string {
	switch c {
	case PrimaryMeta:
		return "cmd"
	case ConventionAuto:
		return DefaultConvention().PrimaryName()
	default:
		return "ctrl"
	}
}

// String returns a readable name for the convention.
func (c Convention) String() string {
	switch c {
	case PrimaryCtrl:
		return "primary-ctrl"
	case PrimaryMeta:
		return "primary-meta"
	default:
		return "auto"
	}
}
