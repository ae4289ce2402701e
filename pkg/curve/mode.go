package curve

import (
	"fmt"
	"strings"
)

// Mode selects how control points are interpreted.
// The numeric values are the encoding used by the curve handoff file.
type Mode int

// Curve modes.
const (
	CatmullRom Mode = 0
	Linear     Mode = 1
)

// Minimum control point counts per mode.
const (
	MinCatmullRomPoints = 4
	MinLinearPoints     = 2
)

// DefaultDensity is the number of samples per segment used by the editor.
const DefaultDensity = 10

// String returns the mode name used in config files and flags.
func (m Mode) String() string {
	switch m {
	case CatmullRom:
		return "catmull-rom"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == CatmullRom || m == Linear
}

// ParseMode accepts a mode name or its numeric file encoding.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "catmull-rom", "catmullrom", "catmull", "0":
		return CatmullRom, nil
	case "linear", "1":
		return Linear, nil
	default:
		return 0, fmt.Errorf("unknown curve mode %q", s)
	}
}

// MinPoints returns the number of control points a mode needs to produce
// any output.
func MinPoints(m Mode) int {
	if m == Linear {
		return MinLinearPoints
	}
	return MinCatmullRomPoints
}

// CanEvaluate reports whether n control points are enough for mode m.
func CanEvaluate(m Mode, n int) bool {
	return n >= MinPoints(m)
}

// Params are the evaluation settings of an editing session.
type Params struct {
	Mode    Mode
	Density int  // samples per segment
	Wrap    bool // connect the last point back to the first
}

// DefaultParams returns the editor defaults: Catmull-Rom, density 10, open.
func DefaultParams() Params {
	return Params{
		Mode:    CatmullRom,
		Density: DefaultDensity,
		Wrap:    false,
	}
}
