package revolve

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/lathe/pkg/formats"
)

// ErrInvalidMesh reports a mesh whose buffers disagree with each other.
var ErrInvalidMesh = errors.New("invalid mesh")

// normalTolerance bounds how far a normal's length may drift from 1.
const normalTolerance = 1e-3

// BuildFromHandoff revolves the profile stored in a curve handoff file. Like
// the editor it refuses curves whose control point count is too small for
// their mode.
func BuildFromHandoff(h *formats.Handoff, subdivisions int) (*Mesh, error) {
	if !h.Revolvable() {
		return nil, fmt.Errorf("%w: %v curve with %d control points and %d profile points",
			ErrInsufficientData, h.Mode, h.ControlPoints, len(h.Profile))
	}
	return Build(h.Profile, subdivisions)
}

// Validate checks buffer sizes, index ranges, unit normals, and UV ranges.
func (m *Mesh) Validate() error {
	wantVerts := (m.Subdivisions + 1) * m.ProfileLen
	if len(m.Vertices) != wantVerts {
		return fmt.Errorf("%w: %d vertices, want %d", ErrInvalidMesh, len(m.Vertices), wantVerts)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d = %d out of range", ErrInvalidMesh, i, idx)
		}
	}
	for i, v := range m.Vertices {
		n := v.Normal
		l := gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if gomath.Abs(l-1) > normalTolerance {
			return fmt.Errorf("%w: vertex %d normal has length %f", ErrInvalidMesh, i, l)
		}
		uv := v.TexCoord
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			return fmt.Errorf("%w: vertex %d uv %v outside [0,1]", ErrInvalidMesh, i, uv)
		}
	}
	return nil
}
