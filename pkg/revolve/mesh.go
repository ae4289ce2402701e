package revolve

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/lathe/pkg/math"
)

// Build errors.
var (
	ErrInsufficientData    = errors.New("insufficient data to build mesh")
	ErrTooFewPoints        = fmt.Errorf("%w: profile needs at least 2 points", ErrInsufficientData)
	ErrInvalidSubdivisions = fmt.Errorf("%w: subdivisions must be at least 1", ErrInsufficientData)
)

// degenerateEpsilon is the squared length below which a normal is treated as
// zero.
const degenerateEpsilon = 1e-12

// Build revolves profile around the Y axis in subdivisions angular steps.
//
// Profile points are (radius, height) pairs. The result has
// (subdivisions+1)·len(profile) vertices and subdivisions·(len(profile)-1)·2
// triangles, wound counter-clockwise when seen from outside.
func Build(profile []math.Vec2, subdivisions int) (*Mesh, error) {
	m := len(profile)
	if m < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPoints, m)
	}
	if subdivisions < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSubdivisions, subdivisions)
	}

	rings := subdivisions + 1
	rotations := ringRotations(subdivisions)

	// Positions
	positions := make([]math.Vec3, 0, rings*m)
	for r := 0; r < rings; r++ {
		for _, p := range profile {
			positions = append(positions, rotations[r].TransformPoint(p.XY0()))
		}
	}

	// Normals: computed once on the unrotated ring, then rotated.
	base := baseNormals(profile, positions, subdivisions)

	// UVs
	vs := arcLengthV(profile)

	mesh := &Mesh{
		Vertices:     make([]Vertex, 0, rings*m),
		Indices:      buildIndices(m, subdivisions),
		ProfileLen:   m,
		Subdivisions: subdivisions,
		Bounds: Bounds{
			Min: [3]float32{gomath.MaxFloat32, gomath.MaxFloat32, gomath.MaxFloat32},
			Max: [3]float32{-gomath.MaxFloat32, -gomath.MaxFloat32, -gomath.MaxFloat32},
		},
	}

	for r := 0; r < rings; r++ {
		u := ringU(r, subdivisions)
		for j := 0; j < m; j++ {
			pos := positions[r*m+j].Array()
			updateBounds(&mesh.Bounds, pos)
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: pos,
				Normal:   rotations[r].TransformDirection(base[j]).Array(),
				TexCoord: [2]float32{u, vs[j]},
			})
		}
	}

	return mesh, nil
}

// ringRotations returns one rotation per ring. Ring i of the first
// subdivisions rings is turned by i·2π/subdivisions; the closing ring uses the
// identity so the seam matches ring 0 exactly.
func ringRotations(subdivisions int) []math.Mat4 {
	rots := make([]math.Mat4, subdivisions+1)
	for i := 0; i < subdivisions; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(subdivisions)
		rots[i] = math.RotateY(theta)
	}
	rots[subdivisions] = math.Identity()
	return rots
}

// buildIndices connects ring i to ring i+1. For profile segment j the quad
// (i,j) (i,j+1) (i+1,j+1) (i+1,j) is split into
// A = (i,j), (i,j+1), (i+1,j) and B = (i+1,j), (i,j+1), (i+1,j+1).
func buildIndices(m, subdivisions int) []uint32 {
	indices := make([]uint32, 0, subdivisions*(m-1)*6)
	for i := 0; i < subdivisions; i++ {
		cur := uint32(i * m)
		next := uint32((i + 1) * m)
		for j := uint32(0); j < uint32(m-1); j++ {
			indices = append(indices,
				cur+j, cur+j+1, next+j,
				next+j, cur+j+1, next+j+1,
			)
		}
	}
	return indices
}

// baseNormals computes the unit normals of ring 0.
//
// For point j the normal is (next ring point - p_j) × (p_{j+1} - p_j). The
// last point has no successor and uses (previous ring point - p_last) ×
// (p_{m-2} - p_last). Points on the axis, and a single subdivision, make that
// product vanish; those fall back to the in-plane perpendicular of the
// adjacent profile segment, then to a neighbouring normal.
func baseNormals(profile []math.Vec2, positions []math.Vec3, subdivisions int) []math.Vec3 {
	m := len(profile)
	next := m // first vertex of ring 1
	prev := (subdivisions - 1) * m

	normals := make([]math.Vec3, m)
	for j := 0; j < m; j++ {
		var n math.Vec3
		if j < m-1 {
			a := positions[next+j].Sub(positions[j])
			b := positions[j+1].Sub(positions[j])
			n = a.Cross(b)
		} else {
			a := positions[prev+j].Sub(positions[j])
			b := positions[j-1].Sub(positions[j])
			n = a.Cross(b)
		}

		if isDegenerate(n) {
			n = profilePerpendicular(profile, j)
		}
		normals[j] = n
	}

	fillDegenerate(normals)
	for j := range normals {
		normals[j] = normals[j].Normalize()
	}
	return normals
}

// profilePerpendicular returns (dy, -dx, 0) for the profile segment leaving
// point j, or arriving at it for the last point.
func profilePerpendicular(profile []math.Vec2, j int) math.Vec3 {
	a, b := j, j+1
	if j == len(profile)-1 {
		a, b = j-1, j
	}
	d := profile[b].Sub(profile[a])
	return math.Vec3{X: d.Y, Y: -d.X}
}

// fillDegenerate replaces zero normals with the nearest usable neighbour,
// preferring later points. If no point has a usable normal every entry
// becomes +X.
func fillDegenerate(normals []math.Vec3) {
	for j := range normals {
		if !isDegenerate(normals[j]) {
			continue
		}
		replacement := math.Vec3{X: 1}
		for d := 1; d < len(normals); d++ {
			if k := j + d; k < len(normals) && !isDegenerate(normals[k]) {
				replacement = normals[k]
				break
			}
			if k := j - d; k >= 0 && !isDegenerate(normals[k]) {
				replacement = normals[k]
				break
			}
		}
		normals[j] = replacement
	}
}

func isDegenerate(v math.Vec3) bool {
	return float64(v.Dot(v)) < degenerateEpsilon
}

// arcLengthV maps each profile point to its cumulative arc length divided by
// the total length. A profile with zero length maps every point to 0.
func arcLengthV(profile []math.Vec2) []float32 {
	sums := make([]float64, len(profile))
	var total float64
	for j := 1; j < len(profile); j++ {
		total += float64(profile[j].Distance(profile[j-1]))
		sums[j] = total
	}

	vs := make([]float32, len(profile))
	if total == 0 {
		return vs
	}
	for j, s := range sums {
		vs[j] = float32(s / total)
	}
	return vs
}

// ringU returns 1 - θ/2π for ring r, θ = r·2π/subdivisions. Ring 0 maps to
// 1 and the closing ring to 0.
func ringU(r, subdivisions int) float32 {
	return float32(1 - float64(r)/float64(subdivisions))
}

func updateBounds(b *Bounds, p [3]float32) {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
}
