// Package revolve builds a triangle mesh by sweeping a 2D profile around the
// vertical axis.
package revolve

// DefaultSubdivisions is the number of angular steps used by the editor.
const DefaultSubdivisions = 16

// Vertex is a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is a surface of revolution ready for export or GPU upload.
//
// Vertices are stored ring by ring: ring r holds the profile rotated by
// r·2π/Subdivisions, and the last ring is an unrotated copy of the first
// that closes the seam. Indices are triangles, three per face.
type Mesh struct {
	Vertices     []Vertex
	Indices      []uint32
	Bounds       Bounds
	ProfileLen   int // vertices per ring
	Subdivisions int // angular steps; there are Subdivisions+1 rings
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Index returns the flat vertex index of profile point j on ring r.
func (m *Mesh) Index(r, j int) int {
	return r*m.ProfileLen + j
}

// Positions returns the vertex positions as a separate array.
func (m *Mesh) Positions() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Position
	}
	return out
}

// Normals returns the vertex normals as a separate array.
func (m *Mesh) Normals() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Normal
	}
	return out
}

// UVs returns the texture coordinates as a separate array.
func (m *Mesh) UVs() [][2]float32 {
	out := make([][2]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.TexCoord
	}
	return out
}
