package export

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Asset is the JSON mesh asset. Buffers are flat like a GPU upload:
// 3 floats per position and normal, 2 per UV, 3 indices per triangle.
type Asset struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Subdivisions int        `json:"subdivisions"`
	ProfileLen   int        `json:"profileLen"`
	Vertices     []float32  `json:"vertices"`
	Normals      []float32  `json:"normals"`
	UVs          []float32  `json:"uvs"`
	Indices      []uint32   `json:"indices"`
	BoundsMin    [3]float32 `json:"boundsMin"`
	BoundsMax    [3]float32 `json:"boundsMax"`
}

// NewAsset flattens mesh into an asset with a fresh id.
func NewAsset(mesh *revolve.Mesh, name string) *Asset {
	n := mesh.VertexCount()
	a := &Asset{
		ID:           uuid.New().String(),
		Name:         name,
		Subdivisions: mesh.Subdivisions,
		ProfileLen:   mesh.ProfileLen,
		Vertices:     make([]float32, 0, n*3),
		Normals:      make([]float32, 0, n*3),
		UVs:          make([]float32, 0, n*2),
		Indices:      append([]uint32(nil), mesh.Indices...),
		BoundsMin:    mesh.Bounds.Min,
		BoundsMax:    mesh.Bounds.Max,
	}
	for _, v := range mesh.Vertices {
		a.Vertices = append(a.Vertices, v.Position[:]...)
		a.Normals = append(a.Normals, v.Normal[:]...)
		a.UVs = append(a.UVs, v.TexCoord[:]...)
	}
	return a
}

// Mesh rebuilds the mesh the asset was made from.
func (a *Asset) Mesh() (*revolve.Mesh, error) {
	n := len(a.Vertices) / 3
	if len(a.Vertices)%3 != 0 || len(a.Normals) != n*3 || len(a.UVs) != n*2 {
		return nil, fmt.Errorf("asset %s: buffer sizes disagree (%d/%d/%d)",
			a.ID, len(a.Vertices), len(a.Normals), len(a.UVs))
	}
	mesh := &revolve.Mesh{
		Vertices:     make([]revolve.Vertex, n),
		Indices:      append([]uint32(nil), a.Indices...),
		Bounds:       revolve.Bounds{Min: a.BoundsMin, Max: a.BoundsMax},
		ProfileLen:   a.ProfileLen,
		Subdivisions: a.Subdivisions,
	}
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		copy(v.Position[:], a.Vertices[i*3:i*3+3])
		copy(v.Normal[:], a.Normals[i*3:i*3+3])
		copy(v.TexCoord[:], a.UVs[i*2:i*2+2])
	}
	return mesh, nil
}

// SaveAsset writes mesh as a JSON asset and returns the asset id.
func SaveAsset(path string, mesh *revolve.Mesh, name string) (string, error) {
	asset := NewAsset(mesh, name)
	data, err := json.MarshalIndent(asset, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding asset: %w", err)
	}
	err = formats.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("saving asset %s: %w", path, err)
	}
	return asset.ID, nil
}

// LoadAsset reads a JSON asset from disk.
func LoadAsset(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset: %w", err)
	}
	var a Asset
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decoding asset %s: %w", path, err)
	}
	return &a, nil
}
