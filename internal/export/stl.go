package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/lathe/pkg/revolve"
)

// Triangles converts the indexed mesh into sdfx triangles. Faces whose
// vertices coincide, such as the fan at a profile point on the axis, are
// dropped because STL carries no use for them.
func Triangles(mesh *revolve.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, mesh.TriangleCount())
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var t sdf.Triangle3
		for k := 0; k < 3; k++ {
			p := mesh.Vertices[mesh.Indices[i+k]].Position
			t[k] = v3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			continue
		}
		tris = append(tris, &t)
	}
	return tris
}

// SaveSTL writes the mesh as a binary STL file. The file is written next to
// path first and renamed into place.
func SaveSTL(path string, mesh *revolve.Mesh) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := render.SaveSTL(tmp, Triangles(mesh)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("saving STL %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("saving STL %s: %w", path, err)
	}
	return nil
}
