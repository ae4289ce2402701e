package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// WriteOBJ writes mesh as a Wavefront OBJ object with positions, texture
// coordinates, and normals. Faces reference all three by the same 1-based
// index.
func WriteOBJ(w io.Writer, mesh *revolve.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# lathe surface of revolution: %d vertices, %d triangles\n",
		mesh.VertexCount(), mesh.TriangleCount())
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}

	for _, v := range mesh.Vertices {
		writeFloats(bw, "v", v.Position[:])
	}
	for _, v := range mesh.Vertices {
		writeFloats(bw, "vt", v.TexCoord[:])
	}
	for _, v := range mesh.Vertices {
		writeFloats(bw, "vn", v.Normal[:])
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

func writeFloats(w *bufio.Writer, tag string, vals []float32) {
	w.WriteString(tag)
	for _, v := range vals {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	w.WriteByte('\n')
}

// SaveOBJ writes an OBJ file atomically.
func SaveOBJ(path string, mesh *revolve.Mesh, name string) error {
	if err := formats.WriteFileAtomic(path, func(w io.Writer) error {
		return WriteOBJ(w, mesh, name)
	}); err != nil {
		return fmt.Errorf("saving OBJ %s: %w", path, err)
	}
	return nil
}
