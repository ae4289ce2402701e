// Package export writes finished meshes and profiles to disk.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/lathe/pkg/revolve"
)

// ErrUnsupportedFormat is returned for file extensions no exporter handles.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Formats lists the mesh file extensions Save understands.
var Formats = []string{".obj", ".stl", ".json"}

// Save writes mesh to path, choosing the format from the file extension.
// name labels the mesh inside formats that carry one.
func Save(path string, mesh *revolve.Mesh, name string) error {
	if mesh == nil {
		return fmt.Errorf("export %s: nil mesh", path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return SaveOBJ(path, mesh, name)
	case ".stl":
		return SaveSTL(path, mesh)
	case ".json":
		_, err := SaveAsset(path, mesh, name)
		return err
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, ext, strings.Join(Formats, ", "))
	}
}

// MeshName derives a mesh name from an output path.
func MeshName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
