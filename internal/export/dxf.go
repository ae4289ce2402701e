package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"

	"github.com/Faultbox/lathe/pkg/curve"
)

// DXF layer names.
const (
	ProfileLayer = "Profile"
	MirrorLayer  = "Mirror"
)

// SaveProfileDXF writes the sampled profile, and its mirror if given, as
// polylines on separate layers.
func SaveProfileDXF(path string, profile, mirror curve.Sampled) error {
	if len(profile) < 2 {
		return fmt.Errorf("saving DXF %s: profile needs at least 2 points, got %d", path, len(profile))
	}

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	if err := addPolyline(d, ProfileLayer, color.Red, profile); err != nil {
		return fmt.Errorf("saving DXF %s: %w", path, err)
	}
	if len(mirror) >= 2 {
		if err := addPolyline(d, MirrorLayer, color.Cyan, mirror); err != nil {
			return fmt.Errorf("saving DXF %s: %w", path, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving DXF %s: %w", path, err)
	}
	return nil
}

func addPolyline(d *drawing.Drawing, layer string, cl color.ColorNumber, pts curve.Sampled) error {
	if _, err := d.AddLayer(layer, cl, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding layer %s: %w", layer, err)
	}
	if err := d.ChangeLayer(layer); err != nil {
		return fmt.Errorf("selecting layer %s: %w", layer, err)
	}

	lwp := entity.NewLwPolyline(len(pts))
	for i, p := range pts {
		lwp.Vertices[i] = []float64{float64(p.X), float64(p.Y)}
	}
	d.AddEntity(lwp)
	return nil
}
