// Package preview renders a profile curve, its mirror image, and the control
// points to a raster image.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	gomath "math"

	"github.com/paulmach/orb"
	"golang.org/x/image/vector"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/math"
)

// Scene is everything drawn in a preview, in editor coordinates.
type Scene struct {
	Curve         curve.Sampled
	Mirror        curve.Sampled
	ControlPoints []math.Vec2
	Axis          math.Vec2 // X: revolution axis, Y: base line
}

// Options controls image size and colors.
type Options struct {
	Width     int
	Height    int
	LineWidth float32 // pixels
	PointSize float32 // control point marker edge, pixels
	Margin    float64 // fraction of the larger extent added around the scene

	Background  color.RGBA
	CurveColor  color.RGBA
	MirrorColor color.RGBA
	PointColor  color.RGBA
	AxisColor   color.RGBA
}

// DefaultOptions returns an 800x800 dark preview.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      800,
		LineWidth:   2,
		PointSize:   7,
		Margin:      0.08,
		Background:  color.RGBA{24, 24, 28, 255},
		CurveColor:  color.RGBA{255, 80, 64, 255},
		MirrorColor: color.RGBA{64, 200, 255, 255},
		PointColor:  color.RGBA{255, 220, 64, 255},
		AxisColor:   color.RGBA{96, 96, 104, 255},
	}
}

// Frame returns the world-space rectangle a preview of s shows: the bounds of
// all curves and points plus the axis origin, padded by margin.
func Frame(s Scene, margin float64) orb.Bound {
	origin := orb.Point{float64(s.Axis.X), float64(s.Axis.Y)}
	b := orb.Bound{Min: origin, Max: origin}

	for _, ls := range []orb.LineString{
		lineString(s.Curve),
		lineString(s.Mirror),
		lineString(s.ControlPoints),
	} {
		if len(ls) > 0 {
			b = b.Union(ls.Bound())
		}
	}

	extent := gomath.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	if extent == 0 {
		extent = 1
	}
	return b.Pad(extent * margin)
}

func lineString(pts []math.Vec2) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point{float64(p.X), float64(p.Y)}
	}
	return ls
}

// viewport maps world coordinates into pixels with a uniform scale, the
// frame centered and y pointing up.
type viewport struct {
	scale  float64
	cx, cy float64 // frame center
	w, h   float64
}

func newViewport(frame orb.Bound, width, height int) viewport {
	fw := frame.Max[0] - frame.Min[0]
	fh := frame.Max[1] - frame.Min[1]
	scale := gomath.Min(float64(width)/fw, float64(height)/fh)
	return viewport{
		scale: scale,
		cx:    (frame.Min[0] + frame.Max[0]) / 2,
		cy:    (frame.Min[1] + frame.Max[1]) / 2,
		w:     float64(width),
		h:     float64(height),
	}
}

func (v viewport) project(p math.Vec2) (float32, float32) {
	x := v.w/2 + (float64(p.X)-v.cx)*v.scale
	y := v.h/2 - (float64(p.Y)-v.cy)*v.scale
	return float32(x), float32(y)
}

// Render draws the scene.
func Render(s Scene, opt Options) (*image.RGBA, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", opt.Width, opt.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	vp := newViewport(Frame(s, opt.Margin), opt.Width, opt.Height)
	c := &canvas{
		dst: img,
		vp:  vp,
		r:   vector.NewRasterizer(opt.Width, opt.Height),
	}

	// Axis cross through the origin of the canonical frame.
	ax, ay := vp.project(s.Axis)
	c.fillRect(ax-0.5, 0, ax+0.5, float32(opt.Height), opt.AxisColor)
	c.fillRect(0, ay-0.5, float32(opt.Width), ay+0.5, opt.AxisColor)

	c.polyline(s.Mirror, opt.LineWidth, opt.MirrorColor)
	c.polyline(s.Curve, opt.LineWidth, opt.CurveColor)

	half := opt.PointSize / 2
	for _, p := range s.ControlPoints {
		x, y := vp.project(p)
		c.fillRect(x-half, y-half, x+half, y+half, opt.PointColor)
	}
	return img, nil
}

// canvas batches shapes of one color into a rasterizer pass.
type canvas struct {
	dst *image.RGBA
	vp  viewport
	r   *vector.Rasterizer
}

func (c *canvas) begin() {
	b := c.dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

func (c *canvas) flush(col color.RGBA) {
	c.r.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) fillRect(x0, y0, x1, y1 float32, col color.RGBA) {
	c.begin()
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y0)
	c.r.LineTo(x1, y1)
	c.r.LineTo(x0, y1)
	c.r.ClosePath()
	c.flush(col)
}

// polyline strokes pts as one quad per segment. All quads share the same
// orientation so overlapping joints do not cancel out.
func (c *canvas) polyline(pts curve.Sampled, width float32, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	c.begin()
	half := width / 2
	for i := 1; i < len(pts); i++ {
		ax, ay := c.vp.project(pts[i-1])
		bx, by := c.vp.project(pts[i])
		d := math.Vec2{X: bx - ax, Y: by - ay}.Normalize()
		if d == (math.Vec2{}) {
			continue
		}
		nx, ny := -d.Y*half, d.X*half
		c.r.MoveTo(ax+nx, ay+ny)
		c.r.LineTo(bx+nx, by+ny)
		c.r.LineTo(bx-nx, by-ny)
		c.r.LineTo(ax-nx, ay-ny)
		c.r.ClosePath()
	}
	c.flush(col)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// SavePNG renders the scene and writes it to path atomically.
func SavePNG(path string, s Scene, opt Options) error {
	img, err := Render(s, opt)
	if err != nil {
		return err
	}
	return formats.WriteFileAtomic(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}
