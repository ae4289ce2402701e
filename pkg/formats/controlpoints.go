package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/math"
)

// SaveControlPoints writes one "x y" line per control point. Each point is
// shifted by (offsetX, offsetY) first, which moves the on-screen axis origin
// to the canonical frame.
func SaveControlPoints(w io.Writer, pts *curve.Points, offsetX, offsetY float32) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < pts.Len(); i++ {
		p := pts.At(i)
		if err := writePoint(bw, p.X+offsetX, p.Y+offsetY); err != nil {
			return fmt.Errorf("writing control point %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// LoadControlPoints reads a file written by SaveControlPoints and subtracts
// the offsets again. A single malformed line fails the whole load.
func LoadControlPoints(r io.Reader, offsetX, offsetY float32) (*curve.Points, error) {
	pts := curve.NewPoints()
	offset := math.Vec2{X: offsetX, Y: offsetY}

	ls := newLineScanner(r)
	for ls.next() {
		p, err := parsePoint(ls.line, ls.lineNo)
		if err != nil {
			return nil, err
		}
		pts.Append(p.Sub(offset))
	}
	if err := ls.err(); err != nil {
		return nil, fmt.Errorf("reading control points: %w", err)
	}
	return pts, nil
}

// SaveControlPointsFile writes the control points to path atomically.
func SaveControlPointsFile(path string, pts *curve.Points, offsetX, offsetY float32) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return SaveControlPoints(w, pts, offsetX, offsetY)
	})
}

// LoadControlPointsFile reads control points from path.
func LoadControlPointsFile(path string, offsetX, offsetY float32) (*curve.Points, error) {
	var pts *curve.Points
	err := readFile(path, func(r io.Reader) error {
		var err error
		pts, err = LoadControlPoints(r, offsetX, offsetY)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading control points from %s: %w", path, err)
	}
	return pts, nil
}
