package curve

import "github.com/Faultbox/lathe/pkg/math"

// EvaluateLinear samples the polyline through points.
//
// Each segment contributes density samples at t = j/density, j < density.
// An open curve then ends with the last control point. A wrapped curve
// instead gets density+1 samples running from the last point back to the
// first, both ends included.
//
// Fewer than two points, or a density below one, yield an empty curve.
func EvaluateLinear(points []math.Vec2, density int, wrap bool) Sampled {
	n := len(points)
	if n < MinLinearPoints || density < 1 {
		return nil
	}

	size := density*(n-1) + 1
	if wrap {
		size += density
	}
	out := make(Sampled, 0, size)

	for i := 0; i < n-1; i++ {
		for j := 0; j < density; j++ {
			t := float32(j) / float32(density)
			out = append(out, points[i].Lerp(points[i+1], t))
		}
	}

	last := points[n-1]
	if !wrap {
		return append(out, last)
	}

	first := points[0]
	for j := 0; j <= density; j++ {
		t := float32(j) / float32(density)
		out = append(out, last.Lerp(first, t))
	}
	return out
}
