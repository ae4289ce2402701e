package curve

import "github.com/Faultbox/lathe/pkg/math"

// Boundary decides how a Catmull-Rom spline treats its ends: how many
// segments the control points form and which point stands in for an index
// outside [0, n).
type Boundary interface {
	// Segments returns the number of spline segments for n control points.
	Segments(n int) int
	// Point returns the control point for index i, where i may fall one
	// step before the first point or up to two steps past the last.
	Point(points []math.Vec2, i int) math.Vec2
}

// OpenSpline runs from the first to the last control point. The missing
// neighbours at either end are the reflections of the nearest interior
// point about the endpoint.
type OpenSpline struct{}

// Segments returns n-1.
func (OpenSpline) Segments(n int) int {
	return n - 1
}

// Point returns points[i], or a phantom point mirrored about an endpoint.
func (OpenSpline) Point(points []math.Vec2, i int) math.Vec2 {
	n := len(points)
	switch {
	case i < 0:
		return points[0].Scale(2).Sub(points[1])
	case i >= n:
		return points[n-1].Scale(2).Sub(points[n-2])
	default:
		return points[i]
	}
}

// ClosedSpline joins the last control point back to the first. Indices wrap
// modulo the point count so both ends take their tangents from real points.
type ClosedSpline struct{}

// Segments returns n.
func (ClosedSpline) Segments(n int) int {
	return n
}

// Point returns points[i mod n].
func (ClosedSpline) Point(points []math.Vec2, i int) math.Vec2 {
	n := len(points)
	return points[((i%n)+n)%n]
}

// BoundaryFor maps the wrap flag to a boundary variant.
func BoundaryFor(wrap bool) Boundary {
	if wrap {
		return ClosedSpline{}
	}
	return OpenSpline{}
}

// EvaluateCatmullRom samples a uniform Catmull-Rom spline through points.
// It needs at least four points and returns an empty curve otherwise.
func EvaluateCatmullRom(points []math.Vec2, density int, wrap bool) Sampled {
	return EvaluateSpline(points, density, BoundaryFor(wrap))
}

// EvaluateSpline samples a uniform Catmull-Rom spline with the given
// boundary handling, density samples per segment.
//
// Segment i is the cubic Hermite curve from P(i) to P(i+1) with tangents
// (P(i+1)-P(i-1))/2 and (P(i+2)-P(i))/2. Samples sit at t = j/density, except
// on the final segment where the step is 1/(density-1) so the curve lands
// exactly on its end point.
func EvaluateSpline(points []math.Vec2, density int, b Boundary) Sampled {
	n := len(points)
	if n < MinCatmullRomPoints || density < 1 {
		return nil
	}

	segments := b.Segments(n)
	out := make(Sampled, 0, segments*density)

	for seg := 0; seg < segments; seg++ {
		p0 := b.Point(points, seg)
		p1 := b.Point(points, seg+1)
		m0 := p1.Sub(b.Point(points, seg-1)).Scale(0.5)
		m1 := b.Point(points, seg+2).Sub(p0).Scale(0.5)

		steps := density
		if seg == segments-1 && density > 1 {
			steps = density - 1
		}

		for j := 0; j < density; j++ {
			t := float32(j) / float32(steps)
			out = append(out, hermite(p0, m0, p1, m1, t))
		}
	}
	return out
}

// hermite evaluates the cubic Hermite basis. At t = 0 the result is p0
// bit for bit.
func hermite(p0, m0, p1, m1 math.Vec2, t float32) math.Vec2 {
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return math.Vec2{
		X: h00*p0.X + h10*m0.X + h01*p1.X + h11*m1.X,
		Y: h00*p0.Y + h10*m0.Y + h01*p1.Y + h11*m1.Y,
	}
}
