// Package curve models the user's control points and evaluates them into a
// sampled profile curve, either as linear segments or as a Catmull-Rom spline.
//
// Evaluation is always a full recomputation from a snapshot of the control
// points. Nothing is cached between calls.
package curve

import "github.com/Faultbox/lathe/pkg/math"

// Points is an ordered, mutable list of control points. Insertion order is
// the traversal order of the curve. Adjacent duplicates are allowed and
// produce zero-length segments.
type Points struct {
	pts []math.Vec2
}

// NewPoints returns a control point set holding a copy of pts.
func NewPoints(pts ...math.Vec2) *Points {
	p := &Points{}
	if len(pts) > 0 {
		p.pts = append(make([]math.Vec2, 0, len(pts)), pts...)
	}
	return p
}

// Append adds a point at the end.
func (p *Points) Append(pt math.Vec2) {
	p.pts = append(p.pts, pt)
}

// RemoveLast drops the most recently added point. It is a no-op on an empty
// set and reports whether a point was removed.
func (p *Points) RemoveLast() bool {
	if len(p.pts) == 0 {
		return false
	}
	p.pts = p.pts[:len(p.pts)-1]
	return true
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.pts)
}

// At returns the i-th point. It panics if i is out of range, like a slice.
func (p *Points) At(i int) math.Vec2 {
	return p.pts[i]
}

// Clear removes all points.
func (p *Points) Clear() {
	p.pts = p.pts[:0]
}

// Slice returns a copy of the points, safe to hand to the evaluators.
func (p *Points) Slice() []math.Vec2 {
	if len(p.pts) == 0 {
		return nil
	}
	return append(make([]math.Vec2, 0, len(p.pts)), p.pts...)
}

// Clone returns an independent copy of the set.
func (p *Points) Clone() *Points {
	return &Points{pts: p.Slice()}
}
