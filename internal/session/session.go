// Package session holds the state of one profile editing session: the
// control points, the evaluation settings, and the curve derived from them.
//
// Every mutation re-evaluates the curve from scratch, so Sampled and Mirror
// always match the current points and settings.
package session

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/math"
)

// Session is a single-threaded editing session.
type Session struct {
	points *curve.Points
	params curve.Params
	axis   math.Vec2 // X: vertical revolution axis, Y: horizontal base line

	sampled curve.Sampled
	mirror  curve.Sampled

	log *zap.Logger
}

// New creates an empty session. Density below 1 is clamped to 1.
func New(params curve.Params, axis math.Vec2) *Session {
	if params.Density < 1 {
		params.Density = 1
	}
	s := &Session{
		points: curve.NewPoints(),
		params: params,
		axis:   axis,
		log:    logger.Named("session"),
	}
	s.recompute()
	return s
}

// AddPoint appends a control point in editor coordinates.
func (s *Session) AddPoint(p math.Vec2) {
	s.points.Append(p)
	s.recompute()
}

// RemoveLast undoes the most recent point. It reports whether anything was
// removed.
func (s *Session) RemoveLast() bool {
	if !s.points.RemoveLast() {
		return false
	}
	s.recompute()
	return true
}

// Clear removes all control points.
func (s *Session) Clear() {
	s.points.Clear()
	s.recompute()
}

// SetMode switches between Catmull-Rom and linear evaluation.
func (s *Session) SetMode(m curve.Mode) {
	s.params.Mode = m
	s.recompute()
}

// SetDensity sets the samples per segment, clamped to at least 1.
func (s *Session) SetDensity(d int) {
	if d < 1 {
		d = 1
	}
	s.params.Density = d
	s.recompute()
}

// SetWrap opens or closes the curve.
func (s *Session) SetWrap(wrap bool) {
	s.params.Wrap = wrap
	s.recompute()
}

// SetAxis moves the revolution axis and base line.
func (s *Session) SetAxis(axis math.Vec2) {
	s.axis = axis
	s.recompute()
}

// Points returns a copy of the control points.
func (s *Session) Points() []math.Vec2 {
	return s.points.Slice()
}

// PointCount returns the number of control points.
func (s *Session) PointCount() int {
	return s.points.Len()
}

// Params returns the current evaluation settings.
func (s *Session) Params() curve.Params {
	return s.params
}

// Axis returns the axis position in editor coordinates.
func (s *Session) Axis() math.Vec2 {
	return s.axis
}

// Offsets returns the translation from editor coordinates to the canonical
// frame in which the axis sits at the origin.
func (s *Session) Offsets() (x, y float32) {
	return -s.axis.X, -s.axis.Y
}

// Sampled returns the evaluated curve in editor coordinates. The slice is
// replaced, never modified, by later edits.
func (s *Session) Sampled() curve.Sampled {
	return s.sampled
}

// Mirror returns the curve reflected across the revolution axis.
func (s *Session) Mirror() curve.Sampled {
	return s.mirror
}

// CanRevolve reports whether the current points produce a profile.
func (s *Session) CanRevolve() bool {
	return curve.CanEvaluate(s.params.Mode, s.points.Len()) && len(s.sampled) >= 2
}

// Profile returns the sampled curve in the canonical frame, as the mesh
// builder sees it after a handoff round trip.
func (s *Session) Profile() curve.Sampled {
	ox, _ := s.Offsets()
	return curve.Offset(s.sampled, ox, 0)
}

func (s *Session) recompute() {
	s.sampled = curve.Evaluate(s.points.Slice(), s.params)
	s.mirror = curve.Mirror(s.sampled, s.axis.X)
	s.log.Debug("curve evaluated",
		zap.Stringer("mode", s.params.Mode),
		zap.Int("density", s.params.Density),
		zap.Bool("wrap", s.params.Wrap),
		zap.Int("points", s.points.Len()),
		zap.Int("samples", len(s.sampled)),
	)
}
