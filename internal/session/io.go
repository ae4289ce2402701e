package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// SaveControlPoints writes the control points to path in the canonical frame.
func (s *Session) SaveControlPoints(path string) error {
	ox, oy := s.Offsets()
	if err := formats.SaveControlPointsFile(path, s.points, ox, oy); err != nil {
		return err
	}
	s.log.Info("control points saved", zap.String("path", path), zap.Int("points", s.points.Len()))
	return nil
}

// LoadControlPoints replaces the control points with the contents of path.
// On error the session is left unchanged.
func (s *Session) LoadControlPoints(path string) error {
	ox, oy := s.Offsets()
	pts, err := formats.LoadControlPointsFile(path, ox, oy)
	if err != nil {
		return err
	}
	s.points = pts
	s.recompute()
	s.log.Info("control points loaded", zap.String("path", path), zap.Int("points", pts.Len()))
	return nil
}

// WriteHandoff writes the current curve to the handoff file read by the mesh
// builder. A curve with too few control points produces a header-only file.
func (s *Session) WriteHandoff(path string) error {
	ox, _ := s.Offsets()
	if err := formats.WriteCurveHandoffFile(path, s.params.Mode, s.points.Len(), s.sampled, ox); err != nil {
		return err
	}
	if !curve.CanEvaluate(s.params.Mode, s.points.Len()) {
		s.log.Warn("curve handoff has no profile",
			zap.String("path", path),
			zap.Stringer("mode", s.params.Mode),
			zap.Int("points", s.points.Len()),
			zap.Int("required", curve.MinPoints(s.params.Mode)),
		)
		return nil
	}
	s.log.Info("curve handoff written", zap.String("path", path), zap.Int("samples", len(s.sampled)))
	return nil
}

// Revolve builds the surface of revolution for the current curve.
func (s *Session) Revolve(subdivisions int) (*revolve.Mesh, error) {
	if !curve.CanEvaluate(s.params.Mode, s.points.Len()) {
		return nil, fmt.Errorf("%w: %v curve needs %d control points, have %d",
			revolve.ErrInsufficientData, s.params.Mode, curve.MinPoints(s.params.Mode), s.points.Len())
	}
	mesh, err := revolve.Build(s.Profile(), subdivisions)
	if err != nil {
		return nil, err
	}
	s.log.Info("mesh built",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("subdivisions", subdivisions),
	)
	return mesh, nil
}
