package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/formats"
	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

func addAll(s *Session, xy ...float32) {
	for i := 0; i+1 < len(xy); i += 2 {
		s.AddPoint(math.Vec2{X: xy[i], Y: xy[i+1]})
	}
}

func TestRecomputeOnEdit(t *testing.T) {
	s := New(curve.DefaultParams(), math.Vec2{})

	addAll(s, 1, 0, 2, 1, 2, 2)
	if n := len(s.Sampled()); n != 0 {
		t.Fatalf("3 Catmull-Rom points should not evaluate, got %d samples", n)
	}
	if s.CanRevolve() {
		t.Error("CanRevolve should be false with 3 Catmull-Rom points")
	}

	s.AddPoint(math.Vec2{X: 1, Y: 3})
	if n := len(s.Sampled()); n != 30 {
		t.Fatalf("expected 30 samples, got %d", n)
	}
	if !s.CanRevolve() {
		t.Error("CanRevolve should be true with 4 Catmull-Rom points")
	}

	s.SetMode(curve.Linear)
	if n := len(s.Sampled()); n != 31 {
		t.Errorf("expected 31 linear samples, got %d", n)
	}

	s.SetWrap(true)
	if n := len(s.Sampled()); n != 41 {
		t.Errorf("expected 41 wrapped linear samples, got %d", n)
	}

	s.SetDensity(2)
	if n := len(s.Sampled()); n != 9 {
		t.Errorf("expected 9 samples at density 2, got %d", n)
	}

	if !s.RemoveLast() {
		t.Fatal("RemoveLast should report a removal")
	}
	if s.PointCount() != 3 {
		t.Errorf("expected 3 points, got %d", s.PointCount())
	}

	s.Clear()
	if len(s.Sampled()) != 0 || len(s.Mirror()) != 0 {
		t.Error("cleared session should have no curve")
	}
	if s.RemoveLast() {
		t.Error("RemoveLast on empty session should be a no-op")
	}
}

func TestDensityClamped(t *testing.T) {
	s := New(curve.Params{Mode: curve.Linear, Density: 0}, math.Vec2{})
	if s.Params().Density != 1 {
		t.Errorf("expected density clamped to 1, got %d", s.Params().Density)
	}
	s.SetDensity(-5)
	if s.Params().Density != 1 {
		t.Errorf("expected density clamped to 1, got %d", s.Params().Density)
	}
}

func TestSampledIsSnapshot(t *testing.T) {
	s := New(curve.Params{Mode: curve.Linear, Density: 1}, math.Vec2{})
	addAll(s, 0, 0, 1, 1)
	before := s.Sampled()

	s.AddPoint(math.Vec2{X: 2, Y: 0})
	if len(before) != 2 {
		t.Errorf("earlier snapshot changed length to %d", len(before))
	}
	if len(s.Sampled()) != 3 {
		t.Errorf("expected 3 samples, got %d", len(s.Sampled()))
	}
}

func TestMirrorFollowsAxis(t *testing.T) {
	s := New(curve.Params{Mode: curve.Linear, Density: 1}, math.Vec2{X: 5})
	addAll(s, 6, 0, 8, 2)

	m := s.Mirror()
	if len(m) != 2 {
		t.Fatalf("expected 2 mirrored samples, got %d", len(m))
	}
	if m[0] != (math.Vec2{X: 4, Y: 0}) || m[1] != (math.Vec2{X: 2, Y: 2}) {
		t.Errorf("unexpected mirror %v", m)
	}

	s.SetAxis(math.Vec2{X: 0})
	if s.Mirror()[1] != (math.Vec2{X: -8, Y: 2}) {
		t.Errorf("mirror did not follow axis move: %v", s.Mirror())
	}
}

func TestSaveLoadControlPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.txt")
	axis := math.Vec2{X: 2, Y: 1}

	s := New(curve.DefaultParams(), axis)
	addAll(s, 3, 1, 4, 2, 4, 3, 3, 4)
	if err := s.SaveControlPoints(path); err != nil {
		t.Fatalf("SaveControlPoints: %v", err)
	}

	// Stored in the canonical frame.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 0\n2 1\n2 2\n1 3\n"; string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}

	loaded := New(curve.DefaultParams(), axis)
	if err := loaded.LoadControlPoints(path); err != nil {
		t.Fatalf("LoadControlPoints: %v", err)
	}
	got, want := loaded.Points(), s.Points()
	if len(got) != len(want) {
		t.Fatalf("loaded %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(loaded.Sampled()) != len(s.Sampled()) {
		t.Errorf("loaded session not re-evaluated")
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("1 2\nnot-a-point\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(curve.Params{Mode: curve.Linear, Density: 1}, math.Vec2{})
	addAll(s, 0, 0, 1, 1)

	err := s.LoadControlPoints(bad)
	if !errors.Is(err, formats.ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
	if s.PointCount() != 2 || len(s.Sampled()) != 2 {
		t.Errorf("session changed after failed load: %d points, %d samples", s.PointCount(), len(s.Sampled()))
	}

	if err := s.LoadControlPoints(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
	if s.PointCount() != 2 {
		t.Errorf("session changed after missing file: %d points", s.PointCount())
	}
}

func TestWriteHandoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), formats.DefaultHandoffFile)

	s := New(curve.Params{Mode: curve.Linear, Density: 1}, math.Vec2{X: 10})
	addAll(s, 10, 0, 12, 3)
	if err := s.WriteHandoff(path); err != nil {
		t.Fatalf("WriteHandoff: %v", err)
	}

	h, err := formats.ReadCurveHandoffFile(path)
	if err != nil {
		t.Fatalf("ReadCurveHandoffFile: %v", err)
	}
	if h.Mode != curve.Linear || h.ControlPoints != 2 {
		t.Errorf("header = %v %d", h.Mode, h.ControlPoints)
	}
	want := []math.Vec2{{X: 0, Y: 0}, {X: 2, Y: 3}}
	if len(h.Profile) != len(want) {
		t.Fatalf("profile = %v, want %v", h.Profile, want)
	}
	for i := range want {
		if h.Profile[i] != want[i] {
			t.Errorf("profile[%d] = %v, want %v", i, h.Profile[i], want[i])
		}
	}
}

func TestWriteHandoffHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), formats.DefaultHandoffFile)

	s := New(curve.DefaultParams(), math.Vec2{})
	addAll(s, 1, 0, 1, 1)
	if err := s.WriteHandoff(path); err != nil {
		t.Fatalf("WriteHandoff: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0 2\n" {
		t.Errorf("expected header-only file, got %q", data)
	}
}

func TestRevolve(t *testing.T) {
	s := New(curve.Params{Mode: curve.Linear, Density: 1}, math.Vec2{X: 1})
	addAll(s, 2, 0, 2, 1)

	mesh, err := s.Revolve(4)
	if err != nil {
		t.Fatalf("Revolve: %v", err)
	}
	if mesh.VertexCount() != 10 || mesh.TriangleCount() != 8 {
		t.Errorf("got %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())
	}
	// Profile x is measured from the axis.
	if p := mesh.Vertices[0].Position; p != [3]float32{1, 0, 0} {
		t.Errorf("first vertex = %v, want [1 0 0]", p)
	}

	s.RemoveLast()
	if _, err := s.Revolve(4); !errors.Is(err, revolve.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
