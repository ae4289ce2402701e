package curve

import "github.com/Faultbox/lathe/pkg/math"

// Sampled is an evaluated curve: the ordered points drawn on screen and
// handed to the mesh builder. It is rebuilt on every edit.
type Sampled []math.Vec2

// Evaluate samples points according to params.
func Evaluate(points []math.Vec2, params Params) Sampled {
	switch params.Mode {
	case Linear:
		return EvaluateLinear(points, params.Density, params.Wrap)
	case CatmullRom:
		return EvaluateCatmullRom(points, params.Density, params.Wrap)
	default:
		return nil
	}
}

// Mirror reflects every sample across the vertical line x = axisX. The
// result backs the symmetric preview of the profile.
func Mirror(s Sampled, axisX float32) Sampled {
	if len(s) == 0 {
		return nil
	}
	out := make(Sampled, len(s))
	for i, p := range s {
		out[i] = p.MirrorX(axisX)
	}
	return out
}

// ArcLength returns the length of the polyline through the samples.
func ArcLength(s Sampled) float32 {
	var total float32
	for i := 1; i < len(s); i++ {
		total += s[i].Distance(s[i-1])
	}
	return total
}

// Offset returns a copy of s translated by (dx, dy).
func Offset(s Sampled, dx, dy float32) Sampled {
	if len(s) == 0 {
		return nil
	}
	out := make(Sampled, len(s))
	d := math.Vec2{X: dx, Y: dy}
	for i, p := range s {
		out[i] = p.Add(d)
	}
	return out
}
