package scene

import "image/color"

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     color.Color
	Intensity float64
}

// DirectionalLight is a light at infinity.
type DirectionalLight struct {
	Color     color.Color
	Intensity float64

	// Direction points from the scene toward the light. Unit length.
	Direction Vec3
}

// PointLight radiates from Position and fades linearly to nothing at
// Range. A zero Range means no falloff.
type PointLight struct {
	Color     color.Color
	Intensity float64
	Position  Vec3
	Range     float64
}

// Attenuation returns the falloff factor at distance d, in [0, 1].
func (l PointLight) Attenuation(d float64) float64 {
	if l.Range <= 0 {
		return 1
	}
	return max(0, 1-d/l.Range)
}

// Material is the surface description of a mesh.
type Material struct {
	Color color.Color
}
