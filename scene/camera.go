package scene

// Fixed camera parameters.
const (
	CameraDistance = 300
	FieldOfView    = 45
	NearPlane      = 1
	FarPlane       = 2000
)

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	Position Vec3

	// FOV is the vertical field of view in degrees.
	FOV float64

	// Aspect is width / height.
	Aspect float64

	Near, Far float64
}

// NewCamera returns the fixed camera for the given aspect ratio. A
// non-positive aspect is treated as 1.
func NewCamera(aspect float64) Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return Camera{
		Position: Vec3{Z: CameraDistance},
		FOV:      FieldOfView,
		Aspect:   aspect,
		Near:     NearPlane,
		Far:      FarPlane,
	}
}

// View returns the world-to-camera transform.
func (c Camera) View() Mat4 {
	return Translation(-c.Position.X, -c.Position.Y, -c.Position.Z)
}

// Projection returns the camera-to-clip transform.
func (c Camera) Projection() Mat4 {
	return Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera) ViewProjection() Mat4 {
	return c.Projection().Multiply(c.View())
}
