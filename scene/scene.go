package scene

import (
	"errors"
	"image/color"

	"github.com/gogpu/wordart/text"
)

// ErrEmptyScene is returned when the laid out text has no geometry, for
// example when it is all whitespace.
var ErrEmptyScene = errors.New("scene: text has no geometry")

// DefaultDepth is the extrusion depth in world units.
const DefaultDepth = 10

// Style holds the user-facing appearance options.
type Style struct {
	Foreground color.Color
	Background color.Color

	// Depth is the extrusion depth. Zero means DefaultDepth.
	Depth float64

	// Aspect is the output width / height. Zero means 1.
	Aspect float64
}

// Scene is the complete, self-contained description of one render: a
// camera, three lights and a single mesh. It holds no references back to
// its producer and is not modified by rendering.
type Scene struct {
	Camera      Camera
	Ambient     AmbientLight
	Directional DirectionalLight
	Point       PointLight

	Mesh     *Mesh
	Material Material

	// Background is the clear color.
	Background color.Color
}

// Compose builds the scene for laid out text: one line of shapes per text
// line, as produced by text.LayoutLines.
func Compose(lines [][]text.Shape, style Style) (*Scene, error) {
	depth := style.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}

	var shapes []text.Shape
	for _, line := range lines {
		shapes = append(shapes, line...)
	}
	mesh := Extrude(shapes, depth)
	if mesh.IsEmpty() {
		return nil, ErrEmptyScene
	}

	fg := style.Foreground
	if fg == nil {
		fg = color.RGBA{R: 0xff, A: 0xff}
	}
	bg := style.Background
	if bg == nil {
		bg = color.Black
	}

	return &Scene{
		Camera: NewCamera(style.Aspect),
		Ambient: AmbientLight{
			Color:     bg,
			Intensity: 0.4,
		},
		Directional: DirectionalLight{
			Color:     color.White,
			Intensity: 0.7,
			Direction: Vec3{X: 0.3, Y: 0.6, Z: 1}.Normalize(),
		},
		Point: PointLight{
			Color:     color.White,
			Intensity: 0.5,
			Position:  Vec3{X: 0, Y: 100, Z: 200},
			Range:     1000,
		},
		Mesh:       mesh,
		Material:   Material{Color: fg},
		Background: bg,
	}, nil
}
